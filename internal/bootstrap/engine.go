package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/config"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/game"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/quality"
	"github.com/osse101/CaseForge_Go/internal/rarity"
	"github.com/osse101/CaseForge_Go/internal/session"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

// BuildEngine loads the catalog and tuning named by cfg and wires the engine
// over an in-memory session repository.
func BuildEngine(ctx context.Context, cfg *config.Config, bus event.Bus) (*game.Engine, error) {
	loader, err := catalog.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCatalogLoader, err)
	}
	reg, err := loader.Load(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadTuning, err)
	}

	rng := utils.NewRand(cfg.RNGSeed)
	generator, err := quality.NewGenerator(tuning.Quality, rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedQuality, err)
	}
	weighter, err := rarity.NewWeighter(tuning.Rarity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRarity, err)
	}

	store := session.NewStore(session.StoreConfig{
		CacheSize:       cfg.SessionCacheSize,
		TTL:             cfg.SessionTTL,
		StartingBalance: cfg.StartingBalance,
	}, reg, generator, session.NewMemoryRepository())

	engine := game.NewEngine(game.Options{
		Catalog:  reg,
		Weighter: weighter,
		Sampler:  generator,
		Sessions: store,
		Bus:      bus,
		Rand:     rng.Float64,
		Crafting: tuning.Crafting,
	})

	logger.FromContext(ctx).Info(LogMsgEngineReady,
		"templates", len(reg.Items()),
		"cases", len(reg.Cases()),
		"fee_rate", tuning.Crafting.FeeRate,
		"rarity_power", tuning.Rarity.Power)
	return engine, nil
}

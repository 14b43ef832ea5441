package crafting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/pricing"
	"github.com/osse101/CaseForge_Go/internal/quality"
	"github.com/osse101/CaseForge_Go/internal/session"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

// Request describes one craft attempt.
type Request struct {
	InstanceIDs []string
	Mode        Mode
	Tier        Tier
}

// Output is the item a craft produces, or would have produced on failure.
type Output struct {
	TemplateID    string  `json:"template_id"`
	Name          string  `json:"name"`
	Price         int     `json:"price"`
	Category      string  `json:"category"`
	Quality       float64 `json:"quality"`
	ExpectedValue float64 `json:"expected_value"`
	Synthesized   bool    `json:"synthesized"`
}

// Result reports a resolved craft. Output is always filled in; InstanceID is
// set only when the craft succeeded.
type Result struct {
	Mode        Mode     `json:"mode"`
	Tier        Tier     `json:"tier"`
	Success     bool     `json:"success"`
	Cost        int      `json:"cost"`
	AvgQuality  float64  `json:"avg_quality"`
	AdjustedSum float64  `json:"adjusted_sum"`
	TargetValue float64  `json:"target_value"`
	Burned      []string `json:"burned"`
	Output      Output   `json:"output"`
	InstanceID  string   `json:"instance_id,omitempty"`
	Balance     int      `json:"balance"`
}

// Config tunes crafting costs.
type Config struct {
	FeeRate float64 `yaml:"fee_rate" validate:"gte=0,lt=1"`
}

// DefaultConfig returns the production crafting tuning.
func DefaultConfig() Config {
	return Config{FeeRate: DefaultFeeRate}
}

// Service resolves crafts against a player's session.
type Service interface {
	Craft(ctx context.Context, st *session.State, req Request) (*Result, error)
}

type service struct {
	catalog *catalog.Registry
	sampler quality.Sampler
	bus     event.Bus
	cfg     Config
	rnd     func() float64
	newID   func() string
}

// NewService creates a crafting service. rnd drives the success roll and the
// quality draw; sampler supplies boosted qualities.
func NewService(reg *catalog.Registry, sampler quality.Sampler, bus event.Bus, cfg Config, rnd func() float64) Service {
	return &service{
		catalog: reg,
		sampler: sampler,
		bus:     bus,
		cfg:     cfg,
		rnd:     rnd,
		newID:   uuid.NewString,
	}
}

// valuation is the priced view of the selected inputs.
type valuation struct {
	adjustedSum float64
	avgQuality  float64
	category    string
}

// Craft validates the request, charges the fee, burns the inputs and resolves
// the output. Nothing is mutated when validation or the fee fails.
func (s *service) Craft(ctx context.Context, st *session.State, req Request) (*Result, error) {
	log := logger.FromContext(ctx)

	if err := validateRequest(req.Mode, req.Tier, req.InstanceIDs); err != nil {
		log.Warn(LogMsgCraftRejected, LogFieldMode, req.Mode, LogFieldTier, req.Tier, LogFieldError, err)
		return nil, err
	}

	val, err := s.value(st, req.InstanceIDs)
	if err != nil {
		log.Warn(LogMsgCraftRejected, LogFieldMode, req.Mode, LogFieldError, err)
		return nil, err
	}

	fee := s.fee(val.adjustedSum)
	if err := st.Wallet.TryDeduct(fee); err != nil {
		return nil, fmt.Errorf(ErrMsgFeeFmt+": %w", fee, err)
	}

	if err := burn(st, req.InstanceIDs, fee); err != nil {
		log.Error(LogMsgBurnRolledBack, LogFieldError, err)
		return nil, err
	}

	target := val.adjustedSum * targetMultiplier(req.Mode, req.Tier, len(req.InstanceIDs))

	success := true
	if req.Mode.Rolled() {
		success = s.rnd() < req.Tier.Chance()
	}

	newQ := newQuality(val.avgQuality, boostProbability(req.Mode, req.Tier), s.rnd, s.sampler.Sample)

	out, synthesized := s.resolveOutput(ctx, target, newQ, val.category)

	res := &Result{
		Mode:        req.Mode,
		Tier:        req.Tier,
		Success:     success,
		Cost:        fee,
		AvgQuality:  val.avgQuality,
		AdjustedSum: val.adjustedSum,
		TargetValue: target,
		Burned:      append([]string(nil), req.InstanceIDs...),
		Output: Output{
			TemplateID:    out.ID,
			Name:          out.Name,
			Price:         out.BasePrice,
			Category:      out.Category,
			Quality:       newQ,
			ExpectedValue: target,
			Synthesized:   synthesized,
		},
	}

	if success {
		if err := s.materialize(st, res, out, synthesized); err != nil {
			res.Balance = st.Wallet.Balance()
			log.Error(LogMsgMaterializeFailed,
				LogFieldBurned, res.Burned,
				LogFieldCost, fee,
				LogFieldOutput, out.ID,
				LogFieldError, err)
			return res, err
		}
	}
	res.Balance = st.Wallet.Balance()

	log.Info(LogMsgCraftResolved,
		LogFieldMode, req.Mode,
		LogFieldTier, req.Tier,
		LogFieldInputs, len(req.InstanceIDs),
		LogFieldSuccess, success,
		LogFieldCost, fee,
		LogFieldTarget, target,
		LogFieldQuality, newQ,
		LogFieldOutput, out.ID,
		LogFieldSynthesized, synthesized)

	event.Publish(ctx, s.bus, event.NewCraftCompletedEvent(event.CraftCompletedPayloadV1{
		PlayerID:         st.PlayerID,
		Mode:             string(req.Mode),
		Tier:             int(req.Tier),
		Success:          success,
		Burned:           len(req.InstanceIDs),
		Cost:             fee,
		OutputTemplateID: out.ID,
		Synthesized:      synthesized,
		Quality:          newQ,
	}))

	return res, nil
}

// materialize adds the crafted instance, registering a synthesized template
// first. The inputs and fee are already spent when it runs.
func (s *service) materialize(st *session.State, res *Result, out domain.ItemTemplate, synthesized bool) error {
	if synthesized {
		if err := st.RegisterCrafted(out); err != nil {
			return err
		}
	}
	inst := domain.ItemInstance{
		ID:         s.newID(),
		TemplateID: out.ID,
		Quality:    res.Output.Quality,
		AcquiredAt: time.Now(),
	}
	if err := st.Holdings.AddInstance(inst); err != nil {
		return err
	}
	res.InstanceID = inst.ID
	return nil
}

// value checks ownership and prices every input at its own quality.
func (s *service) value(st *session.State, ids []string) (*valuation, error) {
	val := &valuation{}
	categories := make(map[string]struct{})
	var qualitySum float64

	for _, id := range ids {
		inst, ok := st.Holdings.Instance(id)
		if !ok {
			return nil, fmt.Errorf("%w: "+ErrMsgNotOwnedFmt, domain.ErrInsufficientStock, id)
		}
		tmpl, ok := st.LookupTemplate(s.catalog, inst.TemplateID)
		if !ok {
			return nil, fmt.Errorf("%w: "+ErrMsgUnknownTemplateFmt, domain.ErrItemNotFound, inst.TemplateID, id)
		}
		val.adjustedSum += pricing.AdjustedValue(tmpl.BasePrice, inst.Quality)
		qualitySum += inst.Quality
		categories[tmpl.Category] = struct{}{}
	}

	val.avgQuality = qualitySum / float64(len(ids))
	if len(categories) == 1 {
		for c := range categories {
			val.category = c
		}
	}
	return val, nil
}

func (s *service) fee(adjustedSum float64) int {
	return max(MinFee, utils.RoundInt(adjustedSum*s.cfg.FeeRate))
}

// resolveOutput selects a catalog template or synthesizes one.
func (s *service) resolveOutput(ctx context.Context, target, q float64, category string) (domain.ItemTemplate, bool) {
	out, err := SelectOutput(s.catalog.Items(), target, q, category)
	if err == nil {
		return out, false
	}
	logger.FromContext(ctx).Debug(LogMsgSynthesized, LogFieldTarget, target, LogFieldError, err)
	return Synthesize(target, q, category), true
}

// burn removes every input. On failure the removed instances are restored and
// the fee refunded.
func burn(st *session.State, ids []string, fee int) error {
	removed := make([]domain.ItemInstance, 0, len(ids))
	for _, id := range ids {
		inst, err := st.Holdings.RemoveInstance(id)
		if err != nil {
			for _, r := range removed {
				_ = st.Holdings.AddInstance(r)
			}
			if fee > 0 {
				_ = st.Wallet.Credit(fee)
			}
			return err
		}
		removed = append(removed, inst)
	}
	return nil
}

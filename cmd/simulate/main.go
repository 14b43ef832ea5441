// Command simulate samples the quality distribution and repeatedly opens one
// case so the balance of a catalog and tuning file can be checked offline.
package main

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/config"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/lootbox"
	"github.com/osse101/CaseForge_Go/internal/quality"
	"github.com/osse101/CaseForge_Go/internal/rarity"
	"github.com/osse101/CaseForge_Go/internal/session"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

type dropStats struct {
	name    string
	tier    int
	count   int
	revenue int
}

func main() {
	catalogPath := flag.String("catalog", "", "catalog JSON (default: embedded)")
	tuningPath := flag.String("tuning", "", "tuning YAML overlay")
	caseID := flag.String("case", "", "case to open (default: cheapest)")
	opens := flag.Int("n", 10000, "number of openings")
	samples := flag.Int("quality-samples", 1000000, "quality samples for the distribution report")
	seed := flag.Uint64("seed", 1, "random seed (0 uses the clock)")
	flag.Parse()

	if err := run(*catalogPath, *tuningPath, *caseID, *opens, *samples, *seed); err != nil {
		slog.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(catalogPath, tuningPath, caseID string, opens, samples int, seed uint64) error {
	ctx := context.Background()

	loader, err := catalog.NewLoader()
	if err != nil {
		return err
	}
	reg, err := loader.Load(ctx, catalogPath)
	if err != nil {
		return err
	}
	tuning, err := config.LoadTuning(tuningPath)
	if err != nil {
		return err
	}

	rng := utils.NewRand(seed)
	generator, err := quality.NewGenerator(tuning.Quality, rng)
	if err != nil {
		return err
	}
	weighter, err := rarity.NewWeighter(tuning.Rarity)
	if err != nil {
		return err
	}

	printQualityReport(quality.Summarize(generator, samples))

	if caseID == "" {
		cases := reg.Cases()
		if len(cases) == 0 {
			return fmt.Errorf("%w: catalog has no cases", domain.ErrCaseNotFound)
		}
		caseID = cases[0].ID
	}

	stats, spent, err := openMany(ctx, reg, weighter, generator, rng.Float64, caseID, opens)
	if err != nil {
		return err
	}
	printDropReport(caseID, opens, spent, stats)
	return nil
}

// openMany opens caseID n times for a throwaway player, selling every drop.
func openMany(ctx context.Context, reg *catalog.Registry, w *rarity.Weighter, s quality.Sampler, rnd func() float64, caseID string, n int) ([]dropStats, int, error) {
	c, ok := reg.Case(caseID)
	if !ok {
		return nil, 0, fmt.Errorf("%w: '%s'", domain.ErrCaseNotFound, caseID)
	}

	svc := lootbox.NewService(reg, w, s, nil, rnd)
	st := session.New("simulator", reg, 0)
	if err := st.Holdings.AddCases(caseID, n); err != nil {
		return nil, 0, err
	}

	byTemplate := make(map[string]*dropStats)
	for range n {
		drop, err := svc.Open(ctx, st, caseID)
		if err != nil {
			return nil, 0, err
		}
		res, err := svc.Resolve(ctx, st, domain.ChoiceSell)
		if err != nil {
			return nil, 0, err
		}
		ds, ok := byTemplate[drop.TemplateID]
		if !ok {
			ds = &dropStats{name: drop.Name, tier: drop.RarityTier}
			byTemplate[drop.TemplateID] = ds
		}
		ds.count++
		ds.revenue += res.Credited
	}

	out := make([]dropStats, 0, len(byTemplate))
	for _, ds := range byTemplate {
		out = append(out, *ds)
	}
	slices.SortFunc(out, func(a, b dropStats) int {
		return cmp.Or(cmp.Compare(b.count, a.count), cmp.Compare(a.name, b.name))
	})
	return out, c.Price * n, nil
}

func printQualityReport(r quality.Report) {
	fmt.Printf("Quality over %d samples: mean %.4f  min %.6f  max %.6f\n", r.Samples, r.Mean, r.Min, r.Max)
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "band\tcount\tshare")
	for _, b := range []quality.Band{quality.BandStandard, quality.BandHigh, quality.BandRare, quality.BandUltra} {
		fmt.Fprintf(tw, "%s\t%d\t%.4f%%\n", b, r.Counts[b], 100*r.Fraction(b))
	}
	fmt.Fprintf(tw, ">= 0.99\t%d\t%.4f%%\n", r.AtLeastHigh, 100*r.HighFraction())
	_ = tw.Flush()
	fmt.Println()
}

func printDropReport(caseID string, n, spent int, stats []dropStats) {
	revenue := 0
	for _, ds := range stats {
		revenue += ds.revenue
	}
	fmt.Printf("Opened %s %d times: spent %d, sold drops for %d (return %.1f%%)\n",
		caseID, n, spent, revenue, 100*float64(revenue)/float64(max(spent, 1)))

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "item\ttier\tdrops\tshare\tavg sale")
	for _, ds := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.3f%%\t%.1f\n",
			ds.name, ds.tier, ds.count, 100*float64(ds.count)/float64(n), float64(ds.revenue)/float64(ds.count))
	}
	_ = tw.Flush()
}

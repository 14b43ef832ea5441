package crafting

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/pricing"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

// SelectOutput picks the template whose adjusted price at quality q is closest
// to target. Only templates with a positive base price, and in category when it
// is non-empty, are considered; ties go to the earliest candidate. The closest
// template is rejected when its adjusted price exceeds four times a positive target.
func SelectOutput(candidates []domain.ItemTemplate, target, q float64, category string) (domain.ItemTemplate, error) {
	mult := pricing.Multiplier(q)

	var best domain.ItemTemplate
	bestDiff := math.Inf(1)
	found := false
	for _, t := range candidates {
		if t.BasePrice <= 0 || (category != "" && t.Category != category) {
			continue
		}
		diff := math.Abs(float64(t.BasePrice)*mult - target)
		if diff < bestDiff {
			best, bestDiff, found = t, diff, true
		}
	}

	if !found {
		return domain.ItemTemplate{}, fmt.Errorf("%w: no template in category %q", domain.ErrNoOutputCandidate, category)
	}
	if adjusted := float64(best.BasePrice) * mult; target > 0 && adjusted > target*OutputRejectFactor {
		return domain.ItemTemplate{}, fmt.Errorf("%w: closest template %s is worth %.2f against target %.2f",
			domain.ErrNoOutputCandidate, best.ID, adjusted, target)
	}
	return best, nil
}

// Synthesize creates a template priced so that its adjusted price at quality q
// approximates target. An empty category marks mixed inputs.
func Synthesize(target, q float64, category string) domain.ItemTemplate {
	basePrice := 0
	if mult := pricing.Multiplier(q); mult > 0 {
		basePrice = utils.RoundInt(target / mult)
	}

	label := MixedCategoryName
	if category != "" {
		label = cases.Title(language.English).String(strings.ReplaceAll(category, "_", " "))
	} else {
		category = domain.DefaultCraftCategory
	}

	return domain.ItemTemplate{
		ID:         domain.SyntheticIDPrefix + uuid.NewString(),
		Name:       fmt.Sprintf(SynthesizedNameFmt, label),
		BasePrice:  basePrice,
		Category:   category,
		RarityTier: SyntheticRarityTier,
	}
}

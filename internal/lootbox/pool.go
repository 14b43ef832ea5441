package lootbox

import "github.com/osse101/CaseForge_Go/internal/domain"

// weightedPool is a case pool flattened into cumulative weights for one draw.
type weightedPool struct {
	entries []poolEntry
	total   float64
}

type poolEntry struct {
	template    domain.ItemTemplate
	cumulWeight float64
}

// buildPool pairs templates with their weights, in pool order.
func buildPool(templates []domain.ItemTemplate, weights []float64) *weightedPool {
	p := &weightedPool{entries: make([]poolEntry, 0, len(templates))}
	for i, t := range templates {
		p.total += weights[i]
		p.entries = append(p.entries, poolEntry{template: t, cumulWeight: p.total})
	}
	return p
}

// pick returns the entry selected by a roll in [0, 1): the first entry whose
// cumulative weight exceeds roll × total.
func (p *weightedPool) pick(rnd float64) domain.ItemTemplate {
	target := rnd * p.total
	lo, hi := 0, len(p.entries)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if p.entries[mid].cumulWeight <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return p.entries[lo].template
}

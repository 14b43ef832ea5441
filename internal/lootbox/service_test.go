package lootbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/quality"
	"github.com/osse101/CaseForge_Go/internal/rarity"
	"github.com/osse101/CaseForge_Go/internal/session"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

type fixedSampler float64

func (f fixedSampler) Sample() float64 { return float64(f) }

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg, err := catalog.NewRegistry(catalog.Definition{
		Version: "test",
		Items: []domain.ItemTemplate{
			{ID: "common_sword", Name: "Common Sword", BasePrice: 100, Category: "weapon", RarityTier: 0},
			{ID: "mythic_sword", Name: "Mythic Sword", BasePrice: 1000, Category: "weapon", RarityTier: 10},
			{ID: "pistol_mk1", Name: "Pistol Mk1", BasePrice: 100, Category: "weapon", RarityTier: 1},
		},
		Cases: []domain.Case{
			{ID: "sword_case", Name: "Sword Case", Price: 100, Pool: []string{"common_sword", "mythic_sword"}},
			{ID: "pistol_case", Name: "Pistol Case", Price: 50, Pool: []string{"pistol_mk1"}},
			{ID: "empty_case", Name: "Empty Case", Price: 1, Pool: []string{}},
		},
	})
	require.NoError(t, err)
	return reg
}

func newTestService(t *testing.T, reg *catalog.Registry, sampler quality.Sampler) (*service, *event.MemoryBus) {
	t.Helper()
	weighter, err := rarity.NewWeighter(rarity.DefaultParams())
	require.NoError(t, err)
	bus := event.NewMemoryBus()
	svc := NewService(reg, weighter, sampler, bus, func() float64 { return 0 }).(*service)
	return svc, bus
}

func newPlayer(t *testing.T, reg *catalog.Registry, cases map[string]int) *session.State {
	t.Helper()
	st := session.New("alice", reg, 100)
	for id, qty := range cases {
		require.NoError(t, st.Holdings.AddCases(id, qty))
	}
	return st
}

func TestOpen_ProducesPendingDrop(t *testing.T) {
	reg := testRegistry(t)
	svc, bus := newTestService(t, reg, fixedSampler(0.9))
	st := newPlayer(t, reg, map[string]int{"pistol_case": 2})

	var published []event.Event
	bus.Subscribe(event.CaseOpened, func(_ context.Context, e event.Event) error {
		published = append(published, e)
		return nil
	})

	drop, err := svc.Open(context.Background(), st, "pistol_case")
	require.NoError(t, err)

	assert.Equal(t, "pistol_mk1", drop.TemplateID)
	assert.Equal(t, "Pistol Mk1", drop.Name)
	assert.Equal(t, 0.9, drop.Quality)
	assert.Equal(t, 100, drop.AdjustedPrice)
	assert.Equal(t, 88, drop.SellValue)
	assert.NotEmpty(t, drop.ID)
	assert.Equal(t, 1, st.Holdings.CaseCount("pistol_case"), "exactly one case consumed")
	require.NotNil(t, st.Pending)
	assert.Equal(t, drop.ID, st.Pending.ID)
	assert.Len(t, published, 1)
}

func TestOpen_Errors(t *testing.T) {
	reg := testRegistry(t)

	tests := []struct {
		name    string
		caseID  string
		owned   map[string]int
		pending bool
		wantErr error
	}{
		{name: "unknown case", caseID: "ghost_case", owned: map[string]int{"pistol_case": 1}, wantErr: domain.ErrCaseNotFound},
		{name: "zero owned", caseID: "pistol_case", owned: map[string]int{}, wantErr: domain.ErrInsufficientStock},
		{name: "empty pool", caseID: "empty_case", owned: map[string]int{"empty_case": 1}, wantErr: domain.ErrEmptyPool},
		{name: "drop pending", caseID: "pistol_case", owned: map[string]int{"pistol_case": 1}, pending: true, wantErr: domain.ErrDropPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, reg, fixedSampler(0.5))
			st := newPlayer(t, reg, tt.owned)
			if tt.pending {
				st.Pending = &domain.Drop{ID: "earlier", CaseID: "pistol_case", TemplateID: "pistol_mk1"}
			}
			before := st.Holdings.Cases()
			instances := st.Holdings.InstanceCount()

			_, err := svc.Open(context.Background(), st, tt.caseID)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, st.Holdings.Cases(), "holdings must be untouched")
			assert.Equal(t, instances, st.Holdings.InstanceCount())
		})
	}
}

func TestOpen_WeightedSelectionFollowsRoll(t *testing.T) {
	reg := testRegistry(t)
	svc, _ := newTestService(t, reg, fixedSampler(0.5))

	// weights: common 1.0, mythic 10^-1.5 ≈ 0.0316; mythic owns the top ~3.07% of the roll range
	tests := []struct {
		roll float64
		want string
	}{
		{roll: 0, want: "common_sword"},
		{roll: 0.95, want: "common_sword"},
		{roll: 0.98, want: "mythic_sword"},
		{roll: 0.999999, want: "mythic_sword"},
	}
	for _, tt := range tests {
		st := newPlayer(t, reg, map[string]int{"sword_case": 1})
		svc.rnd = func() float64 { return tt.roll }

		drop, err := svc.Open(context.Background(), st, "sword_case")
		require.NoError(t, err)
		assert.Equal(t, tt.want, drop.TemplateID, "roll %v", tt.roll)
	}
}

func TestOpen_RarityDominance(t *testing.T) {
	reg := testRegistry(t)
	rng := utils.NewRand(20240601)
	gen, err := quality.NewGenerator(quality.DefaultParams(), rng)
	require.NoError(t, err)
	svc, _ := newTestService(t, reg, gen)
	svc.rnd = rng.Float64

	const trials = 10000
	st := newPlayer(t, reg, map[string]int{"sword_case": trials})
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		drop, err := svc.Open(context.Background(), st, "sword_case")
		require.NoError(t, err)
		counts[drop.TemplateID]++
		_, err = svc.Resolve(context.Background(), st, domain.ChoiceSell)
		require.NoError(t, err)
	}

	assert.Greater(t, counts["common_sword"], 10*counts["mythic_sword"])
	assert.Positive(t, counts["mythic_sword"], "rare outcomes stay possible")
	assert.InDelta(t, 0.0306, float64(counts["mythic_sword"])/trials, 0.008)
	assert.Equal(t, 0, st.Holdings.CaseCount("sword_case"))
}

func TestOpen_LiveRarityRetune(t *testing.T) {
	reg := testRegistry(t)
	svc, _ := newTestService(t, reg, fixedSampler(0.5))
	svc.rnd = func() float64 { return 0.5 }

	// Power 0 flattens every tier to weight 1: a 0.5 roll lands on the second entry.
	require.NoError(t, svc.weighter.SetParams(rarity.Params{Power: 0, MinWeight: 0.001, GlobalMultiplier: 1}))

	st := newPlayer(t, reg, map[string]int{"sword_case": 1})
	drop, err := svc.Open(context.Background(), st, "sword_case")
	require.NoError(t, err)
	assert.Equal(t, "mythic_sword", drop.TemplateID)
}

func TestResolve_Keep(t *testing.T) {
	reg := testRegistry(t)
	svc, _ := newTestService(t, reg, fixedSampler(0.75))
	st := newPlayer(t, reg, map[string]int{"pistol_case": 1})

	drop, err := svc.Open(context.Background(), st, "pistol_case")
	require.NoError(t, err)

	res, err := svc.Resolve(context.Background(), st, domain.ChoiceKeep)
	require.NoError(t, err)

	inst, ok := st.Holdings.Instance(res.InstanceID)
	require.True(t, ok)
	assert.Equal(t, drop.TemplateID, inst.TemplateID)
	assert.Equal(t, drop.Quality, inst.Quality)
	assert.Equal(t, 0, res.Credited)
	assert.Equal(t, 100, res.Balance)
	assert.Nil(t, st.Pending)
}

func TestResolve_Sell(t *testing.T) {
	reg := testRegistry(t)
	svc, _ := newTestService(t, reg, fixedSampler(0.0))
	st := newPlayer(t, reg, map[string]int{"pistol_case": 1})

	drop, err := svc.Open(context.Background(), st, "pistol_case")
	require.NoError(t, err)
	require.Equal(t, 40, drop.AdjustedPrice)

	res, err := svc.Resolve(context.Background(), st, domain.ChoiceSell)
	require.NoError(t, err)

	assert.Equal(t, 35, res.Credited)
	assert.Equal(t, 135, st.Wallet.Balance())
	assert.Equal(t, 0, st.Holdings.InstanceCount())
	assert.Nil(t, st.Pending)

	_, err = svc.Resolve(context.Background(), st, domain.ChoiceSell)
	assert.ErrorIs(t, err, domain.ErrNoPendingDrop, "resolution is terminal")
}

func TestResolve_InvalidChoiceKeepsDropPending(t *testing.T) {
	reg := testRegistry(t)
	svc, _ := newTestService(t, reg, fixedSampler(0.5))
	st := newPlayer(t, reg, map[string]int{"pistol_case": 1})

	_, err := svc.Open(context.Background(), st, "pistol_case")
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), st, domain.DropChoice("reroll"))
	assert.ErrorIs(t, err, domain.ErrInvalidChoice)
	assert.NotNil(t, st.Pending)
}

func TestWeightedPool_Pick(t *testing.T) {
	templates := []domain.ItemTemplate{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	pool := buildPool(templates, []float64{1, 2, 1})

	tests := []struct {
		roll float64
		want string
	}{
		{0, "a"},
		{0.2499, "a"},
		{0.25, "b"},
		{0.7499, "b"},
		{0.75, "c"},
		{0.99999, "c"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pool.pick(tt.roll).ID, "roll %v", tt.roll)
	}
}

package garden_test

import (
	"errors"
	"testing"

	apperrors "garden-planner-backend/internal/errors"
	"garden-planner-backend/internal/garden"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumQuantities(allocations []garden.PlantAllocation) int {
	total := 0
	for _, a := range allocations {
		total += a.Quantity
	}
	return total
}

func TestOptimize_SinglePlantWithoutCompanionsFillsCapacity(t *testing.T) {
	optimizer := garden.NewCompanionListOptimizer(newFakeKnowledge())

	allocations, err := optimizer.Optimize(ids("tomato"), mustArea(4))

	require.NoError(t, err)
	assert.Equal(t, []garden.PlantAllocation{alloc("tomato", 4, garden.SourceSelected)}, allocations)
}

func TestOptimize_RejectsIncompatibleSelection(t *testing.T) {
	knowledge := newFakeKnowledge().addAvoid("tomato", "potato")
	optimizer := garden.NewCompanionListOptimizer(knowledge)

	allocations, err := optimizer.Optimize(ids("tomato", "potato"), mustArea(4))

	require.Error(t, err)
	assert.Nil(t, allocations)
	assert.True(t, errors.Is(err, apperrors.ErrIncompatibleSelectedPlants))
	assert.Equal(t, "Selected plants are incompatible: tomato and potato", err.Error())
}

func TestOptimize_RejectsEmptySelection(t *testing.T) {
	optimizer := garden.NewCompanionListOptimizer(newFakeKnowledge())

	_, err := optimizer.Optimize(nil, mustArea(4))

	assert.True(t, errors.Is(err, apperrors.ErrInvalidPlantSelection))
}

func TestOptimize_RejectsSelectionAboveCapacity(t *testing.T) {
	optimizer := garden.NewCompanionListOptimizer(newFakeKnowledge())

	_, err := optimizer.Optimize(ids("tomato", "basil", "carrot"), mustArea(2.9))

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrGardenCapacityExceeded))
	assert.Equal(t, "Garden capacity (2) is too small for 3 selected plants", err.Error())
}

func TestOptimize_DeduplicatesBeforeCapacityCheck(t *testing.T) {
	optimizer := garden.NewCompanionListOptimizer(newFakeKnowledge())

	allocations, err := optimizer.Optimize(ids("tomato", "Tomato", " tomato"), mustArea(1))

	require.NoError(t, err)
	assert.Equal(t, []garden.PlantAllocation{alloc("tomato", 1, garden.SourceSelected)}, allocations)
}

func TestOptimize_AddsMutualHelperAsCompanion(t *testing.T) {
	knowledge := newFakeKnowledge().
		addHelp("tomato", "basil").
		addHelp("basil", "tomato")
	optimizer := garden.NewCompanionListOptimizer(knowledge)

	allocations, err := optimizer.Optimize(ids("tomato"), mustArea(4))

	require.NoError(t, err)
	assert.Equal(t, []garden.PlantAllocation{
		alloc("tomato", 3, garden.SourceSelected),
		alloc("basil", 1, garden.SourceCompanion),
	}, allocations)
}

func TestOptimize_AddsCompanionsAndFillsCapacity(t *testing.T) {
	knowledge := newFakeKnowledge().
		addHelp("tomato", "basil").
		addHelp("basil", "tomato").
		addHelp("carrot", "tomato").
		addAvoid("tomato", "potato")
	optimizer := garden.NewCompanionListOptimizer(knowledge)

	allocations, err := optimizer.Optimize(ids("tomato", "carrot"), mustArea(6))

	require.NoError(t, err)
	assert.Equal(t, 6, sumQuantities(allocations))
	assert.Equal(t, []garden.PlantAllocation{
		alloc("tomato", 4, garden.SourceSelected),
		alloc("carrot", 1, garden.SourceSelected),
		alloc("basil", 1, garden.SourceCompanion),
	}, allocations)
}

func TestOptimize_AcceptsManySelectedPlantsWhenCapacityAllows(t *testing.T) {
	knowledge := newFakeKnowledge().
		addHelp("tomato", "basil").
		addHelp("carrot", "onion")
	optimizer := garden.NewCompanionListOptimizer(knowledge)

	allocations, err := optimizer.Optimize(ids("tomato", "carrot", "basil", "onion"), mustArea(8))

	require.NoError(t, err)
	assert.Equal(t, 8, sumQuantities(allocations))
	// every entry scores the same for extra slots, so the lowest id takes them all
	assert.Equal(t, []garden.PlantAllocation{
		alloc("basil", 5, garden.SourceSelected),
		alloc("carrot", 1, garden.SourceSelected),
		alloc("onion", 1, garden.SourceSelected),
		alloc("tomato", 1, garden.SourceSelected),
	}, allocations)
}

func TestOptimize_CompanionBudgetIsTwicePerSelectedPlant(t *testing.T) {
	knowledge := newFakeKnowledge().
		addHelp("alpha", "xray").
		addHelp("alpha", "yarrow").
		addHelp("alpha", "zucchini")
	optimizer := garden.NewCompanionListOptimizer(knowledge)

	allocations, err := optimizer.Optimize(ids("alpha"), mustArea(10))

	require.NoError(t, err)
	assert.Equal(t, []garden.PlantAllocation{
		alloc("alpha", 8, garden.SourceSelected),
		alloc("xray", 1, garden.SourceCompanion),
		alloc("yarrow", 1, garden.SourceCompanion),
	}, allocations)
}

func TestOptimize_CompanionBudgetNeverExceedsRemainingCapacity(t *testing.T) {
	knowledge := newFakeKnowledge().
		addHelp("alpha", "xray").
		addHelp("alpha", "yarrow")
	optimizer := garden.NewCompanionListOptimizer(knowledge)

	allocations, err := optimizer.Optimize(ids("alpha"), mustArea(2))

	require.NoError(t, err)
	assert.Equal(t, []garden.PlantAllocation{
		alloc("alpha", 1, garden.SourceSelected),
		alloc("xray", 1, garden.SourceCompanion),
	}, allocations)
}

func TestOptimize_DiscardsCandidateForbiddenWithAnySelectedPlant(t *testing.T) {
	knowledge := newFakeKnowledge().
		addHelp("basil", "tomato").
		addAvoid("basil", "carrot")
	optimizer := garden.NewCompanionListOptimizer(knowledge)

	allocations, err := optimizer.Optimize(ids("tomato", "carrot"), mustArea(4))

	require.NoError(t, err)
	for _, a := range allocations {
		assert.NotEqual(t, "basil", a.PlantID.String())
		assert.Equal(t, garden.SourceSelected, a.Source)
	}
	assert.Equal(t, 4, sumQuantities(allocations))
}

func TestOptimize_SkipsCompanionForbiddenWithAcceptedCompanion(t *testing.T) {
	knowledge := newFakeKnowledge().
		addHelp("alpha", "bean").
		addHelp("alpha", "onion").
		addHelp("alpha", "squash").
		addAvoid("bean", "onion")
	optimizer := garden.NewCompanionListOptimizer(knowledge)

	allocations, err := optimizer.Optimize(ids("alpha"), mustArea(10))

	require.NoError(t, err)
	assert.Equal(t, []garden.PlantAllocation{
		alloc("alpha", 8, garden.SourceSelected),
		alloc("bean", 1, garden.SourceCompanion),
		alloc("squash", 1, garden.SourceCompanion),
	}, allocations)
}

func TestOptimize_AccumulatesScoresAcrossProposingPlants(t *testing.T) {
	// zinnia helps both selected plants and is proposed twice (5 + 5);
	// dill is mutual with alpha only (1 + 4 = 5) and would win a tie by id.
	knowledge := newFakeKnowledge().
		addHelp("zinnia", "alpha").
		addHelp("zinnia", "beta").
		addHelp("dill", "alpha").
		addHelp("alpha", "dill")
	optimizer := garden.NewCompanionListOptimizer(knowledge)

	allocations, err := optimizer.Optimize(ids("alpha", "beta"), mustArea(3))

	require.NoError(t, err)
	require.Len(t, allocations, 3)
	assert.Equal(t, alloc("zinnia", 1, garden.SourceCompanion), allocations[2])
}

func TestOptimize_ResultInvariants(t *testing.T) {
	knowledge := newFakeKnowledge().
		addHelp("tomato", "basil").
		addHelp("basil", "tomato").
		addHelp("carrot", "onion").
		addHelp("onion", "carrot").
		addHelp("marigold", "tomato").
		addHelp("bean", "corn").
		addHelp("corn", "bean").
		addHelp("squash", "corn").
		addHelp("dill", "cabbage").
		addAvoid("tomato", "potato").
		addAvoid("bean", "onion").
		addAvoid("dill", "carrot").
		addAvoid("marigold", "bean")

	selections := [][]string{
		{"tomato"},
		{"tomato", "carrot"},
		{"corn"},
		{"bean", "tomato", "cabbage"},
		{"carrot", "corn", "basil"},
		{"potato", "cabbage"},
	}
	areas := []float64{1, 3.5, 7, 12, 30}

	optimizer := garden.NewCompanionListOptimizer(knowledge)
	for _, selection := range selections {
		for _, areaM2 := range areas {
			area := mustArea(areaM2)
			allocations, err := optimizer.Optimize(ids(selection...), area)
			if len(selection) > area.PlantCapacity() {
				assert.True(t, errors.Is(err, apperrors.ErrGardenCapacityExceeded))
				continue
			}
			require.NoError(t, err, "selection %v area %v", selection, areaM2)

			assert.Equal(t, area.PlantCapacity(), sumQuantities(allocations))

			seen := make(map[garden.PlantID]bool)
			for _, a := range allocations {
				assert.False(t, seen[a.PlantID], "duplicate allocation %s", a.PlantID)
				seen[a.PlantID] = true
				assert.GreaterOrEqual(t, a.Quantity, 1)
			}
			for _, p := range allocations {
				for _, q := range allocations {
					assert.False(t, knowledge.IsForbiddenPair(p.PlantID, q.PlantID),
						"forbidden pair %s/%s", p.PlantID, q.PlantID)
				}
			}

			again, err := optimizer.Optimize(ids(selection...), area)
			require.NoError(t, err)
			assert.Equal(t, allocations, again)
		}
	}
}

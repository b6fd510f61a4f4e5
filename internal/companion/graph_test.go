package companion_test

import (
	"testing"

	"garden-planner-backend/internal/companion"
	"garden-planner-backend/internal/garden"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(raw string) garden.PlantID {
	return garden.MustPlantID(raw)
}

func names(ids []garden.PlantID) []string {
	out := make([]string, len(ids))
	for i, p := range ids {
		out[i] = p.String()
	}
	return out
}

func sampleEdges() []companion.Edge {
	return []companion.Edge{
		{From: "Tomato", To: "basil", Type: companion.EdgeHelps},
		{From: "basil", To: "tomato", Type: companion.EdgeHelps},
		{From: "tomato", To: "marigold", Type: companion.EdgeHelpedBy},
		{From: "tomato", To: "potato", Type: companion.EdgeAvoid},
		{From: "carrot", To: "onion", Type: companion.EdgeHelps},
		{From: "bad id!", To: "tomato", Type: companion.EdgeHelps},
		{From: "tomato", To: "", Type: companion.EdgeAvoid},
		{From: "tomato", To: "asparagus", Type: "required"},
	}
}

func TestNewGraph_SkipsMalformedEdges(t *testing.T) {
	_, stats := companion.NewGraph(sampleEdges())

	assert.Equal(t, companion.LoadStats{Edges: 5, Skipped: 3, Plants: 6}, stats)
}

func TestGraph_CompanionCandidatesIsSortedSymmetricUnion(t *testing.T) {
	g, _ := companion.NewGraph(sampleEdges())

	assert.Equal(t, []string{"basil", "marigold"}, names(g.CompanionCandidates(id("tomato"))))
	assert.Equal(t, []string{"carrot"}, names(g.CompanionCandidates(id("onion"))))
	assert.Empty(t, g.CompanionCandidates(id("potato")))
	assert.Empty(t, g.CompanionCandidates(id("unknown")))
}

func TestGraph_HelpedByIsStoredReversed(t *testing.T) {
	g, _ := companion.NewGraph(sampleEdges())

	assert.True(t, g.Helps(id("marigold"), id("tomato")))
	assert.False(t, g.Helps(id("tomato"), id("marigold")))
	assert.Equal(t, []string{"basil", "marigold"}, names(g.HelpedBy(id("tomato"))))
	assert.Equal(t, []string{"basil"}, names(g.HelpfulCompanions(id("tomato"))))
}

func TestGraph_ForbiddenPairsAreUnordered(t *testing.T) {
	g, _ := companion.NewGraph(sampleEdges())

	assert.True(t, g.IsForbiddenPair(id("tomato"), id("potato")))
	assert.True(t, g.IsForbiddenPair(id("potato"), id("tomato")))
	assert.False(t, g.IsForbiddenPair(id("tomato"), id("basil")))
	assert.Equal(t, []string{"potato"}, names(g.ForbiddenCompanions(id("tomato"))))
	assert.Equal(t, []string{"tomato"}, names(g.ForbiddenCompanions(id("potato"))))
}

func TestGraph_SelfIsNeverForbidden(t *testing.T) {
	g, _ := companion.NewGraph([]companion.Edge{
		{From: "mint", To: "mint", Type: companion.EdgeAvoid},
	})

	assert.False(t, g.IsForbiddenPair(id("mint"), id("mint")))
	assert.Equal(t, 0, g.CompatibilityScore(id("mint"), id("mint")))
	assert.Empty(t, g.ForbiddenCompanions(id("mint")))
}

func TestGraph_CompatibilityScore(t *testing.T) {
	g, _ := companion.NewGraph(sampleEdges())

	tests := []struct {
		a, b     string
		expected int
	}{
		{"tomato", "basil", 4},
		{"basil", "tomato", 4},
		{"tomato", "marigold", 2},
		{"marigold", "tomato", 2},
		{"tomato", "potato", garden.ForbiddenScore},
		{"tomato", "carrot", 0},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.CompatibilityScore(id(tt.a), id(tt.b)))
		})
	}
}

func TestGraph_ForbiddenWinsOverHelps(t *testing.T) {
	g, _ := companion.NewGraph([]companion.Edge{
		{From: "fennel", To: "dill", Type: companion.EdgeHelps},
		{From: "dill", To: "fennel", Type: companion.EdgeAvoid},
	})

	assert.Equal(t, garden.ForbiddenScore, g.CompatibilityScore(id("fennel"), id("dill")))
}

func TestGraph_Plants(t *testing.T) {
	g, _ := companion.NewGraph(sampleEdges())

	assert.Equal(t, []string{"basil", "carrot", "marigold", "onion", "potato", "tomato"}, names(g.Plants()))
	assert.True(t, g.Knows(id("onion")))
	assert.False(t, g.Knows(id("asparagus")))
}

func TestGraph_DrivesOptimizer(t *testing.T) {
	g, _ := companion.NewGraph(sampleEdges())
	optimizer := garden.NewCompanionListOptimizer(g)

	allocations, err := optimizer.Optimize([]garden.PlantID{id("tomato")}, mustArea(t, 4))
	require.NoError(t, err)

	assert.Equal(t, []garden.PlantAllocation{
		{PlantID: id("tomato"), Quantity: 2, Source: garden.SourceSelected},
		{PlantID: id("basil"), Quantity: 1, Source: garden.SourceCompanion},
		{PlantID: id("marigold"), Quantity: 1, Source: garden.SourceCompanion},
	}, allocations)
}

func mustArea(t *testing.T, areaM2 float64) garden.GardenArea {
	t.Helper()
	area, err := garden.NewGardenArea(areaM2)
	require.NoError(t, err)
	return area
}

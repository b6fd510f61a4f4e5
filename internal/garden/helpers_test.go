package garden_test

import (
	"sort"

	"garden-planner-backend/internal/garden"
)

type edge struct{ from, to string }

// fakeKnowledge is a map-backed CompanionKnowledge for tests.
type fakeKnowledge struct {
	helps  map[edge]bool
	avoids map[edge]bool
}

func newFakeKnowledge() *fakeKnowledge {
	return &fakeKnowledge{
		helps:  make(map[edge]bool),
		avoids: make(map[edge]bool),
	}
}

func (k *fakeKnowledge) addHelp(from, to string) *fakeKnowledge {
	k.helps[edge{from, to}] = true
	return k
}

func (k *fakeKnowledge) addAvoid(from, to string) *fakeKnowledge {
	k.avoids[edge{from, to}] = true
	return k
}

func (k *fakeKnowledge) CompanionCandidates(id garden.PlantID) []garden.PlantID {
	seen := make(map[string]bool)
	for e := range k.helps {
		if e.from == id.String() {
			seen[e.to] = true
		}
		if e.to == id.String() {
			seen[e.from] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]garden.PlantID, len(names))
	for i, name := range names {
		out[i] = garden.MustPlantID(name)
	}
	return out
}

func (k *fakeKnowledge) IsForbiddenPair(a, b garden.PlantID) bool {
	if a == b {
		return false
	}
	return k.avoids[edge{a.String(), b.String()}] || k.avoids[edge{b.String(), a.String()}]
}

func (k *fakeKnowledge) CompatibilityScore(a, b garden.PlantID) int {
	if k.IsForbiddenPair(a, b) {
		return garden.ForbiddenScore
	}
	score := 0
	if k.helps[edge{a.String(), b.String()}] {
		score += garden.HelpfulDirection
	}
	if k.helps[edge{b.String(), a.String()}] {
		score += garden.HelpfulDirection
	}
	return score
}

func ids(names ...string) []garden.PlantID {
	out := make([]garden.PlantID, len(names))
	for i, name := range names {
		out[i] = garden.MustPlantID(name)
	}
	return out
}

func mustArea(areaM2 float64) garden.GardenArea {
	area, err := garden.NewGardenArea(areaM2)
	if err != nil {
		panic(err)
	}
	return area
}

func alloc(name string, quantity int, source garden.AllocationSource) garden.PlantAllocation {
	return garden.PlantAllocation{
		PlantID:  garden.MustPlantID(name),
		Quantity: quantity,
		Source:   source,
	}
}

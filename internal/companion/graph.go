package companion

import (
	"sort"

	"garden-planner-backend/internal/garden"
)

// EdgeType is the relationship recorded by a dataset edge.
type EdgeType string

const (
	EdgeHelps    EdgeType = "helps"
	EdgeAvoid    EdgeType = "avoid"
	EdgeHelpedBy EdgeType = "helped_by"
)

// Edge is one raw dataset record. Ids are not validated until the graph is built.
type Edge struct {
	From string   `json:"from" yaml:"from"`
	To   string   `json:"to" yaml:"to"`
	Type EdgeType `json:"type" yaml:"type"`
}

// LoadStats reports how a dataset was ingested.
type LoadStats struct {
	Edges   int `json:"edges"`
	Skipped int `json:"skipped"`
	Plants  int `json:"plants"`
}

type pair struct {
	a, b garden.PlantID
}

func unorderedPair(a, b garden.PlantID) pair {
	if b.Less(a) {
		a, b = b, a
	}
	return pair{a: a, b: b}
}

type plantSet map[garden.PlantID]struct{}

func (s plantSet) add(id garden.PlantID) { s[id] = struct{}{} }

func (s plantSet) has(id garden.PlantID) bool {
	_, ok := s[id]
	return ok
}

func (s plantSet) sorted() []garden.PlantID {
	out := make([]garden.PlantID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Graph is the in-memory companion knowledge built from a dataset. It is
// immutable after NewGraph returns and safe for concurrent use.
type Graph struct {
	helpsFrom map[garden.PlantID]plantSet
	helpsTo   map[garden.PlantID]plantSet
	avoid     map[pair]struct{}
	plants    plantSet
}

var _ garden.CompanionKnowledge = (*Graph)(nil)

// NewGraph builds a graph from edges. Edges with malformed plant ids or an
// unknown type are skipped and counted.
func NewGraph(edges []Edge) (*Graph, LoadStats) {
	g := &Graph{
		helpsFrom: make(map[garden.PlantID]plantSet),
		helpsTo:   make(map[garden.PlantID]plantSet),
		avoid:     make(map[pair]struct{}),
		plants:    make(plantSet),
	}
	stats := LoadStats{}

	for _, e := range edges {
		if g.addEdge(e) {
			stats.Edges++
		} else {
			stats.Skipped++
		}
	}
	stats.Plants = len(g.plants)
	return g, stats
}

func (g *Graph) addEdge(e Edge) bool {
	from, err := garden.NewPlantID(e.From)
	if err != nil {
		return false
	}
	to, err := garden.NewPlantID(e.To)
	if err != nil {
		return false
	}

	switch e.Type {
	case EdgeHelps:
		g.addHelp(from, to)
	case EdgeHelpedBy:
		g.addHelp(to, from)
	case EdgeAvoid:
		g.avoid[unorderedPair(from, to)] = struct{}{}
	default:
		return false
	}

	g.plants.add(from)
	g.plants.add(to)
	return true
}

func (g *Graph) addHelp(from, to garden.PlantID) {
	if g.helpsFrom[from] == nil {
		g.helpsFrom[from] = make(plantSet)
	}
	if g.helpsTo[to] == nil {
		g.helpsTo[to] = make(plantSet)
	}
	g.helpsFrom[from].add(to)
	g.helpsTo[to].add(from)
}

// CompanionCandidates returns the sorted union of plants id helps and plants helping id.
func (g *Graph) CompanionCandidates(id garden.PlantID) []garden.PlantID {
	union := make(plantSet)
	for other := range g.helpsFrom[id] {
		union.add(other)
	}
	for other := range g.helpsTo[id] {
		union.add(other)
	}
	return union.sorted()
}

// IsForbiddenPair reports an avoid edge in either direction. Identical ids are
// never forbidden: more than one unit of a plant can share a bed.
func (g *Graph) IsForbiddenPair(a, b garden.PlantID) bool {
	if a == b {
		return false
	}
	_, ok := g.avoid[unorderedPair(a, b)]
	return ok
}

func (g *Graph) CompatibilityScore(a, b garden.PlantID) int {
	if g.IsForbiddenPair(a, b) {
		return garden.ForbiddenScore
	}
	score := 0
	if g.Helps(a, b) {
		score += garden.HelpfulDirection
	}
	if g.Helps(b, a) {
		score += garden.HelpfulDirection
	}
	return score
}

// Helps reports a directed helps relationship from a to b.
func (g *Graph) Helps(a, b garden.PlantID) bool {
	return g.helpsFrom[a].has(b)
}

// HelpfulCompanions lists the plants id helps.
func (g *Graph) HelpfulCompanions(id garden.PlantID) []garden.PlantID {
	return g.helpsFrom[id].sorted()
}

// HelpedBy lists the plants that help id.
func (g *Graph) HelpedBy(id garden.PlantID) []garden.PlantID {
	return g.helpsTo[id].sorted()
}

// ForbiddenCompanions lists the plants id must not be planted with.
func (g *Graph) ForbiddenCompanions(id garden.PlantID) []garden.PlantID {
	out := make(plantSet)
	for p := range g.avoid {
		switch {
		case p.a == id && p.b != id:
			out.add(p.b)
		case p.b == id && p.a != id:
			out.add(p.a)
		}
	}
	return out.sorted()
}

// Knows reports whether id appears in any accepted edge.
func (g *Graph) Knows(id garden.PlantID) bool {
	return g.plants.has(id)
}

// Plants lists every plant that appears in an accepted edge.
func (g *Graph) Plants() []garden.PlantID {
	return g.plants.sorted()
}

package garden

import (
	"sort"

	apperrors "garden-planner-backend/internal/errors"
)

const (
	selectedBaseScore     = 100
	selectedExtraSlotBias = 2
	candidateBaseScore    = 1
	companionsPerSelected = 2
)

type workingAllocation struct {
	plantID  PlantID
	source   AllocationSource
	quantity int
	score    int
}

type candidateScore struct {
	plantID PlantID
	score   int
}

// CompanionListOptimizer turns a user selection into a full allocation list
// that fills the garden capacity with compatible companions.
type CompanionListOptimizer struct {
	knowledge CompanionKnowledge
}

// NewCompanionListOptimizer creates an optimizer backed by knowledge.
func NewCompanionListOptimizer(knowledge CompanionKnowledge) *CompanionListOptimizer {
	return &CompanionListOptimizer{knowledge: knowledge}
}

// Optimize returns allocations whose quantities sum to area.PlantCapacity().
// Selected plants come first, then companions; within a source by descending
// quantity, then ascending plant id. A companion forbidden with an already
// accepted companion is passed over, so the list is not always the plain top-N.
func (o *CompanionListOptimizer) Optimize(selectedPlants []PlantID, area GardenArea) ([]PlantAllocation, error) {
	selected := deduplicate(selectedPlants)
	if len(selected) < 1 {
		return nil, apperrors.ErrInvalidPlantSelection.WithMessage("You must choose at least 1 plant")
	}

	capacity := area.PlantCapacity()
	if len(selected) > capacity {
		return nil, apperrors.ErrGardenCapacityExceeded.WithMessage(
			"Garden capacity (%d) is too small for %d selected plants", capacity, len(selected))
	}

	if err := o.ensureNoForbiddenPairs(selected); err != nil {
		return nil, err
	}

	working := make([]workingAllocation, 0, capacity)
	included := make(map[PlantID]struct{}, capacity)
	for _, plant := range selected {
		working = append(working, workingAllocation{
			plantID:  plant,
			source:   SourceSelected,
			quantity: 1,
			score:    selectedBaseScore,
		})
		included[plant] = struct{}{}
	}

	companionBudget := min(capacity-len(selected), len(selected)*companionsPerSelected)
	accepted := make([]PlantID, 0, companionBudget)
	for _, candidate := range o.rankCompanionCandidates(selected, included) {
		if len(accepted) >= companionBudget {
			break
		}
		// candidates were only checked against the selection
		if o.conflictsWithAny(candidate.plantID, accepted) {
			continue
		}
		accepted = append(accepted, candidate.plantID)
		working = append(working, workingAllocation{
			plantID:  candidate.plantID,
			source:   SourceCompanion,
			quantity: 1,
			score:    candidate.score,
		})
	}

	for remaining := capacity - len(working); remaining > 0; remaining-- {
		best := o.pickBestForExtraSlot(working)
		working[best].quantity++
	}

	sort.Slice(working, func(i, j int) bool {
		left, right := working[i], working[j]
		if left.source != right.source {
			return left.source == SourceSelected
		}
		if left.quantity != right.quantity {
			return left.quantity > right.quantity
		}
		return left.plantID.Less(right.plantID)
	})

	allocations := make([]PlantAllocation, len(working))
	for i, w := range working {
		allocations[i] = PlantAllocation{
			PlantID:  w.plantID,
			Quantity: w.quantity,
			Source:   w.source,
		}
	}
	return allocations, nil
}

// deduplicate keeps the first occurrence of each id.
func deduplicate(ids []PlantID) []PlantID {
	seen := make(map[PlantID]struct{}, len(ids))
	unique := make([]PlantID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func (o *CompanionListOptimizer) ensureNoForbiddenPairs(plants []PlantID) error {
	for i := 0; i < len(plants); i++ {
		for j := i + 1; j < len(plants); j++ {
			if o.knowledge.IsForbiddenPair(plants[i], plants[j]) {
				return apperrors.ErrIncompatibleSelectedPlants.WithMessage(
					"Selected plants are incompatible: %s and %s", plants[i], plants[j])
			}
		}
	}
	return nil
}

func (o *CompanionListOptimizer) conflictsWithAny(candidate PlantID, others []PlantID) bool {
	for _, other := range others {
		if o.knowledge.IsForbiddenPair(candidate, other) {
			return true
		}
	}
	return false
}

// rankCompanionCandidates scores every companion proposed by a selected plant
// against the whole selection. A candidate forbidden with any selected plant,
// or gaining nothing over the base score, is dropped. Repeated proposals add up.
func (o *CompanionListOptimizer) rankCompanionCandidates(selected []PlantID, included map[PlantID]struct{}) []candidateScore {
	scores := make(map[PlantID]int)

	for _, selectedPlant := range selected {
		for _, candidate := range o.knowledge.CompanionCandidates(selectedPlant) {
			if _, ok := included[candidate]; ok {
				continue
			}

			score := candidateBaseScore
			forbidden := false
			for _, target := range selected {
				compatibility := o.knowledge.CompatibilityScore(candidate, target)
				if compatibility < 0 {
					forbidden = true
					break
				}
				score += compatibility
			}
			if forbidden || score <= candidateBaseScore {
				continue
			}

			scores[candidate] += score
		}
	}

	ranked := make([]candidateScore, 0, len(scores))
	for id, score := range scores {
		ranked = append(ranked, candidateScore{plantID: id, score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].plantID.Less(ranked[j].plantID)
	})
	return ranked
}

// pickBestForExtraSlot returns the index of the entry that most improves the
// list when given one more unit. working is never empty here.
func (o *CompanionListOptimizer) pickBestForExtraSlot(working []workingAllocation) int {
	best := -1
	bestScore := 0

	for i, candidate := range working {
		score := candidate.score
		if candidate.source == SourceSelected {
			score += selectedExtraSlotBias
		}
		for j, other := range working {
			if i == j {
				continue
			}
			if compatibility := o.knowledge.CompatibilityScore(candidate.plantID, other.plantID); compatibility > 0 {
				score += compatibility
			}
		}

		if best < 0 || score > bestScore || (score == bestScore && candidate.plantID.Less(working[best].plantID)) {
			best = i
			bestScore = score
		}
	}

	return best
}

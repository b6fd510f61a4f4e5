package garden

import (
	"errors"
	"fmt"
	"math"
)

// remainingStockWeight nudges ties toward plants with more units left to place.
const remainingStockWeight = 0.01

// ErrLayoutExhausted means a cell could not be filled because no allocation had
// units left. It indicates inconsistent input, not a user error.
var ErrLayoutExhausted = errors.New("unable to place plant: no remaining allocation")

// LayoutResult is the output of LayoutPlanner.Plan.
type LayoutResult struct {
	Positions      []PositionedPlant
	GridSide       int
	CellSizeMeters float64
}

type remainingStock struct {
	plantID  PlantID
	quantity int
}

// LayoutPlanner places allocated plants on a square grid so that each cell's
// left and upper neighbors are as compatible as possible.
type LayoutPlanner struct {
	knowledge CompanionKnowledge
}

// NewLayoutPlanner creates a planner backed by knowledge.
func NewLayoutPlanner(knowledge CompanionKnowledge) *LayoutPlanner {
	return &LayoutPlanner{knowledge: knowledge}
}

// Plan fills cells in row-major order. An allocation list with no units yields
// an empty result. Allocations sharing an id are merged; non-positive
// quantities are ignored. allocations is not modified.
func (p *LayoutPlanner) Plan(allocations []PlantAllocation, area GardenArea) (*LayoutResult, error) {
	totalPlants := TotalQuantity(allocations)
	if totalPlants <= 0 {
		return &LayoutResult{Positions: []PositionedPlant{}}, nil
	}

	gridSide := int(math.Ceil(math.Sqrt(float64(totalPlants))))
	cellSizeMeters := area.SideLengthMeters() / float64(gridSide)

	stock := make([]remainingStock, 0, len(allocations))
	index := make(map[PlantID]int, len(allocations))
	for _, allocation := range allocations {
		if allocation.Quantity <= 0 {
			continue
		}
		if i, ok := index[allocation.PlantID]; ok {
			stock[i].quantity += allocation.Quantity
			continue
		}
		index[allocation.PlantID] = len(stock)
		stock = append(stock, remainingStock{plantID: allocation.PlantID, quantity: allocation.Quantity})
	}

	occupied := make([]PlantID, totalPlants)
	positions := make([]PositionedPlant, 0, totalPlants)

	for cell := 0; cell < totalPlants; cell++ {
		gridY := cell / gridSide
		gridX := cell % gridSide

		chosen, err := p.pickBestForCell(stock, placedNeighbors(cell, gridSide, occupied))
		if err != nil {
			return nil, fmt.Errorf("cell (%d,%d): %w", gridX, gridY, err)
		}

		occupied[cell] = stock[chosen].plantID
		stock[chosen].quantity--

		positions = append(positions, PositionedPlant{
			PlantID: occupied[cell],
			GridX:   gridX,
			GridY:   gridY,
			X:       (float64(gridX) + 0.5) * cellSizeMeters,
			Y:       (float64(gridY) + 0.5) * cellSizeMeters,
		})
	}

	return &LayoutResult{
		Positions:      positions,
		GridSide:       gridSide,
		CellSizeMeters: cellSizeMeters,
	}, nil
}

// placedNeighbors returns the already filled left (same row only) and upper cells.
func placedNeighbors(cell, gridSide int, occupied []PlantID) []PlantID {
	neighbors := make([]PlantID, 0, 2)
	if cell%gridSide != 0 {
		neighbors = append(neighbors, occupied[cell-1])
	}
	if up := cell - gridSide; up >= 0 {
		neighbors = append(neighbors, occupied[up])
	}
	return neighbors
}

func (p *LayoutPlanner) pickBestForCell(stock []remainingStock, neighbors []PlantID) (int, error) {
	best := -1
	bestScore := math.Inf(-1)

	for i, candidate := range stock {
		if candidate.quantity <= 0 {
			continue
		}

		score := float64(candidate.quantity) * remainingStockWeight
		for _, neighbor := range neighbors {
			score += float64(p.knowledge.CompatibilityScore(candidate.plantID, neighbor))
		}

		if best < 0 || score > bestScore || (score == bestScore && candidate.plantID.Less(stock[best].plantID)) {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		return -1, ErrLayoutExhausted
	}
	return best, nil
}

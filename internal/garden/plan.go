package garden

// AllocationSource records why a plant is part of an allocation list.
type AllocationSource string

const (
	SourceSelected  AllocationSource = "selected"
	SourceCompanion AllocationSource = "companion"
)

// PlantAllocation is how many units of a plant to grow and why it was included.
type PlantAllocation struct {
	PlantID  PlantID
	Quantity int
	Source   AllocationSource
}

// PositionedPlant is one placed unit. GridX/GridY are zero-based cell indices,
// X/Y are the cell center in meters.
type PositionedPlant struct {
	PlantID PlantID
	GridX   int
	GridY   int
	X       float64
	Y       float64
}

// TotalQuantity sums the positive quantities of allocations.
func TotalQuantity(allocations []PlantAllocation) int {
	total := 0
	for _, a := range allocations {
		if a.Quantity > 0 {
			total += a.Quantity
		}
	}
	return total
}

// PlantingPlan bundles the outcome of one planning request. It is never mutated
// after construction; accessors return copies.
type PlantingPlan struct {
	area           GardenArea
	allocations    []PlantAllocation
	positions      []PositionedPlant
	gridSide       int
	cellSizeMeters float64
}

// NewPlantingPlan builds a plan from optimizer and planner output.
func NewPlantingPlan(area GardenArea, allocations []PlantAllocation, positions []PositionedPlant, gridSide int, cellSizeMeters float64) *PlantingPlan {
	return &PlantingPlan{
		area:           area,
		allocations:    append([]PlantAllocation(nil), allocations...),
		positions:      append([]PositionedPlant(nil), positions...),
		gridSide:       gridSide,
		cellSizeMeters: cellSizeMeters,
	}
}

func (p *PlantingPlan) Area() GardenArea {
	return p.area
}

func (p *PlantingPlan) Allocations() []PlantAllocation {
	return append([]PlantAllocation(nil), p.allocations...)
}

func (p *PlantingPlan) Positions() []PositionedPlant {
	return append([]PositionedPlant(nil), p.positions...)
}

func (p *PlantingPlan) GridSide() int {
	return p.gridSide
}

func (p *PlantingPlan) CellSizeMeters() float64 {
	return p.cellSizeMeters
}

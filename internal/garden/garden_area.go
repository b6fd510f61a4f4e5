package garden

import (
	"math"

	apperrors "garden-planner-backend/internal/errors"
)

// MaxGardenAreaM2 is the largest area whose plant capacity is exactly representable.
const MaxGardenAreaM2 = float64(1 << 53)

// GardenArea is the surface of a square garden in square meters.
type GardenArea struct {
	areaM2 float64
}

// NewGardenArea validates areaM2; it must be finite, at least 1 and at most MaxGardenAreaM2.
func NewGardenArea(areaM2 float64) (GardenArea, error) {
	if math.IsNaN(areaM2) || math.IsInf(areaM2, 0) {
		return GardenArea{}, apperrors.ErrInvalidGardenArea.WithMessage("Garden area must be a finite number")
	}
	if areaM2 < 1 {
		return GardenArea{}, apperrors.ErrInvalidGardenArea.WithMessage("Garden area must be at least 1 m2")
	}
	if areaM2 > MaxGardenAreaM2 {
		return GardenArea{}, apperrors.ErrInvalidGardenArea.WithMessage("Garden area must be at most %.0f m2", MaxGardenAreaM2)
	}
	return GardenArea{areaM2: areaM2}, nil
}

// AreaM2 returns the area in square meters.
func (a GardenArea) AreaM2() float64 {
	return a.areaM2
}

// SideLengthMeters returns the side of the square garden.
func (a GardenArea) SideLengthMeters() float64 {
	return math.Sqrt(a.areaM2)
}

// PlantCapacity is one plant per whole square meter, never less than one.
func (a GardenArea) PlantCapacity() int {
	capacity := int(math.Floor(a.areaM2))
	if capacity < 1 {
		return 1
	}
	return capacity
}

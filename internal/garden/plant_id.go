package garden

import (
	"regexp"
	"strings"

	apperrors "garden-planner-backend/internal/errors"
)

// MaxPlantIDLength is the longest accepted normalized plant id.
const MaxPlantIDLength = 160

var plantIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// PlantID is a normalized plant identifier (lowercase slug).
// The zero value is not a valid id; use NewPlantID.
type PlantID struct {
	value string
}

// NewPlantID trims and lowercases raw and validates the result.
func NewPlantID(raw string) (PlantID, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	if normalized == "" {
		return PlantID{}, apperrors.ErrInvalidPlantID.WithMessage("Plant id cannot be empty")
	}
	if len(normalized) > MaxPlantIDLength {
		return PlantID{}, apperrors.ErrInvalidPlantID.WithMessage("Plant id cannot exceed %d characters", MaxPlantIDLength)
	}
	if !plantIDPattern.MatchString(normalized) {
		return PlantID{}, apperrors.ErrInvalidPlantID.WithMessage("Plant id %q has invalid characters", raw)
	}

	return PlantID{value: normalized}, nil
}

// MustPlantID is like NewPlantID but panics on invalid input.
func MustPlantID(raw string) PlantID {
	id, err := NewPlantID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// ParsePlantIDs converts raw ids in order, failing on the first invalid one.
func ParsePlantIDs(raw []string) ([]PlantID, error) {
	ids := make([]PlantID, 0, len(raw))
	for _, r := range raw {
		id, err := NewPlantID(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (p PlantID) String() string {
	return p.value
}

// IsZero reports whether p was never initialized.
func (p PlantID) IsZero() bool {
	return p.value == ""
}

// Less orders ids ascending by their normalized bytes.
func (p PlantID) Less(other PlantID) bool {
	return p.value < other.value
}

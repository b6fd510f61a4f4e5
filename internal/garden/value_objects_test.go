package garden_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	apperrors "garden-planner-backend/internal/errors"
	"garden-planner-backend/internal/garden"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlantID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain slug", raw: "tomato", want: "tomato"},
		{name: "trimmed and lowercased", raw: "  Sweet-Basil ", want: "sweet-basil"},
		{name: "underscore and digits", raw: "bean_2", want: "bean_2"},
		{name: "leading digit", raw: "1st-crop", want: "1st-crop"},
		{name: "max length", raw: strings.Repeat("a", garden.MaxPlantIDLength), want: strings.Repeat("a", garden.MaxPlantIDLength)},
		{name: "empty", raw: "", wantErr: true},
		{name: "only whitespace", raw: "   ", wantErr: true},
		{name: "too long", raw: strings.Repeat("a", garden.MaxPlantIDLength+1), wantErr: true},
		{name: "space inside", raw: "sweet basil", wantErr: true},
		{name: "leading dash", raw: "-basil", wantErr: true},
		{name: "leading underscore", raw: "_basil", wantErr: true},
		{name: "punctuation", raw: "basil!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := garden.NewPlantID(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrInvalidPlantID))
				assert.True(t, id.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.String())
		})
	}
}

func TestPlantID_ValueEquality(t *testing.T) {
	a := garden.MustPlantID("Tomato")
	b := garden.MustPlantID(" tomato ")
	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.True(t, garden.MustPlantID("basil").Less(a))
}

func TestParsePlantIDs(t *testing.T) {
	parsed, err := garden.ParsePlantIDs([]string{"Tomato", "basil"})
	require.NoError(t, err)
	assert.Equal(t, ids("tomato", "basil"), parsed)

	_, err = garden.ParsePlantIDs([]string{"tomato", "bad id"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidPlantID))
}

func TestNewGardenArea(t *testing.T) {
	t.Run("valid area derives side and capacity", func(t *testing.T) {
		area, err := garden.NewGardenArea(6.7)
		require.NoError(t, err)
		assert.Equal(t, 6.7, area.AreaM2())
		assert.InDelta(t, math.Sqrt(6.7), area.SideLengthMeters(), 1e-9)
		assert.Equal(t, 6, area.PlantCapacity())
	})

	t.Run("minimum area", func(t *testing.T) {
		area, err := garden.NewGardenArea(1)
		require.NoError(t, err)
		assert.Equal(t, 1, area.PlantCapacity())
		assert.Equal(t, 1.0, area.SideLengthMeters())
	})

	t.Run("largest representable area", func(t *testing.T) {
		area, err := garden.NewGardenArea(garden.MaxGardenAreaM2)
		require.NoError(t, err)
		assert.Equal(t, 1<<53, area.PlantCapacity())
	})

	for name, value := range map[string]float64{
		"above maximum":     1e20,
		"just above max":    math.Nextafter(garden.MaxGardenAreaM2, math.Inf(1)),
		"below one":         0.99,
		"zero":              0,
		"negative":          -4,
		"NaN":               math.NaN(),
		"positive infinity": math.Inf(1),
		"negative infinity": math.Inf(-1),
	} {
		t.Run("rejects "+name, func(t *testing.T) {
			_, err := garden.NewGardenArea(value)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidGardenArea))
		})
	}
}

func TestPlantingPlan_ExposesInputsUnchanged(t *testing.T) {
	area := mustArea(5)
	allocations := []garden.PlantAllocation{
		alloc("tomato", 3, garden.SourceSelected),
		alloc("basil", 2, garden.SourceCompanion),
	}
	positions := []garden.PositionedPlant{
		{PlantID: garden.MustPlantID("tomato"), GridX: 0, GridY: 0, X: 0.37, Y: 0.37},
		{PlantID: garden.MustPlantID("basil"), GridX: 1, GridY: 0, X: 1.11, Y: 0.37},
	}

	plan := garden.NewPlantingPlan(area, allocations, positions, 3, math.Sqrt(5)/3)

	assert.Equal(t, area, plan.Area())
	assert.Equal(t, allocations, plan.Allocations())
	assert.Equal(t, positions, plan.Positions())
	assert.Equal(t, 3, plan.GridSide())
	assert.InDelta(t, math.Sqrt(5)/3, plan.CellSizeMeters(), 1e-12)

	got := plan.Allocations()
	got[0].Quantity = 99
	assert.Equal(t, 3, plan.Allocations()[0].Quantity)

	allocations[1].Quantity = 42
	assert.Equal(t, 2, plan.Allocations()[1].Quantity)
}

func TestTotalQuantity(t *testing.T) {
	assert.Equal(t, 0, garden.TotalQuantity(nil))
	assert.Equal(t, 5, garden.TotalQuantity([]garden.PlantAllocation{
		alloc("tomato", 3, garden.SourceSelected),
		alloc("basil", 2, garden.SourceCompanion),
		alloc("carrot", -1, garden.SourceSelected),
	}))
}

package service

import (
	"context"
	"fmt"

	"garden-planner-backend/internal/companion"
	apperrors "garden-planner-backend/internal/errors"
	"garden-planner-backend/internal/garden"
	"garden-planner-backend/internal/logger"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultMaxSelectedPlants bounds a single planning request
	DefaultMaxSelectedPlants = 200
	// DefaultMaxAreaM2 bounds the garden area, and with it the plan size, of a single request
	DefaultMaxAreaM2 = 10000.0
)

// PlanningService runs the companion list optimizer and layout planner
// against one snapshot of the companion dataset per request
type PlanningService struct {
	store       KnowledgeStore
	validator   *validator.Validate
	maxSelected int
	maxAreaM2   float64
}

// Ensure PlanningService implements PlanningServiceInterface
var _ PlanningServiceInterface = (*PlanningService)(nil)

// NewPlanningService creates a new PlanningService
// Non-positive limits fall back to the defaults.
func NewPlanningService(store KnowledgeStore, validator *validator.Validate, maxSelected int, maxAreaM2 float64) *PlanningService {
	if maxSelected <= 0 {
		maxSelected = DefaultMaxSelectedPlants
	}
	if maxAreaM2 <= 0 {
		maxAreaM2 = DefaultMaxAreaM2
	}
	return &PlanningService{
		store:       store,
		validator:   validator,
		maxSelected: maxSelected,
		maxAreaM2:   maxAreaM2,
	}
}

// CompanionListRequest represents the request body for planning endpoints
type CompanionListRequest struct {
	SelectedPlantIDs []string `json:"selectedPlantIds" example:"tomato,carrot"`
	AreaM2           float64  `json:"areaM2" example:"6"`
}

// GardenPlanRequest carries the same fields as CompanionListRequest
type GardenPlanRequest = CompanionListRequest

// AllocationResponse is one planned plant with its quantity
type AllocationResponse struct {
	PlantID  string `json:"plantId"`
	Quantity int    `json:"quantity"`
	Source   string `json:"source" enums:"selected,companion"`
}

// PositionResponse is one plant placed on the grid
type PositionResponse struct {
	PlantID string  `json:"plantId"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	GridX   int     `json:"gridX"`
	GridY   int     `json:"gridY"`
}

// CompanionListResponse represents a complete planting list
type CompanionListResponse struct {
	AreaM2           float64              `json:"areaM2"`
	SideLengthMeters float64              `json:"sideLengthMeters"`
	Capacity         int                  `json:"capacity"`
	Allocations      []AllocationResponse `json:"allocations"`
}

// GardenPlanResponse extends the planting list with grid positions
type GardenPlanResponse struct {
	CompanionListResponse
	GridSide       int                `json:"gridSide"`
	CellSizeMeters float64            `json:"cellSizeMeters"`
	Positions      []PositionResponse `json:"positions"`
}

// GenerateCompanionList fills the garden capacity with the selection and its companions
func (s *PlanningService) GenerateCompanionList(ctx context.Context, req *CompanionListRequest) (*CompanionListResponse, error) {
	log := logger.WithContext(ctx)

	graph, selected, area, err := s.prepare(req)
	if err != nil {
		log.WithError(err).Warn("companion list request rejected")
		return nil, err
	}

	allocations, err := garden.NewCompanionListOptimizer(graph).Optimize(selected, area)
	if err != nil {
		log.WithError(err).Warn("companion list request rejected")
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"selected":    len(selected),
		"allocations": len(allocations),
		"capacity":    area.PlantCapacity(),
	}).Debug("companion list generated")

	resp := toCompanionListResponse(area, allocations)
	return &resp, nil
}

// GenerateGardenPlan builds the planting list and lays it out on a square grid
func (s *PlanningService) GenerateGardenPlan(ctx context.Context, req *GardenPlanRequest) (*GardenPlanResponse, error) {
	log := logger.WithContext(ctx)

	graph, selected, area, err := s.prepare(req)
	if err != nil {
		log.WithError(err).Warn("garden plan request rejected")
		return nil, err
	}

	allocations, err := garden.NewCompanionListOptimizer(graph).Optimize(selected, area)
	if err != nil {
		log.WithError(err).Warn("garden plan request rejected")
		return nil, err
	}

	layout, err := garden.NewLayoutPlanner(graph).Plan(allocations, area)
	if err != nil {
		return nil, fmt.Errorf("failed to lay out garden: %w", err)
	}
	plan := garden.NewPlantingPlan(area, allocations, layout.Positions, layout.GridSide, layout.CellSizeMeters)

	log.WithFields(map[string]interface{}{
		"positions": len(layout.Positions),
		"grid_side": layout.GridSide,
	}).Debug("garden plan generated")

	return toGardenPlanResponse(plan), nil
}

// prepare validates the request and takes the snapshot both algorithms share
func (s *PlanningService) prepare(req *CompanionListRequest) (*companion.Graph, []garden.PlantID, garden.GardenArea, error) {
	if req == nil {
		return nil, nil, garden.GardenArea{}, &apperrors.ValidationError{Message: "request body is required"}
	}
	if err := s.validator.Var(req.SelectedPlantIDs, fmt.Sprintf("max=%d", s.maxSelected)); err != nil {
		return nil, nil, garden.GardenArea{}, &apperrors.ValidationError{
			Field:   "selectedPlantIds",
			Message: fmt.Sprintf("at most %d plants can be selected", s.maxSelected),
		}
	}

	if req.AreaM2 > s.maxAreaM2 {
		return nil, nil, garden.GardenArea{}, &apperrors.ValidationError{
			Field:   "areaM2",
			Message: fmt.Sprintf("garden area can be at most %g m2", s.maxAreaM2),
		}
	}

	area, err := garden.NewGardenArea(req.AreaM2)
	if err != nil {
		return nil, nil, garden.GardenArea{}, err
	}
	selected, err := garden.ParsePlantIDs(req.SelectedPlantIDs)
	if err != nil {
		return nil, nil, garden.GardenArea{}, err
	}

	graph, err := s.store.Snapshot()
	if err != nil {
		return nil, nil, garden.GardenArea{}, fmt.Errorf("failed to get companion dataset: %w", err)
	}
	return graph, selected, area, nil
}

func toCompanionListResponse(area garden.GardenArea, allocations []garden.PlantAllocation) CompanionListResponse {
	items := make([]AllocationResponse, len(allocations))
	for i, a := range allocations {
		items[i] = AllocationResponse{
			PlantID:  a.PlantID.String(),
			Quantity: a.Quantity,
			Source:   string(a.Source),
		}
	}
	return CompanionListResponse{
		AreaM2:           area.AreaM2(),
		SideLengthMeters: area.SideLengthMeters(),
		Capacity:         area.PlantCapacity(),
		Allocations:      items,
	}
}

func toGardenPlanResponse(plan *garden.PlantingPlan) *GardenPlanResponse {
	positions := make([]PositionResponse, 0, len(plan.Positions()))
	for _, p := range plan.Positions() {
		positions = append(positions, PositionResponse{
			PlantID: p.PlantID.String(),
			X:       p.X,
			Y:       p.Y,
			GridX:   p.GridX,
			GridY:   p.GridY,
		})
	}
	return &GardenPlanResponse{
		CompanionListResponse: toCompanionListResponse(plan.Area(), plan.Allocations()),
		GridSide:              plan.GridSide(),
		CellSizeMeters:        plan.CellSizeMeters(),
		Positions:             positions,
	}
}

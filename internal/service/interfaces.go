package service

import (
	"context"

	"garden-planner-backend/internal/companion"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// KnowledgeStore defines the companion dataset operations services rely on
type KnowledgeStore interface {
	Snapshot() (*companion.Graph, error)
	Reload(ctx context.Context) (companion.LoadStats, error)
	Status() companion.StoreStatus
}

// PlanningServiceInterface defines the interface for garden planning
type PlanningServiceInterface interface {
	GenerateCompanionList(ctx context.Context, req *CompanionListRequest) (*CompanionListResponse, error)
	GenerateGardenPlan(ctx context.Context, req *GardenPlanRequest) (*GardenPlanResponse, error)
}

// CompanionServiceInterface defines the interface for companion dataset queries
type CompanionServiceInterface interface {
	ListPlants(ctx context.Context) (*PlantListResponse, error)
	GetPlantCompanions(ctx context.Context, plantID string) (*PlantCompanionsResponse, error)
	CheckCompatibility(ctx context.Context, a, b string) (*CompatibilityResponse, error)
	ReloadDataset(ctx context.Context) (*DatasetStatusResponse, error)
	DatasetStatus() *DatasetStatusResponse
}

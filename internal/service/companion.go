package service

import (
	"context"
	"fmt"
	"time"

	apperrors "garden-planner-backend/internal/errors"
	"garden-planner-backend/internal/garden"
	"garden-planner-backend/internal/logger"
)

// CompanionService answers questions about the loaded companion dataset
type CompanionService struct {
	store KnowledgeStore
}

// Ensure CompanionService implements CompanionServiceInterface
var _ CompanionServiceInterface = (*CompanionService)(nil)

// NewCompanionService creates a new CompanionService
func NewCompanionService(store KnowledgeStore) *CompanionService {
	return &CompanionService{store: store}
}

// PlantListResponse lists every plant present in the dataset
type PlantListResponse struct {
	Plants []string `json:"plants"`
	Total  int      `json:"total"`
}

// PlantCompanionsResponse describes the relationships of one plant
type PlantCompanionsResponse struct {
	PlantID   string   `json:"plantId"`
	Helps     []string `json:"helps"`
	HelpedBy  []string `json:"helpedBy"`
	Forbidden []string `json:"forbidden"`
}

// CompatibilityResponse reports how well two plants go together
type CompatibilityResponse struct {
	A         string `json:"a"`
	B         string `json:"b"`
	Forbidden bool   `json:"forbidden"`
	Score     int    `json:"score"`
}

// DatasetStatusResponse describes the loaded dataset
type DatasetStatusResponse struct {
	Source   string     `json:"source"`
	Loaded   bool       `json:"loaded"`
	LoadedAt *time.Time `json:"loadedAt,omitempty"`
	Edges    int        `json:"edges"`
	Skipped  int        `json:"skipped"`
	Plants   int        `json:"plants"`
}

// ListPlants returns the sorted plant ids known to the dataset
func (s *CompanionService) ListPlants(ctx context.Context) (*PlantListResponse, error) {
	graph, err := s.store.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to get companion dataset: %w", err)
	}

	plants := toStrings(graph.Plants())
	return &PlantListResponse{Plants: plants, Total: len(plants)}, nil
}

// GetPlantCompanions returns the helps, helped-by and forbidden lists of a plant
func (s *CompanionService) GetPlantCompanions(ctx context.Context, plantID string) (*PlantCompanionsResponse, error) {
	id, err := garden.NewPlantID(plantID)
	if err != nil {
		return nil, err
	}

	graph, err := s.store.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to get companion dataset: %w", err)
	}
	if !graph.Knows(id) {
		return nil, apperrors.ErrPlantNotFound
	}

	return &PlantCompanionsResponse{
		PlantID:   id.String(),
		Helps:     toStrings(graph.HelpfulCompanions(id)),
		HelpedBy:  toStrings(graph.HelpedBy(id)),
		Forbidden: toStrings(graph.ForbiddenCompanions(id)),
	}, nil
}

// CheckCompatibility scores a pair of plants. Unknown plants score 0.
func (s *CompanionService) CheckCompatibility(ctx context.Context, a, b string) (*CompatibilityResponse, error) {
	ids, err := garden.ParsePlantIDs([]string{a, b})
	if err != nil {
		return nil, err
	}

	graph, err := s.store.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to get companion dataset: %w", err)
	}

	return &CompatibilityResponse{
		A:         ids[0].String(),
		B:         ids[1].String(),
		Forbidden: graph.IsForbiddenPair(ids[0], ids[1]),
		Score:     graph.CompatibilityScore(ids[0], ids[1]),
	}, nil
}

// ReloadDataset re-reads the configured source and swaps the dataset
func (s *CompanionService) ReloadDataset(ctx context.Context) (*DatasetStatusResponse, error) {
	log := logger.WithContext(ctx)

	stats, err := s.store.Reload(ctx)
	if err != nil {
		log.WithError(err).Error("dataset reload failed")
		return nil, fmt.Errorf("failed to reload companion dataset: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"edges":   stats.Edges,
		"skipped": stats.Skipped,
		"plants":  stats.Plants,
	}).Info("dataset reloaded")
	return s.DatasetStatus(), nil
}

// DatasetStatus reports what is currently loaded
func (s *CompanionService) DatasetStatus() *DatasetStatusResponse {
	status := s.store.Status()
	resp := &DatasetStatusResponse{
		Source:  status.Source,
		Loaded:  status.Loaded,
		Edges:   status.Stats.Edges,
		Skipped: status.Stats.Skipped,
		Plants:  status.Stats.Plants,
	}
	if !status.LoadedAt.IsZero() {
		loadedAt := status.LoadedAt
		resp.LoadedAt = &loadedAt
	}
	return resp
}

func toStrings(ids []garden.PlantID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

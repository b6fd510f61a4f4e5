package cli

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"garden-planner-backend/internal/companion"
	"garden-planner-backend/internal/service"
)

// planningFlags are shared by list and layout.
var (
	plantsFlag string
	areaFlag   float64
)

func loadStore(ctx context.Context) (*companion.Store, error) {
	store := companion.NewStore(companion.FileSource{Path: datasetPath})
	if _, err := store.Reload(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func newPlanningService(ctx context.Context) (*service.PlanningService, error) {
	store, err := loadStore(ctx)
	if err != nil {
		return nil, err
	}
	return service.NewPlanningService(store, validator.New(), service.DefaultMaxSelectedPlants, service.DefaultMaxAreaM2), nil
}

func newCompanionService(ctx context.Context) (*service.CompanionService, error) {
	store, err := loadStore(ctx)
	if err != nil {
		return nil, err
	}
	return service.NewCompanionService(store), nil
}

// planningRequest builds a request from --plants and --area. Blank list items are ignored.
func planningRequest() *service.CompanionListRequest {
	var ids []string
	for _, raw := range strings.Split(plantsFlag, ",") {
		if id := strings.TrimSpace(raw); id != "" {
			ids = append(ids, id)
		}
	}
	return &service.CompanionListRequest{SelectedPlantIDs: ids, AreaM2: areaFlag}
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package testutils

import (
	"time"

	"garden-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// CompanionEdgeFactory provides methods to create test CompanionEdge data
type CompanionEdgeFactory struct{}

// NewCompanionEdgeFactory creates a new CompanionEdgeFactory
func NewCompanionEdgeFactory() *CompanionEdgeFactory {
	return &CompanionEdgeFactory{}
}

// Create creates a test CompanionEdge with default values
func (f *CompanionEdgeFactory) Create() *models.CompanionEdge {
	return &models.CompanionEdge{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FromPlant: "basil",
		ToPlant:   "tomato",
		Type:      "helps",
	}
}

// Helps creates a helps edge from one plant to another
func (f *CompanionEdgeFactory) Helps(from, to string) models.CompanionEdge {
	return f.with(from, to, "helps")
}

// HelpedBy creates a helped_by edge
func (f *CompanionEdgeFactory) HelpedBy(from, to string) models.CompanionEdge {
	return f.with(from, to, "helped_by")
}

// Avoid creates an avoid edge
func (f *CompanionEdgeFactory) Avoid(from, to string) models.CompanionEdge {
	return f.with(from, to, "avoid")
}

func (f *CompanionEdgeFactory) with(from, to, edgeType string) models.CompanionEdge {
	edge := f.Create()
	edge.FromPlant = from
	edge.ToPlant = to
	edge.Type = edgeType
	return *edge
}

// FactorySet provides access to all factories
type FactorySet struct {
	CompanionEdge *CompanionEdgeFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		CompanionEdge: NewCompanionEdgeFactory(),
	}
}

// TomatoBed returns a small dataset around tomato used across tests
func (fs *FactorySet) TomatoBed() []models.CompanionEdge {
	return []models.CompanionEdge{
		fs.CompanionEdge.Helps("basil", "tomato"),
		fs.CompanionEdge.Helps("tomato", "basil"),
		fs.CompanionEdge.HelpedBy("tomato", "marigold"),
		fs.CompanionEdge.Avoid("tomato", "potato"),
	}
}

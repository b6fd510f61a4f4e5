package repository

import (
	"garden-planner-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompanionEdgeRepositoryInterface defines the interface for companion edge repository operations
type CompanionEdgeRepositoryInterface interface {
	GetAll() ([]models.CompanionEdge, error)
	Count() (int64, error)
	CreateBatch(edges []models.CompanionEdge) error
	DeleteAll() error
	ReplaceAll(edges []models.CompanionEdge) error
}

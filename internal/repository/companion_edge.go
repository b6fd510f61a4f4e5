package repository

import (
	"garden-planner-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const edgeBatchSize = 500

// CompanionEdgeRepository handles database operations for companion edges
type CompanionEdgeRepository struct {
	db *gorm.DB
}

// Ensure CompanionEdgeRepository implements CompanionEdgeRepositoryInterface
var _ CompanionEdgeRepositoryInterface = (*CompanionEdgeRepository)(nil)

// NewCompanionEdgeRepository creates a new companion edge repository
func NewCompanionEdgeRepository(db *gorm.DB) *CompanionEdgeRepository {
	return &CompanionEdgeRepository{db: db}
}

// GetAll retrieves every edge in a stable order
func (r *CompanionEdgeRepository) GetAll() ([]models.CompanionEdge, error) {
	var edges []models.CompanionEdge
	if err := r.db.Order("from_plant ASC, to_plant ASC, type ASC").Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}

// Count returns the number of stored edges
func (r *CompanionEdgeRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.CompanionEdge{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// CreateBatch inserts edges, ignoring ones that already exist
func (r *CompanionEdgeRepository) CreateBatch(edges []models.CompanionEdge) error {
	return createBatch(r.db, edges)
}

// DeleteAll removes every edge
func (r *CompanionEdgeRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CompanionEdge{}).Error
}

// ReplaceAll swaps the stored dataset for edges in one transaction
func (r *CompanionEdgeRepository) ReplaceAll(edges []models.CompanionEdge) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CompanionEdge{}).Error; err != nil {
			return err
		}
		return createBatch(tx, edges)
	})
}

func createBatch(db *gorm.DB, edges []models.CompanionEdge) error {
	if len(edges) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&edges, edgeBatchSize).Error
}

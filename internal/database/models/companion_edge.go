package models

// CompanionEdge is one stored companion dataset record. Plant ids are kept as
// loaded; they are normalized when the knowledge graph is built.
type CompanionEdge struct {
	BaseModel
	FromPlant string `json:"from_plant" gorm:"size:160;not null;uniqueIndex:idx_companion_edge" validate:"required,max=160"`
	ToPlant   string `json:"to_plant" gorm:"size:160;not null;uniqueIndex:idx_companion_edge" validate:"required,max=160"`
	Type      string `json:"type" gorm:"size:20;not null;uniqueIndex:idx_companion_edge" validate:"required,oneof=helps avoid helped_by"`
}

// TableName returns the table name for CompanionEdge
func (CompanionEdge) TableName() string {
	return "companion_edges"
}

package models

import (
	"time"
)

// BaseModel provides common fields for all models with auto-increment primary keys
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the primary key
func (b BaseModel) GetID() uint {
	return b.ID
}

// All returns every model in dependency order for migrations
func All() []interface{} {
	return []interface{}{
		&ClientType{},
		&Client{},
		&ServiceCategory{},
		&Service{},
		&ServiceRequirement{},
		&Proposal{},
		&ProposalService{},
		&Project{},
		&ProjectService{},
	}
}

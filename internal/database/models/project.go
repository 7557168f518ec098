package models

import (
	"time"
)

// Project is an executable engagement, created directly or converted from an accepted proposal
type Project struct {
	BaseModel
	Name             string        `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description      string        `json:"description" gorm:"type:text"`
	ClientID         uint          `json:"client_id" gorm:"not null;index" validate:"required"`
	ProposalID       *uint         `json:"proposal_id" gorm:"index"`
	Status           ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'not_started';index"`
	StartDate        time.Time     `json:"start_date" gorm:"not null"`
	EstimatedEndDate time.Time     `json:"estimated_end_date" gorm:"not null"`
	ActualEndDate    *time.Time    `json:"actual_end_date"`
	Budget           float64       `json:"budget" gorm:"type:decimal(15,2);not null;default:0" validate:"gte=0"`
	CreatedBy        string        `json:"created_by" gorm:"size:40" validate:"max=40"`

	// Relationships
	Client    *Client          `json:"client,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
	Proposal  *Proposal        `json:"proposal,omitempty" gorm:"foreignKey:ProposalID;constraint:OnDelete:RESTRICT"`
	LineItems []ProjectService `json:"line_items,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// ProjectService is a line item of a project with its own completion status
type ProjectService struct {
	BaseModel
	ProjectID        uint             `json:"project_id" gorm:"not null;index" validate:"required"`
	ServiceID        uint             `json:"service_id" gorm:"not null;index" validate:"required"`
	Price            float64          `json:"price" gorm:"type:decimal(15,2);not null" validate:"gte=0"`
	Quantity         int              `json:"quantity" gorm:"not null;default:1" validate:"gte=1"`
	Position         int              `json:"position" gorm:"not null;default:0"`
	CompletionStatus CompletionStatus `json:"completion_status" gorm:"type:varchar(20);not null;default:'pending'"`
	Notes            string           `json:"notes" gorm:"type:text"`

	// Relationships
	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for ProjectService
func (ProjectService) TableName() string {
	return "project_services"
}

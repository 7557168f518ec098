package models

// ServiceCategory groups services in the catalog; lower priority numbers sort first
type ServiceCategory struct {
	BaseModel
	Name           string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	PriorityNumber int    `json:"priority_number" gorm:"not null;default:0" validate:"gte=0"`
}

// TableName returns the table name for ServiceCategory
func (ServiceCategory) TableName() string {
	return "service_categories"
}

// Service is a sellable catalog entry with a list price
type Service struct {
	BaseModel
	Name         string  `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description  string  `json:"description" gorm:"type:text"`
	CategoryID   uint    `json:"category_id" gorm:"not null;index" validate:"required"`
	Price        float64 `json:"price" gorm:"type:decimal(15,2);not null;default:0" validate:"gte=0"`
	TimelineDays int     `json:"timeline_days" gorm:"not null;default:0" validate:"gte=0"`

	// Relationships
	Category     *ServiceCategory     `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Requirements []ServiceRequirement `json:"requirements,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Service
func (Service) TableName() string {
	return "services"
}

// ServiceRequirement is a deliverable or prerequisite owned by a single service
type ServiceRequirement struct {
	BaseModel
	ServiceID uint   `json:"service_id" gorm:"not null;index" validate:"required"`
	Text      string `json:"text" gorm:"type:text;not null" validate:"required"`
}

// TableName returns the table name for ServiceRequirement
func (ServiceRequirement) TableName() string {
	return "service_requirements"
}

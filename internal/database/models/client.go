package models

// ClientType classifies clients (agency, retail, enterprise...)
type ClientType struct {
	BaseModel
	Name   string       `json:"name" gorm:"not null;size:100;uniqueIndex:idx_client_types_active_name,where:status = 'active'" validate:"required,min=1,max=100"`
	Status RecordStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'" validate:"omitempty,oneof=active inactive"`
}

// TableName returns the table name for ClientType
func (ClientType) TableName() string {
	return "client_types"
}

// Client represents a customer that receives proposals and projects
type Client struct {
	BaseModel
	Name         string       `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Company      string       `json:"company" gorm:"size:200" validate:"max=200"`
	Address      string       `json:"address" gorm:"type:text"`
	Email        string       `json:"email" gorm:"size:254;index" validate:"omitempty,email,max=254"`
	ClientTypeID uint         `json:"client_type_id" gorm:"not null;index" validate:"required"`
	Status       RecordStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'" validate:"omitempty,oneof=active inactive"`

	// Relationships
	ClientType *ClientType `json:"client_type,omitempty" gorm:"foreignKey:ClientTypeID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Client
func (Client) TableName() string {
	return "clients"
}

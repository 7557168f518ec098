package models

// Proposal is a quoted set of services for a client
type Proposal struct {
	BaseModel
	ClientID  uint           `json:"client_id" gorm:"not null;index" validate:"required"`
	Title     string         `json:"title" gorm:"size:200" validate:"max=200"`
	Notes     string         `json:"notes" gorm:"type:text"`
	Status    ProposalStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	CreatedBy string         `json:"created_by" gorm:"size:40" validate:"max=40"`

	// Relationships
	Client    *Client           `json:"client,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
	LineItems []ProposalService `json:"line_items,omitempty" gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Proposal
func (Proposal) TableName() string {
	return "proposals"
}

// IsConverted reports whether the proposal has been turned into a project
func (p *Proposal) IsConverted() bool {
	return p.Status == ProposalStatusConverted
}

// ProposalService is a priced line item of a proposal. Price and quantity are a snapshot
// and do not follow later changes to the catalog price.
type ProposalService struct {
	BaseModel
	ProposalID uint    `json:"proposal_id" gorm:"not null;index" validate:"required"`
	ServiceID  uint    `json:"service_id" gorm:"not null;index" validate:"required"`
	Price      float64 `json:"price" gorm:"type:decimal(15,2);not null" validate:"gte=0"`
	Quantity   int     `json:"quantity" gorm:"not null;default:1" validate:"gte=1"`
	Position   int     `json:"position" gorm:"not null;default:0"`
	Notes      string  `json:"notes" gorm:"type:text"`

	// Relationships
	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for ProposalService
func (ProposalService) TableName() string {
	return "proposal_services"
}

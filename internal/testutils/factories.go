package testutils

import (
	"fmt"
	"testing"
	"time"

	"business-manager-backend/internal/database/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ClientTypeFactory provides methods to create test ClientType data
type ClientTypeFactory struct{}

// Create creates a test ClientType with default values
func (f *ClientTypeFactory) Create() *models.ClientType {
	return &models.ClientType{
		Name:   "Enterprise",
		Status: models.RecordStatusActive,
	}
}

// ClientFactory provides methods to create test Client data
type ClientFactory struct{}

// Create creates a test Client with default values
func (f *ClientFactory) Create(clientTypeID uint) *models.Client {
	return &models.Client{
		Name:         "Jane Roe",
		Company:      "Roe Consulting",
		Address:      "1 Market Street",
		Email:        "jane@roe.example",
		ClientTypeID: clientTypeID,
		Status:       models.RecordStatusActive,
	}
}

// WithName sets a custom name for the client
func (f *ClientFactory) WithName(clientTypeID uint, name string) *models.Client {
	c := f.Create(clientTypeID)
	c.Name = name
	return c
}

// ServiceFactory provides methods to create test catalog data
type ServiceFactory struct{}

// Category creates a test ServiceCategory
func (f *ServiceFactory) Category() *models.ServiceCategory {
	return &models.ServiceCategory{Name: "Web", PriorityNumber: 1}
}

// Create creates a test Service with the given price and timeline
func (f *ServiceFactory) Create(categoryID uint, name string, price float64, timelineDays int) *models.Service {
	return &models.Service{
		Name:         name,
		Description:  name + " service",
		CategoryID:   categoryID,
		Price:        price,
		TimelineDays: timelineDays,
	}
}

// ProposalFactory provides methods to create test Proposal data
type ProposalFactory struct{}

// Create creates a draft proposal with the given line items
func (f *ProposalFactory) Create(clientID uint, items ...models.ProposalService) *models.Proposal {
	return &models.Proposal{
		ClientID:  clientID,
		Title:     "Website relaunch",
		Status:    models.ProposalStatusDraft,
		CreatedBy: "tester",
		LineItems: items,
	}
}

// Item creates a proposal line item
func (f *ProposalFactory) Item(serviceID uint, price float64, quantity int) models.ProposalService {
	return models.ProposalService{ServiceID: serviceID, Price: price, Quantity: quantity}
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// Create creates a not started project with the given line items
func (f *ProjectFactory) Create(clientID uint, items ...models.ProjectService) *models.Project {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &models.Project{
		Name:             "Website relaunch",
		ClientID:         clientID,
		Status:           models.ProjectStatusNotStarted,
		StartDate:        start,
		EstimatedEndDate: start.AddDate(0, 0, 30),
		CreatedBy:        "tester",
		LineItems:        items,
	}
}

// Item creates a pending project line item
func (f *ProjectFactory) Item(serviceID uint, price float64, quantity int) models.ProjectService {
	return models.ProjectService{
		ServiceID:        serviceID,
		Price:            price,
		Quantity:         quantity,
		CompletionStatus: models.CompletionStatusPending,
	}
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	ClientType *ClientTypeFactory
	Client     *ClientFactory
	Service    *ServiceFactory
	Proposal   *ProposalFactory
	Project    *ProjectFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		ClientType: &ClientTypeFactory{},
		Client:     &ClientFactory{},
		Service:    &ServiceFactory{},
		Proposal:   &ProposalFactory{},
		Project:    &ProjectFactory{},
	}
}

// Catalog is the persisted reference data most engine tests start from
type Catalog struct {
	ClientType *models.ClientType
	Client     *models.Client
	Category   *models.ServiceCategory
	Services   []*models.Service
}

// SeedCatalog persists a client type, a client, a category and two services
// priced 1000 (14 days) and 500 (30 days).
func SeedCatalog(t *testing.T, db *gorm.DB) *Catalog {
	t.Helper()
	f := NewFactorySet()

	c := &Catalog{ClientType: f.ClientType.Create(), Category: f.Service.Category()}
	require.NoError(t, db.Create(c.ClientType).Error)
	c.Client = f.Client.Create(c.ClientType.ID)
	require.NoError(t, db.Create(c.Client).Error)
	require.NoError(t, db.Create(c.Category).Error)

	for i, def := range []struct {
		price float64
		days  int
	}{{1000, 14}, {500, 30}} {
		s := f.Service.Create(c.Category.ID, fmt.Sprintf("Service %d", i+1), def.price, def.days)
		require.NoError(t, db.Create(s).Error)
		c.Services = append(c.Services, s)
	}
	return c
}

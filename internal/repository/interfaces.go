package repository

import (
	"context"

	"business-manager-backend/internal/database/models"
	"business-manager-backend/internal/schema"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// GatewayRepositoryInterface defines the interface for registry-driven row access
type GatewayRepositoryInterface interface {
	Find(ctx context.Context, entity *schema.Entity, params FindParams) (interface{}, error)
	Count(ctx context.Context, entity *schema.Entity, search *SearchFilter) (int64, error)
	FindByPK(ctx context.Context, entity *schema.Entity, pk uint) (interface{}, error)
	Insert(ctx context.Context, entity *schema.Entity, record interface{}, ownerPK uint) error
	UpdateByPK(ctx context.Context, entity *schema.Entity, pk uint, fields map[string]interface{}) (int64, error)
	DeleteByPK(ctx context.Context, entity *schema.Entity, pk uint) (int64, error)
}

// CatalogRepositoryInterface defines the interface for client and service lookups
type CatalogRepositoryInterface interface {
	GetClientByID(ctx context.Context, id uint) (*models.Client, error)
	GetServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error)
}

// ProposalRepositoryInterface defines the interface for proposal repository operations
type ProposalRepositoryInterface interface {
	Create(ctx context.Context, proposal *models.Proposal) error
	GetByID(ctx context.Context, id uint) (*models.Proposal, error)
	Delete(ctx context.Context, id uint) (int64, error)
	UpdateStatus(ctx context.Context, id uint, from, to models.ProposalStatus) (int64, error)
	GetLineItem(ctx context.Context, id uint) (*models.ProposalService, error)
	AddLineItem(ctx context.Context, item *models.ProposalService) error
	UpdateLineItem(ctx context.Context, item *models.ProposalService) error
	DeleteLineItem(ctx context.Context, proposalID, id uint) error
	ConvertToProject(ctx context.Context, proposalID uint, project *models.Project) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uint) (int64, error)
	GetLineItem(ctx context.Context, id uint) (*models.ProjectService, error)
	AddLineItem(ctx context.Context, item *models.ProjectService) error
	DeleteLineItem(ctx context.Context, id uint) error
	SetLineItemStatus(ctx context.Context, id uint, status models.CompletionStatus) (int64, error)
}

var (
	_ GatewayRepositoryInterface  = (*GatewayRepository)(nil)
	_ CatalogRepositoryInterface  = (*CatalogRepository)(nil)
	_ ProposalRepositoryInterface = (*ProposalRepository)(nil)
	_ ProjectRepositoryInterface  = (*ProjectRepository)(nil)
)

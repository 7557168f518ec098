package service

import (
	"context"

	"business-manager-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GatewayServiceInterface defines the interface for registry-driven table access
type GatewayServiceInterface interface {
	Query(ctx context.Context, req *QueryRequest) (*QueryResponse, error)
	Count(ctx context.Context, req *CountRequest) (*CountResponse, error)
	Create(ctx context.Context, req *CreateRequest) (interface{}, error)
	Update(ctx context.Context, req *UpdateRequest) (*UpdateResponse, error)
	Delete(ctx context.Context, req *DeleteRequest) (*DeleteResponse, error)
}

// ProposalServiceInterface defines the interface for proposal service
type ProposalServiceInterface interface {
	CreateProposal(ctx context.Context, req *CreateProposalRequest, actorID string) (*ProposalResponse, error)
	GetProposal(ctx context.Context, id uint) (*ProposalResponse, error)
	DeleteProposal(ctx context.Context, id uint) error
	UpdateProposalStatus(ctx context.Context, id uint, status string) (*ProposalResponse, error)
	CalculateProposalTotal(ctx context.Context, id uint) (float64, error)
	AddLineItem(ctx context.Context, proposalID uint, req *LineItemRequest) (*ProposalResponse, error)
	UpdateLineItem(ctx context.Context, proposalID, itemID uint, req *UpdateLineItemRequest) (*ProposalResponse, error)
	RemoveLineItem(ctx context.Context, proposalID, itemID uint) (*ProposalResponse, error)
	ConvertToProject(ctx context.Context, proposalID uint, overrides *ConvertRequest, actorID string) (*ProjectResponse, error)
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	CreateProject(ctx context.Context, req *CreateProjectRequest, actorID string) (*ProjectResponse, error)
	GetProject(ctx context.Context, id uint) (*ProjectResponse, error)
	DeleteProject(ctx context.Context, id uint) error
	UpdateProjectStatus(ctx context.Context, id uint, status string) (*ProjectResponse, error)
	UpdateProjectServiceStatus(ctx context.Context, itemID uint, status string) (*models.ProjectService, error)
	AddLineItem(ctx context.Context, projectID uint, req *LineItemRequest) (*ProjectResponse, error)
	RemoveLineItem(ctx context.Context, projectID, itemID uint) (*ProjectResponse, error)
	CalculateProjectTotal(ctx context.Context, id uint) (float64, error)
	CalculateProjectProgress(ctx context.Context, id uint) (float64, error)
}

var (
	_ GatewayServiceInterface  = (*GatewayService)(nil)
	_ ProposalServiceInterface = (*ProposalService)(nil)
	_ ProjectServiceInterface  = (*ProjectService)(nil)
)

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"business-manager-backend/internal/database/models"
	apperrors "business-manager-backend/internal/errors"
	"business-manager-backend/internal/logger"
	"business-manager-backend/internal/repository"
	"business-manager-backend/internal/schema"

	"github.com/go-playground/validator/v10"
)

// ProposalService handles the proposal lifecycle: line items, status, totals and conversion
type ProposalService struct {
	repo      repository.ProposalRepositoryInterface
	catalog   repository.CatalogRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewProposalService creates a new proposal service
func NewProposalService(repo repository.ProposalRepositoryInterface, catalog repository.CatalogRepositoryInterface, validator *validator.Validate) *ProposalService {
	return &ProposalService{
		repo:      repo,
		catalog:   catalog,
		validator: validator,
		now:       time.Now,
	}
}

// CreateProposalRequest represents the request to create a proposal
type CreateProposalRequest struct {
	ClientID  uint              `json:"client_id" example:"7"`
	Title     string            `json:"title,omitempty" validate:"max=200" example:"Website relaunch"`
	Notes     string            `json:"notes,omitempty"`
	LineItems []LineItemRequest `json:"line_items"`
}

// UpdateLineItemRequest represents a partial edit of a proposal line item
type UpdateLineItemRequest struct {
	ServiceID *uint    `json:"service_id,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	Quantity  *int     `json:"quantity,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}

// StatusRequest represents a status change
type StatusRequest struct {
	Status string `json:"status" example:"sent"`
}

// ConvertRequest carries the project fields that replace the defaults derived from the proposal
type ConvertRequest struct {
	Name             *string  `json:"name,omitempty"`
	Description      *string  `json:"description,omitempty"`
	StartDate        *string  `json:"start_date,omitempty" example:"2024-03-01"`
	EstimatedEndDate *string  `json:"estimated_end_date,omitempty" example:"2024-04-15"`
	Budget           *float64 `json:"budget,omitempty"`
	Status           *string  `json:"status,omitempty" example:"not_started"`
}

// ProposalResponse is a proposal with its line items and total
type ProposalResponse struct {
	models.Proposal
	Total float64 `json:"total"`
}

// CreateProposal creates a draft proposal and its line items in one unit
func (s *ProposalService) CreateProposal(ctx context.Context, req *CreateProposalRequest, actorID string) (*ProposalResponse, error) {
	verr := &apperrors.ValidationError{}
	if err := checkClient(ctx, s.catalog, req.ClientID, verr); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req, verr, ""); err != nil {
		return nil, err
	}
	items, _, err := checkLineItems(ctx, s.catalog, req.LineItems, "line_items", verr)
	if err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	proposal := &models.Proposal{
		ClientID:  req.ClientID,
		Title:     strings.TrimSpace(req.Title),
		Notes:     req.Notes,
		Status:    models.ProposalStatusDraft,
		CreatedBy: actorID,
		LineItems: make([]models.ProposalService, len(items)),
	}
	for i, item := range items {
		proposal.LineItems[i] = models.ProposalService{
			ServiceID: item.ServiceID,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
		}
	}

	if err := s.repo.Create(ctx, proposal); err != nil {
		return nil, translate("create proposal", err, apperrors.ErrProposalNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"proposal_id": proposal.ID,
		"client_id":   proposal.ClientID,
		"line_items":  len(proposal.LineItems),
	}).Info("Proposal created")

	return s.toResponse(proposal), nil
}

// GetProposal retrieves a proposal with its line items and total
func (s *ProposalService) GetProposal(ctx context.Context, id uint) (*ProposalResponse, error) {
	proposal, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(proposal), nil
}

// DeleteProposal deletes a proposal and its line items unless it has been converted
func (s *ProposalService) DeleteProposal(ctx context.Context, id uint) error {
	proposal, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if proposal.IsConverted() {
		return apperrors.NewAlreadyConvertedError(id)
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return translate("delete proposal", err, apperrors.ErrProposalNotFound)
	}
	if affected == 0 {
		return apperrors.ErrProposalNotFound
	}

	logger.WithContext(ctx).WithField("proposal_id", id).Info("Proposal deleted")
	return nil
}

// UpdateProposalStatus moves a proposal along draft→sent→accepted|rejected, rejected→sent
func (s *ProposalService) UpdateProposalStatus(ctx context.Context, id uint, status string) (*ProposalResponse, error) {
	to, err := parseProposalStatus(status)
	if err != nil {
		return nil, err
	}

	proposal, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	from := proposal.Status
	if err := checkProposalTransition(from, to); err != nil {
		return nil, err
	}

	affected, err := s.repo.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return nil, translate("update proposal status", err, apperrors.ErrProposalNotFound)
	}
	if affected == 0 {
		// status changed since it was read
		current, err := s.get(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, apperrors.NewIllegalTransitionError("proposal", string(current.Status), string(to))
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"proposal_id": id,
		"from":        from,
		"to":          to,
	}).Info("Proposal status changed")

	return s.GetProposal(ctx, id)
}

// CalculateProposalTotal returns Σ price×quantity over the proposal's line items
func (s *ProposalService) CalculateProposalTotal(ctx context.Context, id uint) (float64, error) {
	proposal, err := s.get(ctx, id)
	if err != nil {
		return 0, err
	}
	return proposalTotal(proposal.LineItems), nil
}

// AddLineItem appends a line item to a proposal that has not been converted
func (s *ProposalService) AddLineItem(ctx context.Context, proposalID uint, req *LineItemRequest) (*ProposalResponse, error) {
	proposal, err := s.getEditable(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	verr := &apperrors.ValidationError{}
	items, _, err := checkLineItems(ctx, s.catalog, []LineItemRequest{*req}, "", verr)
	if err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	item := &models.ProposalService{
		ProposalID: proposal.ID,
		ServiceID:  items[0].ServiceID,
		Price:      items[0].Price,
		Quantity:   items[0].Quantity,
		Notes:      items[0].Notes,
	}
	if err := s.repo.AddLineItem(ctx, item); err != nil {
		return nil, translate("add proposal line item", err, apperrors.ErrProposalNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{"proposal_id": proposalID, "line_item_id": item.ID}).Info("Proposal line item added")
	return s.GetProposal(ctx, proposalID)
}

// UpdateLineItem edits a line item of a proposal that has not been converted
func (s *ProposalService) UpdateLineItem(ctx context.Context, proposalID, itemID uint, req *UpdateLineItemRequest) (*ProposalResponse, error) {
	if _, err := s.getEditable(ctx, proposalID); err != nil {
		return nil, err
	}
	item, err := s.getLineItem(ctx, proposalID, itemID)
	if err != nil {
		return nil, err
	}

	merged := LineItemRequest{ServiceID: item.ServiceID, Price: &item.Price, Quantity: item.Quantity, Notes: item.Notes}
	if req.ServiceID != nil {
		merged.ServiceID = *req.ServiceID
	}
	if req.Price != nil {
		merged.Price = req.Price
	}
	if req.Quantity != nil {
		merged.Quantity = *req.Quantity
	}
	if req.Notes != nil {
		merged.Notes = *req.Notes
	}

	verr := &apperrors.ValidationError{}
	items, _, err := checkLineItems(ctx, s.catalog, []LineItemRequest{merged}, "", verr)
	if err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	item.ServiceID = items[0].ServiceID
	item.Price = items[0].Price
	item.Quantity = items[0].Quantity
	item.Notes = items[0].Notes
	if err := s.repo.UpdateLineItem(ctx, item); err != nil {
		return nil, translate("update proposal line item", err, apperrors.ErrProposalServiceNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{"proposal_id": proposalID, "line_item_id": itemID}).Info("Proposal line item updated")
	return s.GetProposal(ctx, proposalID)
}

// RemoveLineItem removes a line item from a proposal that has not been converted
func (s *ProposalService) RemoveLineItem(ctx context.Context, proposalID, itemID uint) (*ProposalResponse, error) {
	if _, err := s.getEditable(ctx, proposalID); err != nil {
		return nil, err
	}
	if _, err := s.getLineItem(ctx, proposalID, itemID); err != nil {
		return nil, err
	}
	if err := s.repo.DeleteLineItem(ctx, proposalID, itemID); err != nil {
		return nil, translate("remove proposal line item", err, apperrors.ErrProposalServiceNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{"proposal_id": proposalID, "line_item_id": itemID}).Info("Proposal line item removed")
	return s.GetProposal(ctx, proposalID)
}

// ConvertToProject turns an accepted proposal into a project with cloned, pending line items.
// The project, its line items and the proposal's converted status commit together.
func (s *ProposalService) ConvertToProject(ctx context.Context, proposalID uint, overrides *ConvertRequest, actorID string) (*ProjectResponse, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, apperrors.NewMissingActorError()
	}

	proposal, err := s.get(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal.IsConverted() {
		return nil, apperrors.NewAlreadyConvertedError(proposalID)
	}
	if proposal.Status != models.ProposalStatusAccepted {
		return nil, apperrors.NewIllegalTransitionError("proposal", string(proposal.Status), string(models.ProposalStatusConverted))
	}

	serviceIDs := make([]uint, 0, len(proposal.LineItems))
	for _, item := range proposal.LineItems {
		serviceIDs = append(serviceIDs, item.ServiceID)
	}
	services, err := s.catalog.GetServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, apperrors.NewStoreError("look up services", err)
	}
	longest := longestTimeline(services)

	project := s.defaultProject(proposal, longest, actorID)
	if overrides != nil {
		if err := applyOverrides(project, overrides, longest); err != nil {
			return nil, err
		}
	}

	project.LineItems = make([]models.ProjectService, len(proposal.LineItems))
	for i, item := range proposal.LineItems {
		project.LineItems[i] = models.ProjectService{
			ServiceID:        item.ServiceID,
			Price:            item.Price,
			Quantity:         item.Quantity,
			Position:         item.Position,
			CompletionStatus: models.CompletionStatusPending,
			Notes:            item.Notes,
		}
	}

	if err := s.repo.ConvertToProject(ctx, proposalID, project); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("proposal_id", proposalID).Error("Proposal conversion failed")
		return nil, translate("convert proposal", err, apperrors.ErrProposalNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"proposal_id": proposalID,
		"project_id":  project.ID,
		"line_items":  len(project.LineItems),
		"budget":      project.Budget,
	}).Info("Proposal converted to project")

	return projectResponse(project), nil
}

func (s *ProposalService) defaultProject(proposal *models.Proposal, longestTimeline int, actorID string) *models.Project {
	name := strings.TrimSpace(proposal.Title)
	if name == "" {
		name = fmt.Sprintf("Project for proposal #%d", proposal.ID)
	}
	start := today(s.now())
	return &models.Project{
		Name:             name,
		Description:      proposal.Notes,
		ClientID:         proposal.ClientID,
		Status:           models.ProjectStatusNotStarted,
		StartDate:        start,
		EstimatedEndDate: start.AddDate(0, 0, longestTimeline),
		Budget:           proposalTotal(proposal.LineItems),
		CreatedBy:        actorID,
	}
}

// applyOverrides merges caller supplied project fields over the defaults. A start date moved
// without an explicit end date drags the estimated end along with it.
func applyOverrides(project *models.Project, o *ConvertRequest, longestTimeline int) error {
	verr := &apperrors.ValidationError{}

	if o.Name != nil {
		if name := strings.TrimSpace(*o.Name); name == "" {
			verr.Add("name", "must not be empty")
		} else {
			project.Name = name
		}
	}
	if o.Description != nil {
		project.Description = *o.Description
	}
	if o.Budget != nil {
		if *o.Budget < 0 {
			verr.Add("budget", "must be >= 0")
		} else {
			project.Budget = *o.Budget
		}
	}
	if o.Status != nil {
		status, err := parseProjectStatus(*o.Status)
		if err != nil {
			verr.Add("status", "must be one of: not_started, in_progress, on_hold, completed, cancelled")
		} else {
			project.Status = status
		}
	}
	if o.StartDate != nil {
		start, err := schema.ParseDate(*o.StartDate)
		if err != nil {
			verr.Add("start_date", "must be a date (YYYY-MM-DD)")
		} else {
			project.StartDate = start
			project.EstimatedEndDate = start.AddDate(0, 0, longestTimeline)
		}
	}
	if o.EstimatedEndDate != nil {
		end, err := schema.ParseDate(*o.EstimatedEndDate)
		if err != nil {
			verr.Add("estimated_end_date", "must be a date (YYYY-MM-DD)")
		} else {
			project.EstimatedEndDate = end
		}
	}
	if project.EstimatedEndDate.Before(project.StartDate) {
		verr.Add("estimated_end_date", "must not be before start_date")
	}

	return verr.OrNil()
}

func (s *ProposalService) get(ctx context.Context, id uint) (*models.Proposal, error) {
	proposal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate("get proposal", err, apperrors.ErrProposalNotFound)
	}
	return proposal, nil
}

func (s *ProposalService) getEditable(ctx context.Context, id uint) (*models.Proposal, error) {
	proposal, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if proposal.IsConverted() {
		return nil, apperrors.NewAlreadyConvertedError(id)
	}
	return proposal, nil
}

func (s *ProposalService) getLineItem(ctx context.Context, proposalID, itemID uint) (*models.ProposalService, error) {
	item, err := s.repo.GetLineItem(ctx, itemID)
	if err != nil {
		return nil, translate("get proposal line item", err, apperrors.ErrProposalServiceNotFound)
	}
	if item.ProposalID != proposalID {
		return nil, apperrors.ErrProposalServiceNotFound
	}
	return item, nil
}

func (s *ProposalService) toResponse(proposal *models.Proposal) *ProposalResponse {
	return &ProposalResponse{Proposal: *proposal, Total: proposalTotal(proposal.LineItems)}
}

// today truncates t to midnight UTC of its calendar day
func today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

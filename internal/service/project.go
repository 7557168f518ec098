package service

import (
	"context"
	"strings"
	"time"

	"business-manager-backend/internal/database/models"
	apperrors "business-manager-backend/internal/errors"
	"business-manager-backend/internal/logger"
	"business-manager-backend/internal/repository"
	"business-manager-backend/internal/schema"

	"github.com/go-playground/validator/v10"
)

// ProjectService handles projects and the completion state of their line items
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	catalog   repository.CatalogRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, catalog repository.CatalogRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		catalog:   catalog,
		validator: validator,
		now:       time.Now,
	}
}

// CreateProjectRequest represents the request to create a project directly
type CreateProjectRequest struct {
	Name             string            `json:"name" validate:"required,max=200" example:"Website relaunch"`
	Description      string            `json:"description,omitempty"`
	ClientID         uint              `json:"client_id" example:"7"`
	Status           string            `json:"status,omitempty" example:"not_started"`
	StartDate        string            `json:"start_date,omitempty" example:"2024-03-01"`
	EstimatedEndDate string            `json:"estimated_end_date,omitempty" example:"2024-04-15"`
	Budget           *float64          `json:"budget,omitempty"`
	LineItems        []LineItemRequest `json:"line_items"`
}

// ProjectResponse is a project with its line items, total and progress
type ProjectResponse struct {
	models.Project
	Total    float64 `json:"total"`
	Progress float64 `json:"progress"`
}

func projectResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		Project:  *project,
		Total:    projectTotal(project.LineItems),
		Progress: projectProgress(project.LineItems),
	}
}

// CreateProject creates a project with pending line items. Dates default to today and
// today plus the longest service timeline, the budget to the line item total.
func (s *ProjectService) CreateProject(ctx context.Context, req *CreateProjectRequest, actorID string) (*ProjectResponse, error) {
	verr := &apperrors.ValidationError{}
	if err := checkClient(ctx, s.catalog, req.ClientID, verr); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req, verr, ""); err != nil {
		return nil, err
	}
	items, services, err := checkLineItems(ctx, s.catalog, req.LineItems, "line_items", verr)
	if err != nil {
		return nil, err
	}

	status := models.ProjectStatusNotStarted
	if strings.TrimSpace(req.Status) != "" {
		if parsed, err := parseProjectStatus(req.Status); err != nil {
			verr.Add("status", "must be one of: not_started, in_progress, on_hold, completed, cancelled")
		} else {
			status = parsed
		}
	}

	start := today(s.now())
	if req.StartDate != "" {
		if parsed, err := schema.ParseDate(req.StartDate); err != nil {
			verr.Add("start_date", "must be a date (YYYY-MM-DD)")
		} else {
			start = parsed
		}
	}
	end := start.AddDate(0, 0, longestTimeline(services))
	if req.EstimatedEndDate != "" {
		if parsed, err := schema.ParseDate(req.EstimatedEndDate); err != nil {
			verr.Add("estimated_end_date", "must be a date (YYYY-MM-DD)")
		} else {
			end = parsed
		}
	}
	if end.Before(start) {
		verr.Add("estimated_end_date", "must not be before start_date")
	}
	if req.Budget != nil && *req.Budget < 0 {
		verr.Add("budget", "must be >= 0")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		ClientID:         req.ClientID,
		Status:           status,
		StartDate:        start,
		EstimatedEndDate: end,
		CreatedBy:        actorID,
		LineItems:        make([]models.ProjectService, len(items)),
	}
	for i, item := range items {
		project.LineItems[i] = models.ProjectService{
			ServiceID:        item.ServiceID,
			Price:            item.Price,
			Quantity:         item.Quantity,
			CompletionStatus: models.CompletionStatusPending,
			Notes:            item.Notes,
		}
	}
	project.Budget = projectTotal(project.LineItems)
	if req.Budget != nil {
		project.Budget = *req.Budget
	}
	if status == models.ProjectStatusCompleted {
		project.ActualEndDate = &start
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, translate("create project", err, apperrors.ErrProjectNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": project.ID,
		"client_id":  project.ClientID,
		"line_items": len(project.LineItems),
	}).Info("Project created")

	return projectResponse(project), nil
}

// GetProject retrieves a project with its line items, total and progress
func (s *ProjectService) GetProject(ctx context.Context, id uint) (*ProjectResponse, error) {
	project, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return projectResponse(project), nil
}

// DeleteProject deletes a project and its line items
func (s *ProjectService) DeleteProject(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return translate("delete project", err, apperrors.ErrProjectNotFound)
	}
	if affected == 0 {
		return apperrors.ErrProjectNotFound
	}

	logger.WithContext(ctx).WithField("project_id", id).Info("Project deleted")
	return nil
}

// UpdateProjectStatus sets any valid status. Completing a project stamps its actual end date
// unless one is already set.
func (s *ProjectService) UpdateProjectStatus(ctx context.Context, id uint, status string) (*ProjectResponse, error) {
	to, err := parseProjectStatus(status)
	if err != nil {
		return nil, err
	}
	project, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	from := project.Status
	project.Status = to
	if to == models.ProjectStatusCompleted && project.ActualEndDate == nil {
		end := today(s.now())
		project.ActualEndDate = &end
	}
	if err := s.repo.Update(ctx, project); err != nil {
		return nil, translate("update project status", err, apperrors.ErrProjectNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": id,
		"from":       from,
		"to":         to,
		"closed":     to.IsTerminal(),
	}).Info("Project status changed")

	return projectResponse(project), nil
}

// UpdateProjectServiceStatus sets the completion status of a single project line item
func (s *ProjectService) UpdateProjectServiceStatus(ctx context.Context, itemID uint, status string) (*models.ProjectService, error) {
	to, err := parseCompletionStatus(status)
	if err != nil {
		return nil, err
	}

	affected, err := s.repo.SetLineItemStatus(ctx, itemID, to)
	if err != nil {
		return nil, translate("update project line item status", err, apperrors.ErrProjectServiceNotFound)
	}
	if affected == 0 {
		return nil, apperrors.ErrProjectServiceNotFound
	}

	item, err := s.repo.GetLineItem(ctx, itemID)
	if err != nil {
		return nil, translate("get project line item", err, apperrors.ErrProjectServiceNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id":   item.ProjectID,
		"line_item_id": itemID,
		"status":       to,
	}).Info("Project line item status changed")

	return item, nil
}

// AddLineItem appends a pending line item to a project
func (s *ProjectService) AddLineItem(ctx context.Context, projectID uint, req *LineItemRequest) (*ProjectResponse, error) {
	if _, err := s.get(ctx, projectID); err != nil {
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

	item := &models.ProjectService{
		ProjectID:        projectID,
		ServiceID:        items[0].ServiceID,
		Price:            items[0].Price,
		Quantity:         items[0].Quantity,
		CompletionStatus: models.CompletionStatusPending,
		Notes:            items[0].Notes,
	}
	if err := s.repo.AddLineItem(ctx, item); err != nil {
		return nil, translate("add project line item", err, apperrors.ErrProjectNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{"project_id": projectID, "line_item_id": item.ID}).Info("Project line item added")
	return s.GetProject(ctx, projectID)
}

// RemoveLineItem removes a line item from a project
func (s *ProjectService) RemoveLineItem(ctx context.Context, projectID, itemID uint) (*ProjectResponse, error) {
	if _, err := s.get(ctx, projectID); err != nil {
		return nil, err
	}
	item, err := s.repo.GetLineItem(ctx, itemID)
	if err != nil {
		return nil, translate("get project line item", err, apperrors.ErrProjectServiceNotFound)
	}
	if item.ProjectID != projectID {
		return nil, apperrors.ErrProjectServiceNotFound
	}
	if err := s.repo.DeleteLineItem(ctx, itemID); err != nil {
		return nil, translate("remove project line item", err, apperrors.ErrProjectServiceNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{"project_id": projectID, "line_item_id": itemID}).Info("Project line item removed")
	return s.GetProject(ctx, projectID)
}

// CalculateProjectTotal returns Σ price×quantity over the project's line items
func (s *ProjectService) CalculateProjectTotal(ctx context.Context, id uint) (float64, error) {
	project, err := s.get(ctx, id)
	if err != nil {
		return 0, err
	}
	return projectTotal(project.LineItems), nil
}

// CalculateProjectProgress returns the percentage of completed line items
func (s *ProjectService) CalculateProjectProgress(ctx context.Context, id uint) (float64, error) {
	project, err := s.get(ctx, id)
	if err != nil {
		return 0, err
	}
	return projectProgress(project.LineItems), nil
}

func (s *ProjectService) get(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate("get project", err, apperrors.ErrProjectNotFound)
	}
	return project, nil
}

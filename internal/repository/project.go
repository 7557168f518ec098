package repository

import (
	"context"

	"business-manager-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects and their line items
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create persists the project header and its line items as one unit
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := project.LineItems
		if err := tx.Omit(clause.Associations).Create(project).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ProjectID = project.ID
			items[i].Position = i + 1
		}
		if len(items) > 0 {
			if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
				return err
			}
		}
		project.LineItems = items
		return nil
	})
}

// GetByID retrieves a project with its line items in position order
func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("position, id") }).
		First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Update saves the project header
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error
}

// Delete deletes a project and its line items. The source proposal is left untouched.
func (r *ProjectRepository) Delete(ctx context.Context, id uint) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectService{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

// GetLineItem retrieves a project line item by ID
func (r *ProjectRepository) GetLineItem(ctx context.Context, id uint) (*models.ProjectService, error) {
	var item models.ProjectService
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// AddLineItem appends a line item after the project's last position
func (r *ProjectRepository) AddLineItem(ctx context.Context, item *models.ProjectService) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int
		err := tx.Model(&models.ProjectService{}).
			Where("project_id = ?", item.ProjectID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&last).Error
		if err != nil {
			return err
		}
		item.Position = last + 1
		return tx.Omit(clause.Associations).Create(item).Error
	})
}

// DeleteLineItem deletes a project line item
func (r *ProjectRepository) DeleteLineItem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ProjectService{}, id).Error
}

// SetLineItemStatus sets the completion status of a project line item
func (r *ProjectRepository) SetLineItemStatus(ctx context.Context, id uint, status models.CompletionStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.ProjectService{}).
		Where("id = ?", id).
		Update("completion_status", status)
	return result.RowsAffected, result.Error
}

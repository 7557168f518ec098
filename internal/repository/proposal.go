package repository

import (
	"context"

	"business-manager-backend/internal/database/models"
	apperrors "business-manager-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProposalRepository handles database operations for proposals and their line items
type ProposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new proposal repository
func NewProposalRepository(db *gorm.DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

// Create persists the proposal header and its line items as one unit.
// Line items are numbered in slice order.
func (r *ProposalRepository) Create(ctx context.Context, proposal *models.Proposal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := proposal.LineItems
		if err := tx.Omit(clause.Associations).Create(proposal).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ProposalID = proposal.ID
			items[i].Position = i + 1
		}
		if len(items) > 0 {
			if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
				return err
			}
		}
		proposal.LineItems = items
		return nil
	})
}

// GetByID retrieves a proposal with its line items in position order
func (r *ProposalRepository) GetByID(ctx context.Context, id uint) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("position, id") }).
		First(&proposal, id).Error
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// Delete deletes a proposal that has not been converted, together with its line items.
// A missing proposal is gorm.ErrRecordNotFound and a converted one an AlreadyConvertedError.
func (r *ProposalRepository) Delete(ctx context.Context, id uint) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := holdEditable(tx, id); err != nil {
			return err
		}
		if err := tx.Where("proposal_id = ?", id).Delete(&models.ProposalService{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Proposal{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

// UpdateStatus moves the proposal from one status to another. Zero affected rows means the
// proposal no longer has the expected status.
func (r *ProposalRepository) UpdateStatus(ctx context.Context, id uint, from, to models.ProposalStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Proposal{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

// GetLineItem retrieves a proposal line item by ID
func (r *ProposalRepository) GetLineItem(ctx context.Context, id uint) (*models.ProposalService, error) {
	var item models.ProposalService
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// AddLineItem appends a line item after the proposal's last position
func (r *ProposalRepository) AddLineItem(ctx context.Context, item *models.ProposalService) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := holdEditable(tx, item.ProposalID); err != nil {
			return err
		}
		var last int
		err := tx.Model(&models.ProposalService{}).
			Where("proposal_id = ?", item.ProposalID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&last).Error
		if err != nil {
			return err
		}
		item.Position = last + 1
		return tx.Omit(clause.Associations).Create(item).Error
	})
}

// UpdateLineItem saves the editable fields of a line item
func (r *ProposalRepository) UpdateLineItem(ctx context.Context, item *models.ProposalService) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := holdEditable(tx, item.ProposalID); err != nil {
			return err
		}
		result := tx.Model(item).
			Where("proposal_id = ?", item.ProposalID).
			Select("service_id", "price", "quantity", "notes").
			Updates(item)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DeleteLineItem deletes a line item of the given proposal
func (r *ProposalRepository) DeleteLineItem(ctx context.Context, proposalID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := holdEditable(tx, proposalID); err != nil {
			return err
		}
		result := tx.Where("proposal_id = ?", proposalID).Delete(&models.ProposalService{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ConvertToProject flips an accepted proposal to converted and creates the project with its
// line items in the same transaction. The flip is conditional on the accepted status, so of two
// racing conversions only one commits.
func (r *ProposalRepository) ConvertToProject(ctx context.Context, proposalID uint, project *models.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Proposal{}).
			Where("id = ? AND status = ?", proposalID, models.ProposalStatusAccepted).
			Update("status", models.ProposalStatusConverted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var current models.Proposal
			if err := tx.Select("id", "status").First(&current, proposalID).Error; err != nil {
				return err
			}
			if current.IsConverted() {
				return apperrors.NewAlreadyConvertedError(proposalID)
			}
			return apperrors.NewIllegalTransitionError("proposal", string(current.Status), string(models.ProposalStatusConverted))
		}

		items := project.LineItems
		project.ProposalID = &proposalID
		if err := tx.Omit(clause.Associations).Create(project).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ProjectID = project.ID
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

// holdEditable share-locks the proposal row for the rest of tx and refuses a converted one.
// The conversion's status flip waits on the lock, so an edit never lands after it commits.
func holdEditable(tx *gorm.DB, proposalID uint) error {
	var proposal models.Proposal
	err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthShare}).
		Select("id", "status").
		First(&proposal, proposalID).Error
	if err != nil {
		return err
	}
	if proposal.IsConverted() {
		return apperrors.NewAlreadyConvertedError(proposalID)
	}
	return nil
}

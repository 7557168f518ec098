package repository

import (
	"context"

	"business-manager-backend/internal/database/models"

	"gorm.io/gorm"
)

// CatalogRepository answers the lookups the engines need from clients and services
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetClientByID retrieves a client by ID
func (r *CatalogRepository) GetClientByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// GetServicesByIDs retrieves the services with the given IDs; missing IDs are simply absent from the result
func (r *CatalogRepository) GetServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error) {
	var services []models.Service
	if len(ids) == 0 {
		return services, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

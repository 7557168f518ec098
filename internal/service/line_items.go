package service

import (
	"context"
	"errors"
	"fmt"

	"business-manager-backend/internal/database/models"
	apperrors "business-manager-backend/internal/errors"
	"business-manager-backend/internal/repository"

	"gorm.io/gorm"
)

// LineItemRequest represents a priced service reference in a create or add request.
// A missing price takes the service's current catalog price.
type LineItemRequest struct {
	ServiceID uint     `json:"service_id" example:"1"`
	Price     *float64 `json:"price,omitempty" example:"1000"`
	Quantity  int      `json:"quantity" example:"2"`
	Notes     string   `json:"notes,omitempty"`
}

// pricedItem is a validated line item
type pricedItem struct {
	ServiceID uint
	Price     float64
	Quantity  int
	Notes     string
}

// checkLineItems validates every line item against the catalog. Violations are added to verr
// under "<prefix>[i].<field>", or "<field>" when prefix is empty.
func checkLineItems(ctx context.Context, catalog repository.CatalogRepositoryInterface, items []LineItemRequest, prefix string, verr *apperrors.ValidationError) ([]pricedItem, []models.Service, error) {
	ids := make([]uint, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, item := range items {
		if item.ServiceID != 0 && !seen[item.ServiceID] {
			seen[item.ServiceID] = true
			ids = append(ids, item.ServiceID)
		}
	}

	services, err := catalog.GetServicesByIDs(ctx, ids)
	if err != nil {
		return nil, nil, apperrors.NewStoreError("look up services", err)
	}
	byID := make(map[uint]models.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	priced := make([]pricedItem, 0, len(items))
	for i, item := range items {
		field := func(name string) string {
			if prefix == "" {
				return name
			}
			return fmt.Sprintf("%s[%d].%s", prefix, i, name)
		}

		service, found := byID[item.ServiceID]
		switch {
		case item.ServiceID == 0:
			verr.Add(field("service_id"), "is required")
		case !found:
			verr.Addf(field("service_id"), "service %d not found", item.ServiceID)
		}

		price := service.Price
		if item.Price != nil {
			price = *item.Price
		}
		if price < 0 {
			verr.Add(field("price"), "must be >= 0")
		}
		if item.Quantity < 1 {
			verr.Add(field("quantity"), "must be at least 1")
		}

		priced = append(priced, pricedItem{
			ServiceID: item.ServiceID,
			Price:     price,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
		})
	}
	return priced, services, nil
}

// checkClient adds a client_id violation to verr when the client does not exist
func checkClient(ctx context.Context, catalog repository.CatalogRepositoryInterface, clientID uint, verr *apperrors.ValidationError) error {
	if clientID == 0 {
		verr.Add("client_id", "is required")
		return nil
	}
	_, err := catalog.GetClientByID(ctx, clientID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		verr.Addf("client_id", "client %d not found", clientID)
		return nil
	default:
		return apperrors.NewStoreError("look up client", err)
	}
}

// longestTimeline returns the largest timeline in days among the given services
func longestTimeline(services []models.Service) int {
	longest := 0
	for _, s := range services {
		if s.TimelineDays > longest {
			longest = s.TimelineDays
		}
	}
	return longest
}

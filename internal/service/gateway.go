package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "business-manager-backend/internal/errors"
	"business-manager-backend/internal/logger"
	"business-manager-backend/internal/repository"
	"business-manager-backend/internal/schema"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// DefaultMaxPageSize caps the page size when none is configured
const DefaultMaxPageSize = 500

// GatewayService exposes paginated, searchable, primary-key addressed CRUD over registered tables
type GatewayService struct {
	repo        repository.GatewayRepositoryInterface
	registry    *schema.Registry
	validator   *validator.Validate
	maxPageSize int
}

// NewGatewayService creates a new gateway service
func NewGatewayService(repo repository.GatewayRepositoryInterface, registry *schema.Registry, validator *validator.Validate, maxPageSize int) *GatewayService {
	if maxPageSize < 1 {
		maxPageSize = DefaultMaxPageSize
	}
	return &GatewayService{
		repo:        repo,
		registry:    registry,
		validator:   validator,
		maxPageSize: maxPageSize,
	}
}

// SearchRequest filters rows whose listed fields contain the term, ignoring case.
// With no fields every searchable column is used.
type SearchRequest struct {
	Fields []string `json:"fields" example:"name,company"`
	Term   string   `json:"term" example:"acme"`
}

// QueryRequest represents a request for one page of rows
type QueryRequest struct {
	Table   string         `json:"table" example:"clients"`
	Page    int            `json:"page" example:"1"`
	Limit   int            `json:"limit" example:"50"`
	Search  *SearchRequest `json:"search,omitempty"`
	OrderBy *string        `json:"orderBy,omitempty" example:"name asc"`
}

// QueryResponse is a page of rows. A page shorter than Limit is the last one.
type QueryResponse struct {
	Rows  interface{} `json:"rows" swaggertype:"array,object"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// CountRequest represents a request for the number of matching rows
type CountRequest struct {
	Table  string         `json:"table" example:"clients"`
	Search *SearchRequest `json:"search,omitempty"`
}

// CountResponse carries the number of matching rows
type CountResponse struct {
	Total int64 `json:"total"`
}

// CreateRequest represents a row insert
type CreateRequest struct {
	Table  string                 `json:"table" example:"clients"`
	Fields map[string]interface{} `json:"fields" swaggertype:"object"`
}

// UpdateRequest represents a row update addressed by primary key
type UpdateRequest struct {
	Table      string                 `json:"table" example:"clients"`
	Fields     map[string]interface{} `json:"fields" swaggertype:"object"`
	Conditions map[string]interface{} `json:"conditions" swaggertype:"object"`
}

// UpdateResponse carries the updated row and the number of affected rows
type UpdateResponse struct {
	Row          interface{} `json:"row" swaggertype:"object"`
	RowsAffected int64       `json:"rows_affected"`
}

// DeleteRequest represents a row delete addressed by primary key
type DeleteRequest struct {
	Table      string                 `json:"table" example:"clients"`
	Conditions map[string]interface{} `json:"conditions" swaggertype:"object"`
}

// DeleteResponse confirms a delete
type DeleteResponse struct {
	Deleted      bool  `json:"deleted"`
	RowsAffected int64 `json:"rows_affected"`
}

type identifiable interface {
	GetID() uint
}

// Query returns one page of rows ordered by orderBy, or by primary key when none is given
func (s *GatewayService) Query(ctx context.Context, req *QueryRequest) (*QueryResponse, error) {
	entity, err := s.registry.Lookup(req.Table)
	if err != nil {
		return nil, err
	}

	verr := &apperrors.ValidationError{}
	if req.Page < 1 {
		verr.Add("page", "must be at least 1")
	}
	if req.Limit < 1 || req.Limit > s.maxPageSize {
		verr.Addf("limit", "must be between 1 and %d", s.maxPageSize)
	}
	search := s.searchFilter(entity, req.Search, verr)
	orderBy, desc := s.orderBy(entity, req.OrderBy, verr)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	rows, err := s.repo.Find(ctx, entity, repository.FindParams{
		Offset:  (req.Page - 1) * req.Limit,
		Limit:   req.Limit,
		Search:  search,
		OrderBy: orderBy,
		Desc:    desc,
	})
	if err != nil {
		return nil, s.storeFailure(ctx, "query "+entity.Table, err)
	}

	return &QueryResponse{Rows: rows, Page: req.Page, Limit: req.Limit}, nil
}

// Count returns the number of rows matching the optional search
func (s *GatewayService) Count(ctx context.Context, req *CountRequest) (*CountResponse, error) {
	entity, err := s.registry.Lookup(req.Table)
	if err != nil {
		return nil, err
	}

	verr := &apperrors.ValidationError{}
	search := s.searchFilter(entity, req.Search, verr)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx, entity, search)
	if err != nil {
		return nil, s.storeFailure(ctx, "count "+entity.Table, err)
	}
	return &CountResponse{Total: total}, nil
}

// Create validates the fields against the registry and inserts a row, returning it as stored
func (s *GatewayService) Create(ctx context.Context, req *CreateRequest) (interface{}, error) {
	entity, err := s.registry.Lookup(req.Table)
	if err != nil {
		return nil, err
	}

	fields, err := entity.CheckFields(req.Fields, true)
	if err != nil {
		return nil, err
	}
	record := entity.NewRecord()
	if err := s.decode(fields, record); err != nil {
		return nil, err
	}

	var ownerPK uint
	if entity.Owner != nil {
		if v, ok := fields[entity.Owner.ForeignKey].(int64); ok && v > 0 {
			ownerPK = uint(v)
		}
	}

	if err := s.repo.Insert(ctx, entity, record, ownerPK); err != nil {
		return nil, s.writeFailure(ctx, "create "+entity.Table, err)
	}

	id := record.(identifiable).GetID()
	logger.WithContext(ctx).WithFields(map[string]interface{}{"table": entity.Table, "id": id}).Info("Row created")

	row, err := s.repo.FindByPK(ctx, entity, id)
	if err != nil {
		return nil, s.storeFailure(ctx, "read back "+entity.Table, err)
	}
	return row, nil
}

// Update applies fields to the row addressed by the primary key in conditions
func (s *GatewayService) Update(ctx context.Context, req *UpdateRequest) (*UpdateResponse, error) {
	entity, err := s.registry.Lookup(req.Table)
	if err != nil {
		return nil, err
	}
	pk, err := entity.PrimaryKeyValue(req.Conditions)
	if err != nil {
		return nil, err
	}
	fields, err := entity.CheckFields(req.Fields, false)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.FindByPK(ctx, entity, pk)
	if err != nil {
		return nil, s.writeFailure(ctx, "update "+entity.Table, notFoundRow(entity, pk, err))
	}
	// validate the row as it will look after the update
	if err := s.decode(fields, current); err != nil {
		return nil, err
	}

	affected, err := s.repo.UpdateByPK(ctx, entity, pk, fields)
	if err != nil {
		return nil, s.writeFailure(ctx, "update "+entity.Table, notFoundRow(entity, pk, err))
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{"table": entity.Table, "id": pk}).Info("Row updated")

	row, err := s.repo.FindByPK(ctx, entity, pk)
	if err != nil {
		return nil, s.storeFailure(ctx, "read back "+entity.Table, err)
	}
	return &UpdateResponse{Row: row, RowsAffected: affected}, nil
}

// Delete removes the row addressed by the primary key in conditions along with its owned children
func (s *GatewayService) Delete(ctx context.Context, req *DeleteRequest) (*DeleteResponse, error) {
	entity, err := s.registry.Lookup(req.Table)
	if err != nil {
		return nil, err
	}
	pk, err := entity.PrimaryKeyValue(req.Conditions)
	if err != nil {
		return nil, err
	}

	affected, err := s.repo.DeleteByPK(ctx, entity, pk)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.NewValidationError(entity.PrimaryKey,
				fmt.Sprintf("%s row %d is still referenced by other rows", entity.Table, pk))
		}
		return nil, s.writeFailure(ctx, "delete "+entity.Table, notFoundRow(entity, pk, err))
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{"table": entity.Table, "id": pk}).Info("Row deleted")

	return &DeleteResponse{Deleted: affected > 0, RowsAffected: affected}, nil
}

func (s *GatewayService) searchFilter(entity *schema.Entity, req *SearchRequest, verr *apperrors.ValidationError) *repository.SearchFilter {
	if req == nil || req.Term == "" {
		return nil
	}
	fields := req.Fields
	if len(fields) == 0 {
		fields = entity.SearchableColumns()
		if len(fields) == 0 {
			verr.Addf("search.fields", "%s has no searchable columns", entity.Table)
			return nil
		}
	}
	for _, f := range fields {
		col, ok := entity.Column(f)
		if !ok || !col.Searchable {
			verr.Addf("search.fields", "%q is not a searchable column of %s", f, entity.Table)
		}
	}
	return &repository.SearchFilter{Fields: fields, Term: req.Term}
}

func (s *GatewayService) orderBy(entity *schema.Entity, orderBy *string, verr *apperrors.ValidationError) (string, bool) {
	if orderBy == nil || strings.TrimSpace(*orderBy) == "" {
		return entity.PrimaryKey, false
	}
	parts := strings.Fields(*orderBy)
	if len(parts) > 2 {
		verr.Add("orderBy", `must be "<column>" or "<column> asc|desc"`)
		return "", false
	}
	if _, ok := entity.Column(parts[0]); !ok {
		verr.Addf("orderBy", "%q is not a column of %s", parts[0], entity.Table)
	}
	desc := false
	if len(parts) == 2 {
		switch strings.ToLower(parts[1]) {
		case "asc":
		case "desc":
			desc = true
		default:
			verr.Add("orderBy", "direction must be asc or desc")
		}
	}
	return parts[0], desc
}

// decode overlays fields onto record and validates the result with its struct tags
func (s *GatewayService) decode(fields map[string]interface{}, record interface{}) error {
	if err := schema.Decode(fields, record); err != nil {
		return err
	}
	verr := &apperrors.ValidationError{}
	if err := validateStruct(s.validator, record, verr, ""); err != nil {
		return err
	}
	return verr.OrNil()
}

func (s *GatewayService) writeFailure(ctx context.Context, op string, err error) error {
	if cerr := constraintError(err); cerr != nil {
		return cerr
	}
	if apperrors.Code(err) != apperrors.CodeStore {
		return err
	}
	return s.storeFailure(ctx, op, err)
}

func (s *GatewayService) storeFailure(ctx context.Context, op string, err error) error {
	logger.WithContext(ctx).WithError(err).Errorf("Failed to %s", op)
	return apperrors.NewStoreError(op, err)
}

func notFoundRow(entity *schema.Entity, pk uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s row %d", entity.Table, pk))
	}
	return err
}

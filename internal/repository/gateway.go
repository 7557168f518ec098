package repository

import (
	"context"
	"strings"

	"business-manager-backend/internal/schema"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GatewayRepository runs primary-key addressed CRUD against any table of the schema registry
type GatewayRepository struct {
	db       *gorm.DB
	registry *schema.Registry
}

// NewGatewayRepository creates a new gateway repository
func NewGatewayRepository(db *gorm.DB, registry *schema.Registry) *GatewayRepository {
	return &GatewayRepository{db: db, registry: registry}
}

// SearchFilter matches Term case-insensitively as a substring of any of Fields
type SearchFilter struct {
	Fields []string
	Term   string
}

// FindParams selects one page of rows
type FindParams struct {
	Offset  int
	Limit   int
	Search  *SearchFilter
	OrderBy string
	Desc    bool
}

// Find returns a page of rows as a pointer to a slice of the entity's model
func (r *GatewayRepository) Find(ctx context.Context, entity *schema.Entity, params FindParams) (interface{}, error) {
	rows := entity.NewSlice()

	query := applySearch(r.db.WithContext(ctx).Model(entity.NewRecord()), params.Search)
	orderBy := params.OrderBy
	if orderBy == "" {
		orderBy = entity.PrimaryKey
	}
	query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: orderBy}, Desc: params.Desc})
	if orderBy != entity.PrimaryKey {
		// tie-break on the key so pages stay stable
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: entity.PrimaryKey}})
	}

	if err := query.Offset(params.Offset).Limit(params.Limit).Find(rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of rows matching the search filter
func (r *GatewayRepository) Count(ctx context.Context, entity *schema.Entity, search *SearchFilter) (int64, error) {
	var total int64
	err := applySearch(r.db.WithContext(ctx).Model(entity.NewRecord()), search).Count(&total).Error
	return total, err
}

// FindByPK retrieves a single row by primary key
func (r *GatewayRepository) FindByPK(ctx context.Context, entity *schema.Entity, pk uint) (interface{}, error) {
	record := entity.NewRecord()
	if err := r.db.WithContext(ctx).Where(pkEq(entity, pk)).Take(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Insert creates a row. ownerPK names the owning row of a child table and is checked against the owner's lock.
func (r *GatewayRepository) Insert(ctx context.Context, entity *schema.Entity, record interface{}, ownerPK uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if entity.Owner != nil && ownerPK != 0 {
			owner, err := r.registry.Lookup(entity.Owner.Table)
			if err != nil {
				return err
			}
			if err := checkLock(tx, owner, ownerPK); err != nil {
				return err
			}
		}
		return tx.Create(record).Error
	})
}

// UpdateByPK applies fields to the row addressed by pk and returns the number of affected rows
func (r *GatewayRepository) UpdateByPK(ctx context.Context, entity *schema.Entity, pk uint, fields map[string]interface{}) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.guard(tx, entity, pk); err != nil {
			return err
		}
		// moving a child row under a locked owner is refused as well
		if entity.Owner != nil {
			if newOwner, ok := fields[entity.Owner.ForeignKey].(int64); ok && newOwner > 0 {
				owner, err := r.registry.Lookup(entity.Owner.Table)
				if err != nil {
					return err
				}
				if err := checkLock(tx, owner, uint(newOwner)); err != nil {
					return err
				}
			}
		}

		result := tx.Model(entity.NewRecord()).Where(pkEq(entity, pk)).Updates(fields)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

// DeleteByPK deletes the row addressed by pk together with its owned children
func (r *GatewayRepository) DeleteByPK(ctx context.Context, entity *schema.Entity, pk uint) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.guard(tx, entity, pk); err != nil {
			return err
		}
		if err := r.deleteChildren(tx, entity, []uint{pk}); err != nil {
			return err
		}
		result := tx.Where(pkEq(entity, pk)).Delete(entity.NewRecord())
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

// guard checks that the row exists and that neither it nor its owner is locked
func (r *GatewayRepository) guard(tx *gorm.DB, entity *schema.Entity, pk uint) error {
	var n int64
	if err := tx.Model(entity.NewRecord()).Where(pkEq(entity, pk)).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	if err := checkLock(tx, entity, pk); err != nil {
		return err
	}
	if entity.Owner == nil {
		return nil
	}

	owner, err := r.registry.Lookup(entity.Owner.Table)
	if err != nil {
		return err
	}
	var ownerPKs []uint
	if err := tx.Model(entity.NewRecord()).Where(pkEq(entity, pk)).Pluck(entity.Owner.ForeignKey, &ownerPKs).Error; err != nil {
		return err
	}
	for _, ownerPK := range ownerPKs {
		if err := checkLock(tx, owner, ownerPK); err != nil {
			return err
		}
	}
	return nil
}

func (r *GatewayRepository) deleteChildren(tx *gorm.DB, entity *schema.Entity, pks []uint) error {
	for _, child := range entity.Children {
		childEntity, err := r.registry.Lookup(child.Table)
		if err != nil {
			return err
		}
		in := clause.IN{Column: clause.Column{Name: child.ForeignKey}, Values: uintValues(pks)}

		var childPKs []uint
		if err := tx.Model(childEntity.NewRecord()).Where(in).Pluck(childEntity.PrimaryKey, &childPKs).Error; err != nil {
			return err
		}
		if len(childPKs) == 0 {
			continue
		}
		if err := r.deleteChildren(tx, childEntity, childPKs); err != nil {
			return err
		}
		if err := tx.Where(in).Delete(childEntity.NewRecord()).Error; err != nil {
			return err
		}
	}
	return nil
}

func checkLock(tx *gorm.DB, entity *schema.Entity, pk uint) error {
	if entity.Lock == nil {
		return nil
	}
	var n int64
	err := tx.Model(entity.NewRecord()).
		Where(pkEq(entity, pk)).
		Where(clause.Eq{Column: clause.Column{Name: entity.Lock.Column}, Value: entity.Lock.Value}).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n > 0 {
		return entity.Lock.Err(pk)
	}
	return nil
}

func applySearch(query *gorm.DB, search *SearchFilter) *gorm.DB {
	if search == nil || search.Term == "" || len(search.Fields) == 0 {
		return query
	}
	pattern := "%" + escapeLike(strings.ToLower(search.Term)) + "%"

	// ILIKE folds case by the database's locale; sqlite's LOWER only folds ASCII letters
	match := func(column string) string {
		return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
	}
	if query.Dialector.Name() == "postgres" {
		match = func(column string) string {
			return column + ` ILIKE ? ESCAPE '\'`
		}
	}

	conds := make([]string, 0, len(search.Fields))
	args := make([]interface{}, 0, len(search.Fields))
	for _, field := range search.Fields {
		conds = append(conds, match(query.Statement.Quote(field)))
		args = append(args, pattern)
	}
	return query.Where("("+strings.Join(conds, " OR ")+")", args...)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func pkEq(entity *schema.Entity, pk uint) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: entity.PrimaryKey}, Value: pk}
}

func uintValues(ids []uint) []interface{} {
	values := make([]interface{}, len(ids))
	for i, id := range ids {
		values[i] = id
	}
	return values
}

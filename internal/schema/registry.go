package schema

import (
	"fmt"
	"sort"

	apperrors "business-manager-backend/internal/errors"
)

// ColumnType is the JSON-level type a column accepts through the gateway
type ColumnType string

const (
	TypeInteger   ColumnType = "integer"
	TypeNumber    ColumnType = "number"
	TypeText      ColumnType = "text"
	TypeBoolean   ColumnType = "boolean"
	TypeDate      ColumnType = "date"
	TypeTimestamp ColumnType = "timestamp"
)

// Column declares a single column of a registered table
type Column struct {
	Name       string
	Type       ColumnType
	Nullable   bool
	Required   bool
	ReadOnly   bool
	Searchable bool
	// Values restricts a text column to an enumeration
	Values []string
}

// Child is a table owned by the entity; its rows are deleted together with the owner
type Child struct {
	Table      string
	ForeignKey string
}

// Owner points a child table back at the table that owns it
type Owner struct {
	Table      string
	ForeignKey string
}

// Lock makes rows with Column == Value immutable through the gateway
type Lock struct {
	Column string
	Value  string
	Err    func(pk uint) error
}

// Entity is the registry entry of one table
type Entity struct {
	Table      string
	PrimaryKey string
	Columns    []Column
	Children   []Child
	Owner      *Owner
	Lock       *Lock

	newRecord func() interface{}
	newSlice  func() interface{}
	columns   map[string]Column
}

// Define builds an entity backed by the model type T. Rows read and written through the
// entity are decoded into T, so the JSON names of T must match the column names.
func Define[T any](table, primaryKey string, columns ...Column) *Entity {
	e := &Entity{
		Table:      table,
		PrimaryKey: primaryKey,
		Columns:    columns,
		newRecord:  func() interface{} { return new(T) },
		newSlice:   func() interface{} { return &[]T{} },
		columns:    make(map[string]Column, len(columns)),
	}
	for _, c := range columns {
		e.columns[c.Name] = c
	}
	return e
}

// WithChildren declares owned child tables
func (e *Entity) WithChildren(children ...Child) *Entity {
	e.Children = append(e.Children, children...)
	return e
}

// WithOwner declares the owning table of a child table
func (e *Entity) WithOwner(table, foreignKey string) *Entity {
	e.Owner = &Owner{Table: table, ForeignKey: foreignKey}
	return e
}

// WithLock declares the row lock of the table
func (e *Entity) WithLock(column, value string, err func(pk uint) error) *Entity {
	e.Lock = &Lock{Column: column, Value: value, Err: err}
	return e
}

// Column returns the declared column with the given name
func (e *Entity) Column(name string) (Column, bool) {
	c, ok := e.columns[name]
	return c, ok
}

// SearchableColumns returns the names of the columns that accept search terms
func (e *Entity) SearchableColumns() []string {
	var names []string
	for _, c := range e.Columns {
		if c.Searchable {
			names = append(names, c.Name)
		}
	}
	return names
}

// NewRecord returns a pointer to a zero model of the entity
func (e *Entity) NewRecord() interface{} {
	return e.newRecord()
}

// NewSlice returns a pointer to an empty slice of models of the entity
func (e *Entity) NewSlice() interface{} {
	return e.newSlice()
}

// Registry is the static set of tables reachable through the gateway
type Registry struct {
	entities map[string]*Entity
}

// NewRegistry creates a registry and checks that every declaration is consistent
func NewRegistry(entities ...*Entity) (*Registry, error) {
	r := &Registry{entities: make(map[string]*Entity, len(entities))}
	for _, e := range entities {
		if _, dup := r.entities[e.Table]; dup {
			return nil, fmt.Errorf("table %q registered twice", e.Table)
		}
		r.entities[e.Table] = e
	}
	for _, e := range entities {
		if err := r.check(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) check(e *Entity) error {
	pk, ok := e.Column(e.PrimaryKey)
	if !ok {
		return fmt.Errorf("%s: primary key column %q is not declared", e.Table, e.PrimaryKey)
	}
	if pk.Type != TypeInteger {
		return fmt.Errorf("%s: primary key column %q must be an integer", e.Table, e.PrimaryKey)
	}
	for _, c := range e.Columns {
		if c.Searchable && c.Type != TypeText {
			return fmt.Errorf("%s: searchable column %q must be text", e.Table, c.Name)
		}
	}
	for _, child := range e.Children {
		ce, ok := r.entities[child.Table]
		if !ok {
			return fmt.Errorf("%s: child table %q is not registered", e.Table, child.Table)
		}
		if _, ok := ce.Column(child.ForeignKey); !ok {
			return fmt.Errorf("%s: child column %s.%s is not declared", e.Table, child.Table, child.ForeignKey)
		}
	}
	if e.Owner != nil {
		if _, ok := r.entities[e.Owner.Table]; !ok {
			return fmt.Errorf("%s: owner table %q is not registered", e.Table, e.Owner.Table)
		}
		if _, ok := e.Column(e.Owner.ForeignKey); !ok {
			return fmt.Errorf("%s: owner column %q is not declared", e.Table, e.Owner.ForeignKey)
		}
	}
	if e.Lock != nil {
		if _, ok := e.Column(e.Lock.Column); !ok {
			return fmt.Errorf("%s: lock column %q is not declared", e.Table, e.Lock.Column)
		}
	}
	return nil
}

// Lookup returns the entity registered under table
func (r *Registry) Lookup(table string) (*Entity, error) {
	e, ok := r.entities[table]
	if !ok {
		return nil, apperrors.NewUnknownEntityError(table)
	}
	return e, nil
}

// Tables returns the registered table names in alphabetical order
func (r *Registry) Tables() []string {
	tables := make([]string, 0, len(r.entities))
	for t := range r.entities {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	return tables
}

package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	apperrors "business-manager-backend/internal/errors"
)

const dateLayout = "2006-01-02"

// CheckFields validates a caller supplied field map against the declared columns. Every
// violation is collected into a single ValidationError. The returned copy holds values
// converted to int64, float64, string, bool, time.Time or nil.
func (e *Entity) CheckFields(fields map[string]interface{}, create bool) (map[string]interface{}, error) {
	verr := &apperrors.ValidationError{}
	out := make(map[string]interface{}, len(fields))

	if len(fields) == 0 && !create {
		verr.Add("fields", "at least one field is required")
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		col, ok := e.Column(name)
		if !ok {
			verr.Add(name, "unknown column")
			continue
		}
		if col.ReadOnly {
			verr.Add(name, "column is read-only")
			continue
		}
		v, msg := col.convert(fields[name])
		if msg != "" {
			verr.Add(name, msg)
			continue
		}
		out[name] = v
	}

	if create {
		for _, col := range e.Columns {
			if !col.Required {
				continue
			}
			if _, present := fields[col.Name]; !present {
				verr.Add(col.Name, "is required")
			}
		}
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c Column) convert(v interface{}) (interface{}, string) {
	if v == nil {
		if c.Nullable {
			return nil, ""
		}
		return nil, "must not be null"
	}

	switch c.Type {
	case TypeInteger:
		n, ok := number(v)
		if !ok || n != math.Trunc(n) {
			return nil, "must be an integer"
		}
		return int64(n), ""
	case TypeNumber:
		n, ok := number(v)
		if !ok {
			return nil, "must be a number"
		}
		return n, ""
	case TypeBoolean:
		b, ok := v.(bool)
		if !ok {
			return nil, "must be a boolean"
		}
		return b, ""
	case TypeDate, TypeTimestamp:
		s, ok := v.(string)
		if !ok {
			return nil, "must be a date string"
		}
		t, err := ParseDate(s)
		if err != nil {
			return nil, "must be a date (YYYY-MM-DD) or RFC 3339 timestamp"
		}
		return t, ""
	default:
		s, ok := v.(string)
		if !ok {
			return nil, "must be a string"
		}
		if len(c.Values) > 0 && !contains(c.Values, s) {
			return nil, "must be one of: " + strings.Join(c.Values, ", ")
		}
		return s, ""
	}
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// ParseDate accepts a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// PrimaryKeyValue extracts the primary key from update/delete conditions. The conditions must
// contain the primary key column and nothing else.
func (e *Entity) PrimaryKeyValue(conditions map[string]interface{}) (uint, error) {
	if len(conditions) == 0 {
		return 0, apperrors.NewInvalidConditionsError(e.Table, "conditions are empty")
	}
	raw, ok := conditions[e.PrimaryKey]
	if !ok {
		return 0, apperrors.NewInvalidConditionsError(e.Table, fmt.Sprintf("conditions must include primary key %q", e.PrimaryKey))
	}
	for k := range conditions {
		if k != e.PrimaryKey {
			return 0, apperrors.NewInvalidConditionsError(e.Table, fmt.Sprintf("conditions may only contain primary key %q, got %q", e.PrimaryKey, k))
		}
	}
	n, ok := number(raw)
	if !ok || n < 1 || n != math.Trunc(n) {
		return 0, apperrors.NewInvalidConditionsError(e.Table, fmt.Sprintf("primary key %q must be a positive integer", e.PrimaryKey))
	}
	return uint(n), nil
}

// Decode overlays converted fields onto record through their JSON names
func Decode(fields map[string]interface{}, record interface{}) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, record); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return apperrors.NewValidationError(typeErr.Field, "has an invalid value")
		}
		return err
	}
	return nil
}

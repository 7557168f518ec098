package service_test

import (
	"errors"
	"testing"
	"time"

	apperrors "business-manager-backend/internal/errors"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC)

func clock() time.Time { return fixedNow }

func price(p float64) *float64 { return &p }

func str(s string) *string { return &s }

// fieldNames returns the fields of a ValidationError in report order
func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)
	names := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		names[i] = f.Field
	}
	return names
}

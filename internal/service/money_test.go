package service

import (
	"testing"

	"business-manager-backend/internal/database/models"
	apperrors "business-manager-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []pricedLine
		want  float64
	}{
		{"empty", nil, 0},
		{"single", []pricedLine{{price: 1000, quantity: 2}}, 2000},
		{"mixed", []pricedLine{{price: 1000, quantity: 2}, {price: 500, quantity: 1}}, 2500},
		{"binary fractions", []pricedLine{{price: 0.1, quantity: 3}, {price: 0.2, quantity: 1}}, 0.5},
		{"rounded to cents", []pricedLine{{price: 19.999, quantity: 1}}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sumLines(tt.lines))
		})
	}
}

func TestProjectProgress(t *testing.T) {
	item := func(status models.CompletionStatus) models.ProjectService {
		return models.ProjectService{CompletionStatus: status}
	}

	tests := []struct {
		name  string
		items []models.ProjectService
		want  float64
	}{
		{"no items", nil, 0},
		{"one of four", []models.ProjectService{
			item(models.CompletionStatusCompleted),
			item(models.CompletionStatusPending),
			item(models.CompletionStatusInProgress),
			item(models.CompletionStatusPending),
		}, 25},
		{"one of three", []models.ProjectService{
			item(models.CompletionStatusCompleted),
			item(models.CompletionStatusPending),
			item(models.CompletionStatusPending),
		}, 33.33},
		{"two of three", []models.ProjectService{
			item(models.CompletionStatusCompleted),
			item(models.CompletionStatusCompleted),
			item(models.CompletionStatusPending),
		}, 66.67},
		{"all", []models.ProjectService{item(models.CompletionStatusCompleted)}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, projectProgress(tt.items))
		})
	}
}

func TestCheckProposalTransition(t *testing.T) {
	tests := []struct {
		from, to models.ProposalStatus
		allowed  bool
	}{
		{models.ProposalStatusDraft, models.ProposalStatusSent, true},
		{models.ProposalStatusSent, models.ProposalStatusAccepted, true},
		{models.ProposalStatusSent, models.ProposalStatusRejected, true},
		{models.ProposalStatusRejected, models.ProposalStatusSent, true},
		{models.ProposalStatusDraft, models.ProposalStatusAccepted, false},
		{models.ProposalStatusAccepted, models.ProposalStatusSent, false},
		{models.ProposalStatusAccepted, models.ProposalStatusConverted, false},
		{models.ProposalStatusConverted, models.ProposalStatusSent, false},
		{models.ProposalStatusSent, models.ProposalStatusDraft, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := checkProposalTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsIllegalTransition(err))
		})
	}
}

func TestParseStatuses(t *testing.T) {
	s, err := parseProposalStatus(" sent ")
	require.NoError(t, err)
	assert.Equal(t, models.ProposalStatusSent, s)

	_, err = parseProposalStatus("archived")
	assert.True(t, apperrors.IsValidation(err))

	p, err := parseProjectStatus("on_hold")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusOnHold, p)

	_, err = parseProjectStatus("done")
	assert.True(t, apperrors.IsValidation(err))

	c, err := parseCompletionStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, models.CompletionStatusCompleted, c)

	_, err = parseCompletionStatus("")
	assert.True(t, apperrors.IsValidation(err))
}

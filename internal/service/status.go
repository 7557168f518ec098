package service

import (
	"strings"

	"business-manager-backend/internal/database/models"
	apperrors "business-manager-backend/internal/errors"
)

// proposalTransitions lists the status changes a user may make. Converted is reachable only
// through conversion and is never left.
var proposalTransitions = map[models.ProposalStatus][]models.ProposalStatus{
	models.ProposalStatusDraft:    {models.ProposalStatusSent},
	models.ProposalStatusSent:     {models.ProposalStatusAccepted, models.ProposalStatusRejected},
	models.ProposalStatusRejected: {models.ProposalStatusSent},
}

func parseProposalStatus(status string) (models.ProposalStatus, error) {
	s := models.ProposalStatus(strings.TrimSpace(status))
	if !s.IsValid() {
		return "", apperrors.NewValidationError("status", "must be one of: draft, sent, accepted, rejected, converted")
	}
	return s, nil
}

func checkProposalTransition(from, to models.ProposalStatus) error {
	for _, allowed := range proposalTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return apperrors.NewIllegalTransitionError("proposal", string(from), string(to))
}

func parseProjectStatus(status string) (models.ProjectStatus, error) {
	s := models.ProjectStatus(strings.TrimSpace(status))
	if !s.IsValid() {
		return "", apperrors.NewValidationError("status", "must be one of: not_started, in_progress, on_hold, completed, cancelled")
	}
	return s, nil
}

func parseCompletionStatus(status string) (models.CompletionStatus, error) {
	s := models.CompletionStatus(strings.TrimSpace(status))
	if !s.IsValid() {
		return "", apperrors.NewValidationError("status", "must be one of: pending, in_progress, completed")
	}
	return s, nil
}

package service

import "time"

// SetProposalClock fixes the date conversion uses as "today"
func SetProposalClock(s *ProposalService, now func() time.Time) {
	s.now = now
}

// SetProjectClock fixes the date project creation and completion use as "today"
func SetProjectClock(s *ProjectService, now func() time.Time) {
	s.now = now
}

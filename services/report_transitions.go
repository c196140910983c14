// services/report_transitions.go
package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/joveey/sistem-bk-online/entity"
)

// The lifecycle is monotonic: pending → accepted → completed. Each
// transition runs as a guarded UPDATE inside a transaction; zero rows
// affected means the report was not in the expected state (or a
// concurrent counselor got there first) and surfaces as ErrConflict.

// Accept assigns the calling counselor and moves pending → accepted.
// The assignment happens exactly once; a second accept fails.
func (s *ReportService) Accept(p entity.Principal, reportID uint) (*entity.Report, error) {
	if !CanAcceptReport(p) {
		return nil, ErrForbidden
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.FindByID(reportID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		affected, err := s.Repo.AcceptGuard(tx, reportID, p.ID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByID(reportID)
}

// Schedule sets the meeting time on an offline report. Only the assigned
// counselor may do this, and only after accepting; status is unchanged.
func (s *ReportService) Schedule(p entity.Principal, reportID uint, at time.Time) (*entity.Report, error) {
	report, err := s.Repo.FindByID(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if report.Type != entity.ReportTypeOffline {
		return nil, ErrForbidden
	}
	if !CanScheduleReport(p, report) {
		return nil, ErrForbidden
	}

	if err := s.Repo.SetSchedule(reportID, at); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(reportID)
}

// Complete moves accepted → completed. Completing a report that was never
// accepted fails the guard.
func (s *ReportService) Complete(p entity.Principal, reportID uint) (*entity.Report, error) {
	if !CanCompleteReport(p) {
		return nil, ErrForbidden
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.FindByID(reportID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		affected, err := s.Repo.CompleteGuard(tx, reportID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByID(reportID)
}

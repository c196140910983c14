package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/joveey/sistem-bk-online/entity"
	"github.com/joveey/sistem-bk-online/repository"
)

type ReportService struct {
	DB   *gorm.DB
	Repo *repository.ReportRepository
}

func NewReportService(db *gorm.DB, repo *repository.ReportRepository) *ReportService {
	return &ReportService{DB: db, Repo: repo}
}

// Create opens a report in pending state. For anonymous reports the owner
// reference stays nil no matter who the caller is; the identity is never
// recorded and cannot be recovered later.
func (s *ReportService) Create(p entity.Principal, title, description, rtype string, anonymous bool) (*entity.Report, error) {
	if !CanCreateReport(p) {
		return nil, ErrForbidden
	}

	report := &entity.Report{
		Title:       title,
		Description: description,
		Type:        rtype,
		Status:      entity.StatusPending,
		IsAnonymous: anonymous,
	}
	if !anonymous {
		studentID := p.ID
		report.StudentID = &studentID
	}

	if err := s.Repo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

// List: a student gets only their own reports, a counselor gets all of
// them, newest first.
func (s *ReportService) List(p entity.Principal) ([]entity.Report, error) {
	if p.IsStudent() {
		return s.Repo.FindAllByStudent(p.ID)
	}
	return s.Repo.FindAll()
}

// Detail returns the report with student and counselor. The chat log is
// included only for the participants the chat policy admits; other
// counselors can still read the report itself.
func (s *ReportService) Detail(p entity.Principal, reportID uint) (*entity.Report, error) {
	report, err := s.Repo.FindDetail(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !CanViewReport(p, report) {
		return nil, ErrForbidden
	}
	if !CanAccessChat(p, report) {
		report.Chats = nil
	}
	return report, nil
}

package repository

import (
	"time"

	"github.com/joveey/sistem-bk-online/entity"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) Create(report *entity.Report) error {
	return r.DB.Create(report).Error
}

func (r *ReportRepository) FindByID(id uint) (*entity.Report, error) {
	var report entity.Report
	if err := r.DB.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// FindDetail loads one report with its student, counselor and the full
// chat log in creation order.
func (r *ReportRepository) FindDetail(id uint) (*entity.Report, error) {
	var report entity.Report
	err := r.DB.
		Preload("Student").
		Preload("Counselor").
		Preload("Chats", func(db *gorm.DB) *gorm.DB {
			return db.Order("chats.created_at ASC")
		}).
		First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// FindAllByStudent returns the reports owned by one student, newest first.
// Anonymous reports have no owner, so they never match.
func (r *ReportRepository) FindAllByStudent(studentID uint) ([]entity.Report, error) {
	var reports []entity.Report
	err := r.DB.
		Preload("Student").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *ReportRepository) FindAll() ([]entity.Report, error) {
	var reports []entity.Report
	err := r.DB.
		Preload("Student").
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

// AcceptGuard performs the pending→accepted transition only when the
// report is still pending and unassigned. Zero rows affected means the
// report moved on (or never existed) and the caller lost the race.
func (r *ReportRepository) AcceptGuard(tx *gorm.DB, reportID, counselorID uint) (int64, error) {
	res := tx.Model(&entity.Report{}).
		Where("id = ? AND status = ? AND counselor_id IS NULL", reportID, entity.StatusPending).
		Updates(map[string]any{
			"counselor_id": counselorID,
			"status":       entity.StatusAccepted,
		})
	return res.RowsAffected, res.Error
}

// CompleteGuard performs accepted→completed under the same guard idiom.
func (r *ReportRepository) CompleteGuard(tx *gorm.DB, reportID uint) (int64, error) {
	res := tx.Model(&entity.Report{}).
		Where("id = ? AND status = ?", reportID, entity.StatusAccepted).
		Update("status", entity.StatusCompleted)
	return res.RowsAffected, res.Error
}

// SetSchedule stores the meeting time. Scheduling never changes status.
func (r *ReportRepository) SetSchedule(reportID uint, at time.Time) error {
	return r.DB.Model(&entity.Report{}).
		Where("id = ?", reportID).
		Update("scheduled_at", at).Error
}

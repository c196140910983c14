package repository

import (
	"github.com/joveey/sistem-bk-online/entity"

	"gorm.io/gorm"
)

// StudentRepository talks to the students table only.
type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) FindAll() ([]entity.Student, error) {
	var students []entity.Student
	err := r.DB.Order("name ASC").Find(&students).Error
	return students, err
}

func (r *StudentRepository) FindByID(id uint) (*entity.Student, error) {
	var student entity.Student
	if err := r.DB.First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByCode looks a student up by their login code.
func (r *StudentRepository) FindByCode(code string) (*entity.Student, error) {
	var student entity.Student
	if err := r.DB.Where("unique_code = ?", code).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// CountByCode counts students holding the code, excluding excludeID when
// non-zero (update re-validation must not match the record itself).
func (r *StudentRepository) CountByCode(code string, excludeID uint) (int64, error) {
	var count int64
	q := r.DB.Model(&entity.Student{}).Where("unique_code = ?", code)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *StudentRepository) Create(student *entity.Student) error {
	return r.DB.Create(student).Error
}

func (r *StudentRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Student{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the student and nulls out their reports' owner reference
// (SET NULL semantics regardless of whether the driver enforces the FK).
// The row is dropped for real so the unique_code can be handed out again.
func (r *StudentRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Report{}).
			Where("student_id = ?", id).
			Update("student_id", nil).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.Student{}, id).Error
	})
}

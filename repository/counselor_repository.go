package repository

import (
	"github.com/joveey/sistem-bk-online/entity"

	"gorm.io/gorm"
)

type CounselorRepository struct {
	DB *gorm.DB
}

func NewCounselorRepository(db *gorm.DB) *CounselorRepository {
	return &CounselorRepository{DB: db}
}

func (r *CounselorRepository) FindByEmail(email string) (*entity.Counselor, error) {
	var counselor entity.Counselor
	if err := r.DB.Where("email = ?", email).First(&counselor).Error; err != nil {
		return nil, err
	}
	return &counselor, nil
}

func (r *CounselorRepository) FindByID(id uint) (*entity.Counselor, error) {
	var counselor entity.Counselor
	if err := r.DB.First(&counselor, id).Error; err != nil {
		return nil, err
	}
	return &counselor, nil
}

func (r *CounselorRepository) Create(counselor *entity.Counselor) error {
	return r.DB.Create(counselor).Error
}

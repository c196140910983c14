package repository

import (
	"time"

	"github.com/joveey/sistem-bk-online/entity"

	"gorm.io/gorm"
)

// TokenRepository tracks issued tokens so logout can revoke them.
type TokenRepository struct {
	DB *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

func (r *TokenRepository) Create(token *entity.AccessToken) error {
	return r.DB.Create(token).Error
}

// IsActive reports whether the jti exists, is unrevoked and unexpired.
func (r *TokenRepository) IsActive(jti string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.AccessToken{}).
		Where("jti = ? AND revoked_at IS NULL AND expires_at > ?", jti, time.Now()).
		Count(&count).Error
	return count > 0, err
}

func (r *TokenRepository) Revoke(jti string) error {
	now := time.Now()
	return r.DB.Model(&entity.AccessToken{}).
		Where("jti = ? AND revoked_at IS NULL", jti).
		Update("revoked_at", now).Error
}

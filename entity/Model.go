package entity

import (
	"time"

	"gorm.io/gorm"
)

// Model mirrors gorm.Model with snake_case wire names so API payloads
// match the tagged fields. The soft-delete marker never leaves the server.
type Model struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

package repository

import (
	"github.com/joveey/sistem-bk-online/entity"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db}
}

// FindByReport returns the report's message log in creation order.
func (r *ChatRepository) FindByReport(reportID uint) ([]entity.Chat, error) {
	var chats []entity.Chat
	err := r.db.
		Where("report_id = ?", reportID).
		Order("created_at ASC").
		Find(&chats).Error
	return chats, err
}

// Create appends a message. Chats are never updated or deleted.
func (r *ChatRepository) Create(chat *entity.Chat) error {
	return r.db.Create(chat).Error
}

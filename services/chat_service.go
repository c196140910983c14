package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/joveey/sistem-bk-online/entity"
	"github.com/joveey/sistem-bk-online/repository"
)

type ChatService struct {
	reports *repository.ReportRepository
	chats   *repository.ChatRepository
}

func NewChatService(reports *repository.ReportRepository, chats *repository.ChatRepository) *ChatService {
	return &ChatService{reports: reports, chats: chats}
}

// List returns the report's chat log in creation order, after the access
// check.
func (s *ChatService) List(p entity.Principal, reportID uint) ([]entity.Chat, error) {
	if _, err := s.authorize(p, reportID); err != nil {
		return nil, err
	}
	return s.chats.FindByReport(reportID)
}

// Send appends a message. Sender id and kind always come from the
// authenticated principal, never from the request body.
func (s *ChatService) Send(p entity.Principal, reportID uint, body string) (*entity.Chat, error) {
	if _, err := s.authorize(p, reportID); err != nil {
		return nil, err
	}

	chat := &entity.Chat{
		ReportID:   reportID,
		SenderID:   p.ID,
		SenderKind: string(p.Kind),
		Body:       body,
	}
	if err := s.chats.Create(chat); err != nil {
		return nil, err
	}
	return chat, nil
}

// CanAccess exposes the chat access check for the websocket handler.
func (s *ChatService) CanAccess(p entity.Principal, reportID uint) (bool, error) {
	if _, err := s.authorize(p, reportID); err != nil {
		if errors.Is(err, ErrForbidden) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *ChatService) authorize(p entity.Principal, reportID uint) (*entity.Report, error) {
	report, err := s.reports.FindByID(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !CanAccessChat(p, report) {
		return nil, ErrForbidden
	}
	return report, nil
}

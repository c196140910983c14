package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/joveey/sistem-bk-online/entity"
	"github.com/joveey/sistem-bk-online/pkg/resp"
	"github.com/joveey/sistem-bk-online/services"
	"github.com/joveey/sistem-bk-online/utils"
)

type SendChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatNotifier pushes a freshly stored message to live websocket
// subscribers. May be nil when no hub is wired (tests).
type ChatNotifier interface {
	NotifyNewMessage(reportID uint, chat *entity.Chat)
}

type ChatController struct {
	service  *services.ChatService
	notifier ChatNotifier
}

func NewChatController(service *services.ChatService, notifier ChatNotifier) *ChatController {
	return &ChatController{service: service, notifier: notifier}
}

// GET /reports/:id/chats
func (cc *ChatController) List(c *gin.Context) {
	p, ok := utils.PrincipalFrom(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	chats, err := cc.service.List(p, paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, chats)
}

// POST /reports/:id/chats
func (cc *ChatController) Create(c *gin.Context) {
	p, ok := utils.PrincipalFrom(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req SendChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	chat, err := cc.service.Send(p, paramID(c), req.Message)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if cc.notifier != nil {
		cc.notifier.NotifyNewMessage(chat.ReportID, chat)
	}
	resp.Created(c, chat)
}

package ws

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/joveey/sistem-bk-online/entity"
	"github.com/joveey/sistem-bk-online/services"
	"github.com/joveey/sistem-bk-online/utils"
)

// ReportChatHub fans live chat messages out to every socket subscribed to
// a report. Access is the same strict policy as the REST chat endpoints.
type ReportChatHub struct {
	clients    map[uint]map[*websocket.Conn]bool // reportID -> set of clients
	broadcast  chan BroadcastMessage
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	service    *services.ChatService
}

// Subscription is one principal's connection to one report's chat.
type Subscription struct {
	Conn      *websocket.Conn
	ReportID  uint
	Principal entity.Principal
}

type BroadcastMessage struct {
	ReportID uint
	Message  *entity.Chat
}

func NewReportChatHub(service *services.ChatService) *ReportChatHub {
	return &ReportChatHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan BroadcastMessage),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		service:    service,
	}
}

func (h *ReportChatHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.ReportID] == nil {
				h.clients[sub.ReportID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.ReportID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.ReportID][sub.Conn]; ok {
				delete(h.clients[sub.ReportID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.ReportID] {
				if err := conn.WriteJSON(msg.Message); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.ReportID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyNewMessage lets the REST chat endpoint push into the same streams.
func (h *ReportChatHub) NotifyNewMessage(reportID uint, msg *entity.Chat) {
	h.broadcast <- BroadcastMessage{ReportID: reportID, Message: msg}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/reports/:id/chats
func (h *ReportChatHub) HandleWebSocket(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	reportID := uint(id)

	p, ok := utils.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	allowed, err := h.service.CanAccess(p, reportID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "report not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, ReportID: reportID, Principal: p}
	h.register <- sub

	go h.listenMessages(sub)
}

// listenMessages persists inbound frames and broadcasts the stored rows.
func (h *ReportChatHub) listenMessages(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		_, msgData, err := sub.Conn.ReadMessage()
		if err != nil {
			log.Printf("ws read error: %v", err)
			break
		}

		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(msgData, &payload); err != nil || payload.Message == "" {
			log.Printf("invalid payload: %v", err)
			continue
		}

		// sender always comes from the authenticated principal
		msg, err := h.service.Send(sub.Principal, sub.ReportID, payload.Message)
		if err != nil {
			log.Printf("save msg error: %v", err)
			continue
		}

		h.broadcast <- BroadcastMessage{ReportID: sub.ReportID, Message: msg}
	}
}

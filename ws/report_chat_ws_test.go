package ws_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/joveey/sistem-bk-online/entity"
	"github.com/joveey/sistem-bk-online/middlewares"
	"github.com/joveey/sistem-bk-online/repository"
	"github.com/joveey/sistem-bk-online/services"
	"github.com/joveey/sistem-bk-online/ws"
)

const testSecret = "test-secret"

type hubTest struct {
	t       *testing.T
	srv     *httptest.Server
	db      *gorm.DB
	auth    *services.AuthService
	reports *services.ReportService
	chats   *services.ChatService
}

func newHubTest(t *testing.T) *hubTest {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Student{}, &entity.Counselor{},
		&entity.Report{}, &entity.Chat{},
		&entity.AccessToken{},
	))

	reportRepo := repository.NewReportRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	chatSvc := services.NewChatService(reportRepo, repository.NewChatRepository(db))
	authSvc := services.NewAuthService(
		repository.NewStudentRepository(db),
		repository.NewCounselorRepository(db),
		tokenRepo, testSecret, time.Hour,
	)

	hub := ws.NewReportChatHub(chatSvc)
	go hub.Run()

	r := gin.New()
	r.GET("/ws/reports/:id/chats", middlewares.WSAuthMiddleware(testSecret, tokenRepo), hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &hubTest{
		t:       t,
		srv:     srv,
		db:      db,
		auth:    authSvc,
		reports: services.NewReportService(db, reportRepo),
		chats:   chatSvc,
	}
}

// seedCase creates an owner student, an assigned counselor and an accepted
// report, returning their tokens plus the report.
func (h *hubTest) seedCase() (studentTok, counselorTok string, report *entity.Report) {
	h.t.Helper()

	student := &entity.Student{UniqueCode: "STU-001", Name: "Alice", Class: "9A"}
	require.NoError(h.t, h.db.Create(student).Error)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(h.t, err)
	counselor := &entity.Counselor{Email: "guru@school.id", Name: "Counselor", Password: string(hash)}
	require.NoError(h.t, h.db.Create(counselor).Error)

	studentTok, _, err = h.auth.StudentLogin("STU-001")
	require.NoError(h.t, err)
	counselorTok, _, err = h.auth.CounselorLogin("guru@school.id", "secret123")
	require.NoError(h.t, err)

	p := entity.Principal{Kind: entity.KindStudent, ID: student.ID}
	report, err = h.reports.Create(p, "case", "d", entity.ReportTypeOnline, false)
	require.NoError(h.t, err)
	_, err = h.reports.Accept(entity.Principal{Kind: entity.KindCounselor, ID: counselor.ID}, report.ID)
	require.NoError(h.t, err)
	return studentTok, counselorTok, report
}

func (h *hubTest) dial(reportID uint, token string) (*websocket.Conn, *http.Response, error) {
	url := "ws" + strings.TrimPrefix(h.srv.URL, "http") +
		fmt.Sprintf("/ws/reports/%d/chats?token=%s", reportID, token)
	return websocket.DefaultDialer.Dial(url, nil)
}

func TestWebSocketRejectsOutsiders(t *testing.T) {
	h := newHubTest(t)
	studentTok, _, report := h.seedCase()

	// no token
	_, resp, err := h.dial(report.ID, "")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// an unassigned counselor is kept out of the stream
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	outsider := &entity.Counselor{Email: "other@school.id", Name: "Other", Password: string(hash)}
	require.NoError(t, h.db.Create(outsider).Error)
	outsiderTok, _, err := h.auth.CounselorLogin("other@school.id", "secret123")
	require.NoError(t, err)

	_, resp, err = h.dial(report.ID, outsiderTok)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// unknown report
	_, resp, err = h.dial(9999, studentTok)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWebSocketPersistsAndBroadcasts(t *testing.T) {
	h := newHubTest(t)
	studentTok, counselorTok, report := h.seedCase()

	studentConn, _, err := h.dial(report.ID, studentTok)
	require.NoError(t, err)
	defer studentConn.Close()
	counselorConn, _, err := h.dial(report.ID, counselorTok)
	require.NoError(t, err)
	defer counselorConn.Close()

	// let both registrations land before the first frame
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, studentConn.WriteJSON(gin.H{"message": "hello"}))

	require.NoError(t, counselorConn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got entity.Chat
	require.NoError(t, counselorConn.ReadJSON(&got))
	assert.Equal(t, "hello", got.Body)
	assert.Equal(t, string(entity.KindStudent), got.SenderKind)
	assert.Equal(t, report.ID, got.ReportID)
	assert.NotZero(t, got.ID, "broadcast frames carry the stored row")

	// the frame was persisted, not just relayed
	var count int64
	h.db.Model(&entity.Chat{}).Where("report_id = ?", report.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

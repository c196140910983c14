package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/joveey/sistem-bk-online/entity"
	"github.com/joveey/sistem-bk-online/repository"
	"github.com/joveey/sistem-bk-online/services"
)

// newTestDB opens a fresh in-memory sqlite database, unique per test so
// parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.Student{}, &entity.Counselor{},
		&entity.Report{}, &entity.Chat{},
		&entity.AccessToken{},
	)
	require.NoError(t, err)
	return db
}

func newReportService(db *gorm.DB) *services.ReportService {
	return services.NewReportService(db, repository.NewReportRepository(db))
}

func newChatService(db *gorm.DB) *services.ChatService {
	return services.NewChatService(repository.NewReportRepository(db), repository.NewChatRepository(db))
}

func createStudent(t *testing.T, db *gorm.DB, code, name string) *entity.Student {
	t.Helper()
	student := &entity.Student{UniqueCode: code, Name: name, Class: "9A"}
	require.NoError(t, db.Create(student).Error)
	return student
}

func createCounselor(t *testing.T, db *gorm.DB, email, password string) *entity.Counselor {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	counselor := &entity.Counselor{Email: email, Name: "Counselor", Password: string(hash)}
	require.NoError(t, db.Create(counselor).Error)
	return counselor
}

func studentPrincipal(id uint) entity.Principal {
	return entity.Principal{Kind: entity.KindStudent, ID: id}
}

func counselorPrincipal(id uint) entity.Principal {
	return entity.Principal{Kind: entity.KindCounselor, ID: id}
}

package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joveey/sistem-bk-online/entity"
	"github.com/joveey/sistem-bk-online/services"
)

func TestChat_SenderDerivedFromPrincipal(t *testing.T) {
	db := newTestDB(t)
	reports := newReportService(db)
	chats := newChatService(db)
	student := createStudent(t, db, "STU-001", "Alice")

	report, err := reports.Create(studentPrincipal(student.ID), "case", "d", entity.ReportTypeOnline, false)
	require.NoError(t, err)

	msg, err := chats.Send(studentPrincipal(student.ID), report.ID, "hello")
	require.NoError(t, err)

	assert.Equal(t, student.ID, msg.SenderID)
	assert.Equal(t, string(entity.KindStudent), msg.SenderKind)
	assert.Equal(t, "hello", msg.Body)
}

func TestChat_ChronologicalOrder(t *testing.T) {
	db := newTestDB(t)
	reports := newReportService(db)
	chats := newChatService(db)
	student := createStudent(t, db, "STU-001", "Alice")

	report, err := reports.Create(studentPrincipal(student.ID), "case", "d", entity.ReportTypeOnline, false)
	require.NoError(t, err)

	for _, body := range []string{"A", "B", "C"} {
		_, err := chats.Send(studentPrincipal(student.ID), report.ID, body)
		require.NoError(t, err)
	}

	log, err := chats.List(studentPrincipal(student.ID), report.ID)
	require.NoError(t, err)
	require.Len(t, log, 3)
	assert.Equal(t, "A", log[0].Body)
	assert.Equal(t, "B", log[1].Body)
	assert.Equal(t, "C", log[2].Body)
}

func TestChat_AccessControl(t *testing.T) {
	db := newTestDB(t)
	reports := newReportService(db)
	chats := newChatService(db)
	alice := createStudent(t, db, "STU-001", "Alice")
	bob := createStudent(t, db, "STU-002", "Bob")

	report, err := reports.Create(studentPrincipal(alice.ID), "case", "d", entity.ReportTypeOnline, false)
	require.NoError(t, err)
	_, err = reports.Accept(counselorPrincipal(5), report.ID)
	require.NoError(t, err)

	_, err = chats.Send(studentPrincipal(alice.ID), report.ID, "hi")
	require.NoError(t, err)
	_, err = chats.Send(counselorPrincipal(5), report.ID, "hello Alice")
	require.NoError(t, err)

	// outsiders are rejected for both read and write
	_, err = chats.List(studentPrincipal(bob.ID), report.ID)
	assert.ErrorIs(t, err, services.ErrForbidden)
	_, err = chats.Send(studentPrincipal(bob.ID), report.ID, "let me in")
	assert.ErrorIs(t, err, services.ErrForbidden)
	_, err = chats.List(counselorPrincipal(6), report.ID)
	assert.ErrorIs(t, err, services.ErrForbidden, "unassigned counselors have no chat access")

	log, err := chats.List(counselorPrincipal(5), report.ID)
	require.NoError(t, err)
	assert.Len(t, log, 2)
}

func TestChat_ReportNotFound(t *testing.T) {
	db := newTestDB(t)
	chats := newChatService(db)

	_, err := chats.Send(studentPrincipal(1), 9999, "hi")
	assert.ErrorIs(t, err, services.ErrNotFound)

	allowed, err := chats.CanAccess(studentPrincipal(1), 9999)
	assert.Error(t, err)
	assert.False(t, allowed)
}

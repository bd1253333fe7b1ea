package services

import (
	"testing"
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newBroadcastService собирает сервис без Telegram бота: nil-бот
// превращает уведомления в no-op
func newBroadcastService(db *gorm.DB) *BroadcastService {
	return NewBroadcastService(
		repository.NewBroadcastRepository(db),
		repository.NewContactMessageRepository(db),
		repository.NewStudentRepository(db),
		nil,
	)
}

func TestBroadcastCreateAnnouncement(t *testing.T) {
	db := newTestDB(t)
	svc := newBroadcastService(db)

	announcement, err := svc.CreateAnnouncement("Sports Day", "Next Friday", "", time.Time{})
	require.NoError(t, err)

	// Пустая видимость и дата получают значения по умолчанию
	assert.Equal(t, models.VisibilityPublic, announcement.Visibility)
	assert.False(t, announcement.Date.IsZero())

	listed, err := svc.ListAnnouncements()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Sports Day", listed[0].Title)
}

func TestBroadcastListEventsOnlyPublic(t *testing.T) {
	db := newTestDB(t)
	svc := newBroadcastService(db)

	classID := uuid.New()
	_, err := svc.CreateEvent("Open Day", "", time.Now().AddDate(0, 0, 3), nil, true)
	require.NoError(t, err)
	_, err = svc.CreateEvent("Class Trip", "", time.Now().AddDate(0, 0, 5), &classID, false)
	require.NoError(t, err)

	events, err := svc.ListEvents()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Open Day", events[0].Title)
}

func TestBroadcastCreateContactMessage(t *testing.T) {
	db := newTestDB(t)
	svc := newBroadcastService(db)

	studentID := seedStudent(t, db)

	msg, err := svc.CreateContactMessage(studentID, nil, "nonsense", "help please")
	require.NoError(t, err)

	// Неизвестный тип приводится к inquiry, статус стартует с pending
	assert.Equal(t, models.ContactInquiry, msg.Type)
	assert.Equal(t, models.ContactPending, msg.Status)
}

func TestBroadcastUpdateContactMessageStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newBroadcastService(db)

	studentID := seedStudent(t, db)
	msg, err := svc.CreateContactMessage(studentID, nil, models.ContactComplaint, "too much homework")
	require.NoError(t, err)

	updated, err := svc.UpdateContactMessageStatus(msg.ID, models.ContactResolved)
	require.NoError(t, err)
	assert.Equal(t, models.ContactResolved, updated.Status)

	_, err = svc.UpdateContactMessageStatus(msg.ID, "archived")
	assert.Error(t, err)

	_, err = svc.UpdateContactMessageStatus(uuid.New(), models.ContactRead)
	assert.ErrorIs(t, err, ErrContactMessageNotFound)
}

// seedStudent создает ученика с пользователем и классом
func seedStudent(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	require.NoError(t, db.Create(&models.User{
		ID:           userID,
		Name:         "Student",
		Email:        uuid.NewString() + "@test.local",
		PasswordHash: "x",
		Role:         models.RoleStudent,
	}).Error)

	class := models.Class{ID: uuid.New(), Name: "7", Section: "A"}
	require.NoError(t, db.Create(&class).Error)

	student := models.Student{ID: uuid.New(), UserID: userID, ClassID: class.ID, RollNumber: 1}
	require.NoError(t, db.Create(&student).Error)

	return student.ID
}

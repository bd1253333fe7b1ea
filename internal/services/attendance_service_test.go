package services

import (
	"testing"
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceServiceMarkDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(repository.NewAttendanceRepository(db))

	classID := uuid.New()
	date := time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC)
	student1 := uuid.New()
	student2 := uuid.New()

	entries := []StudentAttendanceEntry{
		{StudentID: student1, Status: models.AttendancePresent},
		{StudentID: student2, Status: models.AttendanceAbsent, Notes: "sick leave"},
	}

	records, err := svc.MarkDay(classID, date, entries)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, classID, records[0].ClassID)

	// Повторная отправка заменяет день, а не дописывает его
	records, err = svc.MarkDay(classID, date, entries)
	require.NoError(t, err)
	require.Len(t, records, 2)

	var count int64
	require.NoError(t, db.Model(&models.Attendance{}).Where("class_id = ?", classID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestAttendanceServiceMarkDayDefaultsToPresent(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(repository.NewAttendanceRepository(db))

	records, err := svc.MarkDay(uuid.New(), time.Now(), []StudentAttendanceEntry{
		{StudentID: uuid.New()},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendancePresent, records[0].Status)
}

func TestAttendanceServiceMarkDayRequiresStudentID(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(repository.NewAttendanceRepository(db))

	_, err := svc.MarkDay(uuid.New(), time.Now(), []StudentAttendanceEntry{{}})
	assert.Error(t, err)
}

func TestAttendanceServiceGetDayScopedToDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(repository.NewAttendanceRepository(db))

	classID := uuid.New()
	day1 := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	_, err := svc.MarkDay(classID, day1, []StudentAttendanceEntry{{StudentID: uuid.New()}})
	require.NoError(t, err)
	_, err = svc.MarkDay(classID, day2, []StudentAttendanceEntry{
		{StudentID: uuid.New()},
		{StudentID: uuid.New()},
	})
	require.NoError(t, err)

	records, err := svc.GetDay(classID, day1)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = svc.GetDay(classID, day2)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// Замена одного дня не трогает соседний
	_, err = svc.MarkDay(classID, day2, []StudentAttendanceEntry{{StudentID: uuid.New()}})
	require.NoError(t, err)

	records, err = svc.GetDay(classID, day1)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

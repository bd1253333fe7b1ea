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

func newTeacherDashboardService(db *gorm.DB) *TeacherDashboardService {
	return NewTeacherDashboardService(
		repository.NewTeacherRepository(db),
		repository.NewClassRepository(db),
		repository.NewStudentRepository(db),
		repository.NewTimetableRepository(db),
		repository.NewAttendanceRepository(db),
		repository.NewExamRepository(db),
		repository.NewProgressRepository(db),
		repository.NewBroadcastRepository(db),
		repository.NewContactMessageRepository(db),
	)
}

func TestTeacherDashboardUnknownTeacher(t *testing.T) {
	db := newTestDB(t)
	svc := newTeacherDashboardService(db)

	_, err := svc.GetDashboard(uuid.New())
	assert.ErrorIs(t, err, ErrTeacherNotFound)
}

func TestTeacherDashboard(t *testing.T) {
	db := newTestDB(t)
	svc := newTeacherDashboardService(db)

	// Предметник английского, ведет класс через программу предмета
	userID := uuid.New()
	require.NoError(t, db.Create(&models.User{
		ID:           userID,
		Name:         "Rahul Verma",
		Email:        "rahul@test.local",
		PasswordHash: "x",
		Role:         models.RoleTeacher,
	}).Error)

	english := models.Subject{ID: uuid.New(), Name: "English", Code: "ENG"}
	require.NoError(t, db.Create(&english).Error)

	teacherID := uuid.New()
	require.NoError(t, db.Create(&models.Teacher{
		ID:       teacherID,
		UserID:   userID,
		Subjects: []models.Subject{english},
	}).Error)

	class := models.Class{
		ID:       uuid.New(),
		Name:     "8",
		Section:  "B",
		Subjects: []models.Subject{english},
	}
	require.NoError(t, db.Create(&class).Error)

	// Два ученика с разной посещаемостью
	students := make([]models.Student, 0, 2)
	for i := 0; i < 2; i++ {
		stUserID := uuid.New()
		require.NoError(t, db.Create(&models.User{
			ID:           stUserID,
			Name:         "Student",
			Email:        uuid.NewString() + "@test.local",
			PasswordHash: "x",
			Role:         models.RoleStudent,
		}).Error)
		st := models.Student{ID: uuid.New(), UserID: stUserID, ClassID: class.ID, RollNumber: i + 1}
		require.NoError(t, db.Create(&st).Error)
		students = append(students, st)
	}

	// Первый ученик: 2 присутствия из 4 записей — 50%
	st1 := students[0].ID
	attendance := []models.Attendance{}
	for i := 0; i < 2; i++ {
		id := st1
		attendance = append(attendance, models.Attendance{
			ID: uuid.New(), StudentID: &id, ClassID: class.ID,
			Date: time.Now().AddDate(0, 0, -i), Status: models.AttendancePresent,
		})
	}
	for i := 2; i < 4; i++ {
		id := st1
		attendance = append(attendance, models.Attendance{
			ID: uuid.New(), StudentID: &id, ClassID: class.ID,
			Date: time.Now().AddDate(0, 0, -i), Status: models.AttendanceAbsent,
		})
	}
	require.NoError(t, db.Create(&attendance).Error)

	// Академический прогресс первого ученика: 80 и 71 дают 75.5
	require.NoError(t, db.Create(&[]models.Progress{
		{ID: uuid.New(), StudentID: st1, ClassID: class.ID, Subject: "English", Type: models.ProgressAcademic, Score: 80, Date: time.Now()},
		{ID: uuid.New(), StudentID: st1, ClassID: class.ID, Subject: "English", Type: models.ProgressAcademic, Score: 71, Date: time.Now()},
		// Поведенческая запись в средний балл не входит
		{ID: uuid.New(), StudentID: st1, ClassID: class.ID, Subject: "English", Type: models.ProgressBehavioral, Score: 10, Date: time.Now()},
	}).Error)

	// Экзамен с результатом
	exam := models.Exam{ID: uuid.New(), Title: "English Test", Subject: "English", ClassID: class.ID, Date: time.Now().AddDate(0, 0, -3), TotalMarks: 50}
	require.NoError(t, db.Create(&exam).Error)
	require.NoError(t, db.Create(&models.ExamResult{
		ID: uuid.New(), ExamID: exam.ID, StudentID: st1, MarksObtained: 42, Grade: "A",
	}).Error)

	// Видимость объявлений: публичное и чужое адресное
	require.NoError(t, db.Create(&[]models.Announcement{
		{ID: uuid.New(), Title: "Public", Content: "x", Date: time.Now(), Visibility: models.VisibilityPublic},
		{ID: uuid.New(), Title: "Other class only", Content: "x", Date: time.Now(), Visibility: "class:" + uuid.NewString()},
	}).Error)

	// Будущее мероприятие класса
	require.NoError(t, db.Create(&models.Event{
		ID: uuid.New(), Title: "Field Trip", Date: time.Now().AddDate(0, 0, 5), ClassID: &class.ID,
	}).Error)

	// Обращения: жалоба и отзыв
	require.NoError(t, db.Create(&[]models.ContactMessage{
		{ID: uuid.New(), StudentID: st1, TeacherID: &teacherID, Type: models.ContactComplaint, Message: "x", Status: models.ContactPending, Date: time.Now()},
		{ID: uuid.New(), StudentID: students[1].ID, Type: models.ContactFeedback, Message: "y", Status: models.ContactPending, Date: time.Now()},
	}).Error)

	dashboard, err := svc.GetDashboard(userID)
	require.NoError(t, err)

	assert.Equal(t, "Rahul Verma", dashboard.Teacher.Name)
	assert.Equal(t, []string{"English"}, dashboard.Teacher.Subjects)

	require.Len(t, dashboard.Classes, 1)
	assert.Equal(t, 2, dashboard.Classes[0].StudentCount)

	require.Len(t, dashboard.Students, 2)
	assert.Equal(t, 50.0, dashboard.Students[0].Attendance)
	assert.Equal(t, 75.5, dashboard.Students[0].AvgScore)
	assert.Equal(t, 0.0, dashboard.Students[1].Attendance)

	// Чужое адресное объявление не видно
	require.Len(t, dashboard.Announcements, 1)
	assert.Equal(t, "Public", dashboard.Announcements[0].Title)

	require.Len(t, dashboard.Events, 1)

	require.Len(t, dashboard.Exams, 1)
	assert.Equal(t, 1, dashboard.Exams[0].ResultsCount)
	require.Len(t, dashboard.ExamResults, 1)
	require.Len(t, dashboard.ExamResults[0].Results, 1)
	assert.Equal(t, 42, dashboard.ExamResults[0].Results[0].MarksObtained)

	// Посещаемость сгруппирована по классу
	require.Contains(t, dashboard.Attendance, class.ID)
	assert.Len(t, dashboard.Attendance[class.ID], 4)

	// Обращения: адресованное преподавателю и отправленное его учеником
	assert.Len(t, dashboard.ContactMessages, 2)

	stats := dashboard.Statistics
	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 25.0, stats.AvgAttendance) // (50 + 0) / 2
	assert.Equal(t, 1, stats.Complaints)
	assert.Equal(t, 1, stats.UpcomingEvents)
	assert.Equal(t, 1, stats.ContactStats.Complaint)
	assert.Equal(t, 1, stats.ContactStats.Feedback)
	assert.Equal(t, 0, stats.ContactStats.Inquiry)
}

func TestTeacherDashboardEmptyTeacher(t *testing.T) {
	db := newTestDB(t)
	svc := newTeacherDashboardService(db)

	userID := uuid.New()
	require.NoError(t, db.Create(&models.User{
		ID:           userID,
		Name:         "New Teacher",
		Email:        "new@test.local",
		PasswordHash: "x",
		Role:         models.RoleTeacher,
	}).Error)
	require.NoError(t, db.Create(&models.Teacher{ID: uuid.New(), UserID: userID}).Error)

	dashboard, err := svc.GetDashboard(userID)
	require.NoError(t, err)

	assert.Empty(t, dashboard.Classes)
	assert.Empty(t, dashboard.Students)
	assert.Equal(t, 0, dashboard.Statistics.TotalStudents)
	assert.Equal(t, 0.0, dashboard.Statistics.AvgAttendance)
	require.Len(t, dashboard.Schedule, 6)
}

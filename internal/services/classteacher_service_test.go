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

// classTeacherFixture держит созданные в базе сущности теста
type classTeacherFixture struct {
	svc       *ClassTeacherService
	db        *gorm.DB
	userID    uuid.UUID
	teacherID uuid.UUID
	homeClass models.Class
	otherCls  models.Class
	students  []models.Student
}

// newClassTeacherFixture создает руководителя с домашним классом 7A,
// тремя учениками и уроками в 7A и 8B
func newClassTeacherFixture(t *testing.T) *classTeacherFixture {
	t.Helper()
	db := newTestDB(t)

	f := &classTeacherFixture{
		db:        db,
		userID:    uuid.New(),
		teacherID: uuid.New(),
	}
	f.svc = NewClassTeacherService(
		repository.NewTeacherRepository(db),
		repository.NewClassRepository(db),
		repository.NewStudentRepository(db),
		repository.NewTimetableRepository(db),
		repository.NewAttendanceRepository(db),
		repository.NewExamRepository(db),
		repository.NewBroadcastRepository(db),
	)

	require.NoError(t, db.Create(&models.User{
		ID:           f.userID,
		Name:         "Anita Desai",
		Email:        "anita@test.local",
		PasswordHash: "x",
		Role:         models.RoleClassTeacher,
	}).Error)
	require.NoError(t, db.Create(&models.Teacher{
		ID:     f.teacherID,
		UserID: f.userID,
	}).Error)

	f.homeClass = models.Class{
		ID:             uuid.New(),
		Name:           "7",
		Section:        "A",
		ClassTeacherID: &f.teacherID,
	}
	f.otherCls = models.Class{
		ID:      uuid.New(),
		Name:    "8",
		Section: "B",
	}
	require.NoError(t, db.Create(&[]models.Class{f.homeClass, f.otherCls}).Error)

	for i := 0; i < 3; i++ {
		userID := uuid.New()
		require.NoError(t, db.Create(&models.User{
			ID:           userID,
			Name:         "Student",
			Email:        uuid.NewString() + "@test.local",
			PasswordHash: "x",
			Role:         models.RoleStudent,
		}).Error)
		st := models.Student{
			ID:         uuid.New(),
			UserID:     userID,
			ClassID:    f.homeClass.ID,
			RollNumber: i + 1,
		}
		require.NoError(t, db.Create(&st).Error)
		f.students = append(f.students, st)
	}

	timetable := []models.TimetableEntry{
		{ID: uuid.New(), ClassID: f.homeClass.ID, Day: "Monday", Period: 1, TeacherID: f.teacherID, Subject: "Mathematics"},
		{ID: uuid.New(), ClassID: f.homeClass.ID, Day: "Monday", Period: 2, TeacherID: f.teacherID, Subject: "Mathematics"},
		{ID: uuid.New(), ClassID: f.otherCls.ID, Day: "Tuesday", Period: 1, TeacherID: f.teacherID, Subject: "Science"},
	}
	require.NoError(t, db.Create(&timetable).Error)

	return f
}

func TestClassTeacherGetDashboardUnknownTeacher(t *testing.T) {
	db := newTestDB(t)
	svc := NewClassTeacherService(
		repository.NewTeacherRepository(db),
		repository.NewClassRepository(db),
		repository.NewStudentRepository(db),
		repository.NewTimetableRepository(db),
		repository.NewAttendanceRepository(db),
		repository.NewExamRepository(db),
		repository.NewBroadcastRepository(db),
	)

	_, err := svc.GetDashboard(uuid.New())
	assert.ErrorIs(t, err, ErrTeacherNotFound)
}

func TestClassTeacherGetDashboard(t *testing.T) {
	f := newClassTeacherFixture(t)

	// Агрегаты посещаемости домашнего класса: 3/4 и 1/2 дают 67% суммарно
	require.NoError(t, f.db.Create(&[]models.Attendance{
		{ID: uuid.New(), ClassID: f.homeClass.ID, Date: time.Now().AddDate(0, 0, -1), Present: 3, Absent: 1},
		{ID: uuid.New(), ClassID: f.homeClass.ID, Date: time.Now().AddDate(0, 0, -2), Present: 1, Absent: 1},
	}).Error)

	// Экзамен в окне 30 дней и экзамен за его пределами
	require.NoError(t, f.db.Create(&[]models.Exam{
		{ID: uuid.New(), Title: "Unit Test", Subject: "Mathematics", ClassID: f.homeClass.ID, Date: time.Now().AddDate(0, 0, 7), TotalMarks: 50},
		{ID: uuid.New(), Title: "Finals", Subject: "Mathematics", ClassID: f.homeClass.ID, Date: time.Now().AddDate(0, 0, 60), TotalMarks: 100},
	}).Error)

	dashboard, err := f.svc.GetDashboard(f.userID)
	require.NoError(t, err)

	assert.Equal(t, "Anita Desai", dashboard.User.Name)
	require.NotNil(t, dashboard.MyClass)
	assert.Equal(t, f.homeClass.ID, dashboard.MyClass.ID)
	assert.EqualValues(t, 3, dashboard.MyClass.StudentsCount)
	assert.Equal(t, 67, dashboard.MyClass.AvgAttendance)

	// Два класса из расписания, все три ученика учатся у руководителя
	assert.Equal(t, 2, dashboard.Stats.TeachingClassesCount)
	assert.EqualValues(t, 3, dashboard.Stats.TotalStudentsTaught)
	assert.EqualValues(t, 3, dashboard.Stats.MyClassStudentsCount)

	// Дальний экзамен не попадает в окно ближайших
	require.Len(t, dashboard.UpcomingExams, 1)
	assert.Equal(t, "Unit Test", dashboard.UpcomingExams[0].Title)
	assert.Equal(t, "7 A", dashboard.UpcomingExams[0].ClassName)
	assert.Equal(t, 1, dashboard.Stats.UpcomingExamsCount)

	assert.Len(t, dashboard.RecentAttendance, 2)
}

func TestClassTeacherGetDashboardWithoutHomeClass(t *testing.T) {
	f := newClassTeacherFixture(t)

	// Отвязываем домашний класс, уроки в расписании остаются
	require.NoError(t, f.db.Model(&models.Class{}).
		Where("id = ?", f.homeClass.ID).
		Update("class_teacher_id", nil).Error)

	dashboard, err := f.svc.GetDashboard(f.userID)
	require.NoError(t, err)

	assert.Nil(t, dashboard.MyClass)
	assert.EqualValues(t, 0, dashboard.Stats.MyClassStudentsCount)
	assert.Equal(t, 2, dashboard.Stats.TeachingClassesCount)
}

func TestClassTeacherGetMyClassDetails(t *testing.T) {
	f := newClassTeacherFixture(t)

	// Поименная посещаемость: первый ученик 3 из 4, второй без записей
	st1 := f.students[0].ID
	records := []models.Attendance{}
	for i := 0; i < 3; i++ {
		id := st1
		records = append(records, models.Attendance{
			ID: uuid.New(), StudentID: &id, ClassID: f.homeClass.ID,
			Date: time.Now().AddDate(0, 0, -i), Status: models.AttendancePresent,
		})
	}
	id := st1
	records = append(records, models.Attendance{
		ID: uuid.New(), StudentID: &id, ClassID: f.homeClass.ID,
		Date: time.Now().AddDate(0, 0, -3), Status: models.AttendanceAbsent,
	})
	require.NoError(t, f.db.Create(&records).Error)

	// Два экзамена: 80/100 и 60/100 дают средний балл 70
	exam1 := models.Exam{ID: uuid.New(), Title: "Exam 1", Subject: "Mathematics", ClassID: f.homeClass.ID, Date: time.Now().AddDate(0, 0, -20), TotalMarks: 100}
	exam2 := models.Exam{ID: uuid.New(), Title: "Exam 2", Subject: "Mathematics", ClassID: f.homeClass.ID, Date: time.Now().AddDate(0, 0, -10), TotalMarks: 100}
	require.NoError(t, f.db.Create(&[]models.Exam{exam1, exam2}).Error)
	require.NoError(t, f.db.Create(&[]models.ExamResult{
		{ID: uuid.New(), ExamID: exam1.ID, StudentID: st1, MarksObtained: 80},
		{ID: uuid.New(), ExamID: exam2.ID, StudentID: st1, MarksObtained: 60},
	}).Error)

	details, err := f.svc.GetMyClassDetails(f.userID)
	require.NoError(t, err)

	assert.Equal(t, f.homeClass.ID, details.Class.ID)
	assert.Equal(t, 3, details.Class.TotalStudents)
	require.Len(t, details.Students, 3)

	// Ученики отсортированы по номеру в журнале
	first := details.Students[0]
	assert.Equal(t, 1, first.RollNumber)
	assert.Equal(t, 75, first.AttendancePercentage)
	assert.Equal(t, 70, first.AvgMarks)
	assert.Equal(t, 4, first.TotalAttendanceRecords)

	// Ученик без записей получает нули, а не ошибку
	second := details.Students[1]
	assert.Equal(t, 0, second.AttendancePercentage)
	assert.Equal(t, 0, second.AvgMarks)
	assert.Equal(t, 0, second.TotalAttendanceRecords)
}

func TestClassTeacherGetMyClassDetailsNoClassAssigned(t *testing.T) {
	f := newClassTeacherFixture(t)

	require.NoError(t, f.db.Model(&models.Class{}).
		Where("id = ?", f.homeClass.ID).
		Update("class_teacher_id", nil).Error)

	_, err := f.svc.GetMyClassDetails(f.userID)
	assert.ErrorIs(t, err, ErrNoClassAssigned)
}

func TestClassTeacherGetTeachingClasses(t *testing.T) {
	f := newClassTeacherFixture(t)

	classes, err := f.svc.GetTeachingClasses(f.userID)
	require.NoError(t, err)
	require.Len(t, classes, 2)

	// Два урока математики в 7A сворачиваются в один класс с одним предметом
	home := classes[0]
	assert.Equal(t, f.homeClass.ID, home.ID)
	assert.Equal(t, []string{"Mathematics"}, home.Subjects)
	assert.Equal(t, 2, home.PeriodsCount)
	assert.EqualValues(t, 3, home.StudentsCount)
	assert.Len(t, home.Schedule, 2)

	other := classes[1]
	assert.Equal(t, f.otherCls.ID, other.ID)
	assert.Equal(t, 1, other.PeriodsCount)
	assert.EqualValues(t, 0, other.StudentsCount)
}

func TestClassTeacherGetTimetable(t *testing.T) {
	f := newClassTeacherFixture(t)

	timetable, err := f.svc.GetTimetable(f.userID)
	require.NoError(t, err)

	require.Len(t, timetable, 6)
	assert.Len(t, timetable["Monday"], 2)
	assert.Len(t, timetable["Tuesday"], 1)
	assert.Empty(t, timetable["Saturday"])

	assert.Equal(t, 1, timetable["Monday"][0].Period)
	assert.Equal(t, "7 A", timetable["Monday"][0].ClassName)
}

func TestClassTeacherGetExams(t *testing.T) {
	f := newClassTeacherFixture(t)

	require.NoError(t, f.db.Create(&[]models.Exam{
		{ID: uuid.New(), Title: "Past", Subject: "Mathematics", ClassID: f.homeClass.ID, Date: time.Now().AddDate(0, 0, -5), TotalMarks: 50},
		{ID: uuid.New(), Title: "Future", Subject: "Science", ClassID: f.otherCls.ID, Date: time.Now().AddDate(0, 0, 5), TotalMarks: 50},
	}).Error)

	exams, err := f.svc.GetExams(f.userID)
	require.NoError(t, err)
	require.Len(t, exams, 2)

	// Свежие первыми, прошедшие помечены
	assert.Equal(t, "Future", exams[0].Title)
	assert.False(t, exams[0].IsPast)
	assert.Equal(t, "Past", exams[1].Title)
	assert.True(t, exams[1].IsPast)
}

func TestClassTeacherGetAnnouncements(t *testing.T) {
	f := newClassTeacherFixture(t)

	foreign := uuid.New()
	require.NoError(t, f.db.Create(&[]models.Announcement{
		{ID: uuid.New(), Title: "School holiday", Visibility: "public", Date: time.Now().AddDate(0, 0, -1)},
		{ID: uuid.New(), Title: "Class meeting", Visibility: "class:" + f.homeClass.ID.String(), Date: time.Now()},
		{ID: uuid.New(), Title: "Not for us", Visibility: "class:" + foreign.String(), Date: time.Now()},
	}).Error)

	announcements, err := f.svc.GetAnnouncements(f.userID)
	require.NoError(t, err)
	require.Len(t, announcements, 2)

	// Свежие первыми, чужие классы отфильтрованы
	assert.Equal(t, "Class meeting", announcements[0].Title)
	assert.Equal(t, "School holiday", announcements[1].Title)
}

func TestClassTeacherGetEvents(t *testing.T) {
	f := newClassTeacherFixture(t)

	foreign := uuid.New()
	require.NoError(t, f.db.Create(&[]models.Event{
		{ID: uuid.New(), Title: "Sports day", Public: true, Date: time.Now().AddDate(0, 0, 3)},
		{ID: uuid.New(), Title: "Science fair", ClassID: &f.otherCls.ID, Date: time.Now().AddDate(0, 0, 1)},
		{ID: uuid.New(), Title: "Private trip", ClassID: &foreign, Date: time.Now().AddDate(0, 0, 2)},
	}).Error)

	events, err := f.svc.GetEvents(f.userID)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "Science fair", events[0].Title)
	assert.Equal(t, "Sports day", events[1].Title)
}

func TestClassTeacherGetAnnouncementsUnknownTeacher(t *testing.T) {
	f := newClassTeacherFixture(t)

	_, err := f.svc.GetAnnouncements(uuid.New())
	assert.ErrorIs(t, err, ErrTeacherNotFound)
}

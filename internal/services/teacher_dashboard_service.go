package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const visibleAnnouncementsLimit = 20

// TeacherDashboardService собирает составной ответ панели преподавателя-
// предметника: классы, ученики с метриками, расписание, объявления,
// мероприятия, экзамены, посещаемость и обращения одним ответом.
type TeacherDashboardService struct {
	teacherRepo    repository.TeacherRepository
	classRepo      repository.ClassRepository
	studentRepo    repository.StudentRepository
	timetableRepo  repository.TimetableRepository
	attendanceRepo repository.AttendanceRepository
	examRepo       repository.ExamRepository
	progressRepo   repository.ProgressRepository
	broadcastRepo  repository.BroadcastRepository
	contactRepo    repository.ContactMessageRepository
}

// NewTeacherDashboardService создает новый сервис панели предметника
func NewTeacherDashboardService(
	teacherRepo repository.TeacherRepository,
	classRepo repository.ClassRepository,
	studentRepo repository.StudentRepository,
	timetableRepo repository.TimetableRepository,
	attendanceRepo repository.AttendanceRepository,
	examRepo repository.ExamRepository,
	progressRepo repository.ProgressRepository,
	broadcastRepo repository.BroadcastRepository,
	contactRepo repository.ContactMessageRepository,
) *TeacherDashboardService {
	return &TeacherDashboardService{
		teacherRepo:    teacherRepo,
		classRepo:      classRepo,
		studentRepo:    studentRepo,
		timetableRepo:  timetableRepo,
		attendanceRepo: attendanceRepo,
		examRepo:       examRepo,
		progressRepo:   progressRepo,
		broadcastRepo:  broadcastRepo,
		contactRepo:    contactRepo,
	}
}

// TeacherProfile представляет профиль преподавателя в ответе панели
type TeacherProfile struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Subjects []string  `json:"subjects"`
}

// TeacherClass представляет класс преподавателя со счетчиком учеников
type TeacherClass struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Section      string           `json:"section"`
	TeacherID    *uuid.UUID       `json:"teacherId"`
	Subjects     []models.Subject `json:"subjects"`
	StudentCount int              `json:"studentCount"`
}

// TeacherStudent представляет ученика с метриками в ответе панели
type TeacherStudent struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Roll       int       `json:"roll"`
	ClassID    uuid.UUID `json:"classId"`
	ClassName  string    `json:"className"`
	Section    string    `json:"section"`
	Attendance float64   `json:"attendance"`
	AvgScore   float64   `json:"avgScore"`
	Avatar     string    `json:"avatar"`
}

// ExamResultGroup представляет результаты одного экзамена
type ExamResultGroup struct {
	ExamID    uuid.UUID            `json:"examId"`
	ExamTitle string               `json:"examTitle"`
	ClassID   uuid.UUID            `json:"classId"`
	ClassName string               `json:"className"`
	Date      time.Time            `json:"date"`
	Subject   string               `json:"subject"`
	Results   []ExamResultSnapshot `json:"results"`
}

// ExamResultSnapshot представляет один результат внутри группы
type ExamResultSnapshot struct {
	StudentID     uuid.UUID `json:"studentId"`
	MarksObtained int       `json:"marksObtained"`
	Grade         string    `json:"grade"`
}

// ClassAttendanceRecord представляет запись посещаемости в группировке по классам
type ClassAttendanceRecord struct {
	ID      uuid.UUID               `json:"id"`
	ClassID uuid.UUID               `json:"classId"`
	Date    time.Time               `json:"date"`
	Present int                     `json:"present"`
	Total   int                     `json:"total"`
	Status  models.AttendanceStatus `json:"status"`
}

// ContactMessageView представляет обращение в ответе панели
type ContactMessageView struct {
	ID          uuid.UUID                   `json:"id"`
	StudentID   uuid.UUID                   `json:"studentId"`
	StudentName string                      `json:"studentName"`
	Type        models.ContactMessageType   `json:"type"`
	Message     string                      `json:"message"`
	Date        time.Time                   `json:"date"`
	Status      models.ContactMessageStatus `json:"status"`
}

// ContactStats представляет счетчики обращений по типам
type ContactStats struct {
	Feedback  int `json:"feedback"`
	Complaint int `json:"complaint"`
	Inquiry   int `json:"inquiry"`
}

// TeacherStatistics представляет сводные счетчики панели предметника
type TeacherStatistics struct {
	TotalStudents  int          `json:"totalStudents"`
	AvgAttendance  float64      `json:"avgAttendance"`
	Complaints     int          `json:"complaints"`
	UpcomingEvents int          `json:"upcomingEvents"`
	ContactStats   ContactStats `json:"contactStats"`
}

// TeacherDashboard представляет составной ответ панели предметника
type TeacherDashboard struct {
	Teacher         TeacherProfile                        `json:"teacher"`
	Classes         []TeacherClass                        `json:"classes"`
	Students        []TeacherStudent                      `json:"students"`
	Schedule        map[string][]TimetablePeriod          `json:"schedule"`
	Announcements   []models.Announcement                 `json:"announcements"`
	Events          []models.Event                        `json:"events"`
	Exams           []TeacherExam                         `json:"exams"`
	ExamResults     []ExamResultGroup                     `json:"examResults"`
	Attendance      map[uuid.UUID][]ClassAttendanceRecord `json:"attendance"`
	ContactMessages []ContactMessageView                  `json:"contactMessages"`
	Statistics      TeacherStatistics                     `json:"statistics"`
}

// GetDashboard собирает панель предметника. Зависимые выборки идут
// последовательно; независимые после них разъезжаются по горутинам и
// ждутся вместе — любой сбой роняет весь запрос, частичных ответов нет.
func (s *TeacherDashboardService) GetDashboard(userID uuid.UUID) (*TeacherDashboard, error) {
	teacher, err := s.teacherRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	subjectIDs := make([]uuid.UUID, 0, len(teacher.Subjects))
	subjectNames := make([]string, 0, len(teacher.Subjects))
	for _, subject := range teacher.Subjects {
		subjectIDs = append(subjectIDs, subject.ID)
		subjectNames = append(subjectNames, subject.Name)
	}

	classes, err := s.classRepo.ListByTeacherOrSubjects(teacher.ID, subjectIDs)
	if err != nil {
		return nil, err
	}
	classIDs := make([]uuid.UUID, 0, len(classes))
	classScopes := make([]string, 0, len(classes))
	for _, c := range classes {
		classIDs = append(classIDs, c.ID)
		classScopes = append(classScopes, fmt.Sprintf("class:%s", c.ID))
	}

	students, err := s.studentRepo.ListByClassIDs(classIDs)
	if err != nil {
		return nil, err
	}
	studentIDs := make([]uuid.UUID, 0, len(students))
	for _, st := range students {
		studentIDs = append(studentIDs, st.ID)
	}

	// Независимые выборки: расписание, объявления, мероприятия, экзамены,
	// посещаемость, прогресс и обращения не зависят друг от друга
	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		firstErr     error
		timetable    []models.TimetableEntry
		announces    []models.Announcement
		events       []models.Event
		exams        []models.Exam
		attendance   []models.Attendance
		stAttendance []models.Attendance
		progress     []models.Progress
		contacts     []models.ContactMessage
	)

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	wg.Add(7)
	go func() {
		defer wg.Done()
		var err error
		if timetable, err = s.timetableRepo.ListByTeacherID(teacher.ID); err != nil {
			fail(err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if announces, err = s.broadcastRepo.ListVisibleAnnouncements(classScopes, visibleAnnouncementsLimit); err != nil {
			fail(err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if events, err = s.broadcastRepo.ListVisibleEvents(classIDs); err != nil {
			fail(err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if exams, err = s.examRepo.ListByClassIDs(classIDs); err != nil {
			fail(err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if attendance, err = s.attendanceRepo.ListByClassIDs(classIDs); err != nil {
			fail(err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if stAttendance, err = s.attendanceRepo.ListByStudentIDs(studentIDs); err != nil {
			fail(err)
		}
		var perr error
		if progress, perr = s.progressRepo.ListByStudentIDsAndType(studentIDs, models.ProgressAcademic); perr != nil {
			fail(perr)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if contacts, err = s.contactRepo.ListForTeacher(teacher.ID, studentIDs); err != nil {
			fail(err)
		}
	}()
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	// Своды по ученикам
	attendanceCount := make(map[uuid.UUID]int)
	presentCount := make(map[uuid.UUID]int)
	for _, rec := range stAttendance {
		if rec.StudentID == nil {
			continue
		}
		attendanceCount[*rec.StudentID]++
		if rec.Status == models.AttendancePresent {
			presentCount[*rec.StudentID]++
		}
	}

	scoreSum := make(map[uuid.UUID]float64)
	scoreCount := make(map[uuid.UUID]int)
	for _, rec := range progress {
		scoreSum[rec.StudentID] += rec.Score
		scoreCount[rec.StudentID]++
	}

	dashboard := &TeacherDashboard{
		Teacher: TeacherProfile{
			ID:       teacher.ID,
			Name:     teacher.User.Name,
			Email:    teacher.User.Email,
			Phone:    teacher.User.Phone,
			Subjects: subjectNames,
		},
		Classes:         make([]TeacherClass, 0, len(classes)),
		Students:        make([]TeacherStudent, 0, len(students)),
		Announcements:   announces,
		Events:          events,
		Exams:           make([]TeacherExam, 0, len(exams)),
		ExamResults:     make([]ExamResultGroup, 0, len(exams)),
		Attendance:      make(map[uuid.UUID][]ClassAttendanceRecord, len(classIDs)),
		ContactMessages: make([]ContactMessageView, 0, len(contacts)),
	}

	studentCountByClass := make(map[uuid.UUID]int)
	var attendanceTotal float64
	for _, st := range students {
		studentCountByClass[st.ClassID]++

		var pct float64
		if attendanceCount[st.ID] > 0 {
			pct = round1(float64(presentCount[st.ID]) / float64(attendanceCount[st.ID]) * 100)
		}
		attendanceTotal += pct

		var avgScore float64
		if scoreCount[st.ID] > 0 {
			avgScore = round1(scoreSum[st.ID] / float64(scoreCount[st.ID]))
		}

		dashboard.Students = append(dashboard.Students, TeacherStudent{
			ID:         st.ID,
			Name:       st.User.Name,
			Email:      st.User.Email,
			Roll:       st.RollNumber,
			ClassID:    st.ClassID,
			ClassName:  st.Class.Name,
			Section:    st.Class.Section,
			Attendance: pct,
			AvgScore:   avgScore,
			Avatar:     st.User.ProfilePic,
		})
	}

	for _, c := range classes {
		dashboard.Classes = append(dashboard.Classes, TeacherClass{
			ID:           c.ID,
			Name:         c.Name,
			Section:      c.Section,
			TeacherID:    c.ClassTeacherID,
			Subjects:     c.Subjects,
			StudentCount: studentCountByClass[c.ID],
		})
	}

	dashboard.Schedule = groupPeriods(timetable)

	// Экзамены по возрастанию даты, с группами результатов
	sort.SliceStable(exams, func(i, j int) bool { return exams[i].Date.Before(exams[j].Date) })
	now := time.Now()
	for _, exam := range exams {
		dashboard.Exams = append(dashboard.Exams, TeacherExam{
			ID:           exam.ID,
			Title:        exam.Title,
			Subject:      exam.Subject,
			ClassName:    ClassDisplayName(exam.Class),
			Date:         exam.Date,
			Duration:     exam.Duration,
			TotalMarks:   exam.TotalMarks,
			Room:         exam.Room,
			ResultsCount: len(exam.Results),
			IsPast:       exam.Date.Before(now),
		})

		group := ExamResultGroup{
			ExamID:    exam.ID,
			ExamTitle: exam.Title,
			ClassID:   exam.ClassID,
			ClassName: ClassDisplayName(exam.Class),
			Date:      exam.Date,
			Subject:   exam.Subject,
			Results:   make([]ExamResultSnapshot, 0, len(exam.Results)),
		}
		for _, result := range exam.Results {
			group.Results = append(group.Results, ExamResultSnapshot{
				StudentID:     result.StudentID,
				MarksObtained: result.MarksObtained,
				Grade:         result.Grade,
			})
		}
		dashboard.ExamResults = append(dashboard.ExamResults, group)
	}

	// Посещаемость, сгруппированная по классам
	for _, classID := range classIDs {
		dashboard.Attendance[classID] = []ClassAttendanceRecord{}
	}
	for _, rec := range attendance {
		dashboard.Attendance[rec.ClassID] = append(dashboard.Attendance[rec.ClassID], ClassAttendanceRecord{
			ID:      rec.ID,
			ClassID: rec.ClassID,
			Date:    rec.Date,
			Present: rec.Present,
			Total:   rec.Total(),
			Status:  rec.Status,
		})
	}

	stats := ContactStats{}
	for _, msg := range contacts {
		view := ContactMessageView{
			ID:        msg.ID,
			StudentID: msg.StudentID,
			Type:      msg.Type,
			Message:   msg.Message,
			Date:      msg.Date,
			Status:    msg.Status,
		}
		view.StudentName = msg.Student.User.Name
		dashboard.ContactMessages = append(dashboard.ContactMessages, view)

		switch msg.Type {
		case models.ContactFeedback:
			stats.Feedback++
		case models.ContactComplaint:
			stats.Complaint++
		case models.ContactInquiry:
			stats.Inquiry++
		}
	}

	upcomingEvents := 0
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, event := range events {
		if !event.Date.Before(today) {
			upcomingEvents++
		}
	}

	avgAttendance := 0.0
	if len(dashboard.Students) > 0 {
		avgAttendance = round1(attendanceTotal / float64(len(dashboard.Students)))
	}

	dashboard.Statistics = TeacherStatistics{
		TotalStudents:  len(dashboard.Students),
		AvgAttendance:  avgAttendance,
		Complaints:     stats.Complaint,
		UpcomingEvents: upcomingEvents,
		ContactStats:   stats,
	}

	return dashboard, nil
}

// groupPeriods раскладывает уроки по дням недели в формат расписания панели
func groupPeriods(entries []models.TimetableEntry) map[string][]TimetablePeriod {
	grouped := GroupByWeekday(entries)
	result := make(map[string][]TimetablePeriod, len(models.WeekDays))
	for _, day := range models.WeekDays {
		periods := make([]TimetablePeriod, 0, len(grouped[day]))
		for _, entry := range grouped[day] {
			periods = append(periods, TimetablePeriod{
				ID:        entry.ID,
				Period:    entry.Period,
				Subject:   entry.Subject,
				ClassName: ClassDisplayName(entry.Class),
				StartTime: entry.StartTime,
				EndTime:   entry.EndTime,
				Room:      entry.Room,
			})
		}
		result[day] = periods
	}
	return result
}

// round1 округляет до одного знака после запятой
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

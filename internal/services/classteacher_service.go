package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ошибки агрегации панели классного руководителя
var (
	ErrTeacherNotFound = errors.New("Teacher not found")
	ErrNoClassAssigned = errors.New("No class assigned")
)

// Окно и лимиты выборок панели
const (
	upcomingExamsWindow      = 30 * 24 * time.Hour
	upcomingExamsLimit       = 5
	recentAttendanceLimit    = 10
	classAttendanceLimit     = 30
	visibleAnnouncementLimit = 20
)

// ClassTeacherService собирает составные ответы для панели классного
// руководителя. Каждая операция — чистое чтение без состояния.
type ClassTeacherService struct {
	teacherRepo    repository.TeacherRepository
	classRepo      repository.ClassRepository
	studentRepo    repository.StudentRepository
	timetableRepo  repository.TimetableRepository
	attendanceRepo repository.AttendanceRepository
	examRepo       repository.ExamRepository
	broadcastRepo  repository.BroadcastRepository
}

// NewClassTeacherService создает новый сервис панели классного руководителя
func NewClassTeacherService(
	teacherRepo repository.TeacherRepository,
	classRepo repository.ClassRepository,
	studentRepo repository.StudentRepository,
	timetableRepo repository.TimetableRepository,
	attendanceRepo repository.AttendanceRepository,
	examRepo repository.ExamRepository,
	broadcastRepo repository.BroadcastRepository,
) *ClassTeacherService {
	return &ClassTeacherService{
		teacherRepo:    teacherRepo,
		classRepo:      classRepo,
		studentRepo:    studentRepo,
		timetableRepo:  timetableRepo,
		attendanceRepo: attendanceRepo,
		examRepo:       examRepo,
		broadcastRepo:  broadcastRepo,
	}
}

// UserSummary представляет профильные поля пользователя в ответе панели
type UserSummary struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
}

// MyClassSummary представляет сводку по классу руководителя
type MyClassSummary struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Section       string           `json:"section"`
	StudentsCount int64            `json:"studentsCount"`
	Subjects      []models.Subject `json:"subjects"`
	AvgAttendance int              `json:"avgAttendance"`
}

// TeachingClassSummary представляет класс, в котором преподаватель ведет уроки
type TeachingClassSummary struct {
	ID       uuid.UUID        `json:"id"`
	Name     string           `json:"name"`
	Section  string           `json:"section"`
	Subjects []models.Subject `json:"subjects"`
}

// DashboardStats представляет счетчики панели
type DashboardStats struct {
	TotalStudentsTaught  int64 `json:"totalStudentsTaught"`
	MyClassStudentsCount int64 `json:"myClassStudentsCount"`
	TeachingClassesCount int   `json:"teachingClassesCount"`
	UpcomingExamsCount   int   `json:"upcomingExamsCount"`
}

// UpcomingExam представляет ближайший экзамен в ответе панели
type UpcomingExam struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Subject    string    `json:"subject"`
	Date       time.Time `json:"date"`
	ClassName  string    `json:"className"`
	TotalMarks int       `json:"totalMarks"`
	Duration   int       `json:"duration"`
	Room       string    `json:"room"`
}

// RecentAttendance представляет недавнюю запись посещаемости в ответе панели
type RecentAttendance struct {
	ID          uuid.UUID               `json:"id"`
	Date        time.Time               `json:"date"`
	ClassName   string                  `json:"className"`
	Present     int                     `json:"present"`
	Absent      int                     `json:"absent"`
	Status      models.AttendanceStatus `json:"status"`
	StudentRoll *int                    `json:"studentRoll,omitempty"`
}

// Dashboard представляет составной ответ обзорной вкладки
type Dashboard struct {
	User             UserSummary            `json:"user"`
	Teacher          *models.Teacher        `json:"teacher"`
	MyClass          *MyClassSummary        `json:"myClass"`
	TeachingClasses  []TeachingClassSummary `json:"teachingClasses"`
	Stats            DashboardStats         `json:"stats"`
	UpcomingExams    []UpcomingExam         `json:"upcomingExams"`
	RecentAttendance []RecentAttendance     `json:"recentAttendance"`
}

// GetDashboard собирает обзор для классного руководителя
func (s *ClassTeacherService) GetDashboard(userID uuid.UUID) (*Dashboard, error) {
	teacher, err := s.teacherRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	myClass, err := s.homeClass(teacher.ID)
	if err != nil {
		return nil, err
	}

	teachingClassIDs, err := s.timetableRepo.DistinctClassIDsByTeacherID(teacher.ID)
	if err != nil {
		return nil, err
	}
	teachingClasses, err := s.classRepo.ListByIDs(teachingClassIDs)
	if err != nil {
		return nil, err
	}

	// Объединение классов: домашний + все классы из расписания
	allClassIDs := make([]uuid.UUID, 0, len(teachingClasses)+1)
	for _, c := range teachingClasses {
		allClassIDs = append(allClassIDs, c.ID)
	}

	var myClassSummary *MyClassSummary
	var myClassStudentsCount int64
	if myClass != nil {
		if !containsID(allClassIDs, myClass.ID) {
			allClassIDs = append(allClassIDs, myClass.ID)
		}

		myClassStudentsCount, err = s.studentRepo.CountByClassID(myClass.ID)
		if err != nil {
			return nil, err
		}

		avgAttendance, err := s.classAverageAttendance(myClass.ID)
		if err != nil {
			return nil, err
		}

		myClassSummary = &MyClassSummary{
			ID:            myClass.ID,
			Name:          myClass.Name,
			Section:       myClass.Section,
			StudentsCount: myClassStudentsCount,
			Subjects:      myClass.Subjects,
			AvgAttendance: avgAttendance,
		}
	}

	teachingIDsOnly := make([]uuid.UUID, 0, len(teachingClasses))
	for _, c := range teachingClasses {
		teachingIDsOnly = append(teachingIDsOnly, c.ID)
	}
	totalStudentsTaught, err := s.studentRepo.CountByClassIDs(teachingIDsOnly)
	if err != nil {
		return nil, err
	}

	upcomingExams, err := s.examRepo.ListUpcomingByClassIDs(allClassIDs, upcomingExamsWindow, upcomingExamsLimit)
	if err != nil {
		return nil, err
	}

	recentAttendance, err := s.attendanceRepo.ListRecentByClassIDs(allClassIDs, recentAttendanceLimit)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		User: UserSummary{
			Name:   teacher.User.Name,
			Email:  teacher.User.Email,
			Phone:  teacher.User.Phone,
			Avatar: teacher.User.ProfilePic,
		},
		Teacher:         teacher,
		MyClass:         myClassSummary,
		TeachingClasses: make([]TeachingClassSummary, 0, len(teachingClasses)),
		Stats: DashboardStats{
			TotalStudentsTaught:  totalStudentsTaught,
			MyClassStudentsCount: myClassStudentsCount,
			TeachingClassesCount: len(teachingClasses),
			UpcomingExamsCount:   len(upcomingExams),
		},
		UpcomingExams:    make([]UpcomingExam, 0, len(upcomingExams)),
		RecentAttendance: make([]RecentAttendance, 0, len(recentAttendance)),
	}

	for _, c := range teachingClasses {
		dashboard.TeachingClasses = append(dashboard.TeachingClasses, TeachingClassSummary{
			ID:       c.ID,
			Name:     c.Name,
			Section:  c.Section,
			Subjects: c.Subjects,
		})
	}

	for _, exam := range upcomingExams {
		dashboard.UpcomingExams = append(dashboard.UpcomingExams, UpcomingExam{
			ID:         exam.ID,
			Title:      exam.Title,
			Subject:    exam.Subject,
			Date:       exam.Date,
			ClassName:  ClassDisplayName(exam.Class),
			TotalMarks: exam.TotalMarks,
			Duration:   exam.Duration,
			Room:       exam.Room,
		})
	}

	for _, att := range recentAttendance {
		rec := RecentAttendance{
			ID:        att.ID,
			Date:      att.Date,
			ClassName: ClassDisplayName(att.Class),
			Present:   att.Present,
			Absent:    att.Absent,
			Status:    att.Status,
		}
		if att.Student != nil {
			roll := att.Student.RollNumber
			rec.StudentRoll = &roll
		}
		dashboard.RecentAttendance = append(dashboard.RecentAttendance, rec)
	}

	return dashboard, nil
}

// StudentStats представляет ученика с вычисленными метриками
type StudentStats struct {
	ID                     uuid.UUID `json:"id"`
	RollNumber             int       `json:"rollNumber"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	Phone                  string    `json:"phone"`
	ProfilePic             string    `json:"profilePic"`
	AdmissionDate          time.Time `json:"admissionDate"`
	AttendancePercentage   int       `json:"attendancePercentage"`
	AvgMarks               int       `json:"avgMarks"`
	TotalAttendanceRecords int       `json:"totalAttendanceRecords"`
}

// ClassAttendanceDay представляет агрегат посещаемости класса за день
type ClassAttendanceDay struct {
	ID         uuid.UUID `json:"id"`
	Date       time.Time `json:"date"`
	Present    int       `json:"present"`
	Absent     int       `json:"absent"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
}

// MyClassDetails представляет составной ответ вкладки "мой класс"
type MyClassDetails struct {
	Class struct {
		ID            uuid.UUID        `json:"id"`
		Name          string           `json:"name"`
		Section       string           `json:"section"`
		Subjects      []models.Subject `json:"subjects"`
		TotalStudents int              `json:"totalStudents"`
	} `json:"class"`
	Students         []StudentStats       `json:"students"`
	RecentAttendance []ClassAttendanceDay `json:"recentAttendance"`
}

// GetMyClassDetails собирает детали домашнего класса с метриками по каждому
// ученику. Посещаемость и результаты экзаменов выбираются пакетно и
// сводятся в памяти, по одному запросу на коллекцию вместо пары запросов
// на каждого ученика.
func (s *ClassTeacherService) GetMyClassDetails(userID uuid.UUID) (*MyClassDetails, error) {
	teacher, err := s.teacherRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	myClass, err := s.homeClass(teacher.ID)
	if err != nil {
		return nil, err
	}
	if myClass == nil {
		return nil, ErrNoClassAssigned
	}

	students, err := s.studentRepo.ListByClassID(myClass.ID)
	if err != nil {
		return nil, err
	}

	studentIDs := make([]uuid.UUID, 0, len(students))
	for _, st := range students {
		studentIDs = append(studentIDs, st.ID)
	}

	attendanceByStudent := make(map[uuid.UUID][]models.Attendance)
	attendance, err := s.attendanceRepo.ListByStudentIDs(studentIDs)
	if err != nil {
		return nil, err
	}
	for _, rec := range attendance {
		if rec.StudentID == nil {
			continue
		}
		attendanceByStudent[*rec.StudentID] = append(attendanceByStudent[*rec.StudentID], rec)
	}

	exams, err := s.examRepo.ListByClassIDs([]uuid.UUID{myClass.ID})
	if err != nil {
		return nil, err
	}

	// Суммы по ученику: набранные баллы и максимум по экзаменам,
	// в которых ученик присутствует в списке результатов
	obtainedByStudent := make(map[uuid.UUID]int)
	possibleByStudent := make(map[uuid.UUID]int)
	for _, exam := range exams {
		for _, result := range exam.Results {
			obtainedByStudent[result.StudentID] += result.MarksObtained
			possibleByStudent[result.StudentID] += exam.TotalMarks
		}
	}

	details := &MyClassDetails{
		Students:         make([]StudentStats, 0, len(students)),
		RecentAttendance: []ClassAttendanceDay{},
	}
	details.Class.ID = myClass.ID
	details.Class.Name = myClass.Name
	details.Class.Section = myClass.Section
	details.Class.Subjects = myClass.Subjects
	details.Class.TotalStudents = len(students)

	for _, st := range students {
		records := attendanceByStudent[st.ID]
		details.Students = append(details.Students, StudentStats{
			ID:                     st.ID,
			RollNumber:             st.RollNumber,
			Name:                   st.User.Name,
			Email:                  st.User.Email,
			Phone:                  st.User.Phone,
			ProfilePic:             st.User.ProfilePic,
			AdmissionDate:          st.AdmissionDate,
			AttendancePercentage:   StatusAttendancePercent(records),
			AvgMarks:               ExamAverage(obtainedByStudent[st.ID], possibleByStudent[st.ID]),
			TotalAttendanceRecords: len(records),
		})
	}

	classAttendance, err := s.attendanceRepo.ListRecentByClassID(myClass.ID, classAttendanceLimit)
	if err != nil {
		return nil, err
	}
	for _, rec := range classAttendance {
		details.RecentAttendance = append(details.RecentAttendance, ClassAttendanceDay{
			ID:         rec.ID,
			Date:       rec.Date,
			Present:    rec.Present,
			Absent:     rec.Absent,
			Total:      rec.Total(),
			Percentage: AttendancePercent(rec.Present, rec.Absent),
		})
	}

	return details, nil
}

// SchedulePeriod представляет один урок в расписании класса
type SchedulePeriod struct {
	Day       string `json:"day"`
	Period    int    `json:"period"`
	Subject   string `json:"subject"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Room      string `json:"room"`
}

// TeachingClassDetails представляет класс из расписания с программой и уроками
type TeachingClassDetails struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Section       string           `json:"section"`
	Subjects      []string         `json:"subjects"`
	PeriodsCount  int              `json:"periodsCount"`
	StudentsCount int64            `json:"studentsCount"`
	Schedule      []SchedulePeriod `json:"schedule"`
}

// GetTeachingClasses группирует расписание преподавателя по классам.
// Класс, встречающийся в нескольких записях расписания, сворачивается
// в одну сводку; предметы дедуплицируются с сохранением порядка.
func (s *ClassTeacherService) GetTeachingClasses(userID uuid.UUID) ([]TeachingClassDetails, error) {
	teacher, err := s.teacherRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	entries, err := s.timetableRepo.ListByTeacherID(teacher.ID)
	if err != nil {
		return nil, err
	}
	SortSchedule(entries)

	order := []uuid.UUID{}
	byClass := make(map[uuid.UUID]*TeachingClassDetails)
	seenSubjects := make(map[uuid.UUID]map[string]bool)

	for _, entry := range entries {
		details, ok := byClass[entry.ClassID]
		if !ok {
			details = &TeachingClassDetails{
				ID:       entry.ClassID,
				Name:     entry.Class.Name,
				Section:  entry.Class.Section,
				Subjects: []string{},
				Schedule: []SchedulePeriod{},
			}
			byClass[entry.ClassID] = details
			seenSubjects[entry.ClassID] = make(map[string]bool)
			order = append(order, entry.ClassID)
		}

		if !seenSubjects[entry.ClassID][entry.Subject] {
			seenSubjects[entry.ClassID][entry.Subject] = true
			details.Subjects = append(details.Subjects, entry.Subject)
		}
		details.PeriodsCount++
		details.Schedule = append(details.Schedule, SchedulePeriod{
			Day:       entry.Day,
			Period:    entry.Period,
			Subject:   entry.Subject,
			StartTime: entry.StartTime,
			EndTime:   entry.EndTime,
			Room:      entry.Room,
		})
	}

	result := make([]TeachingClassDetails, 0, len(order))
	for _, classID := range order {
		details := byClass[classID]
		count, err := s.studentRepo.CountByClassID(classID)
		if err != nil {
			return nil, err
		}
		details.StudentsCount = count
		result = append(result, *details)
	}

	return result, nil
}

// TimetablePeriod представляет урок в недельном расписании преподавателя
type TimetablePeriod struct {
	ID        uuid.UUID `json:"id"`
	Period    int       `json:"period"`
	Subject   string    `json:"subject"`
	ClassName string    `json:"className"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Room      string    `json:"room"`
}

// GetTimetable собирает недельное расписание преподавателя, сгруппированное
// по дням Monday..Saturday. Воскресенья в выдаче не бывает.
func (s *ClassTeacherService) GetTimetable(userID uuid.UUID) (map[string][]TimetablePeriod, error) {
	teacher, err := s.teacherRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	entries, err := s.timetableRepo.ListByTeacherID(teacher.ID)
	if err != nil {
		return nil, err
	}

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

	return result, nil
}

// TeacherExam представляет экзамен в списке экзаменов преподавателя
type TeacherExam struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Subject      string    `json:"subject"`
	ClassName    string    `json:"className"`
	Date         time.Time `json:"date"`
	Duration     int       `json:"duration"`
	TotalMarks   int       `json:"totalMarks"`
	Room         string    `json:"room"`
	ResultsCount int       `json:"resultsCount"`
	IsPast       bool      `json:"isPast"`
}

// GetExams собирает экзамены по объединению домашнего класса и классов
// из расписания, свежие первыми
func (s *ClassTeacherService) GetExams(userID uuid.UUID) ([]TeacherExam, error) {
	teacher, err := s.teacherRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	myClass, err := s.homeClass(teacher.ID)
	if err != nil {
		return nil, err
	}

	classIDs, err := s.timetableRepo.DistinctClassIDsByTeacherID(teacher.ID)
	if err != nil {
		return nil, err
	}
	if myClass != nil && !containsID(classIDs, myClass.ID) {
		classIDs = append(classIDs, myClass.ID)
	}

	exams, err := s.examRepo.ListByClassIDs(classIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]TeacherExam, 0, len(exams))
	for _, exam := range exams {
		result = append(result, TeacherExam{
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
	}

	return result, nil
}

// GetAnnouncements возвращает объявления, видимые преподавателю: публичные
// и адресованные его классам, свежие первыми
func (s *ClassTeacherService) GetAnnouncements(userID uuid.UUID) ([]models.Announcement, error) {
	teacher, err := s.teacherRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	classIDs, err := s.teacherClassIDs(teacher.ID)
	if err != nil {
		return nil, err
	}

	scopes := make([]string, 0, len(classIDs))
	for _, id := range classIDs {
		scopes = append(scopes, fmt.Sprintf("class:%s", id))
	}

	return s.broadcastRepo.ListVisibleAnnouncements(scopes, visibleAnnouncementLimit)
}

// GetEvents возвращает события, видимые преподавателю: общешкольные
// и события его классов
func (s *ClassTeacherService) GetEvents(userID uuid.UUID) ([]models.Event, error) {
	teacher, err := s.teacherRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	classIDs, err := s.teacherClassIDs(teacher.ID)
	if err != nil {
		return nil, err
	}

	return s.broadcastRepo.ListVisibleEvents(classIDs)
}

// teacherClassIDs возвращает объединение домашнего класса и классов из
// расписания преподавателя
func (s *ClassTeacherService) teacherClassIDs(teacherID uuid.UUID) ([]uuid.UUID, error) {
	classIDs, err := s.timetableRepo.DistinctClassIDsByTeacherID(teacherID)
	if err != nil {
		return nil, err
	}

	myClass, err := s.homeClass(teacherID)
	if err != nil {
		return nil, err
	}
	if myClass != nil && !containsID(classIDs, myClass.ID) {
		classIDs = append(classIDs, myClass.ID)
	}

	return classIDs, nil
}

// classAverageAttendance считает среднюю посещаемость класса по агрегатным
// записям: сумма present к сумме present+absent по всем записям класса
func (s *ClassTeacherService) classAverageAttendance(classID uuid.UUID) (int, error) {
	records, err := s.attendanceRepo.ListByClassID(classID)
	if err != nil {
		return 0, err
	}

	totalPresent, totalAll := 0, 0
	for _, rec := range records {
		totalPresent += rec.Present
		totalAll += rec.Present + rec.Absent
	}
	if totalAll == 0 {
		return 0, nil
	}
	return AttendancePercent(totalPresent, totalAll-totalPresent), nil
}

// homeClass возвращает домашний класс преподавателя или nil, если класс
// не назначен
func (s *ClassTeacherService) homeClass(teacherID uuid.UUID) (*models.Class, error) {
	class, err := s.classRepo.GetByClassTeacherID(teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return class, nil
}

// containsID проверяет вхождение ID в набор
func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

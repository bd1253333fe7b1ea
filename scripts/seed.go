package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
)

func main() {
	// Подключаемся к базе данных
	db, err := gorm.Open(sqlite.Open("school.db"), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Автомиграция
	err = db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Teacher{},
		&models.Class{},
		&models.Student{},
		&models.TimetableEntry{},
		&models.Attendance{},
		&models.Exam{},
		&models.ExamResult{},
		&models.Progress{},
		&models.Announcement{},
		&models.Event{},
		&models.Testimonial{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	hash := func(password string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		return string(h)
	}

	// Создаем пользователей
	headmasterUserID := uuid.New()
	classTeacherUserID := uuid.New()
	subjectTeacherUserID := uuid.New()

	users := []models.User{
		{
			ID:           headmasterUserID,
			Name:         "Priya Sharma",
			Email:        "head@brightpath.com",
			PasswordHash: hash("123456"),
			Role:         models.RoleHeadmaster,
			Phone:        "+91 98100 00001",
		},
		{
			ID:           classTeacherUserID,
			Name:         "Anita Desai",
			Email:        "anita@brightpath.com",
			PasswordHash: hash("123456"),
			Role:         models.RoleClassTeacher,
			Phone:        "+91 98100 00002",
		},
		{
			ID:           subjectTeacherUserID,
			Name:         "Rahul Verma",
			Email:        "rahul@brightpath.com",
			PasswordHash: hash("123456"),
			Role:         models.RoleTeacher,
			Phone:        "+91 98100 00003",
		},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("Failed to create users: %v", err)
	}

	// Предметы
	math := models.Subject{ID: uuid.New(), Name: "Mathematics", Code: "MATH"}
	science := models.Subject{ID: uuid.New(), Name: "Science", Code: "SCI"}
	english := models.Subject{ID: uuid.New(), Name: "English", Code: "ENG"}
	if err := db.Create(&[]models.Subject{math, science, english}).Error; err != nil {
		log.Fatalf("Failed to create subjects: %v", err)
	}

	// Преподаватели
	classTeacher := models.Teacher{
		ID:       uuid.New(),
		UserID:   classTeacherUserID,
		Subjects: []models.Subject{math, science},
	}
	subjectTeacher := models.Teacher{
		ID:       uuid.New(),
		UserID:   subjectTeacherUserID,
		Subjects: []models.Subject{english},
	}
	if err := db.Create(&[]models.Teacher{classTeacher, subjectTeacher}).Error; err != nil {
		log.Fatalf("Failed to create teachers: %v", err)
	}

	// Классы: у первого есть классный руководитель
	classA := models.Class{
		ID:             uuid.New(),
		Name:           "7",
		Section:        "A",
		ClassTeacherID: &classTeacher.ID,
		Subjects:       []models.Subject{math, science, english},
	}
	classB := models.Class{
		ID:       uuid.New(),
		Name:     "8",
		Section:  "B",
		Subjects: []models.Subject{english},
	}
	if err := db.Create(&[]models.Class{classA, classB}).Error; err != nil {
		log.Fatalf("Failed to create classes: %v", err)
	}

	// Ученики
	studentNames := []struct {
		name  string
		email string
		class uuid.UUID
	}{
		{"Aarav Patel", "aarav@brightpath.com", classA.ID},
		{"Diya Singh", "diya@brightpath.com", classA.ID},
		{"Kabir Nair", "kabir@brightpath.com", classA.ID},
		{"Meera Iyer", "meera@brightpath.com", classB.ID},
		{"Rohan Gupta", "rohan@brightpath.com", classB.ID},
	}

	students := make([]models.Student, 0, len(studentNames))
	for i, s := range studentNames {
		userID := uuid.New()
		if err := db.Create(&models.User{
			ID:           userID,
			Name:         s.name,
			Email:        s.email,
			PasswordHash: hash("123456"),
			Role:         models.RoleStudent,
		}).Error; err != nil {
			log.Fatalf("Failed to create student user: %v", err)
		}
		students = append(students, models.Student{
			ID:            uuid.New(),
			UserID:        userID,
			ClassID:       s.class,
			RollNumber:    i + 1,
			AdmissionDate: time.Now().AddDate(-1, 0, 0),
		})
	}
	if err := db.Create(&students).Error; err != nil {
		log.Fatalf("Failed to create students: %v", err)
	}

	// Расписание
	timetable := []models.TimetableEntry{
		{ID: uuid.New(), ClassID: classA.ID, Day: "Monday", Period: 1, TeacherID: classTeacher.ID, Subject: "Mathematics", StartTime: "09:00", EndTime: "09:45", Room: "101"},
		{ID: uuid.New(), ClassID: classA.ID, Day: "Monday", Period: 2, TeacherID: classTeacher.ID, Subject: "Science", StartTime: "09:50", EndTime: "10:35", Room: "101"},
		{ID: uuid.New(), ClassID: classA.ID, Day: "Wednesday", Period: 3, TeacherID: subjectTeacher.ID, Subject: "English", StartTime: "10:40", EndTime: "11:25", Room: "101"},
		{ID: uuid.New(), ClassID: classB.ID, Day: "Tuesday", Period: 1, TeacherID: subjectTeacher.ID, Subject: "English", StartTime: "09:00", EndTime: "09:45", Room: "202"},
		{ID: uuid.New(), ClassID: classB.ID, Day: "Saturday", Period: 2, TeacherID: classTeacher.ID, Subject: "Mathematics", StartTime: "09:50", EndTime: "10:35", Room: "202"},
	}
	if err := db.Create(&timetable).Error; err != nil {
		log.Fatalf("Failed to create timetable: %v", err)
	}

	// Посещаемость: поименные отметки за сегодня и агрегаты за прошлые дни
	today := time.Now()
	attendance := []models.Attendance{}
	for i, st := range students[:3] {
		status := models.AttendancePresent
		if i == 2 {
			status = models.AttendanceAbsent
		}
		studentID := st.ID
		attendance = append(attendance, models.Attendance{
			ID:        uuid.New(),
			StudentID: &studentID,
			ClassID:   classA.ID,
			Date:      today,
			Status:    status,
		})
	}
	for d := 1; d <= 5; d++ {
		attendance = append(attendance, models.Attendance{
			ID:      uuid.New(),
			ClassID: classA.ID,
			Date:    today.AddDate(0, 0, -d),
			Present: 2 + d%2,
			Absent:  1 - d%2,
		})
	}
	if err := db.Create(&attendance).Error; err != nil {
		log.Fatalf("Failed to create attendance: %v", err)
	}

	// Экзамены и результаты
	pastExam := models.Exam{
		ID:         uuid.New(),
		Title:      "Half-Yearly Mathematics",
		Subject:    "Mathematics",
		ClassID:    classA.ID,
		Date:       today.AddDate(0, 0, -14),
		Duration:   90,
		TotalMarks: 100,
		Room:       "101",
	}
	upcomingExam := models.Exam{
		ID:         uuid.New(),
		Title:      "Science Unit Test",
		Subject:    "Science",
		ClassID:    classA.ID,
		Date:       today.AddDate(0, 0, 7),
		Duration:   60,
		TotalMarks: 50,
		Room:       "101",
	}
	if err := db.Create(&[]models.Exam{pastExam, upcomingExam}).Error; err != nil {
		log.Fatalf("Failed to create exams: %v", err)
	}

	results := []models.ExamResult{
		{ID: uuid.New(), ExamID: pastExam.ID, StudentID: students[0].ID, MarksObtained: 82, Grade: "A"},
		{ID: uuid.New(), ExamID: pastExam.ID, StudentID: students[1].ID, MarksObtained: 74, Grade: "B"},
		{ID: uuid.New(), ExamID: pastExam.ID, StudentID: students[2].ID, MarksObtained: 58, Grade: "C"},
	}
	if err := db.Create(&results).Error; err != nil {
		log.Fatalf("Failed to create exam results: %v", err)
	}

	// Записи прогресса
	progress := []models.Progress{
		{ID: uuid.New(), StudentID: students[0].ID, ClassID: classA.ID, Subject: "Mathematics", Type: models.ProgressAcademic, Score: 85, Date: today.AddDate(0, 0, -10), TeacherComment: "Strong problem solving"},
		{ID: uuid.New(), StudentID: students[0].ID, ClassID: classA.ID, Subject: "Science", Type: models.ProgressAcademic, Score: 78, Date: today.AddDate(0, 0, -5)},
		{ID: uuid.New(), StudentID: students[1].ID, ClassID: classA.ID, Subject: "Mathematics", Type: models.ProgressAcademic, Score: 71, Date: today.AddDate(0, 0, -10)},
		{ID: uuid.New(), StudentID: students[2].ID, ClassID: classA.ID, Subject: "English", Type: models.ProgressBehavioral, Score: 60, Date: today.AddDate(0, 0, -3), TeacherComment: "Needs to participate more"},
	}
	if err := db.Create(&progress).Error; err != nil {
		log.Fatalf("Failed to create progress records: %v", err)
	}

	// Объявления, мероприятия, отзывы и обращения
	announcements := []models.Announcement{
		{ID: uuid.New(), Title: "Annual Day Rehearsals", Content: "Rehearsals begin next Monday in the main hall.", Date: today.AddDate(0, 0, -2), Visibility: models.VisibilityPublic},
		{ID: uuid.New(), Title: "Class 7A Parent Meeting", Content: "Parent-teacher meeting on Friday at 4 PM.", Date: today.AddDate(0, 0, -1), Visibility: fmt.Sprintf("class:%s", classA.ID)},
	}
	if err := db.Create(&announcements).Error; err != nil {
		log.Fatalf("Failed to create announcements: %v", err)
	}

	events := []models.Event{
		{ID: uuid.New(), Title: "Science Fair", Content: "Projects due by end of month.", Date: today.AddDate(0, 0, 20), Public: true},
		{ID: uuid.New(), Title: "Class 7A Field Trip", Content: "Visit to the planetarium.", Date: today.AddDate(0, 0, 12), ClassID: &classA.ID},
	}
	if err := db.Create(&events).Error; err != nil {
		log.Fatalf("Failed to create events: %v", err)
	}

	testimonial := models.Testimonial{
		ID:      uuid.New(),
		Author:  "Parent of Aarav Patel",
		Content: "The teachers genuinely care about every child.",
		Public:  true,
	}
	if err := db.Create(&testimonial).Error; err != nil {
		log.Fatalf("Failed to create testimonial: %v", err)
	}

	contact := models.ContactMessage{
		ID:        uuid.New(),
		StudentID: students[0].ID,
		TeacherID: &classTeacher.ID,
		Type:      models.ContactInquiry,
		Message:   "Could you share extra practice sheets for algebra?",
		Status:    models.ContactPending,
		Date:      today,
	}
	if err := db.Create(&contact).Error; err != nil {
		log.Fatalf("Failed to create contact message: %v", err)
	}

	fmt.Println("Seed data created successfully")
	fmt.Println("Headmaster login: head@brightpath.com / 123456")
	fmt.Println("Class teacher login: anita@brightpath.com / 123456")
	fmt.Println("Teacher login: rahul@brightpath.com / 123456")
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/repository"
	"github.com/AnilSajjanshetty/school-management-2025/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv собирает роутер с реальной SQLite базой под капотом
type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	auth   *services.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
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
	))

	authService := services.NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
	examService := services.NewExamService(repository.NewExamRepository(db))
	progressService := services.NewProgressService(repository.NewProgressRepository(db))
	attendanceService := services.NewAttendanceService(repository.NewAttendanceRepository(db))
	classTeacherService := services.NewClassTeacherService(
		repository.NewTeacherRepository(db),
		repository.NewClassRepository(db),
		repository.NewStudentRepository(db),
		repository.NewTimetableRepository(db),
		repository.NewAttendanceRepository(db),
		repository.NewExamRepository(db),
		repository.NewBroadcastRepository(db),
	)

	authHandler := NewAuthHandler(authService)
	examHandler := NewExamHandler(examService)
	progressHandler := NewProgressHandler(progressService)
	attendanceHandler := NewAttendanceHandler(attendanceService)
	classTeacherHandler := NewClassTeacherHandler(classTeacherService)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	auth := api.Group("")
	auth.Use(AuthMiddleware(authService))
	auth.GET("/exams", examHandler.ListByClass)
	auth.GET("/progress", progressHandler.ListByStudent)
	auth.POST("/progress",
		RequireRoles(models.RoleTeacher, models.RoleClassTeacher),
		progressHandler.Create)
	auth.POST("/attendance",
		RequireRoles(models.RoleClassTeacher),
		attendanceHandler.MarkDay)

	classTeacher := auth.Group("/class-teacher")
	classTeacher.Use(RequireRoles(models.RoleClassTeacher))
	classTeacher.GET("/dashboard", classTeacherHandler.GetDashboard)

	return &testEnv{db: db, router: router, auth: authService}
}

// createUser создает пользователя и возвращает его токен
func (e *testEnv) createUser(t *testing.T, email string, role models.UserRole) string {
	t.Helper()

	hash, err := services.HashPassword("s3cret")
	require.NoError(t, err)
	require.NoError(t, e.db.Create(&models.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}).Error)

	result, err := e.auth.Login(email, "s3cret")
	require.NoError(t, err)
	return result.Token
}

func (e *testEnv) request(method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "head@test.local", models.RoleHeadmaster)

	w := env.request("POST", "/api/auth/login", "", `{"email":"head@test.local","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "headmaster", result["role"])
	assert.NotEmpty(t, result["token"])
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "head@test.local", models.RoleHeadmaster)

	w := env.request("POST", "/api/auth/login", "", `{"email":"head@test.local","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var result map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Invalid email or password", result["message"])
}

func TestLoginEndpointRejectsMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	w := env.request("POST", "/api/auth/login", "", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExamsEndpointRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.request("GET", "/api/exams?classId="+uuid.NewString(), "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExamsEndpointEmptyList(t *testing.T) {
	env := newTestEnv(t)
	token := env.createUser(t, "teacher@test.local", models.RoleTeacher)

	// Класс без экзаменов отдает пустой список, а не null и не ошибку
	w := env.request("GET", "/api/exams?classId="+uuid.NewString(), token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestClassTeacherDashboardRoleGate(t *testing.T) {
	env := newTestEnv(t)
	token := env.createUser(t, "student@test.local", models.RoleStudent)

	w := env.request("GET", "/api/class-teacher/dashboard", token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestClassTeacherDashboardTeacherNotFound(t *testing.T) {
	env := newTestEnv(t)
	// Пользователь с ролью есть, профиля преподавателя нет
	token := env.createUser(t, "ct@test.local", models.RoleClassTeacher)

	w := env.request("GET", "/api/class-teacher/dashboard", token, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var result map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Teacher not found", result["message"])
}

func TestProgressEndpointAcceptsGoalsList(t *testing.T) {
	env := newTestEnv(t)
	token := env.createUser(t, "teacher@test.local", models.RoleTeacher)

	body := `{
		"studentId": "` + uuid.NewString() + `",
		"classId": "` + uuid.NewString() + `",
		"subject": "Mathematics",
		"type": "academic",
		"score": 72,
		"goals": ["revise fractions", "daily reading"]
	}`
	w := env.request("POST", "/api/progress", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Progress
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, []string{"revise fractions", "daily reading"}, created.Goals)

	// Список целей переживает запись в базу и чтение обратно
	w = env.request("GET", "/api/progress?studentId="+created.StudentID.String(), token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var records []models.Progress
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, []string{"revise fractions", "daily reading"}, records[0].Goals)
}

func TestMarkAttendanceReturnsCreated(t *testing.T) {
	env := newTestEnv(t)
	token := env.createUser(t, "ct@test.local", models.RoleClassTeacher)

	body := `{
		"classId": "` + uuid.NewString() + `",
		"date": "2026-03-02",
		"records": [{"studentId": "` + uuid.NewString() + `", "status": "present"}]
	}`
	w := env.request("POST", "/api/attendance", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var records []models.Attendance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendancePresent, records[0].Status)
}

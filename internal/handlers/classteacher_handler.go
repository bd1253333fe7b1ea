package handlers

import (
	"errors"
	"net/http"

	"github.com/AnilSajjanshetty/school-management-2025/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClassTeacherHandler представляет обработчик панели классного руководителя
type ClassTeacherHandler struct {
	classTeacherService *services.ClassTeacherService
}

// NewClassTeacherHandler создает новый обработчик панели классного руководителя
func NewClassTeacherHandler(classTeacherService *services.ClassTeacherService) *ClassTeacherHandler {
	return &ClassTeacherHandler{
		classTeacherService: classTeacherService,
	}
}

// currentUserID достает ID пользователя, положенный AuthMiddleware
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok
}

// respondClassTeacherError переводит ошибки сервиса в HTTP-ответы
func respondClassTeacherError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTeacherNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Teacher not found"})
	case errors.Is(err, services.ErrNoClassAssigned):
		c.JSON(http.StatusNotFound, gin.H{"message": "No class assigned"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

// GetDashboard собирает сводную панель классного руководителя
func (h *ClassTeacherHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
		return
	}

	dashboard, err := h.classTeacherService.GetDashboard(userID)
	if err != nil {
		respondClassTeacherError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetMyClass получает детали собственного класса руководителя
func (h *ClassTeacherHandler) GetMyClass(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
		return
	}

	details, err := h.classTeacherService.GetMyClassDetails(userID)
	if err != nil {
		respondClassTeacherError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// GetTeachingClasses получает классы, в которых руководитель ведет уроки
func (h *ClassTeacherHandler) GetTeachingClasses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
		return
	}

	classes, err := h.classTeacherService.GetTeachingClasses(userID)
	if err != nil {
		respondClassTeacherError(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

// GetTimetable получает недельное расписание руководителя
func (h *ClassTeacherHandler) GetTimetable(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
		return
	}

	timetable, err := h.classTeacherService.GetTimetable(userID)
	if err != nil {
		respondClassTeacherError(c, err)
		return
	}

	c.JSON(http.StatusOK, timetable)
}

// GetAnnouncements получает объявления, видимые руководителю
func (h *ClassTeacherHandler) GetAnnouncements(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
		return
	}

	announcements, err := h.classTeacherService.GetAnnouncements(userID)
	if err != nil {
		respondClassTeacherError(c, err)
		return
	}

	c.JSON(http.StatusOK, announcements)
}

// GetEvents получает события, видимые руководителю
func (h *ClassTeacherHandler) GetEvents(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
		return
	}

	events, err := h.classTeacherService.GetEvents(userID)
	if err != nil {
		respondClassTeacherError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetExams получает экзамены классов руководителя
func (h *ClassTeacherHandler) GetExams(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
		return
	}

	exams, err := h.classTeacherService.GetExams(userID)
	if err != nil {
		respondClassTeacherError(c, err)
		return
	}

	c.JSON(http.StatusOK, exams)
}

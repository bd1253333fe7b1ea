package handlers

import (
	"net/http"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeacherHandler представляет обработчик управления преподавателями
type TeacherHandler struct {
	teacherService *services.TeacherService
}

// NewTeacherHandler создает новый обработчик преподавателей
func NewTeacherHandler(teacherService *services.TeacherService) *TeacherHandler {
	return &TeacherHandler{
		teacherService: teacherService,
	}
}

// CreateTeacherRequest представляет запрос создания преподавателя
type CreateTeacherRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Phone    string   `json:"phone"`
	Subjects []string `json:"subjects"`
}

// List получает всех преподавателей
func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.teacherService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, teachers)
}

// Create создает преподавателя вместе с учетной записью
func (h *TeacherHandler) Create(c *gin.Context) {
	var req CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	subjects := make([]models.Subject, 0, len(req.Subjects))
	for _, name := range req.Subjects {
		subjects = append(subjects, models.Subject{
			ID:   uuid.New(),
			Name: name,
		})
	}

	teacher := &models.Teacher{
		User: models.User{
			ID:           uuid.New(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         models.RoleTeacher,
			Phone:        req.Phone,
		},
		Subjects: subjects,
	}
	if err := h.teacherService.Create(teacher); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already in use"})
		return
	}

	c.JSON(http.StatusCreated, teacher)
}

// Delete удаляет преподавателя
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid teacher ID"})
		return
	}

	if err := h.teacherService.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Teacher deleted"})
}

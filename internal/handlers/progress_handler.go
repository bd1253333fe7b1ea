package handlers

import (
	"net/http"
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProgressHandler представляет обработчик записей прогресса
type ProgressHandler struct {
	progressService *services.ProgressService
}

// NewProgressHandler создает новый обработчик прогресса
func NewProgressHandler(progressService *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

// CreateProgressRequest представляет запрос создания записи прогресса
type CreateProgressRequest struct {
	StudentID      uuid.UUID           `json:"studentId" binding:"required"`
	ClassID        uuid.UUID           `json:"classId" binding:"required"`
	Subject        string              `json:"subject" binding:"required"`
	Type           models.ProgressType `json:"type" binding:"required,oneof=academic behavioral attendance"`
	Score          float64             `json:"score" binding:"min=0,max=100"`
	Date           time.Time           `json:"date"`
	TeacherComment string              `json:"teacherComment"`
	ParentComment  string              `json:"parentComment"`
	Goals          []string            `json:"goals"`
}

// ListByStudent получает хронологию прогресса ученика
func (h *ProgressHandler) ListByStudent(c *gin.Context) {
	studentID, err := uuid.Parse(c.Query("studentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid student ID"})
		return
	}

	records, err := h.progressService.ListByStudent(studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// Create создает запись прогресса
func (h *ProgressHandler) Create(c *gin.Context) {
	var req CreateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	progress, err := h.progressService.Create(&models.Progress{
		StudentID:      req.StudentID,
		ClassID:        req.ClassID,
		Subject:        req.Subject,
		Type:           req.Type,
		Score:          req.Score,
		Date:           req.Date,
		TeacherComment: req.TeacherComment,
		ParentComment:  req.ParentComment,
		Goals:          req.Goals,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, progress)
}

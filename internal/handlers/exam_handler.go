package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExamHandler представляет обработчик экзаменов
type ExamHandler struct {
	examService *services.ExamService
}

// NewExamHandler создает новый обработчик экзаменов
func NewExamHandler(examService *services.ExamService) *ExamHandler {
	return &ExamHandler{
		examService: examService,
	}
}

// CreateExamRequest представляет запрос создания экзамена
type CreateExamRequest struct {
	Title      string    `json:"title" binding:"required"`
	Subject    string    `json:"subject" binding:"required"`
	ClassID    uuid.UUID `json:"classId" binding:"required"`
	Date       time.Time `json:"date"`
	Duration   int       `json:"duration" binding:"omitempty,min=1"`
	TotalMarks int       `json:"totalMarks" binding:"required,min=1"`
	Room       string    `json:"room"`
}

// AppendResultsRequest представляет запрос добавления результатов
type AppendResultsRequest struct {
	Results []services.ResultEntry `json:"results" binding:"required,min=1"`
}

// ListByClass получает экзамены класса
func (h *ExamHandler) ListByClass(c *gin.Context) {
	classID, err := uuid.Parse(c.Query("classId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid class ID"})
		return
	}

	exams, err := h.examService.ListByClass(classID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, exams)
}

// Create создает экзамен
func (h *ExamHandler) Create(c *gin.Context) {
	var req CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	exam := &models.Exam{
		Title:      req.Title,
		Subject:    req.Subject,
		ClassID:    req.ClassID,
		Date:       req.Date,
		Duration:   req.Duration,
		TotalMarks: req.TotalMarks,
		Room:       req.Room,
	}
	if err := h.examService.Create(exam); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, exam)
}

// AppendResults добавляет результаты к экзамену
func (h *ExamHandler) AppendResults(c *gin.Context) {
	examID, err := uuid.Parse(c.Param("examId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid exam ID"})
		return
	}

	var req AppendResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	exam, err := h.examService.AppendResults(examID, req.Results)
	if err != nil {
		if errors.Is(err, services.ErrExamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Exam not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, exam)
}

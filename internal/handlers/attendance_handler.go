package handlers

import (
	"net/http"
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AttendanceHandler представляет обработчик посещаемости
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler создает новый обработчик посещаемости
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// MarkAttendanceRequest представляет запрос отметки посещаемости за день
type MarkAttendanceRequest struct {
	ClassID uuid.UUID                         `json:"classId" binding:"required"`
	Date    string                            `json:"date"`
	Records []services.StudentAttendanceEntry `json:"records" binding:"required"`
}

// GetDay получает посещаемость класса за день.
// Класс и дата берутся из query-параметров, дата по умолчанию — сегодня.
func (h *AttendanceHandler) GetDay(c *gin.Context) {
	classID, err := uuid.Parse(c.Query("classId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid class ID"})
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	records, err := h.attendanceService.GetDay(classID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// MarkDay заменяет посещаемость класса за день новым набором отметок
func (h *AttendanceHandler) MarkDay(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	records, err := h.attendanceService.MarkDay(req.ClassID, date, req.Records)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, records)
}

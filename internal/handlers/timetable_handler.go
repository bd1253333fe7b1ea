package handlers

import (
	"net/http"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TimetableHandler представляет обработчик расписания
type TimetableHandler struct {
	timetableService *services.TimetableService
}

// NewTimetableHandler создает новый обработчик расписания
func NewTimetableHandler(timetableService *services.TimetableService) *TimetableHandler {
	return &TimetableHandler{
		timetableService: timetableService,
	}
}

// CreateTimetableEntryRequest представляет запрос создания записи расписания
type CreateTimetableEntryRequest struct {
	ClassID   uuid.UUID `json:"classId" binding:"required"`
	Day       string    `json:"day" binding:"required"`
	Period    int       `json:"period" binding:"required,min=1,max=8"`
	TeacherID uuid.UUID `json:"teacherId" binding:"required"`
	Subject   string    `json:"subject" binding:"required"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Room      string    `json:"room"`
}

// ListByClass получает расписание класса
func (h *TimetableHandler) ListByClass(c *gin.Context) {
	classID, err := uuid.Parse(c.Query("classId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid class ID"})
		return
	}

	entries, err := h.timetableService.ListByClass(classID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Create создает запись расписания
func (h *TimetableHandler) Create(c *gin.Context) {
	var req CreateTimetableEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	entry := &models.TimetableEntry{
		ClassID:   req.ClassID,
		Day:       req.Day,
		Period:    req.Period,
		TeacherID: req.TeacherID,
		Subject:   req.Subject,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Room:      req.Room,
	}
	if err := h.timetableService.Create(entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

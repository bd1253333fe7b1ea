package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate живет на уровне пакета, один экземпляр на все обработчики
var validate = validator.New()

// BroadcastHandler представляет обработчик объявлений, мероприятий,
// отзывов и обращений
type BroadcastHandler struct {
	broadcastService *services.BroadcastService
}

// NewBroadcastHandler создает новый обработчик объявлений и обращений
func NewBroadcastHandler(broadcastService *services.BroadcastService) *BroadcastHandler {
	return &BroadcastHandler{
		broadcastService: broadcastService,
	}
}

// CreateAnnouncementRequest представляет запрос создания объявления
type CreateAnnouncementRequest struct {
	Title      string    `json:"title" validate:"required"`
	Content    string    `json:"content" validate:"required"`
	Visibility string    `json:"visibility"`
	Date       time.Time `json:"date"`
}

// CreateEventRequest представляет запрос создания мероприятия
type CreateEventRequest struct {
	Title   string     `json:"title" validate:"required"`
	Content string     `json:"content"`
	Date    time.Time  `json:"date"`
	ClassID *uuid.UUID `json:"classId"`
	Public  bool       `json:"public"`
}

// CreateContactMessageRequest представляет запрос создания обращения
type CreateContactMessageRequest struct {
	StudentID uuid.UUID  `json:"studentId" validate:"required"`
	TeacherID *uuid.UUID `json:"teacherId"`
	Type      string     `json:"type" validate:"omitempty,oneof=inquiry complaint feedback"`
	Message   string     `json:"message" validate:"required"`
}

// UpdateContactStatusRequest представляет запрос смены статуса обращения
type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending read resolved"`
}

// ListAnnouncements получает последние объявления
func (h *BroadcastHandler) ListAnnouncements(c *gin.Context) {
	announcements, err := h.broadcastService.ListAnnouncements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, announcements)
}

// CreateAnnouncement создает объявление
func (h *BroadcastHandler) CreateAnnouncement(c *gin.Context) {
	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	announcement, err := h.broadcastService.CreateAnnouncement(req.Title, req.Content, req.Visibility, req.Date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

// ListEvents получает публичные мероприятия
func (h *BroadcastHandler) ListEvents(c *gin.Context) {
	events, err := h.broadcastService.ListEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// CreateEvent создает мероприятие
func (h *BroadcastHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	event, err := h.broadcastService.CreateEvent(req.Title, req.Content, req.Date, req.ClassID, req.Public)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// ListTestimonials получает публичные отзывы
func (h *BroadcastHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.broadcastService.ListTestimonials()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

// CreateContactMessage создает обращение ученика
func (h *BroadcastHandler) CreateContactMessage(c *gin.Context) {
	var req CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	message, err := h.broadcastService.CreateContactMessage(req.StudentID, req.TeacherID, models.ContactMessageType(req.Type), req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// ListContactMessages получает все обращения
func (h *BroadcastHandler) ListContactMessages(c *gin.Context) {
	messages, err := h.broadcastService.ListContactMessages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// UpdateContactMessageStatus переводит обращение в новый статус
func (h *BroadcastHandler) UpdateContactMessageStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid contact message ID"})
		return
	}

	var req UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	message, err := h.broadcastService.UpdateContactMessageStatus(id, models.ContactMessageStatus(req.Status))
	if err != nil {
		if errors.Is(err, services.ErrContactMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Contact message not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, message)
}

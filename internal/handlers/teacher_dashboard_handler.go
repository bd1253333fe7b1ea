package handlers

import (
	"errors"
	"net/http"

	"github.com/AnilSajjanshetty/school-management-2025/internal/services"

	"github.com/gin-gonic/gin"
)

// TeacherDashboardHandler представляет обработчик панели предметника
type TeacherDashboardHandler struct {
	dashboardService *services.TeacherDashboardService
}

// NewTeacherDashboardHandler создает новый обработчик панели предметника
func NewTeacherDashboardHandler(dashboardService *services.TeacherDashboardService) *TeacherDashboardHandler {
	return &TeacherDashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard собирает составной ответ панели предметника
func (h *TeacherDashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(userID)
	if err != nil {
		if errors.Is(err, services.ErrTeacherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Teacher not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

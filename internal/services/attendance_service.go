package services

import (
	"fmt"
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/repository"

	"github.com/google/uuid"
)

// AttendanceService представляет сервис посещаемости
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
}

// NewAttendanceService создает новый сервис посещаемости
func NewAttendanceService(attendanceRepo repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo}
}

// StudentAttendanceEntry представляет отметку одного ученика за день
type StudentAttendanceEntry struct {
	StudentID uuid.UUID               `json:"studentId"`
	Status    models.AttendanceStatus `json:"status"`
	Notes     string                  `json:"notes"`
}

// GetDay получает записи посещаемости класса за день
func (s *AttendanceService) GetDay(classID uuid.UUID, date time.Time) ([]models.Attendance, error) {
	return s.attendanceRepo.ListForClassDate(classID, date)
}

// MarkDay заменяет посещаемость класса за день новым набором отметок.
// Замена атомарна: при сбое вставки старые записи остаются на месте.
func (s *AttendanceService) MarkDay(classID uuid.UUID, date time.Time, entries []StudentAttendanceEntry) ([]models.Attendance, error) {
	records := make([]models.Attendance, 0, len(entries))
	for _, entry := range entries {
		if entry.StudentID == uuid.Nil {
			return nil, fmt.Errorf("studentId is required")
		}
		status := entry.Status
		if status == "" {
			status = models.AttendancePresent
		}
		studentID := entry.StudentID
		records = append(records, models.Attendance{
			StudentID: &studentID,
			Status:    status,
			Remarks:   entry.Notes,
		})
	}

	return s.attendanceRepo.ReplaceForDate(classID, date, records)
}

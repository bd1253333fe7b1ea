package services

import (
	"fmt"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/repository"

	"github.com/google/uuid"
)

// TimetableService представляет сервис расписания
type TimetableService struct {
	timetableRepo repository.TimetableRepository
}

// NewTimetableService создает новый сервис расписания
func NewTimetableService(timetableRepo repository.TimetableRepository) *TimetableService {
	return &TimetableService{timetableRepo: timetableRepo}
}

// ListByClass получает расписание класса, отсортированное по дню и уроку
func (s *TimetableService) ListByClass(classID uuid.UUID) ([]models.TimetableEntry, error) {
	entries, err := s.timetableRepo.ListByClassID(classID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.TimetableEntry{}
	}
	SortSchedule(entries)
	return entries, nil
}

// Create создает запись расписания
func (s *TimetableService) Create(entry *models.TimetableEntry) error {
	if models.DayIndex(entry.Day) < 0 {
		return fmt.Errorf("invalid day: %s", entry.Day)
	}
	if entry.Period < 1 || entry.Period > 8 {
		return fmt.Errorf("period must be between 1 and 8")
	}
	return s.timetableRepo.Create(entry)
}

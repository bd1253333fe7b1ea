package services

import (
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/repository"

	"github.com/google/uuid"
)

// ProgressService представляет сервис записей прогресса
type ProgressService struct {
	progressRepo repository.ProgressRepository
}

// NewProgressService создает новый сервис прогресса
func NewProgressService(progressRepo repository.ProgressRepository) *ProgressService {
	return &ProgressService{progressRepo: progressRepo}
}

// ListByStudent получает хронологию прогресса ученика
func (s *ProgressService) ListByStudent(studentID uuid.UUID) ([]models.Progress, error) {
	records, err := s.progressRepo.ListByStudentID(studentID)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.Progress{}
	}
	return records, nil
}

// Create создает запись прогресса и возвращает ее со связями
func (s *ProgressService) Create(progress *models.Progress) (*models.Progress, error) {
	if progress.Date.IsZero() {
		progress.Date = time.Now()
	}
	if err := s.progressRepo.Create(progress); err != nil {
		return nil, err
	}
	return s.progressRepo.GetByID(progress.ID)
}

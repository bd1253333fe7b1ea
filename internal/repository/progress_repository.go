package repository

import (
	"github.com/AnilSajjanshetty/school-management-2025/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressRepository интерфейс для работы с записями прогресса
type ProgressRepository interface {
	Create(progress *models.Progress) error
	GetByID(id uuid.UUID) (*models.Progress, error)
	ListByStudentID(studentID uuid.UUID) ([]models.Progress, error)
	ListByStudentIDsAndType(studentIDs []uuid.UUID, progressType models.ProgressType) ([]models.Progress, error)
}

// progressRepository реализация репозитория прогресса
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository создает новый репозиторий прогресса
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// Create создает запись прогресса
func (r *progressRepository) Create(progress *models.Progress) error {
	if progress.ID == uuid.Nil {
		progress.ID = uuid.New()
	}
	return r.db.Create(progress).Error
}

// GetByID получает запись прогресса со связями
func (r *progressRepository) GetByID(id uuid.UUID) (*models.Progress, error) {
	var progress models.Progress
	err := r.db.Preload("Student.User").Preload("Class").
		First(&progress, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// ListByStudentID получает хронологию прогресса ученика, свежие первыми
func (r *progressRepository) ListByStudentID(studentID uuid.UUID) ([]models.Progress, error) {
	var records []models.Progress
	err := r.db.Preload("Student.User").Preload("Class").
		Where("student_id = ?", studentID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

// ListByStudentIDsAndType получает записи прогресса набора учеников одного типа
func (r *progressRepository) ListByStudentIDsAndType(studentIDs []uuid.UUID, progressType models.ProgressType) ([]models.Progress, error) {
	if len(studentIDs) == 0 {
		return []models.Progress{}, nil
	}
	var records []models.Progress
	err := r.db.Where("student_id IN ? AND type = ?", studentIDs, progressType).
		Find(&records).Error
	return records, err
}

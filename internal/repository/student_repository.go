package repository

import (
	"github.com/AnilSajjanshetty/school-management-2025/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentRepository интерфейс для работы с учениками
type StudentRepository interface {
	Create(student *models.Student) error
	GetByID(id uuid.UUID) (*models.Student, error)
	ListByClassID(classID uuid.UUID) ([]models.Student, error)
	ListByClassIDs(classIDs []uuid.UUID) ([]models.Student, error)
	CountByClassID(classID uuid.UUID) (int64, error)
	CountByClassIDs(classIDs []uuid.UUID) (int64, error)
}

// studentRepository реализация репозитория учеников
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository создает новый репозиторий учеников
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// Create создает ученика
func (r *studentRepository) Create(student *models.Student) error {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	return r.db.Create(student).Error
}

// GetByID получает ученика по ID
func (r *studentRepository) GetByID(id uuid.UUID) (*models.Student, error) {
	var student models.Student
	err := r.db.Preload("User").Preload("Class").First(&student, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// ListByClassID получает учеников класса, отсортированных по номеру в журнале
func (r *studentRepository) ListByClassID(classID uuid.UUID) ([]models.Student, error) {
	var students []models.Student
	err := r.db.Preload("User").
		Where("class_id = ?", classID).
		Order("roll_number ASC").
		Find(&students).Error
	return students, err
}

// ListByClassIDs получает учеников набора классов
func (r *studentRepository) ListByClassIDs(classIDs []uuid.UUID) ([]models.Student, error) {
	if len(classIDs) == 0 {
		return []models.Student{}, nil
	}
	var students []models.Student
	err := r.db.Preload("User").Preload("Class").
		Where("class_id IN ?", classIDs).
		Find(&students).Error
	return students, err
}

// CountByClassID считает учеников класса
func (r *studentRepository) CountByClassID(classID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Student{}).Where("class_id = ?", classID).Count(&count).Error
	return count, err
}

// CountByClassIDs считает учеников в наборе классов
func (r *studentRepository) CountByClassIDs(classIDs []uuid.UUID) (int64, error) {
	if len(classIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Student{}).Where("class_id IN ?", classIDs).Count(&count).Error
	return count, err
}

package repository

import (
	"github.com/AnilSajjanshetty/school-management-2025/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherRepository интерфейс для работы с профилями преподавателей
type TeacherRepository interface {
	Create(teacher *models.Teacher) error
	GetByID(id uuid.UUID) (*models.Teacher, error)
	GetByUserID(userID uuid.UUID) (*models.Teacher, error)
	List() ([]models.Teacher, error)
	Delete(id uuid.UUID) error
}

// teacherRepository реализация репозитория преподавателей
type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository создает новый репозиторий преподавателей
func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

// Create создает профиль преподавателя
func (r *teacherRepository) Create(teacher *models.Teacher) error {
	if teacher.ID == uuid.Nil {
		teacher.ID = uuid.New()
	}
	return r.db.Create(teacher).Error
}

// GetByID получает преподавателя по ID
func (r *teacherRepository) GetByID(id uuid.UUID) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.Preload("User").Preload("Subjects").First(&teacher, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// GetByUserID получает преподавателя по ID пользователя
func (r *teacherRepository) GetByUserID(userID uuid.UUID) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.Preload("User").Preload("Subjects").Where("user_id = ?", userID).First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// List получает всех преподавателей
func (r *teacherRepository) List() ([]models.Teacher, error) {
	var teachers []models.Teacher
	err := r.db.Preload("User").Preload("Subjects").Find(&teachers).Error
	return teachers, err
}

// Delete удаляет преподавателя
func (r *teacherRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Teacher{}, "id = ?", id).Error
}

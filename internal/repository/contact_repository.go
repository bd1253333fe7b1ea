package repository

import (
	"github.com/AnilSajjanshetty/school-management-2025/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessageRepository интерфейс для обращений учеников
type ContactMessageRepository interface {
	Create(message *models.ContactMessage) error
	GetByID(id uuid.UUID) (*models.ContactMessage, error)
	ListForTeacher(teacherID uuid.UUID, studentIDs []uuid.UUID) ([]models.ContactMessage, error)
	List() ([]models.ContactMessage, error)
	UpdateStatus(id uuid.UUID, status models.ContactMessageStatus) error
}

// contactMessageRepository реализация репозитория обращений
type contactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository создает новый репозиторий обращений
func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

// Create создает обращение
func (r *contactMessageRepository) Create(message *models.ContactMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	return r.db.Create(message).Error
}

// GetByID получает обращение по ID
func (r *contactMessageRepository) GetByID(id uuid.UUID) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.Preload("Student.User").First(&message, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// ListForTeacher получает обращения, адресованные преподавателю
// или отправленные его учениками, свежие первыми
func (r *contactMessageRepository) ListForTeacher(teacherID uuid.UUID, studentIDs []uuid.UUID) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	q := r.db.Preload("Student.User").Order("date DESC")
	if len(studentIDs) > 0 {
		q = q.Where("teacher_id = ? OR student_id IN ?", teacherID, studentIDs)
	} else {
		q = q.Where("teacher_id = ?", teacherID)
	}
	err := q.Find(&messages).Error
	return messages, err
}

// List получает все обращения, свежие первыми
func (r *contactMessageRepository) List() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.Preload("Student.User").Order("date DESC").Find(&messages).Error
	return messages, err
}

// UpdateStatus переводит обращение в новый статус
func (r *contactMessageRepository) UpdateStatus(id uuid.UUID, status models.ContactMessageStatus) error {
	return r.db.Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("status", status).Error
}

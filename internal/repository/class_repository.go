package repository

import (
	"github.com/AnilSajjanshetty/school-management-2025/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassRepository интерфейс для работы с классами
type ClassRepository interface {
	Create(class *models.Class) error
	GetByID(id uuid.UUID) (*models.Class, error)
	GetByClassTeacherID(teacherID uuid.UUID) (*models.Class, error)
	ListByIDs(ids []uuid.UUID) ([]models.Class, error)
	ListByTeacherOrSubjects(teacherID uuid.UUID, subjectIDs []uuid.UUID) ([]models.Class, error)
	List() ([]models.Class, error)
}

// classRepository реализация репозитория классов
type classRepository struct {
	db *gorm.DB
}

// NewClassRepository создает новый репозиторий классов
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

// Create создает класс
func (r *classRepository) Create(class *models.Class) error {
	if class.ID == uuid.Nil {
		class.ID = uuid.New()
	}
	return r.db.Create(class).Error
}

// GetByID получает класс по ID
func (r *classRepository) GetByID(id uuid.UUID) (*models.Class, error) {
	var class models.Class
	err := r.db.Preload("Subjects").First(&class, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// GetByClassTeacherID получает класс, где преподаватель является классным
// руководителем. Модель данных не запрещает несколько таких классов,
// запрос детерминированно берет самый ранний по дате создания.
func (r *classRepository) GetByClassTeacherID(teacherID uuid.UUID) (*models.Class, error) {
	var class models.Class
	err := r.db.Preload("Subjects").
		Where("class_teacher_id = ?", teacherID).
		Order("created_at ASC").
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// ListByIDs получает классы по набору ID
func (r *classRepository) ListByIDs(ids []uuid.UUID) ([]models.Class, error) {
	if len(ids) == 0 {
		return []models.Class{}, nil
	}
	var classes []models.Class
	err := r.db.Preload("Subjects").Where("id IN ?", ids).Find(&classes).Error
	return classes, err
}

// ListByTeacherOrSubjects получает классы, где преподаватель — классный
// руководитель, либо один из его предметов входит в программу класса
func (r *classRepository) ListByTeacherOrSubjects(teacherID uuid.UUID, subjectIDs []uuid.UUID) ([]models.Class, error) {
	var classes []models.Class
	q := r.db.Preload("Subjects").Distinct("classes.*")
	if len(subjectIDs) > 0 {
		q = q.Joins("LEFT JOIN class_subjects ON class_subjects.class_id = classes.id").
			Where("classes.class_teacher_id = ? OR class_subjects.subject_id IN ?", teacherID, subjectIDs)
	} else {
		q = q.Where("classes.class_teacher_id = ?", teacherID)
	}
	err := q.Find(&classes).Error
	return classes, err
}

// List получает все классы
func (r *classRepository) List() ([]models.Class, error) {
	var classes []models.Class
	err := r.db.Preload("Subjects").Find(&classes).Error
	return classes, err
}

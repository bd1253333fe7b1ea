package repository

import (
	"github.com/AnilSajjanshetty/school-management-2025/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimetableRepository интерфейс для работы с расписанием
type TimetableRepository interface {
	Create(entry *models.TimetableEntry) error
	ListByClassID(classID uuid.UUID) ([]models.TimetableEntry, error)
	ListByTeacherID(teacherID uuid.UUID) ([]models.TimetableEntry, error)
	DistinctClassIDsByTeacherID(teacherID uuid.UUID) ([]uuid.UUID, error)
}

// timetableRepository реализация репозитория расписания
type timetableRepository struct {
	db *gorm.DB
}

// NewTimetableRepository создает новый репозиторий расписания
func NewTimetableRepository(db *gorm.DB) TimetableRepository {
	return &timetableRepository{db: db}
}

// Create создает запись расписания
func (r *timetableRepository) Create(entry *models.TimetableEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return r.db.Create(entry).Error
}

// ListByClassID получает расписание класса
func (r *timetableRepository) ListByClassID(classID uuid.UUID) ([]models.TimetableEntry, error) {
	var entries []models.TimetableEntry
	err := r.db.Preload("Class").Preload("Teacher.User").
		Where("class_id = ?", classID).
		Order("day ASC, period ASC").
		Find(&entries).Error
	return entries, err
}

// ListByTeacherID получает все записи расписания преподавателя
func (r *timetableRepository) ListByTeacherID(teacherID uuid.UUID) ([]models.TimetableEntry, error) {
	var entries []models.TimetableEntry
	err := r.db.Preload("Class").
		Where("teacher_id = ?", teacherID).
		Find(&entries).Error
	return entries, err
}

// DistinctClassIDsByTeacherID получает уникальные классы, в которых
// преподаватель ведет уроки по расписанию
func (r *timetableRepository) DistinctClassIDsByTeacherID(teacherID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.TimetableEntry{}).
		Where("teacher_id = ?", teacherID).
		Distinct("class_id").
		Pluck("class_id", &ids).Error
	return ids, err
}

package repository

import (
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExamRepository интерфейс для работы с экзаменами
type ExamRepository interface {
	Create(exam *models.Exam) error
	GetByID(id uuid.UUID) (*models.Exam, error)
	ListByClassID(classID uuid.UUID) ([]models.Exam, error)
	ListByClassIDs(classIDs []uuid.UUID) ([]models.Exam, error)
	ListUpcomingByClassIDs(classIDs []uuid.UUID, window time.Duration, limit int) ([]models.Exam, error)
	AppendResults(examID uuid.UUID, results []models.ExamResult) (*models.Exam, error)
}

// examRepository реализация репозитория экзаменов
type examRepository struct {
	db *gorm.DB
}

// NewExamRepository создает новый репозиторий экзаменов
func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

// Create создает экзамен
func (r *examRepository) Create(exam *models.Exam) error {
	if exam.ID == uuid.Nil {
		exam.ID = uuid.New()
	}
	return r.db.Create(exam).Error
}

// GetByID получает экзамен с результатами
func (r *examRepository) GetByID(id uuid.UUID) (*models.Exam, error) {
	var exam models.Exam
	err := r.db.Preload("Class").Preload("Results.Student.User").
		First(&exam, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

// ListByClassID получает экзамены класса с результатами и именами учеников
func (r *examRepository) ListByClassID(classID uuid.UUID) ([]models.Exam, error) {
	var exams []models.Exam
	err := r.db.Preload("Class").Preload("Results.Student.User").
		Where("class_id = ?", classID).
		Find(&exams).Error
	return exams, err
}

// ListByClassIDs получает экзамены набора классов, свежие первыми
func (r *examRepository) ListByClassIDs(classIDs []uuid.UUID) ([]models.Exam, error) {
	if len(classIDs) == 0 {
		return []models.Exam{}, nil
	}
	var exams []models.Exam
	err := r.db.Preload("Class").Preload("Results").
		Where("class_id IN ?", classIDs).
		Order("date DESC").
		Find(&exams).Error
	return exams, err
}

// ListUpcomingByClassIDs получает ближайшие экзамены набора классов
// в переднем окне от текущего момента, по возрастанию даты
func (r *examRepository) ListUpcomingByClassIDs(classIDs []uuid.UUID, window time.Duration, limit int) ([]models.Exam, error) {
	if len(classIDs) == 0 {
		return []models.Exam{}, nil
	}
	now := time.Now()
	var exams []models.Exam
	err := r.db.Preload("Class").
		Where("class_id IN ? AND date >= ? AND date <= ?", classIDs, now, now.Add(window)).
		Order("date ASC").
		Limit(limit).
		Find(&exams).Error
	return exams, err
}

// AppendResults добавляет результаты к экзамену, не трогая существующие
func (r *examRepository) AppendResults(examID uuid.UUID, results []models.ExamResult) (*models.Exam, error) {
	for i := range results {
		if results[i].ID == uuid.Nil {
			results[i].ID = uuid.New()
		}
		results[i].ExamID = examID
	}

	if len(results) > 0 {
		if err := r.db.Create(&results).Error; err != nil {
			return nil, err
		}
	}

	return r.GetByID(examID)
}

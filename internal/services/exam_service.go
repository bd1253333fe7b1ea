package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrExamNotFound возвращается, когда экзамен не найден
var ErrExamNotFound = errors.New("exam not found")

// ExamService представляет сервис экзаменов
type ExamService struct {
	examRepo repository.ExamRepository
}

// NewExamService создает новый сервис экзаменов
func NewExamService(examRepo repository.ExamRepository) *ExamService {
	return &ExamService{examRepo: examRepo}
}

// ListByClass получает экзамены класса. Отсутствие экзаменов — это
// пустой список, а не ошибка.
func (s *ExamService) ListByClass(classID uuid.UUID) ([]models.Exam, error) {
	exams, err := s.examRepo.ListByClassID(classID)
	if err != nil {
		return nil, err
	}
	if exams == nil {
		exams = []models.Exam{}
	}
	return exams, nil
}

// Create создает экзамен
func (s *ExamService) Create(exam *models.Exam) error {
	if exam.Date.IsZero() {
		exam.Date = time.Now()
	}
	return s.examRepo.Create(exam)
}

// ResultEntry представляет один добавляемый результат
type ResultEntry struct {
	StudentID     uuid.UUID `json:"studentId"`
	MarksObtained int       `json:"marksObtained"`
	Grade         string    `json:"grade"`
}

// AppendResults добавляет результаты к экзамену
func (s *ExamService) AppendResults(examID uuid.UUID, entries []ResultEntry) (*models.Exam, error) {
	if _, err := s.examRepo.GetByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}

	results := make([]models.ExamResult, 0, len(entries))
	for _, entry := range entries {
		if entry.StudentID == uuid.Nil {
			return nil, fmt.Errorf("studentId is required")
		}
		results = append(results, models.ExamResult{
			StudentID:     entry.StudentID,
			MarksObtained: entry.MarksObtained,
			Grade:         entry.Grade,
		})
	}

	return s.examRepo.AppendResults(examID, results)
}

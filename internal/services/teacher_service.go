package services

import (
	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/repository"

	"github.com/google/uuid"
)

// TeacherService представляет сервис управления преподавателями
type TeacherService struct {
	teacherRepo repository.TeacherRepository
}

// NewTeacherService создает новый сервис преподавателей
func NewTeacherService(teacherRepo repository.TeacherRepository) *TeacherService {
	return &TeacherService{teacherRepo: teacherRepo}
}

// List получает всех преподавателей
func (s *TeacherService) List() ([]models.Teacher, error) {
	teachers, err := s.teacherRepo.List()
	if err != nil {
		return nil, err
	}
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	return teachers, nil
}

// Create создает профиль преподавателя
func (s *TeacherService) Create(teacher *models.Teacher) error {
	return s.teacherRepo.Create(teacher)
}

// Delete удаляет преподавателя
func (s *TeacherService) Delete(id uuid.UUID) error {
	return s.teacherRepo.Delete(id)
}

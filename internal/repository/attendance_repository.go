package repository

import (
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRepository интерфейс для работы с посещаемостью
type AttendanceRepository interface {
	ListForClassDate(classID uuid.UUID, date time.Time) ([]models.Attendance, error)
	ReplaceForDate(classID uuid.UUID, date time.Time, records []models.Attendance) ([]models.Attendance, error)
	ListByClassID(classID uuid.UUID) ([]models.Attendance, error)
	ListByClassIDs(classIDs []uuid.UUID) ([]models.Attendance, error)
	ListRecentByClassIDs(classIDs []uuid.UUID, limit int) ([]models.Attendance, error)
	ListRecentByClassID(classID uuid.UUID, limit int) ([]models.Attendance, error)
	ListByStudentIDs(studentIDs []uuid.UUID) ([]models.Attendance, error)
}

// attendanceRepository реализация репозитория посещаемости
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository создает новый репозиторий посещаемости
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// dayWindow возвращает границы суток [start, end) для даты
func dayWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}

// ListForClassDate получает записи посещаемости класса за один день
func (r *attendanceRepository) ListForClassDate(classID uuid.UUID, date time.Time) ([]models.Attendance, error) {
	start, end := dayWindow(date)
	var records []models.Attendance
	err := r.db.Preload("Student.User").
		Where("class_id = ? AND date >= ? AND date < ?", classID, start, end).
		Find(&records).Error
	return records, err
}

// ReplaceForDate заменяет посещаемость класса за день: удаление старых
// записей и вставка новых выполняются в одной транзакции, чтобы сбой
// вставки не оставил день пустым. Повторная отправка того же набора
// записей дает тот же результат.
func (r *attendanceRepository) ReplaceForDate(classID uuid.UUID, date time.Time, records []models.Attendance) ([]models.Attendance, error) {
	start, end := dayWindow(date)

	for i := range records {
		if records[i].ID == uuid.Nil {
			records[i].ID = uuid.New()
		}
		records[i].ClassID = classID
		records[i].Date = start
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_id = ? AND date >= ? AND date < ?", classID, start, end).
			Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListByClassID получает все записи посещаемости класса
func (r *attendanceRepository) ListByClassID(classID uuid.UUID) ([]models.Attendance, error) {
	var records []models.Attendance
	err := r.db.Where("class_id = ?", classID).Find(&records).Error
	return records, err
}

// ListByClassIDs получает записи посещаемости набора классов, свежие первыми
func (r *attendanceRepository) ListByClassIDs(classIDs []uuid.UUID) ([]models.Attendance, error) {
	if len(classIDs) == 0 {
		return []models.Attendance{}, nil
	}
	var records []models.Attendance
	err := r.db.Where("class_id IN ?", classIDs).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

// ListRecentByClassIDs получает последние записи посещаемости набора классов
func (r *attendanceRepository) ListRecentByClassIDs(classIDs []uuid.UUID, limit int) ([]models.Attendance, error) {
	if len(classIDs) == 0 {
		return []models.Attendance{}, nil
	}
	var records []models.Attendance
	err := r.db.Preload("Class").Preload("Student").
		Where("class_id IN ?", classIDs).
		Order("date DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// ListRecentByClassID получает последние записи посещаемости одного класса
func (r *attendanceRepository) ListRecentByClassID(classID uuid.UUID, limit int) ([]models.Attendance, error) {
	var records []models.Attendance
	err := r.db.Where("class_id = ?", classID).
		Order("date DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// ListByStudentIDs получает индивидуальные записи посещаемости набора учеников
func (r *attendanceRepository) ListByStudentIDs(studentIDs []uuid.UUID) ([]models.Attendance, error) {
	if len(studentIDs) == 0 {
		return []models.Attendance{}, nil
	}
	var records []models.Attendance
	err := r.db.Where("student_id IN ?", studentIDs).Find(&records).Error
	return records, err
}

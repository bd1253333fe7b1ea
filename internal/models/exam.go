package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exam представляет экзамен для класса
type Exam struct {
	ID         uuid.UUID      `json:"id" gorm:"type:text;primary_key"`
	Title      string         `json:"title" gorm:"not null"`
	Subject    string         `json:"subject" gorm:"not null"`
	ClassID    uuid.UUID      `json:"classId" gorm:"type:text;index;not null"`
	Date       time.Time      `json:"date" gorm:"index;not null"`
	Duration   int            `json:"duration"` // минуты
	TotalMarks int            `json:"totalMarks"`
	Room       string         `json:"room"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Связи
	Class   Class        `json:"class" gorm:"foreignKey:ClassID"`
	Results []ExamResult `json:"results" gorm:"foreignKey:ExamID"`
}

// ExamResult представляет результат ученика на экзамене.
// Результаты только добавляются, целиком список никогда не перезаписывается.
type ExamResult struct {
	ID            uuid.UUID `json:"id" gorm:"type:text;primary_key"`
	ExamID        uuid.UUID `json:"examId" gorm:"type:text;index;not null"`
	StudentID     uuid.UUID `json:"studentId" gorm:"type:text;index;not null"`
	MarksObtained int       `json:"marksObtained"`
	Grade         string    `json:"grade"`
	CreatedAt     time.Time `json:"createdAt"`

	// Связи
	Student Student `json:"student" gorm:"foreignKey:StudentID"`
}

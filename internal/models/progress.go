package models

import (
	"time"

	"github.com/google/uuid"
)

// ProgressType определяет тип записи прогресса
type ProgressType string

const (
	ProgressAcademic   ProgressType = "academic"
	ProgressBehavioral ProgressType = "behavioral"
	ProgressAttendance ProgressType = "attendance"
)

// Progress представляет запись прогресса ученика.
// Записи образуют независимую хронологию и после создания не изменяются.
type Progress struct {
	ID             uuid.UUID    `json:"id" gorm:"type:text;primary_key"`
	StudentID      uuid.UUID    `json:"studentId" gorm:"type:text;index;not null"`
	ClassID        uuid.UUID    `json:"classId" gorm:"type:text;index;not null"`
	Subject        string       `json:"subject" gorm:"not null"`
	Type           ProgressType `json:"type" gorm:"not null"`
	Score          float64      `json:"score"`
	Date           time.Time    `json:"date"`
	TeacherComment string       `json:"teacherComment"`
	ParentComment  string       `json:"parentComment"`
	Goals          []string     `json:"goals" gorm:"serializer:json"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Связи
	Student Student `json:"student" gorm:"foreignKey:StudentID"`
	Class   Class   `json:"class" gorm:"foreignKey:ClassID"`
}

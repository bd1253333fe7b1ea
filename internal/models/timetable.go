package models

import (
	"time"

	"github.com/google/uuid"
)

// WeekDays задает фиксированный порядок учебной недели (воскресенье исключено)
var WeekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// TimetableEntry представляет один урок в расписании
type TimetableEntry struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primary_key"`
	ClassID   uuid.UUID `json:"classId" gorm:"type:text;index;not null"`
	Day       string    `json:"day" gorm:"not null"` // Monday..Saturday
	Period    int       `json:"period"`              // 1..8
	TeacherID uuid.UUID `json:"teacherId" gorm:"type:text;index;not null"`
	Subject   string    `json:"subject" gorm:"not null"`
	StartTime string    `json:"startTime" gorm:"not null"`
	EndTime   string    `json:"endTime" gorm:"not null"`
	Room      string    `json:"room"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Связи
	Class   Class   `json:"class" gorm:"foreignKey:ClassID"`
	Teacher Teacher `json:"teacher" gorm:"foreignKey:TeacherID"`
}

// DayIndex возвращает позицию дня в учебной неделе, -1 для неизвестного дня
func DayIndex(day string) int {
	for i, d := range WeekDays {
		if d == day {
			return i
		}
	}
	return -1
}

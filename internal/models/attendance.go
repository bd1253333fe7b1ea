package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceStatus определяет статус посещения ученика за день
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// Attendance представляет запись посещаемости. Исторически есть две формы:
// запись по ученику (StudentID + Status) и агрегат по классу (Present + Absent).
// Обе формы живут в одной таблице, читатели обязаны поддерживать обе.
type Attendance struct {
	ID        uuid.UUID        `json:"id" gorm:"type:text;primary_key"`
	StudentID *uuid.UUID       `json:"studentId" gorm:"type:text;index"`
	ClassID   uuid.UUID        `json:"classId" gorm:"type:text;index;not null"`
	Date      time.Time        `json:"date" gorm:"index;not null"`
	Status    AttendanceStatus `json:"status" gorm:"default:'present'"`
	Present   int              `json:"present"`
	Absent    int              `json:"absent"`
	Remarks   string           `json:"remarks"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`

	// Связи
	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Class   Class    `json:"class" gorm:"foreignKey:ClassID"`
}

// Total возвращает общее число учеников в агрегатной записи
func (a *Attendance) Total() int {
	return a.Present + a.Absent
}

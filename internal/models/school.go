package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subject представляет учебный предмет
type Subject struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primary_key"`
	Name      string    `json:"name" gorm:"not null"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Teacher представляет профиль преподавателя, связанный с пользователем
type Teacher struct {
	ID        uuid.UUID      `json:"id" gorm:"type:text;primary_key"`
	UserID    uuid.UUID      `json:"userId" gorm:"type:text;uniqueIndex;not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Связи
	User     User      `json:"user" gorm:"foreignKey:UserID"`
	Subjects []Subject `json:"subjects" gorm:"many2many:teacher_subjects"`
}

// Class представляет учебный класс (имя + секция)
type Class struct {
	ID             uuid.UUID  `json:"id" gorm:"type:text;primary_key"`
	Name           string     `json:"name" gorm:"not null"`
	Section        string     `json:"section"`
	ClassTeacherID *uuid.UUID `json:"classTeacherId" gorm:"type:text;index"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`

	// Связи
	ClassTeacher *Teacher  `json:"classTeacher,omitempty" gorm:"foreignKey:ClassTeacherID"`
	Subjects     []Subject `json:"subjects" gorm:"many2many:class_subjects"`
}

// Student представляет ученика, привязанного к пользователю и классу
type Student struct {
	ID            uuid.UUID      `json:"id" gorm:"type:text;primary_key"`
	UserID        uuid.UUID      `json:"userId" gorm:"type:text;uniqueIndex;not null"`
	ClassID       uuid.UUID      `json:"classId" gorm:"type:text;index;not null"`
	RollNumber    int            `json:"rollNumber"`
	AdmissionDate time.Time      `json:"admissionDate"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	// Связи
	User  User  `json:"user" gorm:"foreignKey:UserID"`
	Class Class `json:"class" gorm:"foreignKey:ClassID"`
}

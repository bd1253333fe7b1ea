package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole определяет роли пользователей
type UserRole string

const (
	RoleHeadmaster   UserRole = "headmaster"
	RoleClassTeacher UserRole = "class_teacher"
	RoleTeacher      UserRole = "teacher"
	RoleStudent      UserRole = "student"
)

// User представляет учетную запись пользователя системы
type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:text;primary_key"`
	Name         string         `json:"name" gorm:"not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Role         UserRole       `json:"role" gorm:"default:'student'"`
	Phone        string         `json:"phone"`
	ProfilePic   string         `json:"profilePic"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

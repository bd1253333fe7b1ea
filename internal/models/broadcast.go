package models

import (
	"time"

	"github.com/google/uuid"
)

// VisibilityPublic — область видимости "для всех"
const VisibilityPublic = "public"

// Announcement представляет объявление школы.
// Visibility: "public", "class:<id>" или пустая строка (без ограничений).
type Announcement struct {
	ID         uuid.UUID `json:"id" gorm:"type:text;primary_key"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content"`
	Date       time.Time `json:"date" gorm:"index"`
	Visibility string    `json:"visibility"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Event представляет школьное мероприятие
type Event struct {
	ID        uuid.UUID  `json:"id" gorm:"type:text;primary_key"`
	Title     string     `json:"title" gorm:"not null"`
	Content   string     `json:"content"`
	Date      time.Time  `json:"date" gorm:"index"`
	ClassID   *uuid.UUID `json:"classId" gorm:"type:text;index"`
	Public    bool       `json:"public" gorm:"default:false"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Testimonial представляет отзыв о школе
type Testimonial struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primary_key"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Public    bool      `json:"public" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactMessageType определяет тип обращения
type ContactMessageType string

const (
	ContactInquiry   ContactMessageType = "inquiry"
	ContactComplaint ContactMessageType = "complaint"
	ContactFeedback  ContactMessageType = "feedback"
)

// ContactMessageStatus определяет статус обращения
type ContactMessageStatus string

const (
	ContactPending  ContactMessageStatus = "pending"
	ContactRead     ContactMessageStatus = "read"
	ContactResolved ContactMessageStatus = "resolved"
)

// ContactMessage представляет обращение ученика к преподавателю
type ContactMessage struct {
	ID        uuid.UUID            `json:"id" gorm:"type:text;primary_key"`
	StudentID uuid.UUID            `json:"studentId" gorm:"type:text;index;not null"`
	TeacherID *uuid.UUID           `json:"teacherId" gorm:"type:text;index"`
	Type      ContactMessageType   `json:"type" gorm:"not null"`
	Message   string               `json:"message" gorm:"not null"`
	Status    ContactMessageStatus `json:"status" gorm:"default:'pending'"`
	Date      time.Time            `json:"date" gorm:"index"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`

	// Связи
	Student Student  `json:"student" gorm:"foreignKey:StudentID"`
	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
}

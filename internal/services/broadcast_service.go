package services

import (
	"errors"
	"log"
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/repository"
	"github.com/AnilSajjanshetty/school-management-2025/pkg/telegram"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recentAnnouncementsLimit = 20

// ErrContactMessageNotFound возвращается, когда обращение не существует
var ErrContactMessageNotFound = errors.New("Contact message not found")

// BroadcastService управляет объявлениями, мероприятиями, отзывами
// и обращениями. Создание уведомляет персонал через Telegram, если бот
// сконфигурирован; сбой уведомления запрос не роняет.
type BroadcastService struct {
	broadcastRepo repository.BroadcastRepository
	contactRepo   repository.ContactMessageRepository
	studentRepo   repository.StudentRepository
	bot           *telegram.Bot
}

// NewBroadcastService создает новый сервис объявлений и обращений
func NewBroadcastService(
	broadcastRepo repository.BroadcastRepository,
	contactRepo repository.ContactMessageRepository,
	studentRepo repository.StudentRepository,
	bot *telegram.Bot,
) *BroadcastService {
	return &BroadcastService{
		broadcastRepo: broadcastRepo,
		contactRepo:   contactRepo,
		studentRepo:   studentRepo,
		bot:           bot,
	}
}

// ListAnnouncements получает последние объявления для публичной витрины
func (s *BroadcastService) ListAnnouncements() ([]models.Announcement, error) {
	announcements, err := s.broadcastRepo.ListRecentAnnouncements(recentAnnouncementsLimit)
	if err != nil {
		return nil, err
	}
	if announcements == nil {
		announcements = []models.Announcement{}
	}
	return announcements, nil
}

// CreateAnnouncement создает объявление и уведомляет персонал
func (s *BroadcastService) CreateAnnouncement(title, content, visibility string, date time.Time) (*models.Announcement, error) {
	if date.IsZero() {
		date = time.Now()
	}
	if visibility == "" {
		visibility = models.VisibilityPublic
	}

	announcement := &models.Announcement{
		Title:      title,
		Content:    content,
		Date:       date,
		Visibility: visibility,
	}
	if err := s.broadcastRepo.CreateAnnouncement(announcement); err != nil {
		return nil, err
	}

	if err := s.bot.SendAnnouncementNotification(title, content, date); err != nil {
		log.Printf("Failed to send announcement notification: %v", err)
	}

	return announcement, nil
}

// ListEvents получает публичные мероприятия
func (s *BroadcastService) ListEvents() ([]models.Event, error) {
	events, err := s.broadcastRepo.ListPublicEvents()
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// CreateEvent создает мероприятие и уведомляет персонал
func (s *BroadcastService) CreateEvent(title, content string, date time.Time, classID *uuid.UUID, public bool) (*models.Event, error) {
	if date.IsZero() {
		date = time.Now()
	}

	event := &models.Event{
		Title:   title,
		Content: content,
		Date:    date,
		ClassID: classID,
		Public:  public,
	}
	if err := s.broadcastRepo.CreateEvent(event); err != nil {
		return nil, err
	}

	if err := s.bot.SendEventNotification(title, content, date); err != nil {
		log.Printf("Failed to send event notification: %v", err)
	}

	return event, nil
}

// ListTestimonials получает публичные отзывы
func (s *BroadcastService) ListTestimonials() ([]models.Testimonial, error) {
	testimonials, err := s.broadcastRepo.ListPublicTestimonials()
	if err != nil {
		return nil, err
	}
	if testimonials == nil {
		testimonials = []models.Testimonial{}
	}
	return testimonials, nil
}

// CreateContactMessage создает обращение ученика и уведомляет персонал.
// Неизвестный тип приводится к inquiry, статус всегда начинается с pending.
func (s *BroadcastService) CreateContactMessage(studentID uuid.UUID, teacherID *uuid.UUID, msgType models.ContactMessageType, message string) (*models.ContactMessage, error) {
	switch msgType {
	case models.ContactInquiry, models.ContactComplaint, models.ContactFeedback:
	default:
		msgType = models.ContactInquiry
	}

	contact := &models.ContactMessage{
		StudentID: studentID,
		TeacherID: teacherID,
		Type:      msgType,
		Message:   message,
		Status:    models.ContactPending,
		Date:      time.Now(),
	}
	if err := s.contactRepo.Create(contact); err != nil {
		return nil, err
	}

	studentName := "Unknown student"
	if student, err := s.studentRepo.GetByID(studentID); err == nil {
		studentName = student.User.Name
	}
	if err := s.bot.SendContactMessageNotification(studentName, string(msgType), message); err != nil {
		log.Printf("Failed to send contact message notification: %v", err)
	}

	return contact, nil
}

// ListContactMessages получает все обращения, свежие первыми
func (s *BroadcastService) ListContactMessages() ([]models.ContactMessage, error) {
	messages, err := s.contactRepo.List()
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}
	return messages, nil
}

// UpdateContactMessageStatus переводит обращение в новый статус
func (s *BroadcastService) UpdateContactMessageStatus(id uuid.UUID, status models.ContactMessageStatus) (*models.ContactMessage, error) {
	switch status {
	case models.ContactPending, models.ContactRead, models.ContactResolved:
	default:
		return nil, errors.New("invalid contact message status")
	}

	if _, err := s.contactRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactMessageNotFound
		}
		return nil, err
	}
	if err := s.contactRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.contactRepo.GetByID(id)
}

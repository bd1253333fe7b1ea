package repository

import (
	"github.com/AnilSajjanshetty/school-management-2025/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BroadcastRepository интерфейс для объявлений, мероприятий и отзывов
type BroadcastRepository interface {
	CreateAnnouncement(a *models.Announcement) error
	ListRecentAnnouncements(limit int) ([]models.Announcement, error)
	ListVisibleAnnouncements(classScopes []string, limit int) ([]models.Announcement, error)

	CreateEvent(e *models.Event) error
	ListPublicEvents() ([]models.Event, error)
	ListVisibleEvents(classIDs []uuid.UUID) ([]models.Event, error)

	ListPublicTestimonials() ([]models.Testimonial, error)
}

// broadcastRepository реализация репозитория широковещательных сущностей
type broadcastRepository struct {
	db *gorm.DB
}

// NewBroadcastRepository создает новый репозиторий объявлений и мероприятий
func NewBroadcastRepository(db *gorm.DB) BroadcastRepository {
	return &broadcastRepository{db: db}
}

// CreateAnnouncement создает объявление
func (r *broadcastRepository) CreateAnnouncement(a *models.Announcement) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return r.db.Create(a).Error
}

// ListRecentAnnouncements получает последние объявления
func (r *broadcastRepository) ListRecentAnnouncements(limit int) ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.Order("date DESC").Limit(limit).Find(&announcements).Error
	return announcements, err
}

// ListVisibleAnnouncements получает публичные объявления, объявления без
// области видимости и объявления, адресованные указанным классам
func (r *broadcastRepository) ListVisibleAnnouncements(classScopes []string, limit int) ([]models.Announcement, error) {
	var announcements []models.Announcement
	q := r.db.Order("date DESC").Limit(limit)
	if len(classScopes) > 0 {
		q = q.Where("visibility = ? OR visibility = '' OR visibility IN ?", models.VisibilityPublic, classScopes)
	} else {
		q = q.Where("visibility = ? OR visibility = ''", models.VisibilityPublic)
	}
	err := q.Find(&announcements).Error
	return announcements, err
}

// CreateEvent создает мероприятие
func (r *broadcastRepository) CreateEvent(e *models.Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return r.db.Create(e).Error
}

// ListPublicEvents получает публичные мероприятия по возрастанию даты
func (r *broadcastRepository) ListPublicEvents() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("public = ?", true).Order("date ASC").Find(&events).Error
	return events, err
}

// ListVisibleEvents получает публичные, общешкольные и адресованные
// указанным классам мероприятия
func (r *broadcastRepository) ListVisibleEvents(classIDs []uuid.UUID) ([]models.Event, error) {
	var events []models.Event
	q := r.db.Order("date ASC")
	if len(classIDs) > 0 {
		q = q.Where("public = ? OR class_id IS NULL OR class_id IN ?", true, classIDs)
	} else {
		q = q.Where("public = ? OR class_id IS NULL", true)
	}
	err := q.Find(&events).Error
	return events, err
}

// ListPublicTestimonials получает публичные отзывы
func (r *broadcastRepository) ListPublicTestimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Where("public = ?", true).Find(&testimonials).Error
	return testimonials, err
}

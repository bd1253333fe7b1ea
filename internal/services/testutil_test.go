package services

import (
	"path/filepath"
	"testing"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB открывает свежую SQLite базу во временной директории теста
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Teacher{},
		&models.Class{},
		&models.Student{},
		&models.TimetableEntry{},
		&models.Attendance{},
		&models.Exam{},
		&models.ExamResult{},
		&models.Progress{},
		&models.Announcement{},
		&models.Event{},
		&models.Testimonial{},
		&models.ContactMessage{},
	))

	return db
}

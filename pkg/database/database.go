package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database представляет подключение к базе данных
type Database struct {
	DB *gorm.DB
}

// NewDatabase открывает подключение: Postgres по DSN, иначе SQLite по пути
func NewDatabase(databaseURL, dbPath string) (*Database, error) {
	var (
		db  *gorm.DB
		err error
	)

	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if databaseURL != "" {
		db, err = gorm.Open(postgres.Open(databaseURL), gormCfg)
	} else {
		// Создаем директорию для базы данных если она не существует
		if mkErr := os.MkdirAll(filepath.Dir(dbPath), 0755); mkErr != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", mkErr)
		}
		db, err = gorm.Open(sqlite.Open(dbPath), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db}

	// Автомиграция моделей
	if err := database.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return database, nil
}

// Migrate выполняет миграцию базы данных
func (d *Database) Migrate() error {
	return d.DB.AutoMigrate(
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
	)
}

// Close закрывает подключение к базе данных
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateDefaultHeadmaster создает учетную запись директора по умолчанию
func (d *Database) CreateDefaultHeadmaster(email, password string) error {
	var user models.User
	result := d.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash headmaster password: %w", err)
		}

		headmaster := models.User{
			ID:           uuid.New(),
			Name:         "Headmaster",
			Email:        email,
			PasswordHash: string(hash),
			Role:         models.RoleHeadmaster,
		}

		if err := d.DB.Create(&headmaster).Error; err != nil {
			return fmt.Errorf("failed to create default headmaster: %w", err)
		}
	}

	return nil
}

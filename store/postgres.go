package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/iaigorluiz-svg/nutriai-api/config"
	"github.com/iaigorluiz-svg/nutriai-api/logger"
	"github.com/iaigorluiz-svg/nutriai-api/models"
)

// Postgres is the durable ProfileStore, same read/write contract as Memory.
type Postgres struct {
	db *gorm.DB
}

// NewPostgres connects using the DB_* environment variables and migrates the
// profile table.
func NewPostgres() (*Postgres, error) {
	host := config.GetEnv("DB_HOST", "localhost")
	user := config.GetEnv("DB_USER", "postgres")
	password := config.GetEnv("DB_PASSWORD", "password")
	dbname := config.GetEnv("DB_NAME", "nutriai")
	port := config.GetEnv("DB_PORT", "5432")
	sslmode := config.GetEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.UserProfile{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database connection established", "host", host, "dbname", dbname)
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := p.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (p *Postgres) Put(profile models.UserProfile) (bool, error) {
	var existing models.UserProfile
	err := p.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := p.db.Create(&profile).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	profile.CreatedAt = existing.CreatedAt
	if err := p.db.Save(&profile).Error; err != nil {
		return false, err
	}
	return false, nil
}

package db

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/studio-booking/internal/config"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

var defaultSettings = []models.Setting{
	{Key: "business_name", Value: "Personal Training Studio"},
	{Key: "business_description", Value: "Personal training tailored to you"},
	{Key: "hero_title", Value: "Turn your goals into results"},
	{Key: "hero_subtitle", Value: "One-on-one coaching that gets you where you want to be"},
	{Key: "contact_phone", Value: "050-1234567"},
	{Key: "contact_email", Value: "studio@business.com"},
	{Key: "contact_address", Value: "Tel Aviv, Israel"},
	{Key: "working_hours", Value: "Sun-Thu: 06:00-22:00, Fri: 06:00-16:00"},
	{Key: "about_text", Value: "Certified coach with over 10 years of experience"},
}

var defaultServices = []models.Service{
	{Name: "Personal Training", Description: "One-on-one session matched to your level and goals", Duration: 60, Price: 200, Active: true},
	{Name: "Couples Training", Description: "Session for a couple or two friends", Duration: 60, Price: 300, Active: true},
	{Name: "Nutrition Plan", Description: "Personal nutrition plan", Duration: 0, Price: 150, Active: true},
	{Name: "Fitness Consultation", Description: "Consultation and training plan", Duration: 45, Price: 100, Active: true},
}

// Seed creates the admin account and, when enabled, the default settings and
// services. It is safe to run on every start.
func Seed(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	tx := db.WithContext(ctx)

	if err := seedAdmin(tx, cfg); err != nil {
		return err
	}

	if !cfg.SeedDefaults {
		return nil
	}

	settings := make([]models.Setting, len(defaultSettings))
	copy(settings, defaultSettings)
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&settings).Error; err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	// Service names are not unique, so only seed an empty catalogue.
	var count int64
	if err := tx.Model(&models.Service{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count services: %w", err)
	}
	if count == 0 {
		services := make([]models.Service, len(defaultServices))
		copy(services, defaultServices)
		if err := tx.Create(&services).Error; err != nil {
			return fmt.Errorf("seed services: %w", err)
		}
	}

	return nil
}

func seedAdmin(tx *gorm.DB, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.User{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}

	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

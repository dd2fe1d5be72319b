package config

import (
	"log"
	"os"

	"github.com/finnmprice/caffeine-counter/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB loads the environment, validates required settings and opens the
// Postgres connection. Missing required config is fatal: the process must
// not come up in a degraded mode.
func InitDB() {
	_ = godotenv.Load() // .env is optional outside local dev

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatalf("DATABASE_URL not set")
	}
	if os.Getenv("GOOGLE_CLIENT_ID") == "" {
		log.Fatalf("GOOGLE_CLIENT_ID not set")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true, // surface unique violations as gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.CaffeineEntry{},
		&models.DrinkType{},
		&models.DrinkSize{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Port returns the listen address, honoring the optional PORT override.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ":8080"
}

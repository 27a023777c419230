package config

import (
	"fmt"
	"log"
	"os"

	"nutriassist/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// LoadEnv reads .env if present. Missing file is fine in containers where the
// environment is set directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Migrate runs schema migration on any gorm DB, so tests can reuse it
// against their own connection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.DietPlan{},
		&models.MealItem{},
	)
}

// JWTSecret returns the token signing key, falling back to a dev default so a
// bare environment still boots.
func JWTSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("supersecretkey")
}

func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "5000"
}

func ClientURL() string {
	return os.Getenv("CLIENT_URL")
}

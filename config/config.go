package config

import (
	"log"
	"os"

	"dine-in-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign staff tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "dine_in_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv reads a .env file if present; env vars already set win.
func LoadEnv() {
	_ = godotenv.Load()
}

func InitDB() {
	dsn := getEnv("DATABASE_PATH", "dine_in.db")
	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate runs the schema migration for all models. Split out so tests can
// run it against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.StaffUser{},
		&models.Restaurant{},
		&models.Category{},
		&models.Meal{},
		&models.Drink{},
		&models.Special{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
	)
}

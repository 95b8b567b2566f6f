package config

import (
	"fmt"
	"log"
	"os"

	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	err := godotenv.Load()
	if err != nil {
		log.Fatalf("Error loading .env file")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Recipe{},
		&models.Ingredient{},
		&models.Nutrient{},
		&models.NutrientBundle{},
		&models.UserProfile{},
		&models.Restaurant{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// RequireEdamamCredentials aborts startup when the API credentials are
// missing. This is the only fatal condition outside database setup.
func RequireEdamamCredentials() {
	if os.Getenv("EDAMAM_APP_ID") == "" || os.Getenv("EDAMAM_APP_KEY") == "" {
		log.Fatalf("EDAMAM_APP_ID and EDAMAM_APP_KEY must be set")
	}
}

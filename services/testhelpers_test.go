package services

import (
	"testing"

	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Recipe{},
		&models.Ingredient{},
		&models.Nutrient{},
		&models.NutrientBundle{},
		&models.UserProfile{},
		&models.Restaurant{},
	))
	return db
}

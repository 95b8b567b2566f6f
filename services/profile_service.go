package services

import (
	"errors"
	"log"

	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrOnboardingRequired is returned when no profile exists yet; the client
// shows the onboarding form in response.
var ErrOnboardingRequired = errors.New("no profile found")

type ProfileInput struct {
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	DailyCalorieGoal    int      `json:"daily_calorie_goal"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	HealthGoals         []string `json:"health_goals"`
}

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile returns the first (and in practice only) profile row.
func (s *ProfileService) GetProfile() (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.Order("id").First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOnboardingRequired
		}
		return nil, err
	}
	return &profile, nil
}

// CreateProfile inserts a profile, filling in the defaults the onboarding
// screen starts from when a field is missing.
func (s *ProfileService) CreateProfile(input ProfileInput) (*models.UserProfile, error) {
	profile := &models.UserProfile{
		ProfileID:           uuid.NewString(),
		Name:                input.Name,
		Email:               input.Email,
		DailyCalorieGoal:    input.DailyCalorieGoal,
		DietaryRestrictions: input.DietaryRestrictions,
		HealthGoals:         input.HealthGoals,
	}
	if profile.Name == "" {
		profile.Name = "New User"
	}
	if profile.Email == "" {
		profile.Email = "user@example.com"
	}
	if profile.DailyCalorieGoal <= 0 {
		profile.DailyCalorieGoal = 2000
	}
	if err := s.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateProfile applies the edit form: present fields overwrite, absent ones
// keep their value.
func (s *ProfileService) UpdateProfile(input ProfileInput) (*models.UserProfile, error) {
	profile, err := s.GetProfile()
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		profile.Name = input.Name
	}
	if input.Email != "" {
		profile.Email = input.Email
	}
	if input.DailyCalorieGoal > 0 {
		profile.DailyCalorieGoal = input.DailyCalorieGoal
	}
	if input.DietaryRestrictions != nil {
		profile.DietaryRestrictions = input.DietaryRestrictions
	}
	if input.HealthGoals != nil {
		profile.HealthGoals = input.HealthGoals
	}

	if err := s.db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// SignOut wipes all local data: profiles, recipes, ingredients, nutrients,
// nutrient bundles, and restaurants, each as its own sweep. A failed sweep
// is logged and the rest still run, so a partial failure leaves as little
// behind as possible. Deletes are hard so identity keys become reusable.
func (s *ProfileService) SignOut() {
	sweeps := []struct {
		name  string
		model any
	}{
		{"profiles", &models.UserProfile{}},
		{"recipes", &models.Recipe{}},
		{"ingredients", &models.Ingredient{}},
		{"nutrients", &models.Nutrient{}},
		{"nutrient bundles", &models.NutrientBundle{}},
		{"restaurants", &models.Restaurant{}},
	}
	for _, sweep := range sweeps {
		if err := s.db.Unscoped().Where("1 = 1").Delete(sweep.model).Error; err != nil {
			log.Printf("Error deleting %s on sign-out: %v", sweep.name, err)
		}
	}
}

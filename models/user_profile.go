package models

import (
	"gorm.io/gorm"
)

// UserProfile holds the single local profile. The app treats an empty
// profile table as "onboarding required" and otherwise reads the first row.
type UserProfile struct {
	gorm.Model
	ProfileID           string   `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	Name                string   `gorm:"not null" json:"name"`
	Email               string   `gorm:"not null" json:"email"`
	DailyCalorieGoal    int      `json:"dailyCalorieGoal"`
	DietaryRestrictions []string `gorm:"serializer:json" json:"dietaryRestrictions"`
	HealthGoals         []string `gorm:"serializer:json" json:"healthGoals"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// A restaurant pinned on the map screen. Shares the store with recipes but
// is otherwise independent of the search pipeline.
type Restaurant struct {
	gorm.Model
	RestaurantID   string   `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	Name           string   `gorm:"not null" json:"name"`
	Cuisine        string   `json:"cuisine"`
	Rating         float64  `json:"rating"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Address        string   `json:"address"`
	DietaryOptions []string `gorm:"serializer:json" json:"dietaryOptions"`
	IsFavorite     bool     `gorm:"default:false" json:"isFavorite"`
	DateAdded      time.Time `json:"dateAdded"`
}

package services

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Two restaurants closer than this (in degrees) with the same name count as
// the same place.
const duplicateCoordinateEpsilon = 0.0001

type RestaurantInput struct {
	Name           string   `json:"name" binding:"required"`
	Cuisine        string   `json:"cuisine"`
	Rating         float64  `json:"rating"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Address        string   `json:"address"`
	DietaryOptions []string `json:"dietary_options"`
}

type RestaurantService struct {
	db *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{db: db}
}

// ListRestaurants returns all stored restaurants, seeding the starter set
// into an empty store first.
func (s *RestaurantService) ListRestaurants() ([]models.Restaurant, error) {
	s.seedSampleDataIfNeeded()

	var restaurants []models.Restaurant
	if err := s.db.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// AddRestaurant stores a restaurant unless an equivalent one (same name at
// effectively the same coordinate) already exists; the existing row wins.
func (s *RestaurantService) AddRestaurant(input RestaurantInput) (*models.Restaurant, error) {
	var existing []models.Restaurant
	if err := s.db.Where("name = ?", input.Name).Find(&existing).Error; err != nil {
		return nil, err
	}
	for i := range existing {
		if math.Abs(existing[i].Latitude-input.Latitude) < duplicateCoordinateEpsilon &&
			math.Abs(existing[i].Longitude-input.Longitude) < duplicateCoordinateEpsilon {
			return &existing[i], nil
		}
	}

	restaurant := &models.Restaurant{
		RestaurantID:   uuid.NewString(),
		Name:           input.Name,
		Cuisine:        input.Cuisine,
		Rating:         input.Rating,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Address:        input.Address,
		DietaryOptions: input.DietaryOptions,
		DateAdded:      time.Now(),
	}
	if err := s.db.Create(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}

// ToggleFavorite flips the favorite flag of a restaurant.
func (s *RestaurantService) ToggleFavorite(restaurantID string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.Where("restaurant_id = ?", restaurantID).First(&restaurant).Error; err != nil {
		return nil, err
	}
	restaurant.IsFavorite = !restaurant.IsFavorite
	if err := s.db.Save(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// DeleteRestaurant removes a restaurant from the store.
func (s *RestaurantService) DeleteRestaurant(restaurantID string) error {
	result := s.db.Unscoped().Where("restaurant_id = ?", restaurantID).Delete(&models.Restaurant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *RestaurantService) seedSampleDataIfNeeded() {
	var count int64
	if err := s.db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		log.Printf("Error counting restaurants: %v", err)
		return
	}
	if count > 0 {
		return
	}
	for _, sample := range sampleRestaurants() {
		sample := sample
		if err := s.db.Create(&sample).Error; err != nil &&
			!errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("Error seeding restaurant %s: %v", sample.Name, err)
		}
	}
}

func sampleRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			RestaurantID:   uuid.NewString(),
			Name:           "Culinary Dropout",
			Cuisine:        "American",
			Rating:         4.5,
			Latitude:       33.4280,
			Longitude:      -111.9307,
			Address:        "149 S Farmer Ave, Tempe, AZ 85281",
			DietaryOptions: []string{"Gluten-Free", "Vegetarian"},
			DateAdded:      time.Now(),
		},
		{
			RestaurantID:   uuid.NewString(),
			Name:           "House of Tricks",
			Cuisine:        "New American",
			Rating:         4.7,
			Latitude:       33.4251,
			Longitude:      -111.9360,
			Address:        "114 E 7th St, Tempe, AZ 85281",
			DietaryOptions: []string{"Vegetarian", "Vegan"},
			DateAdded:      time.Now(),
		},
		{
			RestaurantID:   uuid.NewString(),
			Name:           "Four Peaks Brewing Company",
			Cuisine:        "Brewery",
			Rating:         4.6,
			Latitude:       33.4203,
			Longitude:      -111.9097,
			Address:        "1340 E 8th St #104, Tempe, AZ 85281",
			DietaryOptions: []string{"Gluten-Free"},
			DateAdded:      time.Now(),
		},
		{
			RestaurantID:   uuid.NewString(),
			Name:           "Ghost Ranch",
			Cuisine:        "Southwestern",
			Rating:         4.4,
			Latitude:       33.3831,
			Longitude:      -111.9562,
			Address:        "1006 E Warner Rd #102-103, Tempe, AZ 85284",
			DietaryOptions: []string{"Vegetarian", "Gluten-Free"},
			DateAdded:      time.Now(),
		},
	}
}

package services

import (
	"testing"

	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRestaurants_SeedsEmptyStore(t *testing.T) {
	svc := NewRestaurantService(newTestDB(t))

	restaurants, err := svc.ListRestaurants()

	require.NoError(t, err)
	require.Len(t, restaurants, 4)

	names := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		names = append(names, r.Name)
	}
	assert.ElementsMatch(t, []string{
		"Culinary Dropout",
		"House of Tricks",
		"Four Peaks Brewing Company",
		"Ghost Ranch",
	}, names)
}

func TestListRestaurants_SeedsOnlyOnce(t *testing.T) {
	svc := NewRestaurantService(newTestDB(t))

	_, err := svc.ListRestaurants()
	require.NoError(t, err)
	restaurants, err := svc.ListRestaurants()
	require.NoError(t, err)

	assert.Len(t, restaurants, 4)
}

func TestListRestaurants_NoSeedIntoPopulatedStore(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Restaurant{
		RestaurantID: "r-1",
		Name:         "Existing Spot",
	}).Error)
	svc := NewRestaurantService(db)

	restaurants, err := svc.ListRestaurants()

	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "Existing Spot", restaurants[0].Name)
}

func TestAddRestaurant(t *testing.T) {
	svc := NewRestaurantService(newTestDB(t))

	added, err := svc.AddRestaurant(RestaurantInput{
		Name:           "Pita Jungle",
		Cuisine:        "Mediterranean",
		Rating:         4.3,
		Latitude:       33.4210,
		Longitude:      -111.9280,
		Address:        "1250 E Apache Blvd, Tempe, AZ 85281",
		DietaryOptions: []string{"Vegan", "Gluten-Free"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, added.RestaurantID)
	assert.False(t, added.IsFavorite)
	assert.False(t, added.DateAdded.IsZero())
}

func TestAddRestaurant_DuplicateCoordinatesReturnExisting(t *testing.T) {
	svc := NewRestaurantService(newTestDB(t))

	input := RestaurantInput{
		Name:      "Pita Jungle",
		Latitude:  33.4210,
		Longitude: -111.9280,
	}
	first, err := svc.AddRestaurant(input)
	require.NoError(t, err)

	// nudge well inside the epsilon
	input.Latitude += 0.00005
	input.Longitude -= 0.00005
	second, err := svc.AddRestaurant(input)
	require.NoError(t, err)

	assert.Equal(t, first.RestaurantID, second.RestaurantID)

	var count int64
	require.NoError(t, svc.db.Model(&models.Restaurant{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddRestaurant_SameNameFarAwayIsDistinct(t *testing.T) {
	svc := NewRestaurantService(newTestDB(t))

	first, err := svc.AddRestaurant(RestaurantInput{
		Name: "Pita Jungle", Latitude: 33.4210, Longitude: -111.9280,
	})
	require.NoError(t, err)

	second, err := svc.AddRestaurant(RestaurantInput{
		Name: "Pita Jungle", Latitude: 33.5100, Longitude: -111.9280,
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.RestaurantID, second.RestaurantID)
}

func TestToggleFavorite(t *testing.T) {
	svc := NewRestaurantService(newTestDB(t))

	added, err := svc.AddRestaurant(RestaurantInput{Name: "Pita Jungle"})
	require.NoError(t, err)
	require.False(t, added.IsFavorite)

	toggled, err := svc.ToggleFavorite(added.RestaurantID)
	require.NoError(t, err)
	assert.True(t, toggled.IsFavorite)

	toggled, err = svc.ToggleFavorite(added.RestaurantID)
	require.NoError(t, err)
	assert.False(t, toggled.IsFavorite)
}

func TestToggleFavorite_UnknownID(t *testing.T) {
	svc := NewRestaurantService(newTestDB(t))

	_, err := svc.ToggleFavorite("no-such-id")
	require.Error(t, err)
}

func TestDeleteRestaurant(t *testing.T) {
	svc := NewRestaurantService(newTestDB(t))

	added, err := svc.AddRestaurant(RestaurantInput{Name: "Pita Jungle"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRestaurant(added.RestaurantID))

	var count int64
	require.NoError(t, svc.db.Model(&models.Restaurant{}).Count(&count).Error)
	assert.Zero(t, count)

	assert.Error(t, svc.DeleteRestaurant(added.RestaurantID))
}

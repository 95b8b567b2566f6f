package controllers

import (
	"errors"
	"net/http"

	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/config"
	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /restaurants
func ListRestaurants(c *gin.Context) {
	restaurants, err := services.NewRestaurantService(config.DB).ListRestaurants()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// POST /restaurants
func AddRestaurant(c *gin.Context) {
	var input services.RestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	restaurant, err := services.NewRestaurantService(config.DB).AddRestaurant(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// POST /restaurants/:id/favorite
func ToggleRestaurantFavorite(c *gin.Context) {
	restaurant, err := services.NewRestaurantService(config.DB).ToggleFavorite(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// DELETE /restaurants/:id
func DeleteRestaurant(c *gin.Context) {
	err := services.NewRestaurantService(config.DB).DeleteRestaurant(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "restaurant deleted"})
}

// GET /places/search?q=pizza
func SearchPlaces(c *gin.Context) {
	places, err := services.NewPlacesService().SearchPlaces(c.Query("q"), services.DefaultRegion)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"places": places})
}

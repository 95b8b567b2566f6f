package controllers

import (
	"errors"
	"net/http"

	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/config"
	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/services"

	"github.com/gin-gonic/gin"
)

// GET /profile
func GetProfile(c *gin.Context) {
	profile, err := services.NewProfileService(config.DB).GetProfile()
	if err != nil {
		if errors.Is(err, services.ErrOnboardingRequired) {
			c.JSON(http.StatusNotFound, gin.H{"error": "onboarding_required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// POST /profile
func CreateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	profile, err := services.NewProfileService(config.DB).CreateProfile(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// PUT /profile
func UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	profile, err := services.NewProfileService(config.DB).UpdateProfile(input)
	if err != nil {
		if errors.Is(err, services.ErrOnboardingRequired) {
			c.JSON(http.StatusNotFound, gin.H{"error": "onboarding_required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// POST /profile/signout
func SignOut(c *gin.Context) {
	services.NewProfileService(config.DB).SignOut()
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

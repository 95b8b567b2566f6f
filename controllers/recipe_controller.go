package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/config"
	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newRecipeService() *services.RecipeService {
	return services.NewRecipeService(config.DB, services.NewEdamamService())
}

// POST /recipes/search  (create-meal flow)
func CreateMealSearch(c *gin.Context) {
	var criteria services.SearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	outcome, err := newRecipeService().CreateMealSearch(criteria)
	if err != nil {
		c.JSON(searchErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// POST /recipes/query  (recipes screen)
func SearchRecipes(c *gin.Context) {
	var criteria services.SearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	recipes, err := newRecipeService().SearchRecipes(criteria)
	if err != nil {
		c.JSON(searchErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GET /recipes/detail?q=pancakes
func GetRecipeDetails(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	recipe, err := newRecipeService().GetRecipeDetails(query)
	if err != nil {
		c.JSON(searchErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// GET /recipes/saved?q=chicken&mealType=Dinner
func GetSavedRecipes(c *gin.Context) {
	recipes, err := newRecipeService().SavedRecipes(c.Query("q"), c.Query("mealType"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// POST /recipes/:id/save
func SaveRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := newRecipeService().SaveRecipe(uint(id))
	if err != nil {
		c.JSON(recordErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// POST /recipes/:id/remove
func RemoveRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := newRecipeService().RemoveRecipe(uint(id))
	if err != nil {
		c.JSON(recordErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// searchErrorStatus maps the search error set onto HTTP statuses. Every kind
// is recoverable; the user resubmits.
func searchErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNoMatches):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func recordErrorStatus(err error) int {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

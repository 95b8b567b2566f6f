package routes

import (
	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/controllers"
	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewSearchHub()
	services.InitSearchHub(hub)
	realtime := controllers.NewRealtimeController(hub)

	recipes := r.Group("/recipes")
	{
		recipes.POST("/search", controllers.CreateMealSearch)
		recipes.POST("/query", controllers.SearchRecipes)
		recipes.GET("/detail", controllers.GetRecipeDetails)
		recipes.GET("/saved", controllers.GetSavedRecipes)
		recipes.POST("/:id/save", controllers.SaveRecipe)
		recipes.POST("/:id/remove", controllers.RemoveRecipe)
	}

	profile := r.Group("/profile")
	{
		profile.GET("", controllers.GetProfile)
		profile.POST("", controllers.CreateProfile)
		profile.PUT("", controllers.UpdateProfile)
		profile.POST("/signout", controllers.SignOut)
	}

	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", controllers.ListRestaurants)
		restaurants.POST("", controllers.AddRestaurant)
		restaurants.POST("/:id/favorite", controllers.ToggleRestaurantFavorite)
		restaurants.DELETE("/:id", controllers.DeleteRestaurant)
	}

	r.GET("/places/search", controllers.SearchPlaces)

	r.GET("/ws/search/:channel", realtime.SearchEventsWS)

	return r
}

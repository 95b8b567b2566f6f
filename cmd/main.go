package main

import (
	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/config"
	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/routes"
)

func main() {
	config.InitDB()
	config.RequireEdamamCredentials()
	r := routes.SetupRouter()
	r.Run(":8080")
}

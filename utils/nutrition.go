package utils

import "fmt"

// CaloriesPerServing divides total calories by the serving count, treating a
// non-positive yield as a single serving.
func CaloriesPerServing(calories, yield float64) float64 {
	servings := yield
	if servings <= 0 {
		servings = 1
	}
	return calories / servings
}

func FormatCalories(calories float64) string {
	return fmt.Sprintf("%.0f", calories)
}

func FormatCookingTime(totalTime float64) string {
	if totalTime <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d min", int(totalTime))
}

func FormatServings(yield float64) string {
	if yield <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d servings", int(yield))
}

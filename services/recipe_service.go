package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/models"
	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecipeService struct {
	db  *gorm.DB
	eda *EdamamService
}

func NewRecipeService(db *gorm.DB, eda *EdamamService) *RecipeService {
	return &RecipeService{db: db, eda: eda}
}

// withRecipeGraph preloads a recipe's ingredient rows and the full nutrient
// bundle.
func withRecipeGraph(db *gorm.DB) *gorm.DB {
	for _, rel := range []string{
		"Ingredients",
		"Nutrients.Energy", "Nutrients.Fat", "Nutrients.Carbs", "Nutrients.Protein",
		"Nutrients.Cholesterol", "Nutrients.Sodium", "Nutrients.Calcium", "Nutrients.Magnesium",
		"Nutrients.Potassium", "Nutrients.Iron", "Nutrients.Fiber", "Nutrients.Sugar",
	} {
		db = db.Preload(rel)
	}
	return db
}

// Reconcile maps a fetched recipe onto the store. An existing row for the
// URI is returned untouched: its saved flag and sub-records win over the
// fresh transport data. Otherwise the full record graph is built and
// persisted. seedSaved controls how a new record's saved flag is
// initialized: the recipes screen seeds it from currently saved URIs, the
// create-meal screen always starts at false.
func (s *RecipeService) Reconcile(fetched FetchedRecipe, seedSaved bool) *models.Recipe {
	if existing := s.findRecipe(fetched.URI); existing != nil {
		return existing
	}

	ingredients := make([]models.Ingredient, 0, len(fetched.Ingredients))
	for _, ing := range fetched.Ingredients {
		ingredients = append(ingredients, models.Ingredient{
			IngredientID: uuid.NewString(),
			Text:         ing.Text,
			Quantity:     ing.Quantity,
			Measure:      ing.Measure,
			Food:         ing.Food,
			Weight:       ing.Weight,
			FoodCategory: ing.FoodCategory,
			FoodID:       ing.FoodID,
			Image:        ing.Image,
		})
	}

	isSaved := false
	if seedSaved {
		isSaved = s.isURISaved(fetched.URI)
	}

	recipe := &models.Recipe{
		URI:             fetched.URI,
		Label:           fetched.Label,
		Image:           fetched.Image,
		Source:          fetched.Source,
		URL:             fetched.URL,
		Yield:           fetched.Yield,
		DietLabels:      fetched.DietLabels,
		HealthLabels:    fetched.HealthLabels,
		Cautions:        fetched.Cautions,
		IngredientLines: fetched.IngredientLines,
		Ingredients:     ingredients,
		Calories:        fetched.Calories,
		TotalWeight:     fetched.TotalWeight,
		TotalTime:       fetched.TotalTime,
		CuisineType:     fetched.CuisineType,
		MealType:        fetched.MealType,
		DishType:        fetched.DishType,
		Nutrients:       buildNutrientBundle(fetched.TotalNutrients),
		IsSaved:         isSaved,
	}

	if err := s.db.Create(recipe).Error; err != nil {
		log.Printf("Error persisting recipe %s: %v", fetched.URI, err)
	}
	return recipe
}

// buildNutrientBundle maps the fetched nutrient set to persisted rows. An
// absent nutrient stays a nil relation.
func buildNutrientBundle(n FetchedNutrients) *models.NutrientBundle {
	bundle := &models.NutrientBundle{BundleID: uuid.NewString()}
	bundle.Energy = newNutrient(n.Energy)
	bundle.Fat = newNutrient(n.Fat)
	bundle.Carbs = newNutrient(n.Carbs)
	bundle.Protein = newNutrient(n.Protein)
	bundle.Cholesterol = newNutrient(n.Cholesterol)
	bundle.Sodium = newNutrient(n.Sodium)
	bundle.Calcium = newNutrient(n.Calcium)
	bundle.Magnesium = newNutrient(n.Magnesium)
	bundle.Potassium = newNutrient(n.Potassium)
	bundle.Iron = newNutrient(n.Iron)
	bundle.Fiber = newNutrient(n.Fiber)
	bundle.Sugar = newNutrient(n.Sugar)
	return bundle
}

func newNutrient(n *FetchedNutrient) *models.Nutrient {
	if n == nil {
		return nil
	}
	return &models.Nutrient{
		NutrientID: uuid.NewString(),
		Label:      n.Label,
		Quantity:   n.Quantity,
		Unit:       n.Unit,
	}
}

func (s *RecipeService) findRecipe(uri string) *models.Recipe {
	var recipe models.Recipe
	err := withRecipeGraph(s.db).Where("uri = ?", uri).First(&recipe).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error finding recipe: %v", err)
		}
		return nil
	}
	return &recipe
}

func (s *RecipeService) isURISaved(uri string) bool {
	var count int64
	if err := s.db.Model(&models.Recipe{}).
		Where("uri = ? AND is_saved = ?", uri, true).
		Count(&count).Error; err != nil {
		log.Printf("Error checking saved recipes: %v", err)
		return false
	}
	return count > 0
}

// CaloriesPerServing of a stored recipe.
func CaloriesPerServing(r *models.Recipe) float64 {
	return utils.CaloriesPerServing(r.Calories, r.Yield)
}

// FilterByMaxCalories keeps the recipes whose calories per serving do not
// exceed the bound. A non-positive bound keeps everything.
func FilterByMaxCalories(recipes []*models.Recipe, maxCalories int) []*models.Recipe {
	if maxCalories <= 0 {
		return recipes
	}
	filtered := make([]*models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if CaloriesPerServing(r) <= float64(maxCalories) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// SortByCaloriesPerServing orders recipes high to low by calories per
// serving.
func SortByCaloriesPerServing(recipes []*models.Recipe) {
	sort.Slice(recipes, func(i, j int) bool {
		return CaloriesPerServing(recipes[i]) > CaloriesPerServing(recipes[j])
	})
}

// CreateSearchOutcome is what the create-meal screen renders: the surviving
// recipes and, when they are empty, a message that distinguishes a calorie
// bound filtering everything out from the search itself returning nothing.
type CreateSearchOutcome struct {
	Recipes []*models.Recipe `json:"recipes"`
	Message string           `json:"message,omitempty"`
}

// CreateMealSearch runs the full create-meal pipeline: search, reconcile,
// client-side calorie filter, and descending calories-per-serving sort.
func (s *RecipeService) CreateMealSearch(criteria SearchCriteria) (*CreateSearchOutcome, error) {
	fetched, err := s.eda.SearchOn(ChannelCreateMeal, criteria)
	if err != nil {
		if errors.Is(err, ErrNoMatches) {
			return &CreateSearchOutcome{
				Recipes: []*models.Recipe{},
				Message: "No recipes found matching your criteria. Try adjusting your filters.",
			}, nil
		}
		return nil, err
	}

	recipes := make([]*models.Recipe, 0, len(fetched))
	for _, f := range fetched {
		recipes = append(recipes, s.Reconcile(f, false))
	}

	results := FilterByMaxCalories(recipes, criteria.MaxCalories)
	SortByCaloriesPerServing(results)

	outcome := &CreateSearchOutcome{Recipes: results}
	if len(results) == 0 {
		if criteria.MaxCalories > 0 {
			outcome.Message = fmt.Sprintf(
				"No recipes found under %d calories. Try increasing your calorie target.",
				criteria.MaxCalories)
		} else {
			outcome.Message = "No recipes found matching your criteria. Try adjusting your filters."
		}
	}
	return outcome, nil
}

// SearchRecipes runs the recipes-screen pipeline: search and reconcile with
// the saved flag seeded from currently saved URIs. No client-side calorie
// filter applies here. An empty query returns nothing without a fetch.
func (s *RecipeService) SearchRecipes(criteria SearchCriteria) ([]*models.Recipe, error) {
	if criteria.Query == "" {
		return []*models.Recipe{}, nil
	}

	fetched, err := s.eda.SearchOn(ChannelRecipes, criteria)
	if err != nil {
		return nil, err
	}

	recipes := make([]*models.Recipe, 0, len(fetched))
	for _, f := range fetched {
		recipes = append(recipes, s.Reconcile(f, true))
	}
	return recipes, nil
}

// GetRecipeDetails fetches the first hit for a free-text query and
// reconciles it.
func (s *RecipeService) GetRecipeDetails(query string) (*models.Recipe, error) {
	fetched, err := s.eda.Search(SearchCriteria{Query: query})
	if err != nil {
		return nil, err
	}
	return s.Reconcile(fetched[0], true), nil
}

// SavedRecipes returns the saved subset, narrowed by an optional
// case-insensitive label substring and an optional meal-type category. "All"
// or an empty category is a no-op; both filters compose with AND.
func (s *RecipeService) SavedRecipes(text, category string) ([]models.Recipe, error) {
	var saved []models.Recipe
	if err := withRecipeGraph(s.db).
		Where("is_saved = ?", true).
		Find(&saved).Error; err != nil {
		log.Printf("Error fetching saved recipes: %v", err)
		return []models.Recipe{}, nil
	}

	filtered := make([]models.Recipe, 0, len(saved))
	for _, r := range saved {
		if text != "" && !strings.Contains(strings.ToLower(r.Label), strings.ToLower(text)) {
			continue
		}
		if category != "" && category != "All" && !matchesMealType(r.MealType, category) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

func matchesMealType(mealTypes []string, category string) bool {
	for _, mt := range mealTypes {
		if strings.Contains(strings.ToLower(mt), strings.ToLower(category)) {
			return true
		}
	}
	return false
}

// SaveRecipe flips the saved flag on. Already-saved recipes are left alone.
func (s *RecipeService) SaveRecipe(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		return nil, err
	}
	if !recipe.IsSaved {
		recipe.IsSaved = true
		if err := s.db.Save(&recipe).Error; err != nil {
			log.Printf("Error saving recipe %d: %v", id, err)
		}
	}
	return &recipe, nil
}

// RemoveRecipe flips the saved flag off. The row itself stays so a later
// fetch of the same URI still reconciles to it.
func (s *RecipeService) RemoveRecipe(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		return nil, err
	}
	recipe.IsSaved = false
	if err := s.db.Save(&recipe).Error; err != nil {
		log.Printf("Error removing recipe %d: %v", id, err)
	}
	return &recipe, nil
}

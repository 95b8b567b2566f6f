package services

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Closed error set for recipe search. The messages are shown to the user
// verbatim.
var (
	ErrInvalidRequest = errors.New("Invalid URL")
	ErrTransport      = errors.New("Invalid response from server")
	ErrEmptyResponse  = errors.New("No data received")
	ErrNoMatches      = errors.New("No recipes found")
	ErrDecode         = errors.New("Error parsing recipe data")
)

// Meal types and dietary restrictions the filter UI offers.
var AvailableMealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

var AvailableDietaryRestrictions = []string{
	"Vegetarian",
	"Vegan",
	"Gluten-Free",
	"Dairy-Free",
	"Nut-Free",
	"Low-Carb",
	"Low-Fat",
	"High-Protein",
	"High-Fiber",
	"Low-Sodium",
}

type dietParam struct {
	Type  string
	Value string
}

// Mapping of restriction names to Edamam API health/diet values. Labels not
// in the table contribute no parameter.
var dietMapping = map[string]dietParam{
	"Vegetarian":   {Type: "health", Value: "vegetarian"},
	"Vegan":        {Type: "health", Value: "vegan"},
	"Gluten-Free":  {Type: "health", Value: "gluten-free"},
	"Dairy-Free":   {Type: "health", Value: "dairy-free"},
	"Nut-Free":     {Type: "health", Value: "peanut-free"},
	"Low-Carb":     {Type: "diet", Value: "low-carb"},
	"Low-Fat":      {Type: "diet", Value: "low-fat"},
	"High-Protein": {Type: "diet", Value: "high-protein"},
	"High-Fiber":   {Type: "diet", Value: "high-fiber"},
	"Low-Sodium":   {Type: "diet", Value: "low-sodium"},
}

// LookupDietMapping reports the health/diet parameter for a restriction
// label, if any.
func LookupDietMapping(label string) (category, value string, ok bool) {
	m, ok := dietMapping[label]
	if !ok {
		return "", "", false
	}
	return m.Type, m.Value, true
}

// SearchCriteria is the filter state a screen submits for a search.
// MealType is empty when no meal type is selected; MaxCalories <= 0 means no
// calorie bound.
type SearchCriteria struct {
	Query               string   `json:"query"`
	MealType            string   `json:"meal_type"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	MaxCalories         int      `json:"max_calories"`
}

// EffectiveTerm is the text actually searched: the free-text query, or the
// meal type when the query is empty.
func (c SearchCriteria) EffectiveTerm() string {
	if c.Query != "" {
		return c.Query
	}
	return c.MealType
}

// Transport shapes of the Edamam recipe search v2 response.

type FetchedNutrient struct {
	Label    string  `json:"label"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type FetchedNutrients struct {
	Energy      *FetchedNutrient `json:"ENERC_KCAL"`
	Fat         *FetchedNutrient `json:"FAT"`
	Carbs       *FetchedNutrient `json:"CHOCDF"`
	Protein     *FetchedNutrient `json:"PROCNT"`
	Cholesterol *FetchedNutrient `json:"CHOLE"`
	Sodium      *FetchedNutrient `json:"NA"`
	Calcium     *FetchedNutrient `json:"CA"`
	Magnesium   *FetchedNutrient `json:"MG"`
	Potassium   *FetchedNutrient `json:"K"`
	Iron        *FetchedNutrient `json:"FE"`
	Fiber       *FetchedNutrient `json:"FIBTG"`
	Sugar       *FetchedNutrient `json:"SUGAR"`
}

type FetchedIngredient struct {
	Text         string  `json:"text"`
	Quantity     float64 `json:"quantity"`
	Measure      *string `json:"measure"`
	Food         string  `json:"food"`
	Weight       float64 `json:"weight"`
	FoodCategory *string `json:"foodCategory"`
	FoodID       string  `json:"foodId"`
	Image        *string `json:"image"`
}

type FetchedRecipe struct {
	URI             string              `json:"uri"`
	Label           string              `json:"label"`
	Image           string              `json:"image"`
	Source          string              `json:"source"`
	URL             string              `json:"url"`
	Yield           float64             `json:"yield"`
	DietLabels      []string            `json:"dietLabels"`
	HealthLabels    []string            `json:"healthLabels"`
	Cautions        []string            `json:"cautions"`
	IngredientLines []string            `json:"ingredientLines"`
	Ingredients     []FetchedIngredient `json:"ingredients"`
	Calories        float64             `json:"calories"`
	TotalWeight     float64             `json:"totalWeight"`
	TotalTime       float64             `json:"totalTime"`
	CuisineType     []string            `json:"cuisineType"`
	MealType        []string            `json:"mealType"`
	DishType        []string            `json:"dishType"`
	TotalNutrients  FetchedNutrients    `json:"totalNutrients"`
}

type recipeSearchResponse struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Count int `json:"count"`
	Hits  []struct {
		Recipe FetchedRecipe `json:"recipe"`
	} `json:"hits"`
}

type EdamamService struct {
	appID, appKey string
	baseURL       string
	client        *http.Client
	state         *SearchState
}

// NewEdamamService initializes the EdamamService with credentials and HTTP
// client. All instances share the process-wide search state.
func NewEdamamService() *EdamamService {
	return &EdamamService{
		appID:   os.Getenv("EDAMAM_APP_ID"),
		appKey:  os.Getenv("EDAMAM_APP_KEY"),
		baseURL: "https://api.edamam.com/api/recipes/v2",
		client:  &http.Client{Timeout: 10 * time.Second},
		state:   sharedSearchState,
	}
}

// buildSearchURL assembles the request URL from the criteria. Even criteria
// with no effective filters produce a valid request; the server decides
// relevance.
func (s *EdamamService) buildSearchURL(criteria SearchCriteria) (string, error) {
	base, err := url.Parse(s.baseURL)
	if err != nil {
		return "", ErrInvalidRequest
	}

	params := url.Values{}
	params.Set("type", "public")
	params.Set("app_id", s.appID)
	params.Set("app_key", s.appKey)

	if term := criteria.EffectiveTerm(); term != "" {
		params.Set("q", term)
	}

	if criteria.MealType != "" {
		params.Set("mealType", strings.ToLower(criteria.MealType))
	}

	healthSet := map[string]struct{}{}
	dietSet := map[string]struct{}{}
	for _, restriction := range criteria.DietaryRestrictions {
		mapping, ok := dietMapping[restriction]
		if !ok {
			continue
		}
		switch mapping.Type {
		case "health":
			healthSet[mapping.Value] = struct{}{}
		case "diet":
			dietSet[mapping.Value] = struct{}{}
		}
	}
	for _, v := range sortedKeys(healthSet) {
		params.Add("health", v)
	}
	for _, v := range sortedKeys(dietSet) {
		params.Add("diet", v)
	}

	if criteria.MaxCalories > 0 {
		params.Set("calories", "0-"+strconv.Itoa(criteria.MaxCalories))
	}

	params.Set("random", "true")

	base.RawQuery = params.Encode()
	return base.String(), nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Search performs exactly one fetch against the recipe search endpoint.
// Errors belong to the closed set above and are checked in order: URL build,
// transport, status range, body presence, hit count, schema decode. The
// shared search state is updated as a side effect; a completion that lost
// the race to a newer search does not overwrite the newer results.
func (s *EdamamService) Search(criteria SearchCriteria) ([]FetchedRecipe, error) {
	return s.SearchOn("", criteria)
}

// SearchOn is Search plus lifecycle events on the given screen channel.
func (s *EdamamService) SearchOn(channel string, criteria SearchCriteria) ([]FetchedRecipe, error) {
	seq := s.state.Begin()
	if channel != "" {
		EmitSearchEvent(channel, "search.started", seq, nil)
	}

	recipes, err := s.fetchRecipes(criteria)
	s.state.Complete(seq, recipes, err)
	if channel != "" {
		if err != nil {
			EmitSearchEvent(channel, "search.failed", seq, map[string]any{"error": err.Error()})
		} else {
			EmitSearchEvent(channel, "search.succeeded", seq, map[string]any{"count": len(recipes)})
		}
	}
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *EdamamService) fetchRecipes(criteria SearchCriteria) ([]FetchedRecipe, error) {
	u, err := s.buildSearchURL(criteria)
	if err != nil {
		return nil, ErrInvalidRequest
	}

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, ErrInvalidRequest
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Edamam-Account-User", "0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, ErrTransport
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrTransport
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ErrTransport
	}
	if len(body) == 0 {
		return nil, ErrEmptyResponse
	}

	var sr recipeSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, ErrDecode
	}
	if len(sr.Hits) == 0 {
		return nil, ErrNoMatches
	}

	recipes := make([]FetchedRecipe, 0, len(sr.Hits))
	for _, h := range sr.Hits {
		recipes = append(recipes, h.Recipe)
	}
	return recipes, nil
}

package models

import "gorm.io/gorm"

// A recipe fetched from Edamam and kept locally. The URI is the identity
// key: one row per URI, re-fetches reuse the existing row.
type Recipe struct {
	gorm.Model
	URI             string          `gorm:"type:varchar(512);uniqueIndex;not null" json:"uri"`
	Label           string          `gorm:"not null" json:"label"`
	Image           string          `json:"image"`
	Source          string          `json:"source"`
	URL             string          `json:"url"`
	Yield           float64         `json:"yield"`
	DietLabels      []string        `gorm:"serializer:json" json:"dietLabels"`
	HealthLabels    []string        `gorm:"serializer:json" json:"healthLabels"`
	Cautions        []string        `gorm:"serializer:json" json:"cautions"`
	IngredientLines []string        `gorm:"serializer:json" json:"ingredientLines"`
	Ingredients     []Ingredient    `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
	Calories        float64         `json:"calories"`
	TotalWeight     float64         `json:"totalWeight"`
	TotalTime       float64         `json:"totalTime"`
	CuisineType     []string        `gorm:"serializer:json" json:"cuisineType"`
	MealType        []string        `gorm:"serializer:json" json:"mealType"`
	DishType        []string        `gorm:"serializer:json" json:"dishType"`
	Nutrients       *NutrientBundle `gorm:"constraint:OnDelete:CASCADE" json:"totalNutrients"`
	IsSaved         bool            `gorm:"default:false" json:"isSaved"`
}

// One structured ingredient of a recipe.
type Ingredient struct {
	gorm.Model
	IngredientID string  `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	RecipeID     uint    `gorm:"index" json:"-"`
	Text         string  `json:"text"`
	Quantity     float64 `json:"quantity"`
	Measure      *string `json:"measure"`
	Food         string  `json:"food"`
	Weight       float64 `json:"weight"`
	FoodCategory *string `json:"foodCategory"`
	FoodID       string  `json:"foodId"`
	Image        *string `json:"image"`
}

// The fixed 12-slot nutrient bundle of a recipe. A nutrient the API did not
// report stays a null relation, never a zero-value row.
type NutrientBundle struct {
	gorm.Model
	BundleID string `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	RecipeID uint   `gorm:"uniqueIndex" json:"-"`

	EnergyID      *uint     `json:"-"`
	Energy        *Nutrient `gorm:"foreignKey:EnergyID" json:"ENERC_KCAL"`
	FatID         *uint     `json:"-"`
	Fat           *Nutrient `gorm:"foreignKey:FatID" json:"FAT"`
	CarbsID       *uint     `json:"-"`
	Carbs         *Nutrient `gorm:"foreignKey:CarbsID" json:"CHOCDF"`
	ProteinID     *uint     `json:"-"`
	Protein       *Nutrient `gorm:"foreignKey:ProteinID" json:"PROCNT"`
	CholesterolID *uint     `json:"-"`
	Cholesterol   *Nutrient `gorm:"foreignKey:CholesterolID" json:"CHOLE"`
	SodiumID      *uint     `json:"-"`
	Sodium        *Nutrient `gorm:"foreignKey:SodiumID" json:"NA"`
	CalciumID     *uint     `json:"-"`
	Calcium       *Nutrient `gorm:"foreignKey:CalciumID" json:"CA"`
	MagnesiumID   *uint     `json:"-"`
	Magnesium     *Nutrient `gorm:"foreignKey:MagnesiumID" json:"MG"`
	PotassiumID   *uint     `json:"-"`
	Potassium     *Nutrient `gorm:"foreignKey:PotassiumID" json:"K"`
	IronID        *uint     `json:"-"`
	Iron          *Nutrient `gorm:"foreignKey:IronID" json:"FE"`
	FiberID       *uint     `json:"-"`
	Fiber         *Nutrient `gorm:"foreignKey:FiberID" json:"FIBTG"`
	SugarID       *uint     `json:"-"`
	Sugar         *Nutrient `gorm:"foreignKey:SugarID" json:"SUGAR"`
}

// A single named nutrient measurement.
type Nutrient struct {
	gorm.Model
	NutrientID string  `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	Label      string  `json:"label"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

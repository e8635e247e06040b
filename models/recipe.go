package models

// Difficulty grades how hard a recipe is to prepare.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "fácil"
	DifficultyMedium Difficulty = "médio"
	DifficultyHard   Difficulty = "difícil"
)

// NutritionInfo is the per-serving nutrition summary of a recipe.
type NutritionInfo struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Recipe is a catalog entry. Recipes are static and referenced by ID from
// the favorites set.
type Recipe struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	ImageURL      string        `json:"imageUrl"`
	PrepTime      int           `json:"prepTime"` // minutes
	Servings      int           `json:"servings"`
	Difficulty    Difficulty    `json:"difficulty"`
	Ingredients   []string      `json:"ingredients"`
	Instructions  []string      `json:"instructions"`
	NutritionInfo NutritionInfo `json:"nutritionInfo"`
	Tags          []string      `json:"tags"`
	IsLactoseFree bool          `json:"isLactoseFree"`
}

// RecipeFilter narrows catalog listings. Zero value matches everything.
type RecipeFilter struct {
	Tag             string
	OnlyLactoseFree bool
}

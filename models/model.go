package models

import "time"

// IngredientEstimate is a single ingredient line inside a model-produced
// nutrition estimate. Quantity stays a free-form string ("200g", "1 cup")
// because the model reports it that way.
type IngredientEstimate struct {
	Name              string  `json:"name"`
	EstimatedQuantity string  `json:"estimated_quantity"`
	Calories          float64 `json:"calories"`
	ProteinG          float64 `json:"protein_g"`
	CarbsG            float64 `json:"carbs_g"`
	FatG              float64 `json:"fat_g"`
	FiberG            float64 `json:"fiber_g"`
}

// NutritionEstimate is the structured output parsed from the vision or text
// model response. It is returned to the caller verbatim and never persisted.
type NutritionEstimate struct {
	DishName      string               `json:"dish_name"`
	TotalCalories float64              `json:"total_calories"`
	TotalProteinG float64              `json:"total_protein_g"`
	TotalCarbsG   float64              `json:"total_carbs_g"`
	TotalFatG     float64              `json:"total_fat_g"`
	TotalFiberG   float64              `json:"total_fiber_g"`
	Ingredients   []IngredientEstimate `json:"ingredients"`
	Notes         string               `json:"notes,omitempty"`
}

// UserProfile is a user's nutrition profile, keyed by UserID and replaced
// wholesale on every write. protein/carbs/fat percentages must sum to 100.
type UserProfile struct {
	UserID               string  `gorm:"primaryKey;size:255" json:"user_id"`
	Gender               string  `gorm:"size:20" json:"gender"`
	BirthYear            int     `json:"birth_year"`
	WeightKg             float64 `json:"weight_kg"`
	HeightCm             float64 `json:"height_cm"`
	ActivityLevel        string  `gorm:"size:50" json:"activity_level"`
	GoalType             string  `gorm:"size:20" json:"goal_type"`
	GoalWeightKg         float64 `json:"goal_weight_kg"`
	GoalWeeks            int     `json:"goal_weeks"`
	DailyCalories        int     `json:"daily_calories"`
	MacroFocus           string  `gorm:"size:50" json:"macro_focus"`
	ProteinPercent       float64 `json:"protein_percent"`
	ProteinG             float64 `json:"protein_g"`
	CarbsPercent         float64 `json:"carbs_percent"`
	CarbsG               float64 `json:"carbs_g"`
	FatPercent           float64 `json:"fat_percent"`
	FatG                 float64 `json:"fat_g"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MacroSplit carries one macro's share of the daily calorie target.
type MacroSplit struct {
	Grams   float64 `json:"grams"`
	Percent float64 `json:"percent"`
	Kcal    float64 `json:"kcal"`
}

// MacroBreakdown groups the three macro splits.
type MacroBreakdown struct {
	Protein MacroSplit `json:"protein"`
	Carbs   MacroSplit `json:"carbs"`
	Fat     MacroSplit `json:"fat"`
}

// GoalCalculation is the derived output of the goal calculator. It is
// recomputed on every call and never persisted.
type GoalCalculation struct {
	Age                 int            `json:"age"`
	BMICurrent          float64        `json:"bmi_current"`
	BMICurrentCategory  string         `json:"bmi_current_category"`
	BMIGoal             float64        `json:"bmi_goal"`
	BMIGoalCategory     string         `json:"bmi_goal_category"`
	BMR                 float64        `json:"bmr"`
	TDEE                float64        `json:"tdee"`
	WeightChangeKg      float64        `json:"weight_change_kg"`
	KgPerWeek           float64        `json:"kg_per_week"`
	DailyCalories       int            `json:"daily_calories"`
	MacroFocus          string         `json:"macro_focus"`
	Macros              MacroBreakdown `json:"macros"`
	Warnings            []string       `json:"warnings"`
	EstimatedCompletion string         `json:"estimated_completion_date"`
}

package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/iaigorluiz-svg/nutriai-api/models"
)

// activityMultipliers is the single source of truth for valid activity
// levels and their TDEE factors.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"super_active":      1.9,
}

// activityAliases maps the wire values used by older clients onto the
// canonical level names.
var activityAliases = map[string]string{
	"sedentario":            "sedentary",
	"leve":                  "lightly_active",
	"ligero":                "lightly_active",
	"levemente_ativo":       "lightly_active",
	"ligeramente_activo":    "lightly_active",
	"moderado":              "moderately_active",
	"moderadamente_ativo":   "moderately_active",
	"moderadamente_activo":  "moderately_active",
	"ativo":                 "very_active",
	"activo":                "very_active",
	"muito_ativo":           "very_active",
	"muy_activo":            "very_active",
	"extremamente_ativo":    "super_active",
	"extremadamente_activo": "super_active",
	"intenso":               "super_active",
}

// MacroPreset is a named percentage split of protein/carbs/fat calories.
type MacroPreset struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

var macroPresets = map[string]MacroPreset{
	"balanced":    {Protein: 30, Carbs: 50, Fat: 20},
	"fat_loss":    {Protein: 35, Carbs: 40, Fat: 25},
	"muscle_gain": {Protein: 35, Carbs: 45, Fat: 20},
	"low_carb":    {Protein: 30, Carbs: 30, Fat: 40},
	"ketogenic":   {Protein: 25, Carbs: 5, Fat: 70},
}

var macroFocusAliases = map[string]string{
	"balanceado":        "balanced",
	"equilibrado":       "balanced",
	"emagrecimento":     "fat_loss",
	"perda_gordura":     "fat_loss",
	"perdida_grasa":     "fat_loss",
	"ganho_muscular":    "muscle_gain",
	"ganancia_muscular": "muscle_gain",
	"baixo_carbo":       "low_carb",
	"baja_carbo":        "low_carb",
	"lowcarb":           "low_carb",
	"cetogenico":        "ketogenic",
	"keto":              "ketogenic",
}

var genderAliases = map[string]string{
	"male":      "male",
	"m":         "male",
	"masculino": "male",
	"hombre":    "male",
	"homem":     "male",
	"female":    "female",
	"f":         "female",
	"feminino":  "female",
	"femenino":  "female",
	"mujer":     "female",
	"mulher":    "female",
}

var goalTypeAliases = map[string]string{
	"gain":     "gain",
	"ganhar":   "gain",
	"ganar":    "gain",
	"lose":     "lose",
	"perder":   "lose",
	"maintain": "maintain",
	"manter":   "maintain",
	"mantener": "maintain",
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeGender resolves gender wire values to male/female.
func NormalizeGender(raw string) (string, bool) {
	g, ok := genderAliases[normalize(raw)]
	return g, ok
}

// NormalizeActivity resolves an activity level and returns its multiplier.
func NormalizeActivity(raw string) (string, float64, bool) {
	level := normalize(raw)
	if canonical, ok := activityAliases[level]; ok {
		level = canonical
	}
	mult, ok := activityMultipliers[level]
	return level, mult, ok
}

// NormalizeGoalType resolves a goal type to gain/lose/maintain.
func NormalizeGoalType(raw string) (string, bool) {
	g, ok := goalTypeAliases[normalize(raw)]
	return g, ok
}

// NormalizeMacroFocus resolves a macro focus to its preset. Unrecognized
// values fall back to balanced.
func NormalizeMacroFocus(raw string) (string, MacroPreset) {
	focus := normalize(raw)
	if canonical, ok := macroFocusAliases[focus]; ok {
		focus = canonical
	}
	preset, ok := macroPresets[focus]
	if !ok {
		return "balanced", macroPresets["balanced"]
	}
	return focus, preset
}

// GoalInput is the validated anthropometric and goal data the calculator
// runs over.
type GoalInput struct {
	Gender        string
	BirthYear     int
	WeightKg      float64
	HeightCm      float64
	ActivityLevel string
	GoalType      string
	GoalWeightKg  float64
	GoalWeeks     int
	MacroFocus    string
}

// Safety bounds for the recommended daily calories.
const (
	minCaloriesMale   = 1500
	minCaloriesFemale = 1200
	maxCalories       = 5000

	// kcal equivalent of one kg of body fat
	kcalPerKg = 7700
)

// GoalService computes calorie and macro targets. It is a pure function of
// its input and the clock; identical input and date give identical output.
type GoalService struct {
	now func() time.Time
}

func NewGoalService() *GoalService {
	return &GoalService{now: time.Now}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25.0:
		return "normal"
	case bmi < 30.0:
		return "overweight"
	default:
		return "obese"
	}
}

// Calculate runs the full goal computation. The input must already have
// passed validation (recognized gender and activity level, plausible
// anthropometrics, non-zero goal weeks).
func (s *GoalService) Calculate(in GoalInput) *models.GoalCalculation {
	now := s.now()
	age := now.Year() - in.BirthYear

	heightM := in.HeightCm / 100.0
	bmiCurrent := in.WeightKg / (heightM * heightM)
	bmiGoal := in.GoalWeightKg / (heightM * heightM)

	// Mifflin-St Jeor
	bmr := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(age)
	if in.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	_, mult, _ := NormalizeActivity(in.ActivityLevel)
	tdee := bmr * mult

	weightChange := in.GoalWeightKg - in.WeightKg
	kgPerWeek := weightChange / float64(in.GoalWeeks)
	dailyAdjustment := kgPerWeek * kcalPerKg / 7

	var warnings []string

	dailyCalories := int(math.Round(tdee + dailyAdjustment))
	minCalories := minCaloriesFemale
	if in.Gender == "male" {
		minCalories = minCaloriesMale
	}
	if dailyCalories < minCalories {
		dailyCalories = minCalories
		warnings = append(warnings, fmt.Sprintf("Daily calories raised to the safety floor of %d kcal", minCalories))
	}
	if dailyCalories > maxCalories {
		dailyCalories = maxCalories
		warnings = append(warnings, fmt.Sprintf("Daily calories capped at the safety ceiling of %d kcal", maxCalories))
	}

	if math.Abs(kgPerWeek) > 1 {
		warnings = append(warnings, "Planned weight change exceeds 1 kg per week; consider a longer plan")
	} else if weightChange != 0 && math.Abs(kgPerWeek) < 0.25 {
		warnings = append(warnings, "Planned weight change is under 0.25 kg per week; consider shortening the plan")
	}
	if bmiGoal < 18.5 || bmiGoal >= 30 {
		warnings = append(warnings, fmt.Sprintf("Goal weight lands in the %s BMI range", bmiCategory(bmiGoal)))
	}

	focus, preset := NormalizeMacroFocus(in.MacroFocus)
	completion := now.AddDate(0, 0, in.GoalWeeks*7)

	return &models.GoalCalculation{
		Age:                 age,
		BMICurrent:          round1(bmiCurrent),
		BMICurrentCategory:  bmiCategory(bmiCurrent),
		BMIGoal:             round1(bmiGoal),
		BMIGoalCategory:     bmiCategory(bmiGoal),
		BMR:                 round2(bmr),
		TDEE:                round2(tdee),
		WeightChangeKg:      round2(weightChange),
		KgPerWeek:           round2(kgPerWeek),
		DailyCalories:       dailyCalories,
		MacroFocus:          focus,
		Warnings:            warnings,
		EstimatedCompletion: completion.Format("2006-01-02"),
		Macros:              macroBreakdown(float64(dailyCalories), preset),
	}
}

// macroBreakdown splits a calorie target across the preset percentages.
// Protein and carbs carry 4 kcal per gram, fat 9.
func macroBreakdown(calories float64, preset MacroPreset) models.MacroBreakdown {
	proteinKcal := calories * preset.Protein / 100
	carbsKcal := calories * preset.Carbs / 100
	fatKcal := calories * preset.Fat / 100

	return models.MacroBreakdown{
		Protein: models.MacroSplit{Grams: round1(proteinKcal / 4), Percent: preset.Protein, Kcal: round1(proteinKcal)},
		Carbs:   models.MacroSplit{Grams: round1(carbsKcal / 4), Percent: preset.Carbs, Kcal: round1(carbsKcal)},
		Fat:     models.MacroSplit{Grams: round1(fatKcal / 9), Percent: preset.Fat, Kcal: round1(fatKcal)},
	}
}

package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/iaigorluiz-svg/nutriai-api/logger"
	"github.com/iaigorluiz-svg/nutriai-api/services"
)

type GoalCalculationRequest struct {
	Gender        string  `json:"gender"`
	BirthYear     int     `json:"birth_year"`
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	ActivityLevel string  `json:"activity_level"`
	GoalType      string  `json:"goal_type"`
	GoalWeightKg  float64 `json:"goal_weight_kg"`
	GoalWeeks     int     `json:"goal_weeks"`
	MacroFocus    string  `json:"macro_focus"`
}

// CalculateGoals handles POST /api/goals/calculate. Pure computation, no
// external calls; identical input yields identical output.
func CalculateGoals(w http.ResponseWriter, r *http.Request) {
	var req GoalCalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationError, "Invalid request body")
		return
	}

	if msg := validateGoalRequest(&req); msg != "" {
		writeError(w, http.StatusBadRequest, CodeValidationError, msg)
		return
	}

	svc := services.NewGoalService()
	calc := svc.Calculate(services.GoalInput{
		Gender:        req.Gender,
		BirthYear:     req.BirthYear,
		WeightKg:      req.WeightKg,
		HeightCm:      req.HeightCm,
		ActivityLevel: req.ActivityLevel,
		GoalType:      req.GoalType,
		GoalWeightKg:  req.GoalWeightKg,
		GoalWeeks:     req.GoalWeeks,
		MacroFocus:    req.MacroFocus,
	})

	logger.Info("Goal calculation served",
		"daily_calories", calc.DailyCalories,
		"macro_focus", calc.MacroFocus,
		"warnings", len(calc.Warnings),
	)
	writeJSON(w, http.StatusOK, calc)
}

// validateGoalRequest checks presence and enum validity, normalizing gender
// in place. Returns an empty string when the request is acceptable.
func validateGoalRequest(req *GoalCalculationRequest) string {
	if req.Gender == "" {
		return "gender is required"
	}
	gender, ok := services.NormalizeGender(req.Gender)
	if !ok {
		return "gender must be male or female"
	}
	req.Gender = gender

	if req.BirthYear == 0 {
		return "birth_year is required"
	}
	if time.Now().Year()-req.BirthYear < 13 {
		return "users must be at least 13 years old"
	}

	if req.WeightKg == 0 {
		return "weight_kg is required"
	}
	if req.HeightCm == 0 {
		return "height_cm is required"
	}

	if req.ActivityLevel == "" {
		return "activity_level is required"
	}
	if _, _, ok := services.NormalizeActivity(req.ActivityLevel); !ok {
		return "activity_level is not one of the recognized levels"
	}

	if req.GoalWeightKg == 0 {
		return "goal_weight_kg is required"
	}
	if req.GoalWeeks == 0 {
		return "goal_weeks is required"
	}

	return ""
}

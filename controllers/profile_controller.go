package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/iaigorluiz-svg/nutriai-api/logger"
	identity "github.com/iaigorluiz-svg/nutriai-api/middleware"
	"github.com/iaigorluiz-svg/nutriai-api/models"
	"github.com/iaigorluiz-svg/nutriai-api/services"
	"github.com/iaigorluiz-svg/nutriai-api/store"
)

// Profiles is the active profile store. main swaps it for the postgres
// store when a database is configured.
var Profiles store.ProfileStore = store.NewMemory()

type ProfileResponse struct {
	Profile models.UserProfile `json:"profile"`
	Message string             `json:"message"`
}

// GetProfile handles GET /api/profile.
func GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.UserID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, CodeMissingIdentifier, "provide the x-user-id header or the userId query parameter")
		return
	}

	profile, err := Profiles.Get(userID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, CodeNotFound, "no profile exists for this user")
		return
	}
	if err != nil {
		logger.Error("Failed to fetch profile", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, CodeUnknownError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// SaveProfile handles POST /api/profile: full replace keyed by user_id,
// 201 when the profile is new, 200 when it overwrites an existing one.
func SaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationError, "Invalid request body")
		return
	}

	if msg := validateProfile(&profile); msg != "" {
		writeError(w, http.StatusBadRequest, CodeValidationError, msg)
		return
	}

	if profile.NotificationsEnabled == nil {
		enabled := true
		profile.NotificationsEnabled = &enabled
	}

	created, err := Profiles.Put(profile)
	if err != nil {
		logger.Error("Failed to save profile", "user_id", profile.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, CodeUnknownError, err.Error())
		return
	}

	status := http.StatusOK
	message := "Profile updated"
	if created {
		status = http.StatusCreated
		message = "Profile created"
	}

	logger.Info("Profile saved", "user_id", profile.UserID, "created", created)
	writeJSON(w, status, ProfileResponse{Profile: profile, Message: message})
}

// validateProfile checks the write invariants and normalizes the gender
// value in place. Returns an empty string when the profile is acceptable.
func validateProfile(p *models.UserProfile) string {
	if p.UserID == "" {
		return "user_id is required"
	}

	if p.Gender == "" {
		return "gender is required"
	}
	gender, ok := services.NormalizeGender(p.Gender)
	if !ok {
		return "gender must be male or female"
	}
	p.Gender = gender

	currentYear := time.Now().Year()
	if p.BirthYear == 0 {
		return "birth_year is required"
	}
	if p.BirthYear < 1920 || p.BirthYear > currentYear {
		return fmt.Sprintf("birth_year must be between 1920 and %d", currentYear)
	}
	if currentYear-p.BirthYear < 13 {
		return "users must be at least 13 years old"
	}

	if p.WeightKg == 0 {
		return "weight_kg is required"
	}
	if p.WeightKg < 30 || p.WeightKg > 200 {
		return "weight_kg must be between 30 and 200"
	}

	if p.HeightCm == 0 {
		return "height_cm is required"
	}
	if p.HeightCm < 100 || p.HeightCm > 250 {
		return "height_cm must be between 100 and 250"
	}

	if p.ProteinPercent+p.CarbsPercent+p.FatPercent != 100 {
		return "protein_percent, carbs_percent and fat_percent must sum to exactly 100"
	}

	return ""
}

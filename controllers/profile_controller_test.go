package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	identity "github.com/iaigorluiz-svg/nutriai-api/middleware"
	"github.com/iaigorluiz-svg/nutriai-api/models"
)

const validProfileBody = `{
	"user_id": "u1",
	"gender": "male",
	"birth_year": 1990,
	"weight_kg": 80,
	"height_cm": 180,
	"activity_level": "moderado",
	"goal_type": "lose",
	"goal_weight_kg": 75,
	"goal_weeks": 10,
	"daily_calories": 2200,
	"macro_focus": "balanced",
	"protein_percent": 30, "protein_g": 165,
	"carbs_percent": 50, "carbs_g": 275,
	"fat_percent": 20, "fat_g": 49
}`

func getProfileVia(t *testing.T, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	identity.Identity(http.HandlerFunc(GetProfile)).ServeHTTP(rec, req)
	return rec
}

func TestSaveProfileCreateThenReplace(t *testing.T) {
	resetProfiles()

	rec := doJSON(t, SaveProfile, "POST", "/api/profile", validProfileBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first write status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var resp ProfileResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Message != "Profile created" {
		t.Errorf("message = %q, want Profile created", resp.Message)
	}
	if resp.Profile.NotificationsEnabled == nil || !*resp.Profile.NotificationsEnabled {
		t.Error("notifications_enabled should default to true")
	}

	replacement := strings.Replace(validProfileBody, `"weight_kg": 80`, `"weight_kg": 78`, 1)
	rec = doJSON(t, SaveProfile, "POST", "/api/profile", replacement)
	if rec.Code != http.StatusOK {
		t.Fatalf("second write status = %d, want 200", rec.Code)
	}

	rec = getProfileVia(t, "/api/profile", map[string]string{"x-user-id": "u1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("read status = %d, want 200", rec.Code)
	}
	var got models.UserProfile
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decoding profile: %v", err)
	}
	if got.WeightKg != 78 {
		t.Errorf("WeightKg = %v, want the last written value 78", got.WeightKg)
	}
}

func TestSaveProfileValidation(t *testing.T) {
	resetProfiles()

	cases := map[string]struct {
		mutate func(string) string
		detail string
	}{
		"missing user_id": {
			mutate: func(b string) string { return strings.Replace(b, `"user_id": "u1"`, `"user_id": ""`, 1) },
			detail: "user_id",
		},
		"birth_year out of range": {
			mutate: func(b string) string { return strings.Replace(b, `"birth_year": 1990`, `"birth_year": 1900`, 1) },
			detail: "birth_year",
		},
		"under 13": {
			mutate: func(b string) string { return strings.Replace(b, `"birth_year": 1990`, `"birth_year": 2020`, 1) },
			detail: "13",
		},
		"weight out of range": {
			mutate: func(b string) string { return strings.Replace(b, `"weight_kg": 80`, `"weight_kg": 250`, 1) },
			detail: "weight_kg",
		},
		"height out of range": {
			mutate: func(b string) string { return strings.Replace(b, `"height_cm": 180`, `"height_cm": 90`, 1) },
			detail: "height_cm",
		},
		"macros not 100": {
			mutate: func(b string) string { return strings.Replace(b, `"fat_percent": 20`, `"fat_percent": 21`, 1) },
			detail: "100",
		},
		"unknown gender": {
			mutate: func(b string) string { return strings.Replace(b, `"gender": "male"`, `"gender": "other"`, 1) },
			detail: "gender",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := doJSON(t, SaveProfile, "POST", "/api/profile", tc.mutate(validProfileBody))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body %s", rec.Code, rec.Body.String())
			}
			resp := decodeError(t, rec)
			if resp.Error != CodeValidationError {
				t.Errorf("error = %q, want %q", resp.Error, CodeValidationError)
			}
			if !strings.Contains(resp.Details, tc.detail) {
				t.Errorf("details = %q, want mention of %q", resp.Details, tc.detail)
			}
		})
	}
}

func TestGetProfileMissingIdentifier(t *testing.T) {
	resetProfiles()
	rec := getProfileVia(t, "/api/profile", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error != CodeMissingIdentifier {
		t.Errorf("error = %q, want %q", resp.Error, CodeMissingIdentifier)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	resetProfiles()
	rec := getProfileVia(t, "/api/profile?userId=ghost", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error != CodeNotFound {
		t.Errorf("error = %q, want %q", resp.Error, CodeNotFound)
	}
}

func TestGetProfileByQueryParam(t *testing.T) {
	resetProfiles()
	if rec := doJSON(t, SaveProfile, "POST", "/api/profile", validProfileBody); rec.Code != http.StatusCreated {
		t.Fatalf("seed write failed: %d", rec.Code)
	}

	rec := getProfileVia(t, "/api/profile?userId=u1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

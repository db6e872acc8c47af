package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/iaigorluiz-svg/nutriai-api/llm"
	"github.com/iaigorluiz-svg/nutriai-api/logger"
	"github.com/iaigorluiz-svg/nutriai-api/services"
)

type VisionRequest struct {
	Image     string `json:"image"`
	UserID    string `json:"userId"`
	Timestamp string `json:"timestamp"`
}

// AnalyzeFood handles POST /api/vision/analyze: photo in, structured
// nutrition estimate out. Nothing is persisted.
func AnalyzeFood(w http.ResponseWriter, r *http.Request) {
	logger.Info("Received food photo analysis request")

	var req VisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationError, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Image) == "" {
		writeError(w, http.StatusBadRequest, CodeValidationError, "image is required")
		return
	}

	svc := services.NewVisionService(llm.NewClient())
	estimate, _, err := svc.Analyze(r.Context(), req.Image, req.UserID)
	if err != nil {
		logger.Error("Food photo analysis failed", "user_id", req.UserID, "error", err)
		writeEstimateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, estimate)
}

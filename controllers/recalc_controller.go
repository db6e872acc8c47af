package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/iaigorluiz-svg/nutriai-api/llm"
	"github.com/iaigorluiz-svg/nutriai-api/logger"
	"github.com/iaigorluiz-svg/nutriai-api/services"
)

// RecalcRequest carries the user-edited ingredient list. The field name
// "ingredientes" is part of the wire contract with existing clients.
type RecalcRequest struct {
	Ingredientes []string `json:"ingredientes"`
}

// RecalculateIngredients handles POST /api/nutrition/recalculate.
func RecalculateIngredients(w http.ResponseWriter, r *http.Request) {
	logger.Info("Received ingredient recalculation request")

	var req RecalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationError, "ingredientes must be a list of strings")
		return
	}

	if len(req.Ingredientes) == 0 {
		writeError(w, http.StatusBadRequest, CodeValidationError, "ingredientes must be a non-empty list")
		return
	}

	svc := services.NewRecalcService(llm.NewClient())
	estimate, err := svc.Recalculate(r.Context(), req.Ingredientes)
	if err != nil {
		logger.Error("Ingredient recalculation failed", "ingredients", len(req.Ingredientes), "error", err)
		writeEstimateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, estimate)
}

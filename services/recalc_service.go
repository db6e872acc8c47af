package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iaigorluiz-svg/nutriai-api/llm"
	"github.com/iaigorluiz-svg/nutriai-api/logger"
	"github.com/iaigorluiz-svg/nutriai-api/models"
)

const recalcSystemPrompt = "You are an expert nutritionist. Estimate nutrition data for ingredient lists. Always respond with a single JSON object and nothing else."

// RecalcService recomputes nutrition totals from a user-edited ingredient
// list via a text-only model call.
type RecalcService struct {
	llmClient *llm.Client
}

func NewRecalcService(client *llm.Client) *RecalcService {
	return &RecalcService{llmClient: client}
}

func buildRecalcPrompt(ingredients []string) string {
	var b strings.Builder
	b.WriteString("Estimate the nutrition of a dish made of these ingredients:\n\n")
	for i, ing := range ingredients {
		fmt.Fprintf(&b, "%d. %s\n", i+1, ing)
	}
	b.WriteString(`
For each ingredient estimate the quantity if not given, compute calories, protein, carbs, fat and fiber, then sum everything into totals.

Return ONLY a JSON object, no surrounding prose:
{
  "dish_name": string,
  "total_calories": number,
  "total_protein_g": number,
  "total_carbs_g": number,
  "total_fat_g": number,
  "total_fiber_g": number,
  "ingredients": [
    {"name": string, "estimated_quantity": string, "calories": number, "protein_g": number, "carbs_g": number, "fat_g": number, "fiber_g": number}
  ],
  "notes": string
}`)
	return b.String()
}

// Recalculate asks the text model for totals over the given ingredient
// descriptions. Low temperature: determinism matters more than creativity
// here.
func (s *RecalcService) Recalculate(ctx context.Context, ingredients []string) (*models.NutritionEstimate, error) {
	messages := []llm.Message{
		{Role: "system", Content: recalcSystemPrompt},
		{Role: "user", Content: buildRecalcPrompt(ingredients)},
	}

	comp, err := s.llmClient.Chat(ctx, messages, llm.Options{
		Temperature:  0.2,
		MaxTokens:    1000,
		JSONResponse: true,
	})
	if err != nil {
		return nil, err
	}

	content := cleanJSONContent(comp.Content)

	var estimate models.NutritionEstimate
	if err := json.Unmarshal([]byte(content), &estimate); err != nil {
		return nil, &SchemaError{Detail: err.Error()}
	}

	logger.Info("Ingredients recalculated",
		"dish", estimate.DishName,
		"calories", estimate.TotalCalories,
		"ingredients", len(estimate.Ingredients),
	)

	return &estimate, nil
}

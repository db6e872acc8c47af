package services

import (
	"context"
	"encoding/json"

	"github.com/iaigorluiz-svg/nutriai-api/llm"
	"github.com/iaigorluiz-svg/nutriai-api/logger"
	"github.com/iaigorluiz-svg/nutriai-api/models"
)

const visionSystemPrompt = "You are an expert nutritionist who estimates the nutritional content of meals from photos. Always respond with a single JSON object and nothing else."

const visionInstructions = `Analyze the food in this photo following these four steps:
1. Identify every food item visible in the photo.
2. Estimate the quantity of each item (grams, milliliters or household units).
3. Compute calories, protein, carbs, fat and fiber for each item at the estimated quantity.
4. Sum the per-item values into totals for the whole dish.

Return ONLY a JSON object with this exact structure:
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
}`

// VisionService turns a food photo into a structured nutrition estimate via
// a vision-capable model.
type VisionService struct {
	llmClient *llm.Client
}

func NewVisionService(client *llm.Client) *VisionService {
	return &VisionService{llmClient: client}
}

// Analyze sends the image to the vision model and parses the estimate.
// Upstream failures pass through untouched for classification at the handler
// boundary; unusable replies come back as *EmptyResponseError or
// *SchemaError.
func (s *VisionService) Analyze(ctx context.Context, image, userID string) (*models.NutritionEstimate, llm.Usage, error) {
	messages := []llm.Message{
		{Role: "system", Content: visionSystemPrompt},
		{Role: "user", Content: []llm.ContentPart{
			llm.TextContent(visionInstructions),
			llm.ImageContent(image),
		}},
	}

	comp, err := s.llmClient.Chat(ctx, messages, llm.Options{
		Model:        s.llmClient.VisionModel(),
		Temperature:  0.7,
		MaxTokens:    1500,
		JSONResponse: true,
	})
	if err != nil {
		return nil, llm.Usage{}, err
	}

	content := cleanJSONContent(comp.Content)
	if content == "" || content == "{}" {
		return nil, comp.Usage, &EmptyResponseError{
			FinishReason: comp.FinishReason,
			Usage:        comp.Usage,
		}
	}

	var estimate models.NutritionEstimate
	if err := json.Unmarshal([]byte(content), &estimate); err != nil {
		return nil, comp.Usage, &SchemaError{Detail: err.Error()}
	}

	if estimate.DishName == "" && estimate.TotalCalories == 0 {
		return nil, comp.Usage, &SchemaError{Detail: "response has neither dish_name nor total_calories"}
	}

	logger.Info("Food photo analyzed",
		"user_id", userID,
		"dish", estimate.DishName,
		"calories", estimate.TotalCalories,
		"ingredients", len(estimate.Ingredients),
		"total_tokens", comp.Usage.TotalTokens,
	)

	return &estimate, comp.Usage, nil
}

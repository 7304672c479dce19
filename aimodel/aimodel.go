package aimodel

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"go-greenprint/types"
)

const systemPrompt = "You are a carbon footprint estimation engine. " +
	"Given a household's activity data you respond with a single JSON object " +
	"and nothing else. The object has keys: user_id (string), " +
	"total_carbon_footprint (object with daily, weekly, monthly, yearly as " +
	"numbers in kg CO2e per period), and top_contributors (array of objects " +
	"with category string and emission number, sorted descending by emission, " +
	"zero-emission categories omitted)."

// EstimateFootprint asks the model for a footprint snapshot in the same
// shape the local calculator produces. The caller treats any error as a
// signal to fall back to local arithmetic.
func EstimateFootprint(ctx context.Context, client *openai.Client, input types.EmissionFactors) (types.CarbonFootprintResult, error) {
	var result types.CarbonFootprintResult

	payload, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("failed to encode activity data: %w", err)
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Estimate the carbon footprint for this household activity data: " + string(payload),
			},
		},
	})
	if err != nil {
		return result, fmt.Errorf("chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return result, fmt.Errorf("chat completion returned no choices")
	}

	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		return result, fmt.Errorf("failed to decode model response: %w", err)
	}

	// The model does not get to rename the row.
	result.UserID = input.UserID
	return result, nil
}

// Strategy wraps a client so the footprint service can hold the model
// path as an optional compute strategy.
type Strategy struct {
	Client *openai.Client
}

func (s Strategy) Compute(ctx context.Context, input types.EmissionFactors) (types.CarbonFootprintResult, error) {
	return EstimateFootprint(ctx, s.Client, input)
}

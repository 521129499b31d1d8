package openai

import (
	"fmt"
	"strings"

	"reviews-backend/internal/llm"
)

// Message is a single chat message sent to the provider.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = `You are an advisor for small business owners reviewing their customer feedback analytics.
Respond with a JSON object of the form {"recommendations": [{"title": string, "detail": string, "priority": "high"|"medium"|"low"}]}.
Return at most five recommendations, ordered by priority. Base every recommendation on the supplied metrics only.`

// BuildPrompt renders the chat messages for a recommendation request.
func BuildPrompt(input llm.RecommendInput) []Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Business: %s\n", input.BusinessName)
	if input.Industry != "" {
		fmt.Fprintf(&b, "Industry: %s\n", input.Industry)
	}
	fmt.Fprintf(&b, "Health score: %d/100\n", input.HealthScore)
	fmt.Fprintf(&b, "Average rating: %.1f/5\n", input.AverageRating)
	fmt.Fprintf(&b, "Response rate: %.0f%%\n", input.ResponseRate)
	if len(input.AttentionAreas) > 0 {
		fmt.Fprintf(&b, "Themes needing attention: %s\n", strings.Join(input.AttentionAreas, ", "))
	}
	if len(input.TopThemes) > 0 {
		fmt.Fprintf(&b, "Most discussed themes: %s\n", strings.Join(input.TopThemes, ", "))
	}
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: b.String()},
	}
}

// buildFixPrompt asks the model to repair a malformed JSON response.
func buildFixPrompt(raw []byte) []Message {
	return []Message{
		{Role: "system", Content: "Repair the following into valid JSON matching {\"recommendations\": [...]}. Output only the JSON object."},
		{Role: "user", Content: string(raw)},
	}
}

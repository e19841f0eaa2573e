package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"wayfarer/internal/models/domain_models"
)

const geminiDefaultModel = "gemini-1.5-flash"

// GeminiSource asks a generative model to suggest activities. Used as the
// last-resort provider when the real APIs return nothing for a destination.
type GeminiSource struct {
	client *genai.Client
	model  string
}

func NewGeminiSource(ctx context.Context, apiKey, model string) (*GeminiSource, error) {
	if model == "" {
		model = geminiDefaultModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiSource{client: client, model: model}, nil
}

type geminiActivity struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	PriceRange  string   `json:"price_range"`
	Tags        []string `json:"tags"`
}

func (s *GeminiSource) FetchActivities(ctx context.Context, destination string, interest string, limit int) ([]domain_models.ActivityCandidate, error) {
	m := s.client.GenerativeModel(s.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)

	prompt := fmt.Sprintf(`List up to %d real, well-known %s activities or venues in %s.
Return **JSON only**: an array of objects with exactly these keys:
{"name":"string","description":"string","rating":4.5,"price_range":"one of Free,$,$$,$$$,$$$$","tags":["string"]}
Only include places that actually exist. No prose.`, limit, interest, destination)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	raw := extractText(resp)
	if raw == "" {
		return nil, nil
	}

	var suggestions []geminiActivity
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}

	category := categoryForInterest(interest)
	candidates := make([]domain_models.ActivityCandidate, 0, len(suggestions))
	for _, suggestion := range suggestions {
		if strings.TrimSpace(suggestion.Name) == "" {
			continue
		}
		candidate := domain_models.ActivityCandidate{
			Name:        suggestion.Name,
			Description: suggestion.Description,
			Destination: destination,
			Category:    category,
			PriceRange:  tierFromLabel(suggestion.PriceRange),
			Tags:        suggestion.Tags,
		}
		if suggestion.Rating > 0 && suggestion.Rating <= 5 {
			rating := suggestion.Rating
			candidate.Rating = &rating
		}
		candidates = append(candidates, candidate)
		if len(candidates) >= limit {
			break
		}
	}
	return candidates, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}
	return strings.TrimSpace(builder.String())
}

func tierFromLabel(label string) domain_models.PriceTier {
	switch strings.TrimSpace(label) {
	case "Free", "free":
		return domain_models.PriceFree
	case "$":
		return domain_models.PriceCheap
	case "$$":
		return domain_models.PriceModerate
	case "$$$":
		return domain_models.PricePricey
	case "$$$$":
		return domain_models.PriceLuxury
	default:
		return domain_models.PriceUnknown
	}
}

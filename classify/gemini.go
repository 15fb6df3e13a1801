package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pevans/newspulse/config"
	"google.golang.org/api/option"
)

// harmCategories maps configured names onto the categories Gemini accepts.
// The legacy PaLM names are translated: violence and medical advice have no
// Gemini category of their own and fold into dangerous content.
var harmCategories = map[string]genai.HarmCategory{
	"HARM_CATEGORY_DEROGATORY":        genai.HarmCategoryHateSpeech,
	"HARM_CATEGORY_TOXICITY":          genai.HarmCategoryHarassment,
	"HARM_CATEGORY_VIOLENCE":          genai.HarmCategoryDangerousContent,
	"HARM_CATEGORY_SEXUAL":            genai.HarmCategorySexuallyExplicit,
	"HARM_CATEGORY_MEDICAL":           genai.HarmCategoryDangerousContent,
	"HARM_CATEGORY_DANGEROUS":         genai.HarmCategoryDangerousContent,
	"HARM_CATEGORY_HARASSMENT":        genai.HarmCategoryHarassment,
	"HARM_CATEGORY_HATE_SPEECH":       genai.HarmCategoryHateSpeech,
	"HARM_CATEGORY_SEXUALLY_EXPLICIT": genai.HarmCategorySexuallyExplicit,
	"HARM_CATEGORY_DANGEROUS_CONTENT": genai.HarmCategoryDangerousContent,
}

// GeminiGenerator generates text with the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiGenerator creates a client for cfg.Model configured with the
// sampling parameters and safety thresholds in cfg. Close must be called
// when done.
func NewGeminiGenerator(ctx context.Context, cfg config.ClassifierConfig) (*GeminiGenerator, error) {
	settings, err := SafetySettings(cfg.SafetySettings)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(cfg.Temperature)
	model.SetCandidateCount(cfg.CandidateCount)
	model.SetTopK(cfg.TopK)
	model.SetTopP(cfg.TopP)
	model.SetMaxOutputTokens(cfg.MaxOutputTokens)
	model.StopSequences = cfg.StopSequences
	model.SafetySettings = settings

	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate sends prompt and returns the text of the first candidate.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return ResponseText(resp)
}

// Close releases the underlying connection.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// SafetySettings maps configured category names and 0-4 thresholds to
// Gemini safety settings, one per Gemini category in first-seen order. When
// several names map to the same category the strictest set threshold wins;
// 0 (unspecified) never overrides a set one.
func SafetySettings(settings []config.SafetySetting) ([]*genai.SafetySetting, error) {
	out := make([]*genai.SafetySetting, 0, len(settings))
	byCategory := make(map[genai.HarmCategory]*genai.SafetySetting)
	for _, s := range settings {
		category, ok := harmCategories[s.Category]
		if !ok {
			return nil, fmt.Errorf("unknown harm category %q", s.Category)
		}
		threshold := genai.HarmBlockThreshold(s.Threshold)

		if existing, ok := byCategory[category]; ok {
			if threshold != genai.HarmBlockUnspecified &&
				(existing.Threshold == genai.HarmBlockUnspecified || threshold < existing.Threshold) {
				existing.Threshold = threshold
			}
			continue
		}

		setting := &genai.SafetySetting{Category: category, Threshold: threshold}
		byCategory[category] = setting
		out = append(out, setting)
	}
	return out, nil
}

// ResponseText concatenates the text parts of the first candidate, untrimmed.
// A response with no candidates or only whitespace yields ErrEmptyResponse.
func ResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

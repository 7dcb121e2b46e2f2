package estimator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"snapcal/internal/nutrition"
)

const (
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 30 * time.Second

	prompt = "Identify the main food item in this image. Estimate the portion " +
		"size visible. Provide a nutritional breakdown for that estimated " +
		"portion. Be as accurate as possible with calorie counts. If it's a " +
		"mixed meal, estimate the aggregate."

	systemInstruction = "You are an expert nutritionist and dietitian API. " +
		"Your goal is to accurately identify food from images and calculate " +
		"nutritional values. If the image does not contain food, fill the " +
		"fields with 0 or empty strings, but indicate it in the description."
)

// ErrNoAPIKey reports a missing estimation service credential. It is a
// configuration problem, not a transport failure, and is detected
// before any request is made.
var ErrNoAPIKey = fmt.Errorf("estimator: GEMINI_API_KEY is not set")

// Config customizes the estimator client.
type Config struct {
	APIKey  string
	Model   string        // empty uses gemini-2.5-flash
	Timeout time.Duration // zero uses 30s
}

// Client sends food photos to the Gemini API and decodes the structured
// nutrition estimate. Repeated calls with the same image may return
// different estimates; the service gives no idempotency guarantee.
type Client struct {
	ai      *genai.Client
	model   string
	timeout time.Duration
}

// New builds a Client. A missing API key fails here with ErrNoAPIKey so
// the user sees a configuration diagnostic instead of a cryptic
// transport error later.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNoAPIKey
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	ai, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{ai: ai, model: model, timeout: timeout}, nil
}

// responseSchema constrains the model to the seven-field contract. All
// fields are required; a non-food image comes back with zeroed values
// and an explanatory description rather than an error.
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"foodName": {
				Type:        genai.TypeString,
				Description: "The name of the food item or meal.",
			},
			"calories": {
				Type:        genai.TypeNumber,
				Description: "Total estimated calories (kcal).",
			},
			"protein": {
				Type:        genai.TypeNumber,
				Description: "Total protein in grams.",
			},
			"carbs": {
				Type:        genai.TypeNumber,
				Description: "Total carbohydrates in grams.",
			},
			"fat": {
				Type:        genai.TypeNumber,
				Description: "Total fat in grams.",
			},
			"description": {
				Type:        genai.TypeString,
				Description: "A short, appetizing description of the food.",
			},
			"portionEstimate": {
				Type:        genai.TypeString,
				Description: "A text description of the estimated portion size (e.g., '1 large bowl', '2 slices').",
			},
		},
		Required: []string{"foodName", "calories", "protein", "carbs", "fat", "description", "portionEstimate"},
	}
}

// Analyze sends a JPEG image and returns the decoded estimate. Any
// transport error, empty payload, or undecodable response folds into a
// single estimation failure; callers surface one generic message and
// the user retries by re-initiating capture.
func (c *Client) Analyze(ctx context.Context, jpeg []byte) (nutrition.Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	parts := []*genai.Part{
		genai.NewPartFromBytes(jpeg, "image/jpeg"),
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    responseSchema(),
	}

	resp, err := c.ai.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return nutrition.Analysis{}, fmt.Errorf("generate content: %w", err)
	}
	return DecodeResponse(resp.Text())
}

// DecodeResponse parses the model's JSON payload into an Analysis.
func DecodeResponse(text string) (nutrition.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return nutrition.Analysis{}, fmt.Errorf("empty response from model")
	}
	var analysis nutrition.Analysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return nutrition.Analysis{}, fmt.Errorf("decode response: %w", err)
	}
	return analysis, nil
}

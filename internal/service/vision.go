package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/mealsnap/backend/config"
	"github.com/mealsnap/backend/internal/types"
)

// VisionService calls the external multimodal inference provider to turn a
// meal photo into food candidates.
type VisionService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewVisionService creates a VisionService from configuration.
func NewVisionService(cfg *config.Config) *VisionService {
	return &VisionService{
		apiKey: cfg.VisionAPIKey,
		apiURL: cfg.VisionAPIURL,
		model:  cfg.VisionModel,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type visionContentPart struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL *struct {
		URL string `json:"url"`
	} `json:"image_url,omitempty"`
}

type visionMessage struct {
	Role    string              `json:"role"`
	Content []visionContentPart `json:"content"`
}

type visionRequest struct {
	Model       string          `json:"model"`
	Messages    []visionMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
}

const visionPrompt = `Identify every distinct food item in this photo. Respond with a JSON array, one object per food, with this exact shape:
[
    {"name": "Chicken Breast", "portion_grams": 150, "confidence": 0.9}
]
Estimate portion_grams as the edible mass visible on the plate. Confidence is a number between 0 and 1. Respond with the array only.`

// DetectFoods asks the vision provider for food candidates in the image at
// the given URL. Transport, auth and quota failures return an error; a
// successful call whose response contains no parseable candidate array
// returns an empty slice and a nil error.
func (s *VisionService) DetectFoods(ctx context.Context, imageURL string) ([]types.DetectedFoodCandidate, error) {
	userMsg := visionMessage{
		Role: "user",
		Content: []visionContentPart{
			{Type: "text", Text: visionPrompt},
			{Type: "image_url", ImageURL: &struct {
				URL string `json:"url"`
			}{URL: imageURL}},
		},
	}

	reqBody := visionRequest{
		Model:       s.model,
		Messages:    []visionMessage{userMsg},
		Temperature: 0.2,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no response from vision API")
	}

	candidates := extractCandidates(result.Choices[0].Message.Content)
	if candidates == nil {
		log.Printf("vision response contained no parseable candidate array")
	}
	return candidates, nil
}

// extractCandidates finds and parses the first well-formed JSON array inside
// free-form model output, discarding any prose around it. A response with no
// parseable array yields nil; parsing never fails past this boundary.
func extractCandidates(content string) []types.DetectedFoodCandidate {
	for start := 0; start < len(content); start++ {
		if content[start] != '[' {
			continue
		}
		end := matchingBracket(content, start)
		if end < 0 {
			continue
		}

		var parsed []types.DetectedFoodCandidate
		if err := json.Unmarshal([]byte(content[start:end+1]), &parsed); err != nil {
			continue
		}
		return sanitizeCandidates(parsed)
	}
	return nil
}

// matchingBracket returns the index of the bracket closing the array opened
// at start, or -1. Brackets inside JSON strings are skipped.
func matchingBracket(s string, start int) int {
	depth := 0
	inString := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// sanitizeCandidates drops entries the pipeline cannot use and clamps
// confidence into [0, 1].
func sanitizeCandidates(parsed []types.DetectedFoodCandidate) []types.DetectedFoodCandidate {
	candidates := make([]types.DetectedFoodCandidate, 0, len(parsed))
	for _, c := range parsed {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" || c.PortionGrams <= 0 {
			continue
		}
		if c.Confidence < 0 {
			c.Confidence = 0
		}
		if c.Confidence > 1 {
			c.Confidence = 1
		}
		candidates = append(candidates, c)
	}
	return candidates
}

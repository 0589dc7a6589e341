package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lumeo-app/lumeo-backend/internal/domain"
	"google.golang.org/api/option"
)

// Client wraps the Gemini API for best-effort match enrichment. Every
// caller must tolerate a nil Client and any error it returns.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(apiKey string) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetTemperature(0.7)

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// GenerateMatchExplanation writes a short note on why two profiles fit.
func (c *Client) GenerateMatchExplanation(ctx context.Context, a, b *domain.ProfileSummary) (string, error) {
	prompt := fmt.Sprintf(`Two users just matched on a dating app.
User 1: name %q, bio %q, interests %v.
User 2: name %q, bio %q, interests %v.

Write one or two engaging sentences on why they are a good match.
Output only the explanation text.`,
		a.DisplayName, deref(a.Bio), a.Interests,
		b.DisplayName, deref(b.Bio), b.Interests,
	)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	return strings.TrimSpace(collectText(resp)), nil
}

// GenerateIcebreakers proposes opening lines based on shared interests.
func (c *Client) GenerateIcebreakers(ctx context.Context, a, b *domain.ProfileSummary) ([]string, error) {
	prompt := fmt.Sprintf(`Generate 3 creative icebreaker messages for a dating app match.
User 1 interests: %v.
User 2 interests: %v.

Create 3 distinct opening lines User 1 could send to User 2, focused on
shared interests or interesting contrasts.
Output: JSON array of strings. Example: ["Hi...", "Hello..."]`,
		a.Interests, b.Interests,
	)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}

	responseText := strings.TrimSpace(collectText(resp))
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	var icebreakers []string
	if err := json.Unmarshal([]byte(responseText), &icebreakers); err != nil {
		// Model sometimes answers with plain lines instead of JSON.
		for _, line := range strings.Split(responseText, "\n") {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "[") && !strings.HasSuffix(line, "]") {
				icebreakers = append(icebreakers, line)
			}
		}
		if len(icebreakers) == 0 {
			return nil, fmt.Errorf("failed to parse icebreakers: %w", err)
		}
	}

	return icebreakers, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/vocalis/internal/domain"
)

// User-facing messages for the two sentinel results. The command handler
// collapses both to domain.FallbackResponse before the result leaves the
// server; these survive only in logs and internal inspection.
const (
	transportFailureMessage = "Sorry, something went wrong while processing your request."
	formatFailureMessage    = "I couldn't understand the response format. Please try again."
)

// Client talks to the generative-language REST endpoint. One attempt per
// call, no retry, no backoff: a voice turn is interactive and stale answers
// are worthless.
type Client struct {
	endpoint string
	client   *http.Client
	log      *zap.Logger
}

// NewClient creates a Gemini client. The endpoint is the full URL including
// the API key, resolved once at startup.
func NewClient(endpoint string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Interpret sends one command through the model and returns a structured
// interpretation. It never returns an error: transport failures yield an
// "error" sentinel, unparseable model output yields an "unknown" sentinel.
func (c *Client) Interpret(ctx context.Context, command string, profile domain.AssistantProfile) (*domain.Interpretation, domain.ResultKind) {
	prompt := BuildPrompt(command, profile.AssistantName, profile.Username)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warn("gemini call failed",
			zap.String("assistant", profile.AssistantName),
			zap.Error(err),
		)
		return sentinel(profile, domain.IntentError, transportFailureMessage), domain.KindTransport
	}

	cleaned := stripFences(raw)

	var interp domain.Interpretation
	if err := json.Unmarshal([]byte(cleaned), &interp); err != nil {
		c.log.Warn("gemini response was not valid JSON",
			zap.String("raw", raw),
			zap.Error(err),
		)
		return sentinel(profile, domain.IntentUnknown, formatFailureMessage), domain.KindFormat
	}

	return &interp, domain.KindOK
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("api call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error %d: %s", resp.StatusCode, string(respBody))
	}

	var apiResp generateResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response content")
	}

	return apiResp.Candidates[0].Content.Parts[0].Text, nil
}

// stripFences removes a leading ```json fence and a trailing ``` fence, if
// present, so the model wrapping its JSON in markdown does not break the
// parse.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json\n")
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func sentinel(profile domain.AssistantProfile, intent, response string) *domain.Interpretation {
	return &domain.Interpretation{
		Assistant: profile.AssistantName,
		User:      profile.Username,
		Intent:    intent,
		Response:  response,
		Data:      nil,
	}
}

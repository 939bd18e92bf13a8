package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gedigi/peekaboox/internal/imaging"
)

const (
	// DefaultModel is the model identifier used when none is configured.
	DefaultModel = "claude-sonnet-4-6"

	// DefaultTimeout bounds the single blocking round trip. The transport
	// default would be no timeout at all.
	DefaultTimeout = 60 * time.Second

	defaultEndpoint = "https://api.anthropic.com/v1/messages"
	apiVersion      = "2023-06-01"
	maxReplyTokens  = 512
)

// Client talks to the remote multimodal inference service. One client is
// built per invocation; there is no pooling and no shared state.
type Client struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithModel overrides the model identifier sent with each request.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout sets the HTTP client timeout for the round trip.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithEndpoint overrides the messages endpoint URL. Used in tests.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.endpoint = url
		}
	}
}

// NewClient builds a client from an API key. An empty key is rejected up
// front with an AuthError so no request is attempted without a credential.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &AuthError{Reason: "ANTHROPIC_API_KEY not set or invalid"}
	}

	c := &Client{
		apiKey:     apiKey,
		model:      DefaultModel,
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// messageRequest is the request body for the messages endpoint.
type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// messageResponse is the subset of the reply this client reads.
type messageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// apiErrorResponse is the error envelope the service returns on non-2xx.
type apiErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Locate asks the model to find a UI element in the screenshot and returns
// the parsed coordinate result.
//
// Oversized screenshots are downscaled before upload; coordinates in the
// reply are mapped back to the original image space, so callers always see
// original-resolution pixels. If the reply omits the element field it is
// filled in from elementDescription.
func (c *Client) Locate(ctx context.Context, asset *imaging.ImageAsset, elementDescription string) (*FindResult, error) {
	upload, scale, err := imaging.FitForUpload(asset)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(
		"Look at this screenshot. Find the UI element described as: '%s'.\n"+
			"Return JSON with these fields:\n"+
			"  - found (bool): whether you can see the element\n"+
			"  - x (int): pixel X coordinate of the element's center\n"+
			"  - y (int): pixel Y coordinate of the element's center\n"+
			"  - confidence (string): 'high', 'medium', or 'low'\n"+
			"  - description (string): brief description of what you see at that location\n"+
			"\n"+
			"The image is %dx%d pixels. Coordinates should be within these bounds.\n"+
			"Return ONLY valid JSON, no other text.",
		elementDescription, upload.Width, upload.Height)

	reply, err := c.send(ctx, upload, prompt)
	if err != nil {
		return nil, err
	}

	result, err := parseFindResult(reply, elementDescription)
	if err != nil {
		return nil, err
	}

	if scale != 1 {
		if result.X != nil {
			*result.X = int(math.Round(float64(*result.X) * scale))
		}
		if result.Y != nil {
			*result.Y = int(math.Round(float64(*result.Y) * scale))
		}
	}
	return result, nil
}

// Describe asks the model for a short free-text description of the
// screenshot. The trimmed reply is returned as-is; there is no structured
// parsing and therefore no malformed-response failure mode.
func (c *Client) Describe(ctx context.Context, asset *imaging.ImageAsset) (string, error) {
	upload, _, err := imaging.FitForUpload(asset)
	if err != nil {
		return "", err
	}

	prompt := "Describe what you see on this desktop screenshot in 2-4 sentences. " +
		"Include: what applications are open, what content is visible, any notable UI state."

	return c.send(ctx, upload, prompt)
}

// send performs the single blocking round trip and returns the model's
// trimmed text reply.
func (c *Client) send(ctx context.Context, upload *imaging.ImageAsset, prompt string) (string, error) {
	reqBody := messageRequest{
		Model:     c.model,
		MaxTokens: maxReplyTokens,
		Messages: []message{
			{
				Role: "user",
				Content: []contentBlock{
					{
						Type: "image",
						Source: &imageSource{
							Type:      "base64",
							MediaType: upload.MediaType,
							Data:      base64.StdEncoding.EncodeToString(upload.Data),
						},
					},
					{
						Type: "text",
						Text: prompt,
					},
				},
			},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		msg := string(body)
		var apiErr apiErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return "", &AuthError{Reason: "ANTHROPIC_API_KEY not set or invalid"}
		}
		return "", &TransportError{Err: fmt.Errorf("status %d: %s", resp.StatusCode, msg)}
	}

	var msg messageResponse
	if err := json.Unmarshal(body, &msg); err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}
	if len(msg.Content) == 0 {
		return "", &TransportError{Err: fmt.Errorf("empty response content")}
	}

	return strings.TrimSpace(msg.Content[0].Text), nil
}

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iaigorluiz-svg/nutriai-api/config"
)

// Message is a chat message. Content is either a plain string or, for
// vision requests, a []ContentPart mixing text and image references.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ContentPart is one element of a multimodal message content array.
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

// TextContent builds a single text part.
func TextContent(text string) ContentPart {
	return ContentPart{Type: "text", Text: text}
}

// ImageContent builds an image part from a URL or data URI.
func ImageContent(url string) ContentPart {
	return ContentPart{Type: "image_url", ImageURL: &ImageURL{URL: url}}
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

// Usage is the token accounting reported by the provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type choice struct {
	Index        int `json:"index"`
	Message      struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Choices []choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Completion is the slice of the provider response this service cares about.
// FinishReason and Usage surface in empty-response diagnostics.
type Completion struct {
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason"`
	Usage        Usage  `json:"usage"`
}

// Options are per-call overrides; zero values fall back to the request being
// sent without the field.
type Options struct {
	Model        string
	MaxTokens    int
	Temperature  float64
	JSONResponse bool
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	visionModel string
	client      *http.Client
}

func NewClient() *Client {
	return &Client{
		apiKey:      config.GetEnv("LLM_API_KEY", ""),
		baseURL:     config.GetEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		model:       config.GetEnv("LLM_MODEL", "gpt-4o-mini"),
		visionModel: config.GetEnv("LLM_VISION_MODEL", "gpt-4o"),
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Model returns the default text model name.
func (c *Client) Model() string { return c.model }

// VisionModel returns the default vision-capable model name.
func (c *Client) VisionModel() string { return c.visionModel }

// Chat sends the messages to the chat-completions endpoint and returns the
// first choice. Upstream failures are returned as errors whose text carries
// the provider status and body; see ClassifyError.
func (c *Client) Chat(ctx context.Context, messages []Message, opts Options) (*Completion, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY not configured")
	}

	model := opts.Model
	if model == "" {
		model = c.model
	}

	reqBody := chatRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}
	if opts.JSONResponse {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no response choices returned")
	}

	first := chatResp.Choices[0]
	return &Completion{
		Content:      first.Message.Content,
		FinishReason: first.FinishReason,
		Usage:        chatResp.Usage,
	}, nil
}

package extraction

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"cotizador_inprotar/internal/config"
	"cotizador_inprotar/internal/resilience"

	"github.com/rotisserie/eris"
)

// ChatCompletionsProvider talks to an OpenAI-compatible /chat/completions
// endpoint (Groq by default). It only accepts images.
type ChatCompletionsProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
}

var _ Provider = (*ChatCompletionsProvider)(nil)

func NewChatCompletionsProvider(cfg config.ChatConfig, httpClient *http.Client) *ChatCompletionsProvider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	return &ChatCompletionsProvider{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.Key,
		model:      cfg.Model,
		maxTokens:  maxTokens,
	}
}

func (p *ChatCompletionsProvider) Name() string { return "chat" }

func (p *ChatCompletionsProvider) AcceptsPDF() bool { return false }

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens"`
	ResponseFormat map[string]any `json:"response_format"`
}

type chatMessage struct {
	Role    string     `json:"role"`
	Content []chatPart `json:"content"`
}

type chatPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *ChatCompletionsProvider) Complete(ctx context.Context, in Input) (string, error) {
	if in.MimeType == mimePDF {
		return "", eris.New("chat: PDF input must be rasterized first")
	}
	dataURL := "data:" + in.MimeType + ";base64," + base64.StdEncoding.EncodeToString(in.Data)

	body, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []chatPart{
				{Type: "text", Text: extractionPrompt},
				{Type: "image_url", ImageURL: &chatImageURL{URL: dataURL}},
			},
		}},
		Temperature:    0,
		MaxTokens:      p.maxTokens,
		ResponseFormat: map[string]any{"type": "json_object"},
	})
	if err != nil {
		return "", eris.Wrap(err, "chat: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", eris.Wrap(err, "chat: build request")
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", eris.Wrap(err, "chat: send request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", eris.Wrap(err, "chat: read response")
	}

	if resilience.IsRateLimitStatus(resp.StatusCode) {
		return "", resilience.NewRateLimitedError(p.Name(), resp.StatusCode, eris.New(truncate(string(raw), 512)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", eris.Errorf("chat: status %d: %s", resp.StatusCode, truncate(string(raw), 512))
	}

	var cc chatResponse
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", eris.Wrap(err, "chat: decode response")
	}
	if len(cc.Choices) == 0 || strings.TrimSpace(cc.Choices[0].Message.Content) == "" {
		return "", eris.New("chat: no content in response")
	}
	return cc.Choices[0].Message.Content, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}

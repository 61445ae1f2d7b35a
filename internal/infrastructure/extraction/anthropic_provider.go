package extraction

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"cotizador_inprotar/internal/config"
	"cotizador_inprotar/internal/resilience"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
)

const anthropicSystemPrompt = "Eres un asistente que cataloga insumos eléctricos e industriales. Respondes únicamente con JSON."

// AnthropicProvider sends images as base64 image blocks and PDFs as base64
// document blocks.
type AnthropicProvider struct {
	client    sdk.Client
	model     string
	maxTokens int64
}

var _ Provider = (*AnthropicProvider)(nil)

// NewAnthropicProvider builds the provider. SDK retries are disabled; the
// Gateway owns the retry policy.
func NewAnthropicProvider(cfg config.AnthropicConfig) *AnthropicProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.Key),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	return &AnthropicProvider{
		client:    sdk.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: maxTokens,
	}
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

func (p *AnthropicProvider) AcceptsPDF() bool { return true }

func (p *AnthropicProvider) Complete(ctx context.Context, in Input) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(in.Data)

	var source sdk.ContentBlockParamUnion
	if in.MimeType == mimePDF {
		source = sdk.NewDocumentBlock(sdk.Base64PDFSourceParam{Data: encoded})
	} else {
		source = sdk.NewImageBlockBase64(in.MimeType, encoded)
	}

	msg, err := p.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(p.model),
		MaxTokens:   p.maxTokens,
		Temperature: sdk.Float(0),
		System:      []sdk.TextBlockParam{{Text: anthropicSystemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(source, sdk.NewTextBlock(extractionPrompt)),
		},
	})
	if err != nil {
		var apiErr *sdk.Error
		if errors.As(err, &apiErr) && resilience.IsRateLimitStatus(apiErr.StatusCode) {
			return "", resilience.NewRateLimitedError(p.Name(), apiErr.StatusCode, err)
		}
		return "", eris.Wrap(err, "anthropic: create message")
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", eris.New("anthropic: no text in response")
	}
	return sb.String(), nil
}

package chat

import (
	"context"
	"errors"
	"strings"

	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	appcfg "github.com/yaritu/core/internal/config"
)

const systemPrompt = "You are the shopping assistant for Yaritu, an online jewellery boutique. " +
	"Answer briefly and helpfully. If asked about order status or payments, ask the customer " +
	"to use the contact form instead of guessing."

// Completer produces a reply for one chat message. No conversation state
// is retained between calls.
type Completer interface {
	Complete(ctx context.Context, message string) (string, error)
}

type openAICompleter struct {
	client openaiclient.Client
	model  string
}

// NewCompleter builds an OpenAI-backed Completer, or nil when no API key
// is configured (callers then use CannedReply exclusively).
func NewCompleter(cfg appcfg.ChatConfig) Completer {
	if strings.TrimSpace(cfg.OpenAIKey) == "" {
		return nil
	}
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(cfg.OpenAIKey),
		openaioption.WithMaxRetries(0),
	}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts = append(opts, openaioption.WithBaseURL(strings.TrimRight(endpoint, "/")))
	}
	return &openAICompleter{
		client: openaiclient.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (p *openAICompleter) Complete(ctx context.Context, message string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openaiclient.ChatCompletionNewParams{
		Model: openaiclient.ChatModel(p.model),
		Messages: []openaiclient.ChatCompletionMessageParamUnion{
			openaiclient.SystemMessage(systemPrompt),
			openaiclient.UserMessage(message),
		},
		MaxTokens: openaiclient.Int(300),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", errors.New("empty response from model")
	}
	return reply, nil
}

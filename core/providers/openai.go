package providers

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIProvider implements Provider over the OpenAI-compatible
// chat-completions API. The default deployment points it at Groq.
type OpenAIProvider struct {
	client *openai.Client
	config OpenAIConfig
}

// NewOpenAIProvider creates a new OpenAI-compatible provider with the given
// configuration.
func NewOpenAIProvider(config OpenAIConfig) (*OpenAIProvider, error) {
	if config.Model == "" {
		config.Model = DefaultOpenAIConfig().Model
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultOpenAIConfig().MaxTokens
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	client := openai.NewClient(opts...)

	return &OpenAIProvider{
		client: &client,
		config: config,
	}, nil
}

// Name returns the provider identifier.
func (p *OpenAIProvider) Name() string {
	return string(ProviderTypeOpenAI)
}

// Complete performs a non-streaming completion request.
func (p *OpenAIProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	params := p.buildParams(req)

	result, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai complete: %w", err)
	}

	return p.convertResponse(result), nil
}

// DefaultModel returns the provider's default model.
func (p *OpenAIProvider) DefaultModel() string {
	return p.config.Model
}

// VisionModel returns the model used for image-description requests.
func (p *OpenAIProvider) VisionModel() string {
	if p.config.VisionModel != "" {
		return p.config.VisionModel
	}
	return p.config.Model
}

// ValidateConfig checks if the provider configuration is valid.
func (p *OpenAIProvider) ValidateConfig() error {
	return p.config.Validate()
}

// Close cleans up any resources.
func (p *OpenAIProvider) Close() error {
	return nil
}

// buildParams constructs chat-completion parameters from a Request.
func (p *OpenAIProvider) buildParams(req *Request) openai.ChatCompletionNewParams {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens
	}

	params := openai.ChatCompletionNewParams{
		Model:     shared.ChatModel(model),
		Messages:  p.convertMessages(req.Messages, req.SystemPrompt),
		MaxTokens: openai.Int(int64(maxTokens)),
	}

	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	} else {
		params.Temperature = openai.Float(p.config.Temperature)
	}

	if req.ForceJSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	return params
}

func (p *OpenAIProvider) convertMessages(messages []Message, systemPrompt string) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)

	if systemPrompt != "" {
		result = append(result, openai.SystemMessage(systemPrompt))
	}

	for _, msg := range messages {
		switch msg.Role {
		case RoleAssistant:
			result = append(result, openai.AssistantMessage(msg.Content))
		default:
			if msg.ImageData != "" {
				parts := []openai.ChatCompletionContentPartUnionParam{
					openai.TextContentPart(msg.Content),
					openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
						URL: fmt.Sprintf("data:image/jpeg;base64,%s", msg.ImageData),
					}),
				}
				result = append(result, openai.UserMessage(parts))
				continue
			}
			result = append(result, openai.UserMessage(msg.Content))
		}
	}

	return result
}

func (p *OpenAIProvider) convertResponse(result *openai.ChatCompletion) *Response {
	if result == nil || len(result.Choices) == 0 {
		return &Response{StopReason: StopReasonError}
	}

	choice := result.Choices[0]

	return &Response{
		Content:    choice.Message.Content,
		Model:      result.Model,
		StopReason: p.convertFinishReason(choice.FinishReason),
		Usage: Usage{
			InputTokens:  int(result.Usage.PromptTokens),
			OutputTokens: int(result.Usage.CompletionTokens),
			TotalTokens:  int(result.Usage.TotalTokens),
		},
	}
}

func (p *OpenAIProvider) convertFinishReason(reason string) StopReason {
	switch reason {
	case "length":
		return StopReasonMaxTokens
	case "content_filter":
		return StopReasonError
	default:
		return StopReasonEndTurn
	}
}

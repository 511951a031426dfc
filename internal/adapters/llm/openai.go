// Package llm adapts the OpenAI Responses API to the analyzer provider seam
package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"chatlens/internal/core/analyze"
)

// Config for the OpenAI provider
type Config struct {
	APIKey string
	Model  string
}

// Provider implements analyze.Provider over the Responses API
type Provider struct {
	client *openai.Client
	model  string
}

// analysisResult is the structured output shape requested from the model
type analysisResult struct {
	SentimentScore float64  `json:"sentiment_score" jsonschema_description:"Sentiment between -1.0 (very negative) and 1.0 (very positive)"`
	SentimentLabel string   `json:"sentiment_label" jsonschema:"enum=positive,enum=neutral,enum=negative"`
	EmotionLabel   string   `json:"emotion_label" jsonschema:"enum=joy,enum=sadness,enum=anger,enum=fear,enum=surprise,enum=disgust,enum=neutral"`
	Keywords       []string `json:"keywords" jsonschema_description:"3-5 relevant keywords or phrases from the message"`
}

var analysisSchema = generateSchema[analysisResult]()

const analysisInstructions = `Analyze the user message for sentiment, emotion, and keywords.
Score sentiment between -1.0 (very negative) and 1.0 (very positive).
Pick the single primary emotion.
Return 3-5 relevant keywords or phrases taken from the message.
Only return the JSON, no additional text.`

// New constructs a Provider from config
func New(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm: api key is empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm: model is empty")
	}
	client := openai.NewClient(option.WithAPIKey(cfg.APIKey))
	return &Provider{client: &client, model: cfg.Model}, nil
}

// Analyze sends one message text for scoring and decodes the structured reply.
// One attempt per call; the caller owns fallback policy
func (p *Provider) Analyze(ctx context.Context, text string) (analyze.Raw, error) {
	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "MessageAnalysis",
			Schema:      analysisSchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Message analysis JSON"),
			Type:        "json_schema",
		},
	}

	params := responses.ResponseNewParams{
		Model:           p.model,
		MaxOutputTokens: openai.Int(500),
		Instructions:    openai.String(analysisInstructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(text, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	resp, err := p.client.Responses.New(ctx, params)
	if err != nil {
		return analyze.Raw{}, fmt.Errorf("llm: analysis call: %w", err)
	}

	var out analysisResult
	if err := decodeModelJSON(resp.OutputText(), &out); err != nil {
		return analyze.Raw{}, fmt.Errorf("llm: decode analysis: %w", err)
	}
	score := out.SentimentScore
	return analyze.Raw{
		SentimentScore: &score,
		SentimentLabel: out.SentimentLabel,
		EmotionLabel:   out.EmotionLabel,
		Keywords:       out.Keywords,
	}, nil
}

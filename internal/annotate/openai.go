package annotate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIAnnotator implements the Annotator interface by asking an OpenAI
// model to produce the token annotations a local parser would. Useful
// where running a spaCy sidecar is not an option.
type OpenAIAnnotator struct {
	client *openai.Client
	config Config
}

const annotationSystemPrompt = `You are a linguistic annotation engine. Given English text, segment it into sentences and annotate every token. Respond ONLY with JSON of the form:
{"sentences":[{"text":"...","tokens":[{"text":"...","lemma":"...","pos":"...","tag":"...","dep":"...","head":0,"index":0,"ent":""}]}]}
Rules:
- "lemma" is the lower-cased base form.
- "pos" uses Universal POS tags (VERB, NOUN, PRON, PROPN, ...).
- "tag" uses Penn Treebank tags (VBZ for third-person-singular-present).
- "dep" uses Universal Dependencies labels (nsubj, ccomp, xcomp, advcl, acl, ...).
- "head" is the index of the token's syntactic head within the sentence; the root token points at itself.
- "index" is the token's position within the sentence, starting at 0.
- "ent" is the named-entity label (e.g. PERSON) or empty.
Punctuation marks are tokens.`

// NewOpenAIAnnotator creates an OpenAI-backed annotator
func NewOpenAIAnnotator(config Config) (*OpenAIAnnotator, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIAnnotator{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the engine name
func (a *OpenAIAnnotator) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured
func (a *OpenAIAnnotator) IsAvailable(ctx context.Context) bool {
	_, err := a.client.ListModels(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "OpenAI API check failed: %v\n", err)
		return false
	}
	return true
}

// Annotate asks the model for sentence and token annotations
func (a *OpenAIAnnotator) Annotate(ctx context.Context, text string) ([]Sentence, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	model := a.config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: annotationSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	var parsed spacyResponse
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal annotation response: %w", err)
	}

	return parsed.Sentences, nil
}

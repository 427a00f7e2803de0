package annotate

import (
	"fmt"
	"strings"

	"github.com/pmorozov/inklet/internal/model"
)

// Config holds annotation engine configuration
type Config struct {
	// Provider name: "spacy", "openai"
	Provider string

	// Model name (openai provider only)
	Model string

	// APIKey for the openai provider
	APIKey string

	// BaseURL for the annotation service endpoint
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider: "spacy",
		BaseURL:  "http://localhost:9035",
		Timeout:  30,
	}
}

// NewAnnotator creates an annotation engine based on configuration
func NewAnnotator(config Config) (Annotator, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "spacy":
		return NewSpacyAnnotator(config)

	case "openai":
		return NewOpenAIAnnotator(config)

	default:
		return nil, fmt.Errorf("unknown annotator provider: %q (supported: spacy, openai)", config.Provider)
	}
}

// ConfigFromModel converts model.AnnotatorConfig to annotate.Config
func ConfigFromModel(modelConfig model.AnnotatorConfig) Config {
	return Config{
		Provider: modelConfig.Provider,
		Model:    modelConfig.Model,
		APIKey:   modelConfig.APIKey,
		BaseURL:  modelConfig.BaseURL,
		Timeout:  modelConfig.Timeout,
	}
}

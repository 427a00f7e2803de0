package model

import "time"

// Config is the complete runtime configuration
type Config struct {
	Annotator   AnnotatorConfig   `yaml:"annotator"`
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Output      OutputConfig      `yaml:"output"`
}

// AnnotatorConfig selects and configures the linguistic annotation engine
type AnnotatorConfig struct {
	// Provider name: "spacy" or "openai"
	Provider string `yaml:"provider"`

	// Model name (openai provider only)
	Model string `yaml:"model"`

	// APIKey for the openai provider
	APIKey string `yaml:"api_key"`

	// BaseURL of the annotation service (spacy sidecar or custom endpoint)
	BaseURL string `yaml:"base_url"`

	// Timeout for annotation requests, in seconds
	Timeout int `yaml:"timeout"`
}

// HTTPConfig controls fetching of URL inputs
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	IgnoreRobots bool          `yaml:"ignore_robots"`

	// Proxy URLs; empty falls back to the standard environment variables
	HTTPProxy  string `yaml:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy"`
}

// CacheConfig controls the annotation result cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
	Dir     string        `yaml:"dir"` // Disk cache directory; empty disables the disk layer
}

// ConcurrencyConfig controls batch processing parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// RateLimitConfig throttles calls to remote services per host
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`

	// MaxDialogues caps the bubbles kept per paragraph, preferring
	// dialogue over scene narration; zero keeps everything
	MaxDialogues int `yaml:"max_dialogues"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Annotator: AnnotatorConfig{
			Provider: "spacy",
			BaseURL:  "http://localhost:9035",
			Timeout:  30,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Inklet/0.1 (+https://github.com/pmorozov/inklet)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     1 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 8,
			BurstSize:         4,
		},
		Output: OutputConfig{},
	}
}

// Package llm provides the LLM configuration and client abstraction used by the screening review.
package llm

import "time"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for short classification and scoring prompts
	TierLite ModelTier = "lite"
	// TierStandard is for structured evaluation of a full resume
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

const (
	// defaultTemperature keeps screening output stable across runs
	defaultTemperature = 0.1
	// defaultMaxOutputTokens bounds a review; a score and three short bullets fit easily
	defaultMaxOutputTokens = 1024
	defaultTimeout         = 60 * time.Second
)

// DefaultSystemInstruction frames every request as resume screening
const DefaultSystemInstruction = "You are an experienced technical recruiter screening resumes. Answer only with the JSON object requested."

// Config holds the model configuration
type Config struct {
	Provider          Provider
	Models            map[ModelTier]string
	Temperature       float32
	MaxOutputTokens   int32
	SystemInstruction string
	Timeout           time.Duration // per request; zero means no limit beyond the caller's context
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Temperature:       defaultTemperature,
		MaxOutputTokens:   defaultMaxOutputTokens,
		SystemInstruction: DefaultSystemInstruction,
		Timeout:           defaultTimeout,
	}
}

// GetModel returns the model name for a given tier, falling back to standard then lite
func (c *Config) GetModel(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if model, ok := c.Models[t]; ok && model != "" {
			return model
		}
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := *c
	newConfig.Models = make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return &newConfig
}

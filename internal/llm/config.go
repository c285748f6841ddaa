// Package llm provides the chat-model client abstraction used by the
// analysis and interview packages. The rest of the application depends only
// on the Client interface, so degraded or test doubles can stand in for the
// hosted model.
package llm

// ModelTier represents the capability level requested for a generation call.
type ModelTier string

const (
	// TierLite is for simple tasks: question generation, list extraction.
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: reviews, structured critique.
	TierStandard ModelTier = "standard"
)

// Config holds the model names per tier.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// Model returns the model name for a tier, falling back to the standard
// tier when the requested one is not configured.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return ""
}

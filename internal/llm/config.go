package llm

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds the backend model configuration.
type Config struct {
	Model       string
	Temperature float32
}

// DefaultConfig returns the default Gemini configuration. A low temperature
// keeps the JSON output shape stable across calls.
func DefaultConfig() *Config {
	return &Config{
		Model:       DefaultModel,
		Temperature: 0.1,
	}
}

// WithModel returns a copy of the config using the given model, falling back
// to the current one when empty.
func (c *Config) WithModel(model string) *Config {
	out := *c
	if model != "" {
		out.Model = model
	}
	return &out
}

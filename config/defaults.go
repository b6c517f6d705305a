package config

const (
	defaultPrompt          = "gridmate> "
	defaultPlaceholder     = "I received your message. The assistant backend is not connected yet."
	defaultResponseDelayMS = 1500
	defaultLogRatio        = 0.4
	defaultLogLevel        = "info"
	defaultLogFile         = "gridmate.log"
)

var defaultPages = []string{"Sheet1", "Sales", "Summary", "Audit"}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills unset fields in place.
func (c *Config) applyDefaults() {
	if c.Chat.Prompt == "" {
		c.Chat.Prompt = defaultPrompt
	}
	if c.Chat.Placeholder == "" {
		c.Chat.Placeholder = defaultPlaceholder
	}
	if c.Chat.ResponseDelayMS <= 0 {
		c.Chat.ResponseDelayMS = defaultResponseDelayMS
	}
	if len(c.Document.Pages) == 0 {
		c.Document.Pages = append([]string(nil), defaultPages...)
	}
	if c.Document.DefaultPage == "" {
		c.Document.DefaultPage = c.Document.Pages[0]
	}
	if c.UI.LogRatio <= 0 || c.UI.LogRatio >= 1 {
		c.UI.LogRatio = defaultLogRatio
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.File == "" {
		c.Logging.File = defaultLogFile
	}
}

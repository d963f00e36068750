package module

import (
	"time"

	"polittrack/internal/platform/config"
)

// Options holds configuration settings for the politicians module
type Options struct {
	BaseURL string
	Mock    bool
	Timeout time.Duration
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	af := cfg.Prefix("CORE_API_")
	return Options{
		BaseURL: af.MayString("BASE_URL", ""),
		Mock:    af.MayBool("MOCK", false),
		Timeout: af.MayDuration("TIMEOUT", 15*time.Second),
	}
}

// Package module wires the archive facade to its backing store
package module

import (
	"time"

	"polittrack/internal/adapters/backend"
	"polittrack/internal/archive/domain"
	"polittrack/internal/archive/repo"
	"polittrack/internal/archive/service"
	"polittrack/internal/platform/config"
)

// Options holds configuration settings for the archive module
// It reads the same CORE_API_* surface as the politicians module so the two
// facades always run in the same mode against the same backend
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

// Ports exposed by the archive module
type Ports struct {
	Reader *service.Service
}

// Module owns the archive facade and its backing store
type Module struct {
	opts  Options
	ports Ports
}

// New constructs the module, choosing mock or rest backing exactly once
func New(cfg config.Conf) *Module {
	opts := FromConfig(cfg)

	var storage domain.ReaderPort
	if opts.Mock {
		storage = repo.NewMock()
	} else {
		storage = repo.NewRest(backend.NewClient(backend.Options{
			BaseURL: opts.BaseURL,
			Timeout: opts.Timeout,
		}))
	}

	return &Module{
		opts:  opts,
		ports: Ports{Reader: service.New(storage)},
	}
}

// Name identifies the module
func (m *Module) Name() string { return "archive" }

// Ports returns the module's exposed surfaces
func (m *Module) Ports() Ports { return m.ports }

// Mock reports whether the module runs against the offline dataset
func (m *Module) Mock() bool { return m.opts.Mock }

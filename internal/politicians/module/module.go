// Package module wires the politicians facade to its backing store
package module

import (
	"polittrack/internal/adapters/backend"
	"polittrack/internal/platform/config"
	"polittrack/internal/politicians/domain"
	"polittrack/internal/politicians/repo"
	"polittrack/internal/politicians/service"
)

// Ports exposed by the politicians module
type Ports struct {
	Reader *service.Service
}

// Module owns the politicians facade and its backing store
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
func (m *Module) Name() string { return "politicians" }

// Ports returns the module's exposed surfaces
func (m *Module) Ports() Ports { return m.ports }

// Mock reports whether the module runs against the offline dataset
func (m *Module) Mock() bool { return m.opts.Mock }

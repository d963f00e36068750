package module

import (
	"context"
	"testing"
	"time"

	"polittrack/internal/platform/config"
)

func TestFromConfig(t *testing.T) {
	t.Setenv("CORE_API_BASE_URL", "http://records.test/api")
	t.Setenv("CORE_API_MOCK", "true")
	t.Setenv("CORE_API_TIMEOUT", "3s")

	opts := FromConfig(config.New())
	if opts.BaseURL != "http://records.test/api" || !opts.Mock || opts.Timeout != 3*time.Second {
		t.Fatalf("opts = %+v", opts)
	}
}

func TestFromConfig_Defaults(t *testing.T) {
	t.Setenv("CORE_API_BASE_URL", "")
	t.Setenv("CORE_API_MOCK", "")
	t.Setenv("CORE_API_TIMEOUT", "")

	opts := FromConfig(config.New())
	if opts.BaseURL != "" || opts.Mock || opts.Timeout != 15*time.Second {
		t.Fatalf("opts = %+v", opts)
	}
}

func TestNew_MockModeServesOfflineData(t *testing.T) {
	t.Setenv("CORE_API_MOCK", "1")

	m := New(config.New())
	if m.Name() != "politicians" || !m.Mock() {
		t.Fatalf("module = %+v", m)
	}

	got := m.Ports().Reader.Search(context.Background(), "pelosi")
	if len(got) != 1 || got[0].FullName != "Nancy Pelosi" {
		t.Fatalf("mock search = %+v", got)
	}
}

package config

import (
	"testing"
	"time"

	kit "polittrack/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	api := root.Prefix("CORE_")
	if got := api.key("API_MOCK"); got != "CORE_API_MOCK" {
		t.Fatalf("key() = %q, want %q", got, "CORE_API_MOCK")
	}
	// nested prefix
	coreAPI := api.Prefix("API_")
	if got := coreAPI.key("BASE_URL"); got != "CORE_API_BASE_URL" {
		t.Fatalf("nested key() = %q, want %q", got, "CORE_API_BASE_URL")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  polittrack ")
	got := c.MustString("NAME")
	if got != "polittrack" {
		t.Fatalf("MustString = %q, want %q", got, "polittrack")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustBool(t *testing.T) {
	c := New().Prefix("F_")
	t.Setenv("F_ON", " true ")
	if !c.MustBool("ON") {
		t.Fatalf("MustBool true expected")
	}
	kit.MustPanic(t, func() { _ = c.MustBool("MISSING") })
	t.Setenv("F_BAD", "notabool")
	kit.MustPanic(t, func() { _ = c.MustBool("BAD") })
}

func TestMustURL(t *testing.T) {
	c := New().Prefix("U_")
	t.Setenv("U_BASE", "https://example.com/api")
	u := c.MustURL("BASE")
	if !u.IsAbs() || u.Host != "example.com" {
		t.Fatalf("MustURL returned wrong URL: %v", u)
	}
	t.Setenv("U_BAD1", "://bad")
	kit.MustPanic(t, func() { _ = c.MustURL("BAD1") })
	t.Setenv("U_BAD2", "/relative")
	kit.MustPanic(t, func() { _ = c.MustURL("BAD2") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("REQ_")
	t.Setenv("REQ_A", "x")
	t.Setenv("REQ_B", "y")
	// should not panic
	c.Require("A", "B")
	kit.MustPanic(t, func() { c.Require("A", "MISSING") })
}

// May* fallbacks

func TestMayString(t *testing.T) {
	c := New().Prefix("MS_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("MS_SET", " value ")
	if got := c.MayString("SET", "def"); got != "value" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("MI_")
	if got := c.MayInt("MISSING", 7); got != 7 {
		t.Fatalf("MayInt default = %d", got)
	}
	t.Setenv("MI_SET", " 42 ")
	if got := c.MayInt("SET", 7); got != 42 {
		t.Fatalf("MayInt = %d", got)
	}
	t.Setenv("MI_BAD", "x")
	if got := c.MayInt("BAD", 7); got != 7 {
		t.Fatalf("MayInt invalid should fall back, got %d", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("MB_")
	if got := c.MayBool("MISSING", true); !got {
		t.Fatal("MayBool default lost")
	}
	t.Setenv("MB_SET", "false")
	if got := c.MayBool("SET", true); got {
		t.Fatal("MayBool did not read env")
	}
	t.Setenv("MB_BAD", "maybe")
	if got := c.MayBool("BAD", true); !got {
		t.Fatal("MayBool invalid should fall back")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("MD_")
	if got := c.MayDuration("MISSING", 15*time.Second); got != 15*time.Second {
		t.Fatalf("MayDuration default = %v", got)
	}
	t.Setenv("MD_SET", "250ms")
	if got := c.MayDuration("SET", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	t.Setenv("MD_BAD", "soon")
	if got := c.MayDuration("BAD", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid should fall back, got %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("ME_")
	if got := c.MayEnum("MISSING", "json", "json", "pretty"); got != "json" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("ME_FMT", "Pretty")
	if got := c.MayEnum("FMT", "json", "json", "pretty"); got != "Pretty" {
		t.Fatalf("MayEnum case-insensitive match = %q", got)
	}
	t.Setenv("ME_BAD", "xml")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "json", "json", "pretty") })
}

package strings

import "testing"

func TestMustString(t *testing.T) {
	if got := MustString("ok", "name"); got != "ok" {
		t.Fatalf("want ok got %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("want panic for blank value")
		}
	}()
	_ = MustString("   ", "name")
}

func TestEmptyToNil(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"value", "value"},
		{"  padded  ", "  padded  "}, // content survives untrimmed
		{"", ""},
		{"   ", ""},
		{"\t\n", ""},
	}
	for _, c := range cases {
		if got := EmptyToNil(c.in); got != c.want {
			t.Errorf("EmptyToNil(%q)=%q want %q", c.in, got, c.want)
		}
	}
}

func TestPtrAndDeref(t *testing.T) {
	t.Parallel()

	if Ptr("") != nil {
		t.Fatal("Ptr(empty) should be nil")
	}
	p := Ptr("x")
	if p == nil || *p != "x" {
		t.Fatalf("Ptr returned %v", p)
	}
	if got := Deref(p); got != "x" {
		t.Fatalf("Deref = %q", got)
	}
	if got := Deref(nil); got != "" {
		t.Fatalf("Deref(nil) = %q", got)
	}
}

func TestTokens(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, first, last string
	}{
		{"Nancy Pelosi", "Nancy", "Pelosi"},
		{"Debbie Wasserman Schultz", "Debbie", "Schultz"},
		{"  Ted   Cruz ", "Ted", "Cruz"},
		{"Cher", "Cher", "Cher"},
		{"", "", ""},
		{"   ", "", ""},
	}
	for _, c := range cases {
		if got := FirstToken(c.in); got != c.first {
			t.Errorf("FirstToken(%q)=%q want %q", c.in, got, c.first)
		}
		if got := LastToken(c.in); got != c.last {
			t.Errorf("LastToken(%q)=%q want %q", c.in, got, c.last)
		}
	}
}

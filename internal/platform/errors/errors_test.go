package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCodeFromHTTPStatus(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorCode
	}{
		{http.StatusNotFound, ErrorCodeNotFound},
		{http.StatusTooManyRequests, ErrorCodeTooManyRequests},
		{http.StatusRequestTimeout, ErrorCodeTimeout},
		{http.StatusGatewayTimeout, ErrorCodeTimeout},
		{http.StatusBadRequest, ErrorCodeInvalidArgument},
		{http.StatusUnprocessableEntity, ErrorCodeInvalidArgument},
		{http.StatusInternalServerError, ErrorCodeUnavailable},
		{http.StatusBadGateway, ErrorCodeUnavailable},
		{http.StatusServiceUnavailable, ErrorCodeUnavailable},
		{http.StatusTeapot, ErrorCodeUnknown},
		{http.StatusUnauthorized, ErrorCodeUnknown},
	}
	for _, c := range cases {
		if got := CodeFromHTTPStatus(c.status); got != c.want {
			t.Fatalf("CodeFromHTTPStatus(%d) = %v, want %v", c.status, got, c.want)
		}
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	// New / Newf
	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeDecode, "bad payload %d", 12)
	if got := e2.Error(); got != "bad payload 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	// Wrap / Wrapf / Unwrap
	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeUnavailable, "fetch failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	if CodeOf(e3) != ErrorCodeUnavailable {
		t.Fatalf("CodeOf(Wrap) = %v", CodeOf(e3))
	}
	e4 := Wrapf(src, ErrorCodeTimeout, "gave up %s", "here")
	// Error() includes message + ": " + orig
	if want := "gave up here: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}

	// As
	if got, ok := As(e4); !ok || got.Code() != ErrorCodeTimeout {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	// WithField (copy-on-write) and WithOp
	e5 := Wrap(src, ErrorCodeInvalidArgument, "oops")
	e6 := WithField(e5, "party")
	e7 := WithOp(e6, "politicians.list")
	if fe, ok := As(e6); !ok || fe.Field() != "party" {
		t.Fatalf("WithField failed")
	}
	if oe, ok := As(e7); !ok || oe.Op() != "politicians.list" {
		t.Fatalf("WithOp failed")
	}
	// original unchanged
	if fe0, _ := As(e5); fe0.Field() != "" || fe0.Op() != "" {
		t.Fatalf("copy-on-write mutated original")
	}
	// foreign errors pass through unchanged
	if got := WithField(src, "x"); got != src {
		t.Fatalf("WithField changed foreign error")
	}
	if got := WithOp(src, "x"); got != src {
		t.Fatalf("WithOp changed foreign error")
	}

	// Message excludes the wrapped cause
	if me, _ := As(e4); me.Message() != "gave up here" {
		t.Fatalf("Message = %q", me.Message())
	}
}

func TestRootAndIsCode(t *testing.T) {
	base := stderrs.New("base")
	mid := fmt.Errorf("mid: %w", base)
	top := Wrap(mid, ErrorCodeDecode, "top")

	if got := Root(top); got != base {
		t.Fatalf("Root = %v, want base", got)
	}
	if Root(nil) != nil {
		t.Fatal("Root(nil) should be nil")
	}
	if !IsCode(top, ErrorCodeDecode) {
		t.Fatal("IsCode missed Decode")
	}
	if IsCode(base, ErrorCodeDecode) {
		t.Fatal("IsCode matched foreign error")
	}
	if CodeOf(base) != ErrorCodeUnknown {
		t.Fatalf("CodeOf(foreign) = %v", CodeOf(base))
	}
}

func TestSugarConstructors(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCode
	}{
		{NotFoundf("missing %d", 4), ErrorCodeNotFound},
		{InvalidArgf("bad"), ErrorCodeInvalidArgument},
		{Validationf("bad"), ErrorCodeValidation},
		{Decodef("bad"), ErrorCodeDecode},
		{Unavailablef("bad"), ErrorCodeUnavailable},
		{Timeoutf("bad"), ErrorCodeTimeout},
		{Internalf("bad"), ErrorCodeUnknown},
	}
	for _, c := range cases {
		if got := CodeOf(c.err); got != c.want {
			t.Fatalf("CodeOf(%v) = %v, want %v", c.err, got, c.want)
		}
	}

	if !IsCode(ErrNotFound, ErrorCodeNotFound) {
		t.Fatal("ErrNotFound lost its code")
	}
}

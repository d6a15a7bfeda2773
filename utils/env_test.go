package utils

import (
	"testing"
	"time"
)

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("SOME_STRING", "value")
	if got := GetEnvAsString("SOME_STRING", "fallback"); got != "value" {
		t.Errorf("got %q", got)
	}
	if got := GetEnvAsString("MISSING_STRING", "fallback"); got != "fallback" {
		t.Errorf("got %q", got)
	}
}

func TestGetEnvAsInt64(t *testing.T) {
	t.Setenv("SOME_INT", "36000")
	if got := GetEnvAsInt64("SOME_INT", 1); got != 36000 {
		t.Errorf("got %d", got)
	}

	t.Setenv("BAD_INT", "not-a-number")
	if got := GetEnvAsInt64("BAD_INT", 7); got != 7 {
		t.Errorf("got %d, want fallback on parse failure", got)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("SOME_BOOL", "true")
	if !GetEnvAsBool("SOME_BOOL", false) {
		t.Error("expected true")
	}
	if GetEnvAsBool("MISSING_BOOL", false) {
		t.Error("expected fallback false")
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("SOME_DURATION", "90s")
	if got := GetEnvAsDuration("SOME_DURATION", time.Minute); got != 90*time.Second {
		t.Errorf("got %v", got)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@x.com", "user.name+tag@example.co.uk"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("%q rejected", e)
		}
	}

	invalid := []string{"", "not-an-email", "@x.com", "a@"}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("%q accepted", e)
		}
	}
}

package services_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"labelstrip/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrPrint, "printer", "run", "ptouch-print exited", base)
	if !errors.Is(err, services.ErrPrint) {
		t.Fatalf("expected wrapped error to match ErrPrint, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to retain cause, got %v", err)
	}
	if !strings.Contains(err.Error(), "printer: run: ptouch-print exited") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := services.Wrap(services.ErrValidation, "assetid", "parse", "bad format", nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
}

func TestWrapEmptyDetail(t *testing.T) {
	err := services.Wrap(services.ErrResource, "", "", "", nil)
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected placeholder detail, got %v", err)
	}
}

func TestExitCodeDistinctPerKind(t *testing.T) {
	cases := []struct {
		marker error
		want   int
	}{
		{nil, services.ExitOK},
		{services.ErrValidation, services.ExitValidation},
		{services.ErrConfiguration, services.ExitConfiguration},
		{services.ErrEncoding, services.ExitEncoding},
		{services.ErrResource, services.ExitResource},
		{services.ErrPrint, services.ExitPrint},
		{services.ErrToolUnavailable, services.ExitToolMissing},
		{errors.New("unclassified"), services.ExitFailure},
	}

	seen := map[int]bool{}
	for _, tc := range cases {
		var err error
		if tc.marker != nil {
			err = fmt.Errorf("context: %w", tc.marker)
		}
		got := services.ExitCode(err)
		if got != tc.want {
			t.Fatalf("ExitCode(%v) = %d, want %d", tc.marker, got, tc.want)
		}
		if tc.marker != nil && seen[got] {
			t.Fatalf("exit code %d reused across error kinds", got)
		}
		seen[got] = true
	}
}

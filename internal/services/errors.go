package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrConfiguration   = errors.New("configuration error")
	ErrEncoding        = errors.New("encoding error")
	ErrResource        = errors.New("resource error")
	ErrPrint           = errors.New("print error")
	ErrToolUnavailable = errors.New("tool unavailable")
)

// Exit statuses by error kind. Success is 0 and unclassified failures map to 1.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitValidation    = 2
	ExitConfiguration = 3
	ExitEncoding      = 4
	ExitResource      = 5
	ExitPrint         = 6
	ExitToolMissing   = 7
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later exit-status classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = errors.New("failure")
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps an error to the process exit status the CLI should report.
// Each error kind gets a distinct status so shell callers can branch on the
// cause without parsing messages.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrValidation):
		return ExitValidation
	case errors.Is(err, ErrConfiguration):
		return ExitConfiguration
	case errors.Is(err, ErrEncoding):
		return ExitEncoding
	case errors.Is(err, ErrResource):
		return ExitResource
	case errors.Is(err, ErrToolUnavailable):
		return ExitToolMissing
	case errors.Is(err, ErrPrint):
		return ExitPrint
	default:
		return ExitFailure
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}

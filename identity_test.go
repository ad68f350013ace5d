package hatchmcp

import (
	"errors"
	"strings"
	"testing"
)

func TestCallerModule_ResolvesThisFile(t *testing.T) {
	t.Parallel()

	id, err := callerModule(1)
	if err != nil {
		t.Fatalf("callerModule: %v", err)
	}
	if strings.HasPrefix(id, "/") {
		t.Fatalf("expected exactly one leading separator stripped, got %q", id)
	}
	if !strings.HasSuffix(id, "identity_test.go") {
		t.Fatalf("expected this file, got %q", id)
	}
}

func TestCallerModule_UnresolvableFrame(t *testing.T) {
	t.Parallel()

	// A skip count far beyond the stack depth behaves like construction from
	// a context with no resolvable source module.
	_, err := callerModule(1 << 20)
	if err == nil {
		t.Fatal("expected an error for an unresolvable frame")
	}
	if !errors.Is(err, ErrNoModuleIdentity) {
		t.Fatalf("expected ErrNoModuleIdentity, got %v", err)
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected a *ConfigurationError, got %T", err)
	}
	if !strings.Contains(err.Error(), "unable to determine module identity") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestConfigurationError_MessageWithoutCause(t *testing.T) {
	t.Parallel()

	err := &ConfigurationError{Reason: "bad call site"}
	if got := err.Error(); got != "hatchmcp: bad call site" {
		t.Fatalf("unexpected message: %q", got)
	}
	if err.Unwrap() != nil {
		t.Fatal("expected no cause")
	}
}

package hatchmcp

import (
	"errors"
	"fmt"
)

// ErrNoModuleIdentity indicates that the constructing call site could not be
// resolved to a source module. Matched with errors.Is.
var ErrNoModuleIdentity = errors.New("unable to determine module identity")

// ConfigurationError reports that the wrapper was constructed from an invalid
// context. It is structural: retrying the same call site will fail the same
// way. Matched with errors.As.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hatchmcp: %s: %v", e.Reason, e.Err)
	}
	return "hatchmcp: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

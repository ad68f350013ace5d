package hatchmcp

import (
	"runtime"
	"strings"
)

// callerModule resolves the source file of the caller skip frames above this
// function and strips one leading path separator. It fails when the frame
// cannot be attributed to an on-disk module, e.g. code assembled at runtime.
func callerModule(skip int) (string, error) {
	_, file, _, ok := runtime.Caller(skip)
	if !ok || file == "" {
		return "", &ConfigurationError{Reason: "resolve caller", Err: ErrNoModuleIdentity}
	}
	return strings.TrimPrefix(file, "/"), nil
}

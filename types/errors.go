package types

import (
	"fmt"
)

// ConfigurationError reports a missing or semantically invalid parameter.
// It is always fatal; no value is ever defaulted in its place
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// GeometryError reports a kernel failure or a non-positive cell area/volume.
// The mesh is never silently repaired or replaced with a fallback grid
type GeometryError struct {
	Stage  string
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry error in %s: %s", e.Stage, e.Reason)
}

// ValidationError reports a failed post-hoc mesh check, naming the violated
// invariant and the offending quantity
type ValidationError struct {
	Check  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Check, e.Reason)
}

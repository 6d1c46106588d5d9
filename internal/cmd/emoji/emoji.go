// Package emoji provides symbol constants for CLI status lines.
package emoji

// Status symbols.
const (
	// Success marks a completed operation, such as a written export.
	Success = "✓"

	// Error marks a failed operation.
	Error = "✗"

	// Warning marks a degraded result: synthetic data, missing geometry, few matches.
	Warning = "!"

	// Info marks informational notes.
	Info = "i"

	// Optional marks a value that is absent but not required.
	Optional = "-"
)

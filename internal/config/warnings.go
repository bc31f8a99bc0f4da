package config

import "fmt"

// WarningKind classifies a non-fatal loading diagnostic.
type WarningKind string

const (
	// WarningDeprecatedFormat is raised for files in the version 1 layout.
	WarningDeprecatedFormat WarningKind = "deprecated_format"
	// WarningDeprecatedOption is raised for options that are now ignored.
	WarningDeprecatedOption WarningKind = "deprecated_option"
	// WarningRenamedOption is raised when a legacy option was translated.
	WarningRenamedOption WarningKind = "renamed_option"
	// WarningDiscovery is raised when a configuration location cannot be
	// determined and its tier is skipped.
	WarningDiscovery WarningKind = "discovery"
	// WarningSuspiciousValue is raised for values that load but look wrong.
	WarningSuspiciousValue WarningKind = "suspicious_value"
)

// Warning is a structured, non-fatal diagnostic produced while loading.
// Presentation is left to the caller.
type Warning struct {
	Kind    WarningKind
	Source  string // File the warning relates to
	Field   string // Field path, empty for file-level warnings
	Message string
}

func (w Warning) String() string {
	if w.Source == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.Source, w.Message)
}

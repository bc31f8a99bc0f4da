package config

import (
	"fmt"
	"strings"
)

// FieldError describes one invalid value in a configuration document.
type FieldError struct {
	Path    string // Dotted field path, e.g. "secret.ignored_detectors"
	Message string
}

func (e FieldError) String() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// ParseError is returned when a configuration file exists but is either
// not valid YAML or does not match the schema for its version.
type ParseError struct {
	Path   string
	Fields []FieldError
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error in %s:", e.Path)
	if len(e.Fields) == 0 && e.Err != nil {
		b.WriteString("\n" + e.Err.Error())
	}
	for _, f := range e.Fields {
		b.WriteString("\n" + f.String())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// HasField reports whether one of the field errors points at path.
func (e *ParseError) HasField(path string) bool {
	for _, f := range e.Fields {
		if f.Path == path {
			return true
		}
	}
	return false
}

// UnsupportedVersionError is returned for a file whose version tag is
// neither 1 nor 2.
type UnsupportedVersionError struct {
	Path    string
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("Don't know how to load config version %s (in %s)", e.Version, e.Path)
}

// fieldErrors accumulates validation failures while walking a document.
type fieldErrors []FieldError

func (fe *fieldErrors) add(path, messageFmt string, args ...interface{}) {
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}
	*fe = append(*fe, FieldError{Path: path, Message: msg})
}

package util

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors used throughout repalette
var (
	ErrInvalidRuleMode   = errors.New("invalid rule mode")
	ErrUnknownChannel    = errors.New("unknown color channel")
	ErrDestinationExists = errors.New("destination already exists")
	ErrConfigExists      = errors.New("config file already exists")
	ErrFlavorNotFound    = errors.New("flavor not found")
)

// Error is a structured error with context and suggestions
type Error struct {
	Title       string   // Short error title
	Message     string   // Detailed message
	Context     string   // What was being attempted
	Causes      []string // Possible causes
	Suggestions []string // Actionable suggestions with commands
	Err         error    // Wrapped error
}

func (e *Error) Error() string {
	return e.Title
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Format returns a nicely formatted error message
func (e *Error) Format() string {
	var sb strings.Builder

	// Title
	sb.WriteString(fmt.Sprintf("Error: %s\n", e.Title))

	// Context/message
	if e.Message != "" {
		sb.WriteString(fmt.Sprintf("\n  %s\n", e.Message))
	}
	if e.Context != "" {
		sb.WriteString(fmt.Sprintf("\n  %s\n", e.Context))
	}

	// Causes
	if len(e.Causes) > 0 {
		sb.WriteString("\n  Possible causes:\n")
		for _, cause := range e.Causes {
			sb.WriteString(fmt.Sprintf("    • %s\n", cause))
		}
	}

	// Suggestions
	if len(e.Suggestions) > 0 {
		sb.WriteString("\n  Try:\n")
		for _, sug := range e.Suggestions {
			sb.WriteString(fmt.Sprintf("    $ %s\n", sug))
		}
	}

	return sb.String()
}

// NewError creates a new Error
func NewError(title string) *Error {
	return &Error{Title: title}
}

// WithMessage adds a detailed message
func (e *Error) WithMessage(msg string) *Error {
	e.Message = msg
	return e
}

// WithContext adds context about what was being attempted
func (e *Error) WithContext(ctx string) *Error {
	e.Context = ctx
	return e
}

// WithCause adds a possible cause
func (e *Error) WithCause(cause string) *Error {
	e.Causes = append(e.Causes, cause)
	return e
}

// WithCauses adds multiple possible causes
func (e *Error) WithCauses(causes ...string) *Error {
	e.Causes = append(e.Causes, causes...)
	return e
}

// WithSuggestion adds an actionable suggestion
func (e *Error) WithSuggestion(sug string) *Error {
	e.Suggestions = append(e.Suggestions, sug)
	return e
}

// WithSuggestions adds multiple suggestions
func (e *Error) WithSuggestions(sugs ...string) *Error {
	e.Suggestions = append(e.Suggestions, sugs...)
	return e
}

// Wrap wraps an underlying error
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// ══════════════════════════════════════════════════════════════════════════
// Pre-built error constructors for common cases
// ══════════════════════════════════════════════════════════════════════════

// ConfigNotFoundError returns a structured error for a missing config file
func ConfigNotFoundError(path string, err error) *Error {
	return NewError(fmt.Sprintf("Cannot read config file '%s'", path)).
		WithMessage("repalette needs a TOML file with the edit rules to apply").
		WithSuggestions(
			"repalette init                 # Write a starter config.toml",
			"repalette --conf <path>        # Point at an existing config",
		).
		Wrap(err)
}

// ConfigParseError returns a structured error for malformed config TOML
func ConfigParseError(path string, err error) *Error {
	return NewError(fmt.Sprintf("Cannot parse config file '%s'", path)).
		WithMessage(err.Error()).
		WithCauses(
			"A rule is missing its 'variable' or 'value' field",
			"A field has the wrong type (value must be a number)",
			"The file is not valid TOML",
		).
		WithSuggestions(
			"repalette init --conf fresh.toml  # Write a known-good sample to compare",
		).
		Wrap(err)
}

// ConfigKeyMissingError returns a structured error for an absent rule list
func ConfigKeyMissingError(key, path string) *Error {
	return NewError(fmt.Sprintf("Config file '%s' is missing the '%s' rule list", path, key)).
		WithMessage("Both 'dark' and 'light' must be present, even when empty").
		WithSuggestion(fmt.Sprintf("%s = []                      # Add an empty list to apply no edits", key))
}

// DestinationExistsError returns a structured error for the replace guard
func DestinationExistsError(path string) *Error {
	return NewError(fmt.Sprintf("Destination '%s' already exists", path)).
		WithMessage("repalette never overwrites an existing file").
		WithSuggestions(
			fmt.Sprintf("rm %s                  # Remove it first", path),
			"repalette replace <src> <dst>  # Pick another destination",
		).
		Wrap(ErrDestinationExists)
}

// ConfigExistsError returns a structured error when init would overwrite
func ConfigExistsError(path string) *Error {
	return NewError(fmt.Sprintf("Config file '%s' already exists", path)).
		WithSuggestion("repalette init --conf <path>   # Write the sample somewhere else").
		Wrap(ErrConfigExists)
}

// FlavorNotFoundError returns a structured error for an unknown flavor name
func FlavorNotFoundError(name string) *Error {
	return NewError(fmt.Sprintf("Flavor '%s' not found", name)).
		WithMessage("Known flavors: latte, frappe, macchiato, mocha").
		WithSuggestion("repalette show                 # Browse all flavors").
		Wrap(ErrFlavorNotFound)
}

package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "behaviours.CB004").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown behaviours).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings. Unset (zero)
// sizes keep their defaults; negative values are errors. Behaviour keys are
// checked against registry when it is not nil.
func Validate(cfg *config.Config, registry *behaviour.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	positive := []struct {
		field string
		value int
	}{
		{"tab_size", cfg.TabSize},
		{"backslash_column", cfg.BackslashColumn},
		{"bracket_lookback", cfg.BracketLookback},
		{"class_brace_lookback", cfg.ClassBraceLookback},
		{"macro_lookback", cfg.MacroLookback},
		{"state_lookback", cfg.StateLookback},
	}
	for _, p := range positive {
		if p.value < 0 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   p.field,
				Value:   p.value,
				Message: fmt.Sprintf("%s must be positive, got %d", p.field, p.value),
			})
		}
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if registry != nil {
		validateBehaviours(cfg, registry, result)
	}

	return result
}

// validateBehaviours warns about behaviour keys the registry does not know.
func validateBehaviours(cfg *config.Config, registry *behaviour.Registry, result *ValidationResult) {
	for _, key := range sortedKeys(cfg.Behaviours) {
		if _, ok := registry.Get(key); !ok {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "behaviours." + key,
				Value:   key,
				Message: fmt.Sprintf("unknown behaviour %q; it will be ignored", key),
			})
		}
	}

	lists := []struct {
		field string
		keys  []string
	}{
		{"enable", cfg.EnableBehaviours},
		{"disable", cfg.DisableBehaviours},
	}
	for _, list := range lists {
		for _, key := range list.keys {
			if _, ok := registry.Get(key); !ok {
				result.Warnings = append(result.Warnings, ValidationError{
					Field:   list.field,
					Value:   key,
					Message: fmt.Sprintf("unknown behaviour %q; it will be ignored", key),
				})
			}
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string, registry *behaviour.Registry) *ValidationResult {
	result := Validate(cfg, registry)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

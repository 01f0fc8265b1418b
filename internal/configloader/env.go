package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/cstyle/pkg/config"
)

// envVarPrefix is the prefix for all cstyle environment variables.
const envVarPrefix = "CSTYLE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeBool envFieldType = iota
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"TAB_SIZE":             {field: "tab_size", typ: envTypeInt, description: "Indentation width in columns"},
	"SOFT_TABS":            {field: "soft_tabs", typ: envTypeBool, description: "Indent with spaces: true or false"},
	"BACKSLASH_COLUMN":     {field: "backslash_column", typ: envTypeInt, description: "Column macro backslashes align to"},
	"BRACKET_LOOKBACK":     {field: "bracket_lookback", typ: envTypeInt, description: "Rows scanned when matching brackets"},
	"CLASS_BRACE_LOOKBACK": {field: "class_brace_lookback", typ: envTypeInt, description: "Rows scanned for a class head"},
	"MACRO_LOOKBACK":       {field: "macro_lookback", typ: envTypeInt, description: "Rows scanned for a #define"},
	"STATE_LOOKBACK":       {field: "state_lookback", typ: envTypeInt, description: "Rows tokenized for comment state"},
	"TOKEN_CACHE":          {field: "token_cache", typ: envTypeBool, description: "Memoise line tokenization: true or false"},
	"JOBS":                 {field: "jobs", typ: envTypeInt, description: "Number of parallel replay workers (0 = auto)"},
	"ENABLE":               {field: "enable", typ: envTypeSlice, description: "Comma-separated behaviours to enable"},
	"DISABLE":              {field: "disable", typ: envTypeSlice, description: "Comma-separated behaviours to disable"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with CSTYLE_ (e.g., CSTYLE_TAB_SIZE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "soft_tabs":
		cfg.SoftTabs = config.Bool(value)
	case "token_cache":
		cfg.TokenCache = config.Bool(value)
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "tab_size":
		cfg.TabSize = value
	case "backslash_column":
		cfg.BackslashColumn = value
	case "bracket_lookback":
		cfg.BracketLookback = value
	case "class_brace_lookback":
		cfg.ClassBraceLookback = value
	case "macro_lookback":
		cfg.MacroLookback = value
	case "state_lookback":
		cfg.StateLookback = value
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "enable":
		cfg.EnableBehaviours = value
	case "disable":
		cfg.DisableBehaviours = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns all supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}

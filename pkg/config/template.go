package config

import (
	"bytes"
	"fmt"
	"sort"
)

// BehaviourInfo contains behaviour metadata for template generation.
type BehaviourInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
}

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full lists every behaviour with its default state.
	Full bool

	// Behaviours is the metadata used when Full is set.
	Behaviours []BehaviourInfo
}

// GenerateTemplate creates a commented configuration file template.
func GenerateTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(`# cstyle configuration
# See: https://github.com/yaklabco/cstyle

# Indentation width and whether to indent with spaces
tab_size: 4
soft_tabs: true

# Column that macro continuation backslashes are pushed out to
backslash_column: 62

# Row caps for the backward scans
bracket_lookback: 200
class_brace_lookback: 20
macro_lookback: 200
state_lookback: 200

# Memoise line tokenization
token_cache: true
`)

	if !opts.Full || len(opts.Behaviours) == 0 {
		buf.WriteString(`
# Behaviour-specific configuration (ID or name)
# behaviours:
#   CB004:
#     enabled: false
`)
		return buf.Bytes()
	}

	infos := make([]BehaviourInfo, len(opts.Behaviours))
	copy(infos, opts.Behaviours)
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})

	buf.WriteString("\nbehaviours:\n")
	for _, info := range infos {
		fmt.Fprintf(&buf, "\n  # %s: %s\n", info.ID, info.Name)
		if info.Description != "" {
			fmt.Fprintf(&buf, "  # %s\n", info.Description)
		}
		fmt.Fprintf(&buf, "  %s:\n", info.ID)
		fmt.Fprintf(&buf, "    enabled: %t\n", info.Enabled)
	}

	return buf.Bytes()
}

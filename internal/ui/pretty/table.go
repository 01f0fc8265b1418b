package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/config"
)

const (
	tablePadding   = 2
	heavySeparator = "="
	enabledMark    = "on"
	disabledMark   = "off"
)

// BehaviourRow is one line of the behaviour listing.
type BehaviourRow struct {
	ID          string
	Name        string
	Class       string
	Actions     string
	Enabled     bool
	Description string
}

// BehaviourRows builds listing rows from the registry in ID order, resolving
// the enabled column against cfg.
func BehaviourRows(registry *behaviour.Registry, cfg *config.Config) []BehaviourRow {
	enabled := EnabledIDs(registry, cfg)
	list := registry.Behaviours()
	rows := make([]BehaviourRow, 0, len(list))
	for _, b := range list {
		actions := make([]string, 0, len(b.Actions()))
		for _, a := range b.Actions() {
			actions = append(actions, string(a))
		}
		rows = append(rows, BehaviourRow{
			ID:          b.ID(),
			Name:        b.Name(),
			Class:       string(b.Class()),
			Actions:     strings.Join(actions, ","),
			Enabled:     enabled[b.ID()],
			Description: b.Description(),
		})
	}
	return rows
}

// EnabledIDs returns the set of behaviour IDs that run under cfg.
func EnabledIDs(registry *behaviour.Registry, cfg *config.Config) map[string]bool {
	resolved := behaviour.ResolveBehaviours(registry, cfg)
	ids := make(map[string]bool, len(resolved))
	for _, b := range resolved {
		ids[b.ID()] = true
	}
	return ids
}

// FormatBehaviourTable renders rows as an aligned table.
func (s *Styles) FormatBehaviourTable(rows []BehaviourRow) string {
	if len(rows) == 0 {
		return ""
	}

	headers := []string{"ID", "NAME", "CLASS", "ACTIONS", "STATE", "DESCRIPTION"}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		state := enabledMark
		if !row.Enabled {
			state = disabledMark
		}
		cells = append(cells, []string{row.ID, row.Name, row.Class, row.Actions, state, row.Description})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, c := range cells {
		for i, v := range c {
			widths[i] = max(widths[i], lipgloss.Width(v))
		}
	}

	total := 0
	for _, w := range widths {
		total += w + tablePadding
	}

	var builder strings.Builder
	builder.WriteString(s.TableHeader.Render(joinPadded(headers, widths)))
	builder.WriteString("\n")
	builder.WriteString(s.TableSeparator.Render(strings.Repeat(heavySeparator, total-tablePadding)))
	builder.WriteString("\n")

	for i, c := range cells {
		style := s.TableEnabled
		if !rows[i].Enabled {
			style = s.TableDisabled
		}
		builder.WriteString(style.Render(joinPadded(c, widths)))
		builder.WriteString("\n")
	}

	return builder.String()
}

// joinPadded pads every cell but the last to its column width.
func joinPadded(cells []string, widths []int) string {
	var builder strings.Builder
	for i, cell := range cells {
		builder.WriteString(cell)
		if i < len(cells)-1 {
			builder.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+tablePadding))
		}
	}
	return builder.String()
}

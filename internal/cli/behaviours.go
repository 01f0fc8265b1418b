package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cstyle/internal/ui/pretty"
	"github.com/yaklabco/cstyle/pkg/behaviour"
)

type behavioursFlags struct {
	engine      engineFlags
	format      string
	enabledOnly bool
}

const formatJSON = "json"

// behaviourInfo represents a behaviour in JSON output.
type behaviourInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Class       string   `json:"class"`
	Actions     []string `json:"actions"`
	Tags        []string `json:"tags"`
	Enabled     bool     `json:"enabled"`
}

func newBehavioursCommand() *cobra.Command {
	flags := &behavioursFlags{}

	cmd := &cobra.Command{
		Use:     "behaviours",
		Aliases: []string{"behaviors"},
		Short:   "List available keystroke behaviours",
		Long: `List all registered behaviours with their IDs, names, the token class
they answer, the edit actions they handle, and whether they are enabled
under the current configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags.engine.cliConfig(cmd))
			if err != nil {
				return err
			}

			registry := behaviour.DefaultRegistry
			out := cmd.OutOrStdout()

			switch flags.format {
			case formatJSON:
				list := registry.Behaviours()
				if flags.enabledOnly {
					list = behaviour.ResolveBehaviours(registry, cfg)
				}
				return writeBehavioursJSON(out, list, pretty.EnabledIDs(registry, cfg))
			case "text", "":
			default:
				return fmt.Errorf("%w: unknown format %q: must be text or json", ErrInvalidUsage, flags.format)
			}

			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

			rows := pretty.BehaviourRows(registry, cfg)
			if flags.enabledOnly {
				rows = slices.DeleteFunc(rows, func(row pretty.BehaviourRow) bool { return !row.Enabled })
			}
			if _, err := io.WriteString(out, styles.FormatBehaviourTable(rows)); err != nil {
				return fmt.Errorf("write behaviours: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.enabledOnly, "enabled", false, "list only behaviours enabled by the configuration")
	addEngineFlags(cmd, &flags.engine)

	return cmd
}

// writeBehavioursJSON outputs behaviours as a JSON array.
func writeBehavioursJSON(out io.Writer, list []behaviour.Behaviour, enabled map[string]bool) error {
	infos := make([]behaviourInfo, 0, len(list))
	for _, b := range list {
		actions := make([]string, 0, len(b.Actions()))
		for _, a := range b.Actions() {
			actions = append(actions, string(a))
		}
		infos = append(infos, behaviourInfo{
			ID:          b.ID(),
			Name:        b.Name(),
			Description: b.Description(),
			Class:       string(b.Class()),
			Actions:     actions,
			Tags:        b.Tags(),
			Enabled:     enabled[b.ID()],
		})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding behaviours: %w", err)
	}
	return nil
}

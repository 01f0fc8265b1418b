package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cstyle/internal/logging"
	"github.com/yaklabco/cstyle/internal/ui/pretty"
	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/edit"
	"github.com/yaklabco/cstyle/pkg/fsutil"
	"github.com/yaklabco/cstyle/pkg/langdetect"
	"github.com/yaklabco/cstyle/pkg/scenario"
	"github.com/yaklabco/cstyle/pkg/source"
)

// keystrokeFlags holds the flags shared by type and delete.
type keystrokeFlags struct {
	engine engineFlags
	at     string
	sel    string
	text   string
	diff   bool
	force  bool
	write  bool
	backup bool
}

func newTypeCommand() *cobra.Command {
	flags := &keystrokeFlags{}

	cmd := &cobra.Command{
		Use:   "type FILE",
		Short: "Replay one insertion against a file",
		Long: `Insert text at a position in FILE as an editor would, and print which
behaviour answered and the resulting buffer. The file is only modified
with --write, which refuses if FILE changed while the edit was computed.

Positions are ROW:COL, both 1-based, with columns counted in bytes. With
--select the text replaces the range between --select and --at. Escapes
such as \n and \t in --text are interpreted.

Examples:
  cstyle type main.c --at 3:9 --text '{'
  cstyle type main.c --at 3:9 --text '\n' --diff
  cstyle type main.c --at 2:5 --select 2:1 --text '('`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeystroke(cmd, args[0], flags, false)
		},
	}

	addKeystrokeFlags(cmd, flags)
	cmd.Flags().StringVar(&flags.text, "text", "", "text to insert")
	_ = cmd.MarkFlagRequired("text") //nolint:errcheck // flag is defined above

	return cmd
}

func newDeleteCommand() *cobra.Command {
	flags := &keystrokeFlags{}

	cmd := &cobra.Command{
		Use:   "delete FILE",
		Short: "Replay one backspace against a file",
		Long: `Press backspace at a position in FILE as an editor would, and print which
behaviour answered and the resulting buffer. The file is only modified
with --write.

Examples:
  cstyle delete main.c --at 3:10
  cstyle delete main.c --at 3:10 --select 3:4 --diff`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeystroke(cmd, args[0], flags, true)
		},
	}

	addKeystrokeFlags(cmd, flags)

	return cmd
}

func addKeystrokeFlags(cmd *cobra.Command, flags *keystrokeFlags) {
	cmd.Flags().StringVar(&flags.at, "at", "", "cursor position as ROW:COL (1-based)")
	cmd.Flags().StringVar(&flags.sel, "select", "", "other end of the selection as ROW:COL (1-based)")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print a unified diff instead of the buffer")
	cmd.Flags().BoolVar(&flags.force, "force", false, "run even when FILE is not detected as C-family source")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write the edited buffer back to FILE")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a "+fsutil.BackupSuffix+" copy when writing")
	_ = cmd.MarkFlagRequired("at") //nolint:errcheck // flag is defined above
	addEngineFlags(cmd, &flags.engine)
}

func runKeystroke(cmd *cobra.Command, path string, flags *keystrokeFlags, backspace bool) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return errors.Join(ErrIO, err)
	}

	if !flags.force && !langdetect.IsCFamilyFile(path, content) {
		lang := langdetect.Detect(path, content)
		if lang == "" {
			lang = "unknown"
		}
		return errors.Join(ErrInvalidUsage,
			fmt.Errorf("%s is not C-family source (detected %s); use --force to run anyway", path, lang))
	}

	lines := source.SplitLines(string(content))

	selection, err := selectionFromFlags(lines, flags.at, flags.sel)
	if err != nil {
		return errors.Join(ErrInvalidUsage, err)
	}

	cfg, err := loadConfig(cmd, flags.engine.cliConfig(cmd))
	if err != nil {
		return err
	}
	eng := newEngine(cfg, logger)

	buf := edit.NewBuffer(lines, selection)
	doc := buf.Snapshot(path)

	var res behaviour.Result
	if backspace {
		rng, ok := buf.BackspaceRange()
		if !ok {
			logger.Info("nothing to delete at the start of the buffer")
			return nil
		}
		res = eng.Transform(ctx, eng.Deletion(doc, buf.Cursor(), rng))
		err = buf.Delete(rng, res.Directive)
	} else {
		text := unescape(flags.text)
		res = eng.Transform(ctx, eng.Insertion(doc, buf.Selection, text))
		err = buf.Insert(text, res.Directive)
	}
	if err != nil {
		return fmt.Errorf("apply directive: %w", err)
	}

	logger.Debug("keystroke replayed",
		logging.FieldPath, path,
		logging.FieldBehaviour, res.BehaviourID,
		logging.FieldDirective, res.Directive.String(),
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	if err := writeKeystroke(out, styles, res, path, string(content), buf, flags.diff); err != nil {
		return err
	}

	if !flags.write {
		return nil
	}
	if err := fsutil.Save(ctx, info, []byte(buf.Text()), fsutil.SaveOptions{Backup: flags.backup}); err != nil {
		return errors.Join(ErrIO, err)
	}
	logger.Info("wrote file", logging.FieldPath, path)
	return nil
}

func writeKeystroke(
	out io.Writer,
	styles *pretty.Styles,
	res behaviour.Result,
	path, original string,
	buf *edit.Buffer,
	asDiff bool,
) error {
	if _, err := fmt.Fprintln(out, styles.FormatResult(res)); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	body := scenario.Render(buf.Lines, buf.Selection) + "\n"
	if asDiff {
		body = styles.FormatDiff(edit.GenerateDiff(path, original, buf.Text()))
	}
	if _, err := io.WriteString(out, body); err != nil {
		return fmt.Errorf("write buffer: %w", err)
	}
	return nil
}

// selectionFromFlags converts the 1-based --at and --select values into a
// zero-based selection checked against lines.
func selectionFromFlags(lines []string, at, sel string) (source.Range, error) {
	cursor, err := parsePosition(lines, at)
	if err != nil {
		return source.Range{}, fmt.Errorf("--at: %w", err)
	}
	if sel == "" {
		return source.PointRange(cursor), nil
	}
	anchor, err := parsePosition(lines, sel)
	if err != nil {
		return source.Range{}, fmt.Errorf("--select: %w", err)
	}
	return source.NewRange(anchor, cursor), nil
}

func parsePosition(lines []string, value string) (source.Position, error) {
	rowText, colText, ok := strings.Cut(value, ":")
	if !ok {
		return source.Position{}, fmt.Errorf("position %q is not ROW:COL", value)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return source.Position{}, fmt.Errorf("row %q: %w", rowText, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return source.Position{}, fmt.Errorf("column %q: %w", colText, err)
	}
	if row < 1 || row > len(lines) {
		return source.Position{}, fmt.Errorf("row %d outside 1..%d", row, len(lines))
	}
	if width := len(lines[row-1]); col < 1 || col > width+1 {
		return source.Position{}, fmt.Errorf("column %d outside 1..%d on row %d", col, width+1, row)
	}
	return source.Position{Row: row - 1, Column: col - 1}, nil
}

// unescape interprets Go string escapes in text, returning it unchanged when
// it is not a valid escaped string.
func unescape(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}
	unquoted, err := strconv.Unquote(`"` + strings.ReplaceAll(text, `"`, `\"`) + `"`)
	if err != nil {
		return text
	}
	return unquoted
}

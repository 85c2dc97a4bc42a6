package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/combobox/cmd/combobox/tui"
	"github.com/ruminaider/combobox/internal/catalog"
	"github.com/ruminaider/combobox/internal/combobox"
	"github.com/ruminaider/combobox/internal/config"
	"github.com/ruminaider/combobox/internal/logging"
	"github.com/ruminaider/combobox/internal/paths"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	demoMulti      bool
	demoExternal   bool
	demoDebounce   int
	demoLatency    int
	demoPageSize   int
	demoPaged      bool
	demoControlled bool
	demoDisabled   bool
	demoClearable  bool
	demoValues     []string
	demoDebug      bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open an interactive combobox",
	Long: `Open an interactive combobox over the configured dataset and print the
final selection. Settings come from ~/.combobox/config.yaml; flags override them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, data, err := loadSettings(cmd.Flags(), paths.ConfigFile())
		if err != nil {
			return err
		}

		// TTY guard: fall back to a plain listing when stdin is not a
		// terminal (piping, CI, scripts, etc.)
		if !term.IsTerminal(os.Stdin.Fd()) {
			return runList(cmd.OutOrStdout(), cfg, data, "")
		}

		logPath := paths.Expand(cfg.LogFile)
		if logPath == "" && demoDebug {
			logPath = paths.LogFile()
		}
		logger, closeLog, err := logging.Open(logPath, demoDebug)
		if err != nil {
			return err
		}
		defer closeLog()

		opts := modelOptions(cfg, data, demoPaged)
		opts.Logger = logger
		p := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		result := finalModel.(tui.Model).Result()
		logger.Info("demo finished", "ids", result.IDs, "cancelled", result.Cancelled)
		printResult(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	addDataFlags(demoCmd.Flags())
	addDemoFlags(demoCmd.Flags())
}

func addDemoFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&demoMulti, "multi", false, "allow selecting several options")
	fs.BoolVar(&demoExternal, "external", false, "search through the paged source instead of filtering locally")
	fs.IntVar(&demoDebounce, "debounce", 0, "external search debounce in milliseconds")
	fs.IntVar(&demoLatency, "latency", 0, "simulated source latency in milliseconds")
	fs.IntVar(&demoPageSize, "page-size", 0, "options per page when loading from the paged source")
	fs.BoolVar(&demoPaged, "paged", false, "load options page by page with infinite scroll")
	fs.BoolVar(&demoControlled, "controlled", false, "keep the selection in the caller and echo every change back")
	fs.BoolVar(&demoDisabled, "disabled", false, "render the combobox disabled")
	fs.BoolVar(&demoClearable, "clearable", true, "offer ctrl+x to clear the selection")
	fs.StringSliceVar(&demoValues, "value", nil, "initial selection (repeatable)")
	fs.BoolVar(&demoDebug, "debug", false, "write debug logs to ~/.combobox/combobox.log")
}

// applyDemoFlags copies the demo flags the user set onto cfg. Flag sets
// without the demo flags leave cfg untouched.
func applyDemoFlags(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("multi") {
		cfg.Mode = config.ModeSingle
		if demoMulti {
			cfg.Mode = config.ModeMulti
		}
	}
	if fs.Changed("external") {
		cfg.Search = config.SearchInternal
		if demoExternal {
			cfg.Search = config.SearchExternal
		}
	}
	if fs.Changed("debounce") {
		cfg.DebounceMS = demoDebounce
	}
	if fs.Changed("latency") {
		cfg.LatencyMS = demoLatency
	}
	if fs.Changed("page-size") {
		cfg.PageSize = demoPageSize
	}
	if fs.Changed("clearable") {
		cfg.Clearable = demoClearable
	}
	if fs.Changed("value") {
		cfg.DefaultValue = demoValues
	}
}

// modelOptions maps the settings onto the TUI. External search always goes
// through the paged source; paged forces it for internal search too.
func modelOptions(cfg config.Config, data []combobox.Option, paged bool) tui.Options {
	matcher := combobox.MatcherByName(cfg.Matcher)
	o := tui.Options{
		Multi:             cfg.Multi(),
		Data:              data,
		PageSize:          cfg.PageSize,
		External:          cfg.External(),
		Debounce:          cfg.Debounce(),
		Matcher:           matcher,
		DefaultValue:      cfg.DefaultValue,
		Controlled:        demoControlled,
		Clearable:         cfg.Clearable,
		Disabled:          demoDisabled,
		MaxDisplayedItems: cfg.MaxDisplayedItems,
		DefaultExpanded:   cfg.DefaultExpanded,
		Breakpoint:        cfg.Breakpoint,
	}
	if paged || cfg.External() {
		o.Source = catalog.NewMemory(data,
			catalog.WithLatency(cfg.Latency()),
			catalog.WithMatcher(matcher),
		)
	}
	return o
}

func printResult(w io.Writer, r tui.Result) {
	switch {
	case r.Cancelled:
		fmt.Fprintln(w, "Cancelled.")
	case len(r.Options) == 0:
		fmt.Fprintln(w, "Nothing selected.")
	default:
		for _, o := range r.Options {
			fmt.Fprintf(w, "  ✓ %s (%s)\n", o.Label, o.ID)
		}
	}
}

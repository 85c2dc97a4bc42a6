package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ruminaider/combobox/internal/combobox"
	"github.com/ruminaider/combobox/internal/config"
	"github.com/ruminaider/combobox/internal/paths"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "Print the options matching a query, grouped",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, data, err := loadSettings(cmd.Flags(), paths.ConfigFile())
		if err != nil {
			return err
		}
		var query string
		if len(args) == 1 {
			query = args[0]
		}
		return runList(cmd.OutOrStdout(), cfg, data, query)
	},
}

func init() {
	addDataFlags(listCmd.Flags())
}

// runList filters data with the configured matcher and prints it in the
// same order the dropdown would show it.
func runList(w io.Writer, cfg config.Config, data []combobox.Option, query string) error {
	matches := combobox.MatcherByName(cfg.Matcher).Match(query, data)
	if len(matches) == 0 {
		fmt.Fprintln(w, "No results.")
		return nil
	}
	g := combobox.Partition(matches)
	for _, o := range g.Ungrouped {
		fmt.Fprintln(w, formatOption(o, cfg.DefaultValue, ""))
	}
	for _, grp := range g.Groups {
		fmt.Fprintln(w, strings.ToUpper(grp.Name))
		for _, o := range grp.Options {
			fmt.Fprintln(w, formatOption(o, cfg.DefaultValue, "  "))
		}
	}
	return nil
}

func formatOption(o combobox.Option, selected []string, indent string) string {
	mark := " "
	if slices.Contains(selected, o.ID) {
		mark = "✓"
	}
	line := fmt.Sprintf("%s%s %-12s %s", indent, mark, o.ID, o.Label)
	if o.Disabled {
		line += " (disabled)"
	}
	return line
}

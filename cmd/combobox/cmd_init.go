package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/combobox/internal/config"
	"github.com/ruminaider/combobox/internal/paths"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write ~/.combobox/config.yaml interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := paths.ConfigFile()
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		debounce := strconv.Itoa(cfg.DebounceMS)
		badges := strconv.Itoa(cfg.MaxDisplayedItems)
		err = huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Selection mode").
					Options(
						huh.NewOption("Single", config.ModeSingle),
						huh.NewOption("Multiple", config.ModeMulti),
					).
					Value(&cfg.Mode),
				huh.NewSelect[string]().
					Title("Search").
					Options(
						huh.NewOption("Filter loaded options", config.SearchInternal),
						huh.NewOption("Query the data source", config.SearchExternal),
					).
					Value(&cfg.Search),
				huh.NewSelect[string]().
					Title("Matcher").
					Options(
						huh.NewOption("Substring", config.MatcherSubstring),
						huh.NewOption("Fuzzy", config.MatcherFuzzy),
					).
					Value(&cfg.Matcher),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Search debounce (ms):").
					Validate(nonNegativeInt).
					Value(&debounce),
				huh.NewInput().
					Title("Badges shown before \"+N more\":").
					Validate(nonNegativeInt).
					Value(&badges),
				huh.NewConfirm().
					Title("Allow clearing the selection?").
					Value(&cfg.Clearable),
			),
		).Run()
		if err != nil {
			return err
		}

		if err := applyInitAnswers(&cfg, debounce, badges); err != nil {
			return err
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

// applyInitAnswers copies the numeric form answers onto cfg.
func applyInitAnswers(cfg *config.Config, debounce, badges string) error {
	d, err := strconv.Atoi(debounce)
	if err != nil {
		return fmt.Errorf("parsing debounce: %w", err)
	}
	b, err := strconv.Atoi(badges)
	if err != nil {
		return fmt.Errorf("parsing badge limit: %w", err)
	}
	cfg.DebounceMS = d
	cfg.MaxDisplayedItems = b
	return cfg.Validate()
}

func nonNegativeInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return errors.New("enter a whole number, 0 or more")
	}
	return nil
}

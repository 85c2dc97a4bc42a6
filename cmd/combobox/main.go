package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "combobox",
	Short: "Searchable single and multi-select combobox for the terminal",
	Long:  "combobox renders a searchable, grouped option picker with badge overflow, debounced remote search and infinite loading.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the demo
		return demoCmd.RunE(demoCmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("combobox %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/zbiljic/comlint/internal/config"
)

// isNotTerminal defines if the output is going into terminal or not.
// It's dynamically set to false or true based on the stdout's file
// descriptor referring to a terminal or not. Styled output and prompts
// are skipped when not on a terminal so the tool stays usable in CI.
var isNotTerminal = os.Getenv("TERM") == "dumb" ||
	(!isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()))

// colorEnabled reports whether the tool settings allow styled output.
func colorEnabled() bool {
	toolCfg, err := config.Load()
	if err != nil {
		return true
	}
	return toolCfg.Color
}

// plainOutput reports whether styled output must be skipped, either
// because stdout is not a terminal or color is disabled in the tool
// settings.
func plainOutput() bool {
	return isNotTerminal || !colorEnabled()
}

// getWd is a convenience method to get the working directory.
func getWd() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Printf("Error getting working directory: %s", err.Error())
		cobra.CheckErr(err)
	}

	return dir
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"
)

// addConfigFlag adds the common lint configuration path flag to a command
func addConfigFlag(cmd *cobra.Command, configPath *string) {
	cmd.Flags().StringVarP(configPath, "config", "c", "", "Path to the lint configuration file (discovered when omitted)")
}

// addFormatFlag adds the common output format flag to a command
func addFormatFlag(cmd *cobra.Command, format *FormatType) {
	cmd.Flags().VarP(enumflag.New(format, "format", FormatIds, enumflag.EnumCaseInsensitive), "format", "f", "Output format (table, json, yaml)")
}

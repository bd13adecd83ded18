package cmd

import (
	"github.com/thediveo/enumflag/v2"
)

// FormatType represents the supported output formats.
type FormatType enumflag.Flag

const (
	// TableFormat renders a human readable table.
	TableFormat FormatType = iota
	// JSONFormat renders the configuration as JSON.
	JSONFormat
	// YAMLFormat renders the configuration as YAML.
	YAMLFormat
)

// FormatIds maps FormatType to their string representations.
var FormatIds = map[FormatType][]string{
	TableFormat: {"table"},
	JSONFormat:  {"json"},
	YAMLFormat:  {"yaml"},
}

// ParseFormatType parses a string and returns the corresponding FormatType.
func ParseFormatType(s string) (FormatType, bool) {
	for f, ids := range FormatIds {
		for _, id := range ids {
			if id == s {
				return f, true
			}
		}
	}
	return TableFormat, false
}

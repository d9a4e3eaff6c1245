package commonflags

import (
	"github.com/spf13/cobra"
)

// Common CLI flag keys, shorthands, default
// values and their usage descriptions.
const (
	ConfigFile          = "config"
	ConfigFileShorthand = "c"
	ConfigFileUsage     = "Config file (default is $HOME/.config/winsec-cli/config.yaml)"

	Verbose          = "verbose"
	VerboseShorthand = "v"
	VerboseUsage     = "Verbose output"

	FileFlag          = "file"
	FileFlagShorthand = "f"
	FileFlagUsage     = "Path to a JSON encoded ACL file"

	OutFlag          = "out"
	OutFlagShorthand = "o"
	OutFlagUsage     = "Write the resulting JSON encoded ACL to a file instead of stdout"
)

// Init adds common flags to the command:
// - FileFlag,
// - OutFlag.
func Init(cmd *cobra.Command) {
	ff := cmd.Flags()
	ff.StringP(FileFlag, FileFlagShorthand, "", FileFlagUsage)
	ff.StringP(OutFlag, OutFlagShorthand, "", OutFlagUsage)

	_ = cobra.MarkFlagFilename(ff, FileFlag)
	_ = cobra.MarkFlagFilename(ff, OutFlag)
}

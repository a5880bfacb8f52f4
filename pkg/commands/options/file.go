package options

import (
	"github.com/spf13/cobra"
)

// FileOptions
type FileOptions struct {
	File string
}

func AddFileArgs(cmd *cobra.Command, o *FileOptions) {
	cmd.Flags().StringVarP(&o.File, "file", "f", "",
		"File path. Defaults to stdout or stdin depending on the command.")
}

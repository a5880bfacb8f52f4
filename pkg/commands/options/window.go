package options

import (
	"github.com/spf13/cobra"
)

// WindowOptions
type WindowOptions struct {
	Past      int
	Future    int
	HideEmpty bool
	Filter    string
	Month     bool
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().IntVar(&o.Past, "past", 0,
		"Load this many extra days before the window.")
	cmd.Flags().IntVar(&o.Future, "future", 0,
		"Load this many extra days after the window.")
	cmd.Flags().BoolVar(&o.HideEmpty, "hide-empty", false,
		"Hide days with no events.")
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "",
		"Only show days with events matching this text.")
	cmd.Flags().BoolVarP(&o.Month, "month", "m", false,
		"Show a month calendar grid instead of day listings.")
}

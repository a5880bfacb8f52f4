// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/event"
)

const layoutISO = "2006-01-02"

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-02-28". Defaults to today.`)
}

// GetOn resolves the flag to a date key, today when unset.
func (o *OnOptions) GetOn() (string, error) {
	if o.OnString == "" {
		return time.Now().Format(layoutISO), nil
	}
	if err := event.ValidateDate(o.OnString); err != nil {
		return "", err
	}
	return o.OnString, nil
}

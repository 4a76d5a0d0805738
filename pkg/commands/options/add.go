package options

import (
	"github.com/spf13/cobra"
)

// AddOptions
type AddOptions struct {
	Message string
	Day     string
}

func AddDayArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Day, "day", "d", "",
		`Schedule the new item on a day, example: --day=tue.`)
}

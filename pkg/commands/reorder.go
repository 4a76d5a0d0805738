package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/commands/options"
	"tableflip.dev/weekplan/pkg/printers"
	"tableflip.dev/weekplan/pkg/runner/reorder"
)

func addReorder(topLevel *cobra.Command) {
	ro := &options.ReorderOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "reorder <pool|day> <from> <to>",
		Short: "Move an item within one list",
		Long: base.Wrap80("Take the item at position <from> out of the list and put " +
			"it back at <to>, counting from 0. Positions past either end are clamped."),
		Example: `
weekplan reorder pool 0 2
weekplan reorder thu 3 0
`,
		Args: func(_ *cobra.Command, args []string) error {
			if err := ro.Parse(args); err != nil {
				return err
			}
			_, err := reorder.ListIndex(ro.List)
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := openService(false)
			if err != nil {
				return output.HandleError(err)
			}
			s := reorder.Reorder{
				List:    ro.List,
				From:    ro.From,
				To:      ro.To,
				Output:  printers.Output{JSON: output.JSON, ShowID: io.ShowID},
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/commands/options"
	"tableflip.dev/weekplan/pkg/printers"
	"tableflip.dev/weekplan/pkg/runner/edit"
	"tableflip.dev/weekplan/pkg/runner/remove"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <item id>",
		Short: "Drop an item on the edit target",
		Long: base.Wrap80("Same as dragging the item onto Edit in the ui: the " +
			"request is logged and the item goes back to the pool. Changing the " +
			"text is not supported yet."),
		Example: `
weekplan edit 3f2a
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an item id")
			}
			io.ID = args[0]
			return nil
		},
		ValidArgsFunction: itemArgCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := openService(false)
			if err != nil {
				return output.HandleError(err)
			}
			s := edit.Edit{
				ID:      io.ID,
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

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm <item id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete an item from the pool or the week",
		Example: `
weekplan rm 3f2a
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an item id")
			}
			io.ID = args[0]
			return nil
		},
		ValidArgsFunction: itemArgCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := openService(false)
			if err != nil {
				return output.HandleError(err)
			}
			s := remove.Remove{
				ID:      io.ID,
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

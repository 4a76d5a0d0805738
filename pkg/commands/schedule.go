package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/commands/options"
	"tableflip.dev/weekplan/pkg/printers"
	"tableflip.dev/weekplan/pkg/runner/move"
	"tableflip.dev/weekplan/pkg/week"
)

func addSchedule(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var day string

	cmd := &cobra.Command{
		Use:     "schedule <item id> <day>",
		Aliases: []string{"mv"},
		Short:   "Move an item onto a day",
		Long: base.Wrap80("Move an item onto a day of the current week. The id may " +
			"be any unique prefix; days are names like wed or wednesday, or 1 to 7."),
		Example: `
weekplan schedule 3f2a wed
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires an item id and a day")
			}
			if _, err := week.Index(args[1]); err != nil {
				return err
			}
			io.ID, day = args[0], args[1]
			return nil
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return itemCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
			}
			return dayCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := openService(false)
			if err != nil {
				return output.HandleError(err)
			}
			s := move.Move{
				ID:      io.ID,
				Day:     day,
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

func addUnschedule(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "unschedule <item id>",
		Short: "Move an item back to the pool",
		Example: `
weekplan unschedule 3f2a
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
			s := move.Move{
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

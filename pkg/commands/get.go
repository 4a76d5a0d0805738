package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/commands/options"
	"tableflip.dev/weekplan/pkg/printers"
	"tableflip.dev/weekplan/pkg/runner/get"
	"tableflip.dev/weekplan/pkg/week"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var day string

	cmd := &cobra.Command{
		Use:   "get [day]",
		Short: "Print the week, or one day of it",
		Example: `
weekplan get
weekplan get wed --show-id
weekplan get --json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("too many days set, confused")
			}
			if len(args) == 1 {
				if _, err := week.Index(args[0]); err != nil {
					return err
				}
				day = args[0]
			}
			return nil
		},
		ValidArgs: dayNames,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := openService(false)
			if err != nil {
				return output.HandleError(err)
			}
			s := get.Get{
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

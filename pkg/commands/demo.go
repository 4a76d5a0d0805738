package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/printers"
	"tableflip.dev/weekplan/pkg/runner/demo"
)

func addDemo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:    "demo",
		Short:  "Add sample items to the planner",
		Hidden: true,
		Example: `
weekplan demo
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := openService(false)
			if err != nil {
				return output.HandleError(err)
			}
			d := demo.Demo{
				Output:  printers.Output{JSON: output.JSON},
				Service: svc,
			}
			err = d.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

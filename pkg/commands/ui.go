package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/log"
	"tableflip.dev/weekplan/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the drag-and-drop planner",
		Example: `
weekplan ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService(true)
			if err != nil {
				return err
			}
			defer log.Close()
			i := ui.UI{Service: svc}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

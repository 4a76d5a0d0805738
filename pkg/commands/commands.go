package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/weekplan/pkg/app"
	"tableflip.dev/weekplan/pkg/log"
	"tableflip.dev/weekplan/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "weekplan",
		Short: base.Wrap80("A week of to-dos you plan by dragging them around."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addSchedule(topLevel)
	addUnschedule(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addReorder(topLevel)
	addDemo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// openService reads the config, installs the logger and opens the store.
// toFile sends logs to the configured log file, for when the ui owns the
// terminal.
func openService(toFile bool) (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	lo := log.Options{Level: cfg.LogLevel()}
	if toFile {
		lo.File = cfg.LogFile()
	}
	if err := log.Setup(lo); err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return &app.Service{Persistence: p}, nil
}

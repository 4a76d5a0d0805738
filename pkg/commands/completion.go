package commands

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/store"
)

var dayNames = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(weekplan completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(weekplan completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func dayCompletions(toComplete string) []string {
	var out []string
	for _, d := range dayNames {
		if strings.HasPrefix(d, strings.ToLower(toComplete)) {
			out = append(out, d)
		}
	}
	return out
}

// itemCompletions offers short ids with the item text as the description.
func itemCompletions(toComplete string) []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	var out []string
	for _, it := range p.Load(time.Now()).All() {
		if strings.HasPrefix(it.ID, toComplete) {
			out = append(out, it.ShortID()+"\t"+it.Text)
		}
	}
	return out
}

func itemArgCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return itemCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
}

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/crxdev/crxskill/internal/target"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List supported AI tools",
	Long: `List the AI tools crxskill can install the skill into, with their
global and project-local skill directories and whether they support
user-invoked commands.`,
	RunE: runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TOOL\tGLOBAL\tLOCAL\tCOMMANDS")
	for _, plat := range target.Platforms {
		commands := "no"
		if plat.SupportsCommands() {
			commands = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", plat.Name, plat.GlobalSkills, plat.LocalSkills, commands)
	}
	return w.Flush()
}

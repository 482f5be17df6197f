package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/crxdev/crxskill/internal/bundle"
	"github.com/crxdev/crxskill/internal/target"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show where the skill is installed",
	Long: `List the locations where the chrome-extension-dev skill is installed.

The output shows:
  - TOOL:  The AI tool
  - SCOPE: global or local
  - PATH:  Installation path

Use --local to scan project-local directories instead of user-wide ones.
Use --json for machine-readable output.`,
	RunE: runList,
}

var (
	listLocal bool
	listJSON  bool
)

func init() {
	listCmd.Flags().BoolVar(&listLocal, "local", false, "scan project-local directories")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one installed copy of the skill.
type listEntry struct {
	Tool  string `json:"tool"`
	Scope string `json:"scope"`
	Path  string `json:"path"`
}

func runList(cmd *cobra.Command, args []string) error {
	dir, err := getWorkDir()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	scope := target.ScopeGlobal
	if listLocal {
		scope = target.ScopeLocal
	}

	entries := []listEntry{}
	for _, plat := range target.Platforms {
		path := filepath.Join(plat.SkillsBase(scope, dir), bundle.Name)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			entries = append(entries, listEntry{
				Tool:  plat.Key,
				Scope: string(scope),
				Path:  path,
			})
		}
	}

	out := cmd.OutOrStdout()

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling entries: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintf(out, "%s is not installed for %s scope.\n", bundle.Name, scope)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TOOL\tSCOPE\tPATH")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Tool, e.Scope, e.Path)
	}
	return w.Flush()
}

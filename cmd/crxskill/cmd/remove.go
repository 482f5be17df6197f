package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crxdev/crxskill/internal/bundle"
	"github.com/crxdev/crxskill/internal/cli"
	"github.com/crxdev/crxskill/internal/target"
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the installed skill",
	Long: `Remove the chrome-extension-dev skill from every tool where it is
installed, along with its command files.

Use --local to remove project-local installs instead of user-wide ones.

Examples:
  crxskill remove
  crxskill remove --local --yes`,
	RunE: runRemove,
}

var (
	removeLocal bool
	removeYes   bool
)

func init() {
	removeCmd.Flags().BoolVar(&removeLocal, "local", false, "remove project-local installs")
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	dir, err := getWorkDir()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	scope := target.ScopeGlobal
	if removeLocal {
		scope = target.ScopeLocal
	}

	type location struct {
		platform string
		path     string
		isDir    bool
	}
	var locations []location

	for _, plat := range target.Platforms {
		skillDir := filepath.Join(plat.SkillsBase(scope, dir), bundle.Name)
		if info, err := os.Stat(skillDir); err == nil && info.IsDir() {
			locations = append(locations, location{platform: plat.Key, path: skillDir, isDir: true})
		}
		if cmdDir := plat.CommandDir(scope, dir); cmdDir != "" {
			cmdPath := filepath.Join(cmdDir, bundle.CommandFileName)
			if info, err := os.Stat(cmdPath); err == nil && !info.IsDir() {
				locations = append(locations, location{platform: plat.Key, path: cmdPath})
			}
		}
	}

	if len(locations) == 0 {
		return fmt.Errorf("%s is not installed for %s scope", bundle.Name, scope)
	}

	out := cmd.OutOrStdout()

	if !removeYes {
		fmt.Fprintf(out, "Remove %s from %d location(s)?\n", bundle.Name, len(locations))
		for _, loc := range locations {
			fmt.Fprintf(out, "  - %s: %s\n", loc.platform, loc.path)
		}
		ok, err := cli.Confirm("Continue?", false)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	for _, loc := range locations {
		if err := target.CheckInstallPath(loc.path); err != nil {
			return err
		}
		if loc.isDir {
			if err := target.CheckRemovable(loc.path, bundle.Name); err != nil {
				return err
			}
			if err := os.RemoveAll(loc.path); err != nil {
				return fmt.Errorf("removing skill from %s: %w", loc.platform, err)
			}
		} else {
			if err := target.CheckRemovable(loc.path, bundle.CommandFileName); err != nil {
				return err
			}
			if err := os.Remove(loc.path); err != nil {
				return fmt.Errorf("removing command file from %s: %w", loc.platform, err)
			}
		}
		fmt.Fprintf(out, "Removed %s\n", loc.path)
	}

	return nil
}

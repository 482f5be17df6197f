package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crxdev/crxskill/internal/bundle"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate a bundle checkout",
	Long: `Validate a chrome-extension-dev bundle checkout: the SKILL.md
frontmatter must be well-formed and carry the fixed bundle name, the
version (if present) must be semver, and the references/ and resources/
trees must exist.

With no argument, the working directory is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var dir string
	var err error
	if len(args) == 1 {
		dir = args[0]
	} else {
		dir, err = getWorkDir()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
	}

	// A checkout may carry the final shape or a flat layout.
	root := dir
	shaped := filepath.Join(dir, "skill", bundle.Name)
	if _, err := os.Stat(filepath.Join(shaped, bundle.ManifestName)); err == nil {
		root = shaped
	}

	m, err := bundle.LoadFromDir(root)
	if err != nil {
		return err
	}

	result := m.ValidateIdentity()
	layout := bundle.ValidateLayout(root)
	result.Errors = append(result.Errors, layout.Errors...)

	if result.HasErrors() {
		return fmt.Errorf("invalid bundle at %s: %s", root, result.Error())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s bundle at %s is valid\n", color.GreenString("OK"), bundle.Name, root)
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crxdev/crxskill/internal/bundle"
	"github.com/crxdev/crxskill/internal/config"
	"github.com/crxdev/crxskill/internal/install"
	"github.com/crxdev/crxskill/internal/logging"
	"github.com/crxdev/crxskill/internal/stage"
	"github.com/crxdev/crxskill/internal/target"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"

	// Global flags
	verbose bool
	workDir string
)

// Install flags
var (
	installGlobal bool
	installLocal  bool
	installSelf   bool
	installDryRun bool
)

var rootCmd = &cobra.Command{
	Use:   "crxskill",
	Short: "Install the chrome-extension-dev skill into AI coding tools",
	Long: `crxskill installs the chrome-extension-dev documentation skill into the
configuration directories of supported AI coding tools: OpenCode, Gemini
CLI, Claude, FactoryAI Droid, Agents, and Antigravity.

By default the bundle is fetched with a shallow git clone and installed
user-wide. Tools whose config directory is absent are skipped, so no
directories are created for tools that are not on the machine. Use
--local for a project-scoped install (directories are created fresh) and
--self to install from the current checkout instead of the remote.

An existing install is always fully replaced, never merged; re-running
with the same options reaches the same end state.

Examples:
  # Install globally from the canonical repository
  crxskill

  # Install into the current project from a local checkout
  crxskill --local --self

  # Preview without touching the filesystem
  crxskill --dry-run`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInstall,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&workDir, "workdir", "C", "", "working directory (default: current)")

	rootCmd.Flags().BoolVarP(&installGlobal, "global", "g", false, "install user-wide (default)")
	rootCmd.Flags().BoolVarP(&installLocal, "local", "l", false, "install into the current project")
	rootCmd.Flags().BoolVarP(&installSelf, "self", "s", false, "install from the working directory instead of the remote")
	rootCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "show what would be installed without installing")
	rootCmd.MarkFlagsMutuallyExclusive("global", "local")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("crxskill {{.Version}}\n")
}

// getWorkDir returns the effective working directory.
func getWorkDir() (string, error) {
	if workDir != "" {
		return workDir, nil
	}
	return os.Getwd()
}

func runInstall(cmd *cobra.Command, args []string) error {
	dir, err := getWorkDir()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.LoadFromDir(dir)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = config.LogLevelDebug
	}

	logger, closer, err := logging.NewFromConfig(cfg, dir)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	scope := target.ScopeGlobal
	if installLocal || (!installGlobal && cfg.Defaults.Scope == "local") {
		scope = target.ScopeLocal
	}

	var st *stage.Staged
	if installSelf || (cfg.Defaults.Source == "self" && !cmd.Flags().Changed("self")) {
		st, err = stage.FromDir(dir)
	} else {
		logger.Debug("cloning bundle", "url", cfg.Remote.URL)
		st, err = stage.FromRemote(cfg.Git.Binary, cfg.Remote.URL)
	}
	if err != nil {
		return err
	}
	defer st.Cleanup()

	// The staged bundle must carry the fixed identity.
	m, err := bundle.LoadFromDir(st.SkillDir)
	if err != nil {
		return err
	}
	if result := m.ValidateIdentity(); result.HasErrors() {
		return fmt.Errorf("invalid bundle: %s", result.Error())
	}

	ins := install.New(logger, install.Options{
		Scope:   scope,
		WorkDir: dir,
		DryRun:  installDryRun,
	})
	results, err := ins.Run(st)
	if err != nil {
		return err
	}

	printResults(cmd.OutOrStdout(), results, installDryRun)
	return nil
}

func printResults(out io.Writer, results []install.Result, dryRun bool) {
	verb := "Installed"
	if dryRun {
		verb = "Would install"
	}

	installed := 0
	for _, res := range results {
		if res.Skipped {
			if verbose {
				fmt.Fprintf(out, "%s %s (%s)\n", color.YellowString("Skipped"), res.Platform, res.Reason)
			}
			continue
		}
		installed++
		fmt.Fprintf(out, "%s %s -> %s\n", color.GreenString(verb), res.Platform, res.SkillDir)
		if res.CommandPath != "" {
			fmt.Fprintf(out, "%s %s command -> %s\n", color.GreenString(verb), res.Platform, res.CommandPath)
		}
	}

	if installed == 0 {
		fmt.Fprintln(out, "No supported tools detected. Nothing installed.")
	}
}

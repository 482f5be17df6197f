// Package install fans the staged bundle out to every supported
// platform's configuration directory.
package install

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/crxdev/crxskill/internal/bundle"
	"github.com/crxdev/crxskill/internal/fscopy"
	"github.com/crxdev/crxskill/internal/stage"
	"github.com/crxdev/crxskill/internal/target"
)

// Options configures an Installer.
type Options struct {
	// Scope selects global or project-local target directories.
	Scope target.Scope

	// WorkDir is the base for local-scope paths.
	WorkDir string

	// DryRun reports planned actions without touching the filesystem.
	DryRun bool
}

// Result reports the outcome for one platform.
type Result struct {
	Platform    string `json:"platform"`
	SkillDir    string `json:"skill_dir,omitempty"`
	CommandPath string `json:"command_path,omitempty"`
	Skipped     bool   `json:"skipped,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// Installer places the staged bundle into platform config directories.
// Execution is strictly sequential; the first error aborts the whole
// run.
type Installer struct {
	log  *slog.Logger
	opts Options
}

// New creates an Installer.
func New(log *slog.Logger, opts Options) *Installer {
	if opts.Scope == "" {
		opts.Scope = target.ScopeGlobal
	}
	return &Installer{log: log, opts: opts}
}

// Run installs the staged bundle into every applicable platform in
// declaration order. Re-running with the same staged bundle reaches the
// same end state: an existing install is fully replaced, never merged.
func (ins *Installer) Run(st *stage.Staged) ([]Result, error) {
	results := make([]Result, 0, len(target.Platforms))
	for _, plat := range target.Platforms {
		res, err := ins.installTo(plat, st)
		if err != nil {
			return nil, fmt.Errorf("installing to %s: %w", plat.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (ins *Installer) installTo(plat target.Platform, st *stage.Staged) (Result, error) {
	base := plat.SkillsBase(ins.opts.Scope, ins.opts.WorkDir)
	dest := filepath.Join(base, bundle.Name)

	// The gate runs before any skip logic so a malformed platform entry
	// aborts the run even for tools that are not installed.
	if err := target.CheckInstallPath(dest); err != nil {
		return Result{}, err
	}

	if !plat.Detected(ins.opts.Scope) {
		ins.log.Debug("skipping platform", "platform", plat.Key, "reason", "config directory not found")
		return Result{Platform: plat.Key, Skipped: true, Reason: "not detected"}, nil
	}

	cmdDir := plat.CommandDir(ins.opts.Scope, ins.opts.WorkDir)

	if ins.opts.DryRun {
		res := Result{Platform: plat.Key, SkillDir: dest}
		if cmdDir != "" && st.CommandFile != "" {
			res.CommandPath = filepath.Join(cmdDir, bundle.CommandFileName)
		}
		return res, nil
	}

	if err := os.MkdirAll(base, 0755); err != nil {
		return Result{}, fmt.Errorf("creating skills directory: %w", err)
	}

	if _, err := os.Stat(dest); err == nil {
		// Re-verify the leaf right before deletion.
		if err := target.CheckRemovable(dest, bundle.Name); err != nil {
			return Result{}, err
		}
		if err := os.RemoveAll(dest); err != nil {
			return Result{}, fmt.Errorf("removing previous install: %w", err)
		}
	}

	if err := fscopy.Dir(st.SkillDir, dest); err != nil {
		return Result{}, fmt.Errorf("copying bundle: %w", err)
	}
	if err := normalizeManifestCase(dest); err != nil {
		return Result{}, err
	}
	ins.log.Debug("installed skill", "platform", plat.Key, "path", dest)

	res := Result{Platform: plat.Key, SkillDir: dest}
	if cmdDir != "" && st.CommandFile != "" {
		cmdPath, err := ins.installCommand(cmdDir, st.CommandFile)
		if err != nil {
			return Result{}, err
		}
		res.CommandPath = cmdPath
	}
	return res, nil
}

func (ins *Installer) installCommand(cmdDir, src string) (string, error) {
	cmdPath := filepath.Join(cmdDir, bundle.CommandFileName)
	if err := target.CheckInstallPath(cmdPath); err != nil {
		return "", err
	}

	if err := os.MkdirAll(cmdDir, 0755); err != nil {
		return "", fmt.Errorf("creating commands directory: %w", err)
	}
	if err := os.Remove(cmdPath); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("removing previous command file: %w", err)
	}
	if err := fscopy.File(src, cmdPath); err != nil {
		return "", fmt.Errorf("copying command file: %w", err)
	}

	ins.log.Debug("installed command", "path", cmdPath)
	return cmdPath, nil
}

// normalizeManifestCase renames a manifest that arrived with the wrong
// casing (skill.md, Skill.md) to the canonical SKILL.md.
func normalizeManifestCase(dir string) error {
	if _, err := os.Stat(filepath.Join(dir, bundle.ManifestName)); err == nil {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading installed bundle: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || e.Name() == bundle.ManifestName {
			continue
		}
		if strings.EqualFold(e.Name(), bundle.ManifestName) {
			return os.Rename(filepath.Join(dir, e.Name()), filepath.Join(dir, bundle.ManifestName))
		}
	}

	return nil
}

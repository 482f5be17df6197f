// Package stage acquires a ready-to-copy bundle tree, either from the
// canonical remote repository or from a local checkout.
package stage

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/crxdev/crxskill/internal/bundle"
	crxerrors "github.com/crxdev/crxskill/internal/errors"
	"github.com/crxdev/crxskill/internal/fscopy"
)

// Staged is a bundle laid out in its final install shape.
type Staged struct {
	// SkillDir is the directory copied verbatim to every target.
	SkillDir string

	// CommandFile is the staged command file, empty when the source
	// carries none.
	CommandFile string

	tempDir string
}

// Cleanup removes the temporary staging directory, if any. Safe to call
// more than once.
func (s *Staged) Cleanup() {
	if s.tempDir != "" {
		os.RemoveAll(s.tempDir)
		s.tempDir = ""
	}
}

// FromRemote shallow-clones the bundle repository into a fresh
// temporary directory and shapes it for install. The returned Staged
// owns the temporary directory; callers must Cleanup on every exit
// path.
func FromRemote(gitBin, url string) (*Staged, error) {
	if gitBin == "" {
		gitBin = "git"
	}

	tmp, err := os.MkdirTemp("", "crxskill-*")
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}

	src := filepath.Join(tmp, "src")
	cmd := exec.Command(gitBin, "clone", "--depth", "1", "--quiet", url, src)
	if output, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(tmp)
		return nil, crxerrors.GitCloneFailed(url, err, string(output))
	}

	st, err := shape(tmp, src)
	if err != nil {
		os.RemoveAll(tmp)
		return nil, err
	}
	st.tempDir = tmp
	return st, nil
}

// FromDir stages a local checkout. An already-shaped checkout
// (skill/<name>/SKILL.md) is used in place without any temporary
// directory; anything else is copied into a temporary staging root in
// the expected shape.
func FromDir(dir string) (*Staged, error) {
	shaped := filepath.Join(dir, "skill", bundle.Name)
	if _, err := os.Stat(filepath.Join(shaped, bundle.ManifestName)); err == nil {
		return &Staged{
			SkillDir:    shaped,
			CommandFile: findCommandFile(dir),
		}, nil
	}

	tmp, err := os.MkdirTemp("", "crxskill-*")
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}

	st, err := shape(tmp, dir)
	if err != nil {
		os.RemoveAll(tmp)
		return nil, err
	}
	st.tempDir = tmp
	return st, nil
}

// shape stages src into scratch as skill/<name>/... and normalizes the
// command file name. A src that already carries the final shape is used
// where it lies.
func shape(scratch, src string) (*Staged, error) {
	shaped := filepath.Join(src, "skill", bundle.Name)
	if _, err := os.Stat(filepath.Join(shaped, bundle.ManifestName)); err == nil {
		return &Staged{SkillDir: shaped, CommandFile: findCommandFile(src)}, nil
	}

	if _, err := os.Stat(filepath.Join(src, bundle.ManifestName)); err != nil {
		return nil, crxerrors.IONotFound(filepath.Join(src, bundle.ManifestName))
	}

	skillDir := filepath.Join(scratch, "skill", bundle.Name)
	if err := os.MkdirAll(skillDir, 0755); err != nil {
		return nil, fmt.Errorf("creating staging layout: %w", err)
	}

	// The manifest is mandatory; the rest is carried when present.
	for _, name := range []string{bundle.ManifestName, "README.md", "LICENSE"} {
		srcPath := filepath.Join(src, name)
		if _, err := os.Stat(srcPath); os.IsNotExist(err) {
			continue
		}
		if err := fscopy.File(srcPath, filepath.Join(skillDir, name)); err != nil {
			return nil, crxerrors.CopyFailed(srcPath, skillDir, err)
		}
	}
	for _, name := range []string{"references", "resources"} {
		srcPath := filepath.Join(src, name)
		if _, err := os.Stat(srcPath); os.IsNotExist(err) {
			continue
		}
		if err := fscopy.Dir(srcPath, filepath.Join(skillDir, name)); err != nil {
			return nil, crxerrors.CopyFailed(srcPath, skillDir, err)
		}
	}

	cmdFile := findCommandFile(src)
	if cmdFile != "" && filepath.Base(cmdFile) != bundle.CommandFileName {
		normalized := filepath.Join(scratch, bundle.CommandFileName)
		if err := fscopy.File(cmdFile, normalized); err != nil {
			return nil, crxerrors.CopyFailed(cmdFile, normalized, err)
		}
		cmdFile = normalized
	}

	return &Staged{SkillDir: skillDir, CommandFile: cmdFile}, nil
}

// findCommandFile prefers the canonical command file name, falling back
// to the load-<name>.md form older checkouts use.
func findCommandFile(src string) string {
	for _, name := range []string{bundle.CommandFileName, "load-" + bundle.Name + ".md"} {
		path := filepath.Join(src, "command", name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

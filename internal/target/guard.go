package target

import (
	"os"
	"path/filepath"

	crxerrors "github.com/crxdev/crxskill/internal/errors"
)

// CheckInstallPath rejects install or removal targets that resolve to a
// protected location: the empty path, the filesystem root, or the user's
// home directory. Paths are canonicalized (cleaned, trailing separators
// dropped, symlinks resolved through the nearest existing ancestor)
// before comparison, so a symlinked base directory cannot smuggle a
// protected path past a string check.
func CheckInstallPath(path string) error {
	if path == "" {
		return crxerrors.SafetyProtectedPath(path, "empty path")
	}

	resolved := canonicalize(path)
	if resolved == "" || resolved == "." {
		return crxerrors.SafetyProtectedPath(path, "empty path")
	}
	if resolved == string(os.PathSeparator) {
		return crxerrors.SafetyProtectedPath(path, "filesystem root")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		if resolved == canonicalize(home) {
			return crxerrors.SafetyProtectedPath(path, "home directory")
		}
	}

	return nil
}

// CheckRemovable re-verifies, immediately before deletion, that a path's
// final segment equals the expected leaf name. A mismatch means the path
// was constructed from corrupt configuration; the caller must abort the
// entire run rather than skip.
func CheckRemovable(path, wantLeaf string) error {
	if got := filepath.Base(filepath.Clean(path)); got != wantLeaf {
		return crxerrors.SafetyUnexpectedLeaf(path, wantLeaf, got)
	}
	return nil
}

// canonicalize cleans a path and resolves symlinks through the deepest
// existing ancestor; the non-existing remainder is joined back
// unresolved.
func canonicalize(path string) string {
	clean := filepath.Clean(path)

	rest := ""
	dir := clean
	for {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			return filepath.Clean(filepath.Join(resolved, rest))
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return clean
		}
		rest = filepath.Join(filepath.Base(dir), rest)
		dir = parent
	}
}

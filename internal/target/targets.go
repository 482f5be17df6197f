// Package target declares the AI tools crxskill installs into and the
// path rules for each, including the safety gate that guards every
// destructive filesystem operation.
package target

import (
	"os"
	"path/filepath"
	"strings"
)

// Scope selects between user-wide and project-local install directories.
type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeLocal  Scope = "local"
)

// Platform describes one supported AI tool.
type Platform struct {
	// Key is the stable identifier (e.g. "opencode").
	Key string

	// Name is the human-readable tool name.
	Name string

	// GlobalSkills and LocalSkills are the skill base directories.
	// Global paths may start with ~; local paths are relative to the
	// working directory.
	GlobalSkills string
	LocalSkills  string

	// DetectDir is the tool's config directory. Global installs skip a
	// platform whose DetectDir does not exist, so tools that are not on
	// the machine never gain config directories. Empty means never skip.
	DetectDir string

	// GlobalCommands and LocalCommands are command directories for
	// tools that support user-invoked commands. Empty means the tool
	// has no command support.
	GlobalCommands string
	LocalCommands  string
}

// Platforms is the fixed, ordered set of supported tools. It is
// compiled-in configuration; installs iterate it sequentially.
var Platforms = []Platform{
	{
		Key:            "opencode",
		Name:           "OpenCode",
		GlobalSkills:   "~/.config/opencode/skills",
		LocalSkills:    ".opencode/skills",
		DetectDir:      "~/.config/opencode",
		GlobalCommands: "~/.config/opencode/commands",
		LocalCommands:  ".opencode/commands",
	},
	{
		Key:          "gemini",
		Name:         "Gemini CLI",
		GlobalSkills: "~/.gemini/skills",
		LocalSkills:  ".gemini/skills",
		DetectDir:    "~/.gemini",
	},
	{
		Key:            "claude",
		Name:           "Claude",
		GlobalSkills:   "~/.claude/skills",
		LocalSkills:    ".claude/skills",
		DetectDir:      "~/.claude",
		GlobalCommands: "~/.claude/commands",
		LocalCommands:  ".claude/commands",
	},
	{
		Key:          "factory",
		Name:         "FactoryAI Droid",
		GlobalSkills: "~/.factory/skills",
		LocalSkills:  ".factory/skills",
		DetectDir:    "~/.factory",
	},
	{
		Key:          "agents",
		Name:         "Agents",
		GlobalSkills: "~/.config/agents/skills",
		LocalSkills:  ".agents/skills",
		DetectDir:    "~/.config/agents",
	},
	{
		Key:          "antigravity",
		Name:         "Antigravity",
		GlobalSkills: "~/.antigravity/skills",
		LocalSkills:  ".antigravity/skills",
		DetectDir:    "~/.antigravity",
	},
}

// SkillsBase returns the skill base directory for a scope. Global paths
// get ~ expanded; local paths are joined to workDir.
func (p Platform) SkillsBase(scope Scope, workDir string) string {
	if scope == ScopeLocal {
		return filepath.Join(workDir, p.LocalSkills)
	}
	return ExpandPath(p.GlobalSkills)
}

// CommandDir returns the command directory for a scope, or "" when the
// tool has no command support.
func (p Platform) CommandDir(scope Scope, workDir string) string {
	if !p.SupportsCommands() {
		return ""
	}
	if scope == ScopeLocal {
		return filepath.Join(workDir, p.LocalCommands)
	}
	return ExpandPath(p.GlobalCommands)
}

// SupportsCommands reports whether the tool has a command directory.
func (p Platform) SupportsCommands() bool {
	return p.GlobalCommands != ""
}

// Detected reports whether the tool is present on the machine. Local
// installs never require detection; the project directories are
// expected to be created fresh.
func (p Platform) Detected(scope Scope) bool {
	if scope == ScopeLocal || p.DetectDir == "" {
		return true
	}
	_, err := os.Stat(ExpandPath(p.DetectDir))
	return err == nil
}

// ExpandPath expands ~ at the start of a path to the user's home
// directory. If ~ is not at the start or the home directory cannot be
// determined, returns path unchanged.
func ExpandPath(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}

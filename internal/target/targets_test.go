package target

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPlatforms(t *testing.T) {
	if len(Platforms) != 6 {
		t.Fatalf("len(Platforms) = %d, want 6", len(Platforms))
	}

	seen := map[string]bool{}
	for _, plat := range Platforms {
		if plat.Key == "" || plat.Name == "" {
			t.Errorf("platform %+v missing key or name", plat)
		}
		if seen[plat.Key] {
			t.Errorf("duplicate platform key %q", plat.Key)
		}
		seen[plat.Key] = true
		if plat.GlobalSkills == "" || plat.LocalSkills == "" {
			t.Errorf("platform %s missing skill directories", plat.Key)
		}
		// Command support requires both scopes' directories.
		if (plat.GlobalCommands == "") != (plat.LocalCommands == "") {
			t.Errorf("platform %s has asymmetric command directories", plat.Key)
		}
	}

	for _, key := range []string{"opencode", "gemini", "claude", "factory", "agents", "antigravity"} {
		if !seen[key] {
			t.Errorf("missing platform %q", key)
		}
	}
}

func TestSupportsCommands(t *testing.T) {
	want := map[string]bool{
		"opencode":    true,
		"gemini":      false,
		"claude":      true,
		"factory":     false,
		"agents":      false,
		"antigravity": false,
	}
	for _, plat := range Platforms {
		if got := plat.SupportsCommands(); got != want[plat.Key] {
			t.Errorf("%s.SupportsCommands() = %v, want %v", plat.Key, got, want[plat.Key])
		}
	}
}

func TestSkillsBase(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	plat := Platforms[0] // opencode

	global := plat.SkillsBase(ScopeGlobal, "/work")
	want := filepath.Join(home, ".config", "opencode", "skills")
	if global != want {
		t.Errorf("global SkillsBase = %q, want %q", global, want)
	}

	local := plat.SkillsBase(ScopeLocal, "/work")
	if local != filepath.Join("/work", ".opencode", "skills") {
		t.Errorf("local SkillsBase = %q", local)
	}
}

func TestCommandDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var opencode, gemini Platform
	for _, plat := range Platforms {
		switch plat.Key {
		case "opencode":
			opencode = plat
		case "gemini":
			gemini = plat
		}
	}

	if got := gemini.CommandDir(ScopeGlobal, "/work"); got != "" {
		t.Errorf("gemini CommandDir = %q, want empty", got)
	}

	want := filepath.Join(home, ".config", "opencode", "commands")
	if got := opencode.CommandDir(ScopeGlobal, "/work"); got != want {
		t.Errorf("opencode global CommandDir = %q, want %q", got, want)
	}
	if got := opencode.CommandDir(ScopeLocal, "/work"); got != filepath.Join("/work", ".opencode", "commands") {
		t.Errorf("opencode local CommandDir = %q", got)
	}
}

func TestDetected(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var claude Platform
	for _, plat := range Platforms {
		if plat.Key == "claude" {
			claude = plat
		}
	}

	if claude.Detected(ScopeGlobal) {
		t.Error("claude should not be detected without ~/.claude")
	}

	// Local scope never requires detection.
	if !claude.Detected(ScopeLocal) {
		t.Error("local scope should always be detected")
	}

	if err := os.MkdirAll(filepath.Join(home, ".claude"), 0755); err != nil {
		t.Fatal(err)
	}
	if !claude.Detected(ScopeGlobal) {
		t.Error("claude should be detected once ~/.claude exists")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/.claude/skills", filepath.Join(home, ".claude", "skills")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~user/path", "~user/path"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

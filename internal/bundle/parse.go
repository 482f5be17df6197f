package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	crxerrors "github.com/crxdev/crxskill/internal/errors"
)

// frontmatterFence delimits the YAML frontmatter block.
const frontmatterFence = "---"

// LoadFromDir loads the manifest from <dir>/SKILL.md.
func LoadFromDir(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, crxerrors.IONotFound(path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	m, err := Parse(string(data))
	if err != nil {
		return nil, crxerrors.BadManifest(path, err)
	}
	return m, nil
}

// Parse extracts and decodes the YAML frontmatter of a SKILL.md
// document. The Markdown body after the frontmatter is ignored.
func Parse(content string) (*Manifest, error) {
	front, err := frontmatter(content)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal([]byte(front), &m); err != nil {
		return nil, fmt.Errorf("decode manifest frontmatter: %w", err)
	}
	return &m, nil
}

// frontmatter returns the YAML between the opening and closing fences.
func frontmatter(content string) (string, error) {
	content = strings.TrimPrefix(content, "\ufeff")

	lines := strings.SplitAfter(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r\n") != frontmatterFence {
		return "", fmt.Errorf("manifest has no frontmatter block")
	}

	var b strings.Builder
	for _, line := range lines[1:] {
		if strings.TrimRight(line, "\r\n") == frontmatterFence {
			return b.String(), nil
		}
		b.WriteString(line)
	}

	return "", fmt.Errorf("manifest frontmatter is not terminated")
}

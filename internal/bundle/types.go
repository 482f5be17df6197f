package bundle

// Manifest is the YAML frontmatter of a SKILL.md file.
type Manifest struct {
	// Name is the skill identifier. For install it must equal the fixed
	// bundle name.
	Name string `yaml:"name"`

	// Description explains what the skill covers and when an agent
	// should load it (required).
	Description string `yaml:"description"`

	// Version is the semantic version of the bundle (optional).
	Version string `yaml:"version,omitempty"`

	// License names the bundle's license (optional).
	License string `yaml:"license,omitempty"`
}

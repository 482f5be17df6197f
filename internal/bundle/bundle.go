// Package bundle defines the chrome-extension-dev skill bundle: its
// fixed identity, manifest format, and validation rules.
//
// The bundle is a directory tree of Chrome Manifest V3 extension
// development documentation. Its manifest is a SKILL.md file with YAML
// frontmatter:
//
//	---
//	name: chrome-extension-dev
//	description: Guide Chrome Manifest V3 extension development.
//	---
//
//	# Chrome Extension Development
//	...
package bundle

const (
	// Name is the bundle's fixed identity. It is used verbatim as the
	// leaf directory name at every install target.
	Name = "chrome-extension-dev"

	// ManifestName is the canonical manifest filename.
	ManifestName = "SKILL.md"

	// CommandFileName is the canonical command filename placed in a
	// platform's command directory.
	CommandFileName = Name + ".md"

	// RemoteURL is the bundle's canonical repository.
	RemoteURL = "https://github.com/crxdev/chrome-extension-dev.git"
)

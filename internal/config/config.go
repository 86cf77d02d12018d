// Package config holds the walk configuration value and loads application
// configuration files.
package config

import "github.com/machino11/treegen/internal/utils"

// TreeConfig is the immutable configuration consulted by the path filter and
// the tree builder during a single walk.
type TreeConfig struct {
	// MaxDepth limits how many directory levels below the root are visited.
	// A nil value means unlimited; the root itself is depth 0.
	MaxDepth *int
	// ShowHidden includes entries whose name starts with a dot.
	ShowHidden bool
	// DirsOnly omits file nodes entirely from the resulting tree.
	DirsOnly bool
	// ShowSize records file sizes on file nodes.
	ShowSize bool
	// ShowPermissions records the octal permission string on every node.
	ShowPermissions bool
	// IgnorePatterns are glob patterns matched against the bare entry name.
	// A matching directory is pruned together with its entire subtree.
	IgnorePatterns []string
}

// defaultIgnorePatterns lists tool and VCS artifacts excluded unless the
// caller opts out.
var defaultIgnorePatterns = []string{
	"__pycache__",
	utils.GitDirectoryName,
	".svn",
	".hg",
	"node_modules",
	".idea",
	".vscode",
	".DS_Store",
	"venv",
	"env",
	".pytest_cache",
	".mypy_cache",
	"__MACOSX",
}

// DefaultIgnorePatterns returns a fresh copy of the built-in ignore set.
func DefaultIgnorePatterns() []string {
	return append([]string{}, defaultIgnorePatterns...)
}

// CombineIgnorePatterns merges the built-in ignore set (unless disabled) with
// patterns from configuration files and command-line flags, preserving order
// and removing duplicates.
func CombineIgnorePatterns(includeDefaults bool, configuredPatterns []string, flagPatterns []string) []string {
	var combinedPatterns []string
	if includeDefaults {
		combinedPatterns = append(combinedPatterns, DefaultIgnorePatterns()...)
	}
	combinedPatterns = append(combinedPatterns, configuredPatterns...)
	combinedPatterns = append(combinedPatterns, flagPatterns...)
	return utils.DeduplicatePatterns(combinedPatterns)
}

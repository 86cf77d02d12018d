package tree

import (
	"path/filepath"
	"strings"

	"github.com/machino11/treegen/internal/config"
)

// hiddenNamePrefix marks hidden entries on POSIX-style systems.
const hiddenNamePrefix = "."

// ShouldInclude reports whether a directory entry belongs in the output tree.
// It is a pure function of its inputs: repeated calls over the same inputs
// always agree, which keeps rendered output reproducible.
func ShouldInclude(entryName string, isDirectory bool, currentDepth int, configuration config.TreeConfig) bool {
	if configuration.MaxDepth != nil && currentDepth > *configuration.MaxDepth {
		return false
	}
	if !configuration.ShowHidden && strings.HasPrefix(entryName, hiddenNamePrefix) {
		return false
	}
	if configuration.DirsOnly && !isDirectory {
		return false
	}
	for _, ignorePattern := range configuration.IgnorePatterns {
		if matchesIgnorePattern(ignorePattern, entryName) {
			return false
		}
	}
	return true
}

// matchesIgnorePattern evaluates one glob pattern against a bare entry name.
// A pattern that fails to parse as a glob is compared literally.
func matchesIgnorePattern(ignorePattern string, entryName string) bool {
	isMatched, matchError := filepath.Match(ignorePattern, entryName)
	if matchError != nil {
		return ignorePattern == entryName
	}
	return isMatched
}

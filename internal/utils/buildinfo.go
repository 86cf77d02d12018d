package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const unknownVersion = "unknown"

// GetApplicationVersion reports the module version recorded in the build
// info, falling back to git describe when running from a source checkout.
func GetApplicationVersion() string {
	if buildInfo, buildInfoAvailable := debug.ReadBuildInfo(); buildInfoAvailable {
		if mainVersion := buildInfo.Main.Version; mainVersion != "" && mainVersion != "(devel)" {
			return mainVersion
		}
	}

	if repositoryRoot := findRepositoryRoot("."); repositoryRoot != "" {
		describeCommand := exec.Command("git", "describe", "--tags", "--always", "--dirty")
		describeCommand.Dir = repositoryRoot
		if describeOutput, describeError := describeCommand.Output(); describeError == nil && len(describeOutput) > 0 {
			return strings.TrimSpace(string(describeOutput))
		}
	}

	return unknownVersion
}

// findRepositoryRoot walks upward from the starting directory until it finds
// a directory containing .git, returning the empty string when there is none.
func findRepositoryRoot(startDirectory string) string {
	currentDirectory, absoluteError := filepath.Abs(startDirectory)
	if absoluteError != nil {
		return ""
	}
	for {
		gitInformation, statError := os.Stat(filepath.Join(currentDirectory, GitDirectoryName))
		if statError == nil && gitInformation.IsDir() {
			return currentDirectory
		}
		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			return ""
		}
		currentDirectory = parentDirectory
	}
}

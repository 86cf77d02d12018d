// Package tree builds the in-memory directory tree consumed by the renderers.
package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/machino11/treegen/internal/config"
	"github.com/machino11/treegen/internal/types"
)

const (
	// warningReadDirectoryFormat is used when a directory listing fails.
	warningReadDirectoryFormat = "unable to read directory %s: %v"
	// warningStatEntryFormat is used when entry details cannot be retrieved.
	warningStatEntryFormat = "unable to stat %s: %v"
	// errorStatRootFormat reports an unexpected stat failure on the root path.
	errorStatRootFormat = "stat %s: %w"
	// errorRootPathFormat wraps the sentinel errors with the offending path.
	errorRootPathFormat = "%w: %s"

	// permissionFormat renders permission bits as a three-digit octal string.
	permissionFormat = "%03o"
)

var (
	// ErrRootNotFound reports that the root path does not exist.
	ErrRootNotFound = errors.New("root directory does not exist")
	// ErrNotADirectory reports that the root path is a file.
	ErrNotADirectory = errors.New("root path is not a directory")
)

// Builder walks a directory and produces the node tree together with walk
// statistics. The walk is strictly depth-first and sequential.
type Builder struct {
	Configuration config.TreeConfig
	Logger        *zap.Logger
}

// NewBuilder returns a Builder for the given configuration. A nil logger is
// replaced with a no-op logger.
func NewBuilder(configuration config.TreeConfig, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{Configuration: configuration, Logger: logger}
}

// Build walks rootPath and returns the root node and the walk statistics.
// A missing root fails with ErrRootNotFound and a file root with
// ErrNotADirectory before any node is built. Per-entry failures below the
// root are recorded in the statistics and skipped, never fatal.
func (builder *Builder) Build(rootPath string) (*types.Node, *types.WalkStatistics, error) {
	rootInformation, rootStatError := os.Stat(rootPath)
	if rootStatError != nil {
		if os.IsNotExist(rootStatError) {
			return nil, nil, fmt.Errorf(errorRootPathFormat, ErrRootNotFound, rootPath)
		}
		return nil, nil, fmt.Errorf(errorStatRootFormat, rootPath, rootStatError)
	}
	if !rootInformation.IsDir() {
		return nil, nil, fmt.Errorf(errorRootPathFormat, ErrNotADirectory, rootPath)
	}

	rootNode := &types.Node{
		Name:     filepath.Base(filepath.Clean(rootPath)),
		Type:     types.NodeTypeDirectory,
		Children: make([]*types.Node, 0),
	}
	if builder.Configuration.ShowPermissions {
		rootNode.Permissions = fmt.Sprintf(permissionFormat, rootInformation.Mode().Perm())
	}

	statistics := &types.WalkStatistics{}
	if builder.shouldRecurse(0) {
		builder.buildChildren(rootPath, 0, rootNode, statistics)
	}
	return rootNode, statistics, nil
}

// shouldRecurse reports whether the contents of a directory at the given
// depth are visited. Directories at the depth limit still appear in the tree
// with empty children; only their contents are cut off.
func (builder *Builder) shouldRecurse(directoryDepth int) bool {
	return builder.Configuration.MaxDepth == nil || directoryDepth < *builder.Configuration.MaxDepth
}

// buildChildren lists one directory and appends the accepted entries to the
// parent node, recursing into included subdirectories.
func (builder *Builder) buildChildren(directoryPath string, directoryDepth int, parentNode *types.Node, statistics *types.WalkStatistics) {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		statistics.Errors++
		builder.Logger.Warn(fmt.Sprintf(warningReadDirectoryFormat, directoryPath, readDirectoryError))
		return
	}

	// Deterministic order independent of filesystem enumeration: directories
	// first, byte-wise name order within each group.
	sort.SliceStable(directoryEntries, func(firstIndex, secondIndex int) bool {
		firstEntry, secondEntry := directoryEntries[firstIndex], directoryEntries[secondIndex]
		if firstEntry.IsDir() != secondEntry.IsDir() {
			return firstEntry.IsDir()
		}
		return firstEntry.Name() < secondEntry.Name()
	})

	childDepth := directoryDepth + 1
	for _, directoryEntry := range directoryEntries {
		if !ShouldInclude(directoryEntry.Name(), directoryEntry.IsDir(), childDepth, builder.Configuration) {
			continue
		}

		childPath := filepath.Join(directoryPath, directoryEntry.Name())
		childNode := &types.Node{Name: directoryEntry.Name()}
		if directoryEntry.IsDir() {
			childNode.Type = types.NodeTypeDirectory
			childNode.Children = make([]*types.Node, 0)
		} else {
			childNode.Type = types.NodeTypeFile
		}
		builder.applyEntryDetails(childNode, directoryEntry, childPath)

		if directoryEntry.IsDir() {
			statistics.Directories++
			if builder.shouldRecurse(childDepth) {
				builder.buildChildren(childPath, childDepth, childNode, statistics)
			}
		} else {
			statistics.Files++
		}
		parentNode.Children = append(parentNode.Children, childNode)
	}
}

// applyEntryDetails records optional size and permission details on the node.
// A stat failure leaves the fields absent and is logged, not counted: the
// entry itself stays in the tree.
func (builder *Builder) applyEntryDetails(node *types.Node, directoryEntry os.DirEntry, entryPath string) {
	if !builder.Configuration.ShowSize && !builder.Configuration.ShowPermissions {
		return
	}
	entryInformation, infoError := directoryEntry.Info()
	if infoError != nil {
		builder.Logger.Warn(fmt.Sprintf(warningStatEntryFormat, entryPath, infoError))
		return
	}
	if builder.Configuration.ShowSize && node.Type == types.NodeTypeFile {
		entrySize := entryInformation.Size()
		node.Size = &entrySize
	}
	if builder.Configuration.ShowPermissions {
		node.Permissions = fmt.Sprintf(permissionFormat, entryInformation.Mode().Perm())
	}
}

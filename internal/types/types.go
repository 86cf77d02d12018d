// Package types defines every cross-package data structure used by the treegen CLI.
package types

import "encoding/json"

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

// Node represents one filesystem entry accepted into the output tree.
// A file node never has children; a directory node always carries a
// non-nil (possibly empty) Children slice. Nodes are immutable once the
// builder returns them.
type Node struct {
	Name        string
	Type        string
	Size        *int64
	Permissions string
	Children    []*Node
}

// WalkStatistics accumulates counts during a single walk. The builder owns
// it while the walk is in progress; callers treat it as read-only afterward.
// Errors counts directory listings that failed and were skipped.
type WalkStatistics struct {
	Directories int
	Files       int
	Errors      int
}

// jsonDirectoryNode fixes the key order and guarantees the children array
// is always emitted for directories, even when empty.
type jsonDirectoryNode struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Size        *int64  `json:"size,omitempty"`
	Permissions string  `json:"permissions,omitempty"`
	Children    []*Node `json:"children"`
}

// jsonFileNode omits the children key entirely for file nodes.
type jsonFileNode struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Size        *int64 `json:"size,omitempty"`
	Permissions string `json:"permissions,omitempty"`
}

// MarshalJSON encodes the node with a stable key order so that parsing the
// emitted document and re-serializing it reproduces byte-identical output.
func (node *Node) MarshalJSON() ([]byte, error) {
	if node.Type == NodeTypeDirectory {
		childNodes := node.Children
		if childNodes == nil {
			childNodes = []*Node{}
		}
		return json.Marshal(jsonDirectoryNode{
			Name:        node.Name,
			Type:        node.Type,
			Size:        node.Size,
			Permissions: node.Permissions,
			Children:    childNodes,
		})
	}
	return json.Marshal(jsonFileNode{
		Name:        node.Name,
		Type:        node.Type,
		Size:        node.Size,
		Permissions: node.Permissions,
	})
}

// UnmarshalJSON decodes a node and normalizes a missing children array to an
// empty slice for directories, mirroring what the builder produces.
func (node *Node) UnmarshalJSON(data []byte) error {
	var decoded jsonDirectoryNode
	if decodeError := json.Unmarshal(data, &decoded); decodeError != nil {
		return decodeError
	}
	node.Name = decoded.Name
	node.Type = decoded.Type
	node.Size = decoded.Size
	node.Permissions = decoded.Permissions
	node.Children = decoded.Children
	if node.Type == NodeTypeDirectory && node.Children == nil {
		node.Children = []*Node{}
	}
	return nil
}

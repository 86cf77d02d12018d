package output

import (
	"encoding/json"

	"github.com/machino11/treegen/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "
)

// RenderJSON marshals the tree as an indented JSON document. The node
// encoding keeps a fixed key order, so parsing the output and re-serializing
// it reproduces byte-identical text.
func RenderJSON(rootNode *types.Node) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(rootNode, indentPrefix, indentSpacer)
	if jsonEncodeError != nil {
		return "", jsonEncodeError
	}
	return string(encoded), nil
}

package output

import (
	"github.com/xlab/treeprint"

	"github.com/machino11/treegen/internal/config"
	"github.com/machino11/treegen/internal/types"
)

// RenderText renders the tree with box-drawing connectors. Each directory's
// children are printed with "├── " connectors ("└── " for the last child)
// and a "│   " continuation prefix inherited from ancestors.
func RenderText(rootNode *types.Node, configuration config.TreeConfig) string {
	renderedTree := treeprint.NewWithRoot(rootNode.Name)
	appendTextChildren(renderedTree, rootNode, configuration)
	return renderedTree.String()
}

func appendTextChildren(branch treeprint.Tree, parentNode *types.Node, configuration config.TreeConfig) {
	for _, childNode := range parentNode.Children {
		entryLabel := childNode.Name + entrySuffix(childNode, configuration)
		if childNode.Type == types.NodeTypeDirectory {
			childBranch := branch.AddBranch(entryLabel)
			appendTextChildren(childBranch, childNode, configuration)
		} else {
			branch.AddNode(entryLabel)
		}
	}
}

package output

import (
	"strings"

	"github.com/machino11/treegen/internal/config"
	"github.com/machino11/treegen/internal/types"
)

const markdownIndentUnit = "  "

// RenderMarkdown renders the tree as a Markdown document: the root as a
// level-1 heading, directories as bold bullets with a trailing slash, files
// as plain bullets, nested by two spaces per depth level.
func RenderMarkdown(rootNode *types.Node, configuration config.TreeConfig) string {
	var documentBuilder strings.Builder
	documentBuilder.WriteString("# " + rootNode.Name + "\n\n")
	writeMarkdownChildren(&documentBuilder, rootNode, configuration, 0)
	return documentBuilder.String()
}

func writeMarkdownChildren(documentBuilder *strings.Builder, parentNode *types.Node, configuration config.TreeConfig, indentLevel int) {
	linePrefix := strings.Repeat(markdownIndentUnit, indentLevel)
	for _, childNode := range parentNode.Children {
		if childNode.Type == types.NodeTypeDirectory {
			documentBuilder.WriteString(linePrefix + "- **" + childNode.Name + "/**" + entrySuffix(childNode, configuration) + "\n")
			writeMarkdownChildren(documentBuilder, childNode, configuration, indentLevel+1)
		} else {
			documentBuilder.WriteString(linePrefix + "- " + childNode.Name + entrySuffix(childNode, configuration) + "\n")
		}
	}
}

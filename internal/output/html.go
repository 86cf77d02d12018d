package output

import (
	"html"
	"strings"

	"github.com/machino11/treegen/internal/config"
	"github.com/machino11/treegen/internal/types"
	"github.com/machino11/treegen/internal/utils"
)

const (
	htmlDocumentHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Directory Tree - %TITLE%</title>
<style>
body { font-family: ui-monospace, SFMono-Regular, Menlo, Consolas, monospace; margin: 2rem; background: #1a1b26; color: #a9b1d6; }
h1 { font-size: 1.4rem; color: #c0caf5; }
ul { list-style: none; padding-left: 1.25rem; margin: 0.25rem 0; }
li { margin: 0.15rem 0; line-height: 1.5; }
details > summary { cursor: pointer; font-weight: 600; color: #7aa2f7; }
.file { color: #9ece6a; }
.size, .perms { opacity: 0.7; font-size: 0.85em; margin-left: 0.4rem; }
</style>
</head>
<body>
`
	htmlDocumentFoot = `</body>
</html>
`
	htmlTitlePlaceholder = "%TITLE%"
	htmlIndentUnit       = "  "
)

// RenderHTML renders the tree as a standalone HTML document with nested
// collapsible lists. The document embeds its own styling and references no
// external resources.
func RenderHTML(rootNode *types.Node, configuration config.TreeConfig) string {
	escapedRootName := html.EscapeString(rootNode.Name)

	var documentBuilder strings.Builder
	documentBuilder.WriteString(strings.ReplaceAll(htmlDocumentHead, htmlTitlePlaceholder, escapedRootName))
	documentBuilder.WriteString("<h1>" + escapedRootName + "</h1>\n")
	documentBuilder.WriteString("<ul class=\"tree\">\n")
	writeHTMLChildren(&documentBuilder, rootNode, configuration, 1)
	documentBuilder.WriteString("</ul>\n")
	documentBuilder.WriteString(htmlDocumentFoot)
	return documentBuilder.String()
}

func writeHTMLChildren(documentBuilder *strings.Builder, parentNode *types.Node, configuration config.TreeConfig, indentLevel int) {
	linePrefix := strings.Repeat(htmlIndentUnit, indentLevel)
	for _, childNode := range parentNode.Children {
		escapedName := html.EscapeString(childNode.Name)
		if childNode.Type == types.NodeTypeDirectory {
			documentBuilder.WriteString(linePrefix + "<li><details open><summary>" + escapedName + "/" + htmlEntryDetails(childNode, configuration) + "</summary>\n")
			if len(childNode.Children) > 0 {
				documentBuilder.WriteString(linePrefix + "<ul>\n")
				writeHTMLChildren(documentBuilder, childNode, configuration, indentLevel+1)
				documentBuilder.WriteString(linePrefix + "</ul>\n")
			}
			documentBuilder.WriteString(linePrefix + "</details></li>\n")
		} else {
			documentBuilder.WriteString(linePrefix + "<li><span class=\"file\">" + escapedName + "</span>" + htmlEntryDetails(childNode, configuration) + "</li>\n")
		}
	}
}

// htmlEntryDetails wraps optional size and permission details in styled spans.
func htmlEntryDetails(node *types.Node, configuration config.TreeConfig) string {
	var detailParts []string
	if configuration.ShowSize && node.Size != nil {
		detailParts = append(detailParts, "<span class=\"size\">("+utils.FormatEntrySize(*node.Size)+")</span>")
	}
	if configuration.ShowPermissions && node.Permissions != "" {
		detailParts = append(detailParts, "<span class=\"perms\">["+node.Permissions+"]</span>")
	}
	return strings.Join(detailParts, "")
}

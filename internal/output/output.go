// Package output renders a built node tree into the supported formats.
package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/machino11/treegen/internal/config"
	"github.com/machino11/treegen/internal/types"
	"github.com/machino11/treegen/internal/utils"
)

const (
	// errorUnsupportedFormatFormat reports an unrecognized output format.
	errorUnsupportedFormatFormat = "unsupported output format %q"
)

// formatExtensions maps each output format to its conventional file extension.
var formatExtensions = map[string]string{
	types.FormatText:     ".txt",
	types.FormatMarkdown: ".md",
	types.FormatHTML:     ".html",
	types.FormatJSON:     ".json",
}

// supportedFormats lists the renderable formats in selection-menu order.
var supportedFormats = []string{
	types.FormatText,
	types.FormatMarkdown,
	types.FormatHTML,
	types.FormatJSON,
}

// IsSupportedFormat reports whether the provided format is recognized.
func IsSupportedFormat(outputFormat string) bool {
	return utils.ContainsString(supportedFormats, outputFormat)
}

// Render produces the textual representation of the tree in the requested
// format. Renderers never touch the filesystem and never mutate the tree;
// an unknown format fails fast.
func Render(rootNode *types.Node, configuration config.TreeConfig, outputFormat string) (string, error) {
	switch outputFormat {
	case types.FormatText:
		return RenderText(rootNode, configuration), nil
	case types.FormatMarkdown:
		return RenderMarkdown(rootNode, configuration), nil
	case types.FormatHTML:
		return RenderHTML(rootNode, configuration), nil
	case types.FormatJSON:
		return RenderJSON(rootNode)
	default:
		return "", fmt.Errorf(errorUnsupportedFormatFormat, outputFormat)
	}
}

// FileExtensionForFormat returns the conventional extension for a format,
// defaulting to the text extension for unknown values.
func FileExtensionForFormat(outputFormat string) string {
	if extension, isKnown := formatExtensions[outputFormat]; isKnown {
		return extension
	}
	return formatExtensions[types.FormatText]
}

// NormalizeOutputPath forces the destination path to carry the conventional
// extension for the selected format.
func NormalizeOutputPath(outputPath string, outputFormat string) string {
	expectedExtension := FileExtensionForFormat(outputFormat)
	currentExtension := filepath.Ext(outputPath)
	if currentExtension == expectedExtension {
		return outputPath
	}
	return strings.TrimSuffix(outputPath, currentExtension) + expectedExtension
}

// entrySuffix formats the optional size and permission details appended to an
// entry in the text and markdown renderers, e.g. " (10B) [755]".
func entrySuffix(node *types.Node, configuration config.TreeConfig) string {
	var infoParts []string
	if configuration.ShowSize && node.Size != nil {
		infoParts = append(infoParts, "("+utils.FormatEntrySize(*node.Size)+")")
	}
	if configuration.ShowPermissions && node.Permissions != "" {
		infoParts = append(infoParts, "["+node.Permissions+"]")
	}
	if len(infoParts) == 0 {
		return ""
	}
	return " " + strings.Join(infoParts, " ")
}

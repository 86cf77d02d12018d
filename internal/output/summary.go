package output

import (
	"fmt"
	"strings"

	"github.com/machino11/treegen/internal/types"
)

const summarySeparator = "=================================================="

// FormatSummary formats walk statistics into the human-readable summary
// block. The error line appears only when errors were recorded.
func FormatSummary(statistics *types.WalkStatistics) string {
	summaryLines := []string{
		summarySeparator,
		"GENERATION STATISTICS",
		summarySeparator,
		fmt.Sprintf("Total directories: %d", statistics.Directories),
		fmt.Sprintf("Total files:       %d", statistics.Files),
	}
	if statistics.Errors > 0 {
		summaryLines = append(summaryLines, fmt.Sprintf("Errors:            %d", statistics.Errors))
	}
	summaryLines = append(summaryLines, summarySeparator)
	return strings.Join(summaryLines, "\n")
}

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/machino11/treegen/internal/output"
	"github.com/machino11/treegen/internal/types"
)

const (
	interactiveBanner          = "Directory Tree Generator"
	interactiveBannerSeparator = "=================================================="

	promptSourceDirectory        = "\nEnter the source directory path: "
	promptOutputPath             = "Enter the output file path (e.g., tree.txt): "
	promptCreateDirectoryFormat  = "Directory '%s' does not exist. Create it? (y/n): "
	promptShowHidden             = "\nShow hidden files? (y/n, default: n): "
	promptDirsOnly               = "Show directories only? (y/n, default: n): "
	promptFormatChoice           = "Choose format (1-4, default: 1): "
	messageInvalidDirectory      = "Error: '%s' is not a valid directory.\n"
	messageEmptyInput            = "Please enter a valid path.\n"
	messageUsingFileName         = "Using filename: %s\n"
	messageDirectoryDeclined     = "Cannot save without the output directory.\n"
	messageCreateDirectoryFailed = "Error: could not create '%s': %v\n"
	messageExtensionNoticeFormat = "\nFiles will be saved with the %s extension.\n"

	createdDirectoryPermBits = 0o755

	formatMenu = `
Output format:
1. Text (.txt) [default]
2. Markdown (.md)
3. HTML (.html)
4. JSON (.json)
`

	affirmativeAnswer = "y"

	errorInputClosedMessage = "input closed before all prompts were answered"
)

// interactiveSelections carries the answers collected in interactive mode.
type interactiveSelections struct {
	sourceDirectory string
	outputPath      string
	showHidden      bool
	dirsOnly        bool
	outputFormat    string
}

// formatChoices maps menu answers to output formats.
var formatChoices = map[string]string{
	"":  types.FormatText,
	"1": types.FormatText,
	"2": types.FormatMarkdown,
	"3": types.FormatHTML,
	"4": types.FormatJSON,
}

// promptForGeneration collects the source directory, output path, and basic
// options interactively. Invalid answers are re-prompted; a closed input
// stream aborts with an error.
func promptForGeneration(inputReader io.Reader, outputWriter io.Writer) (interactiveSelections, error) {
	lineScanner := bufio.NewScanner(inputReader)
	fmt.Fprintln(outputWriter, interactiveBanner)
	fmt.Fprintln(outputWriter, interactiveBannerSeparator)

	var selections interactiveSelections

	for {
		answer, readError := readAnswer(lineScanner, outputWriter, promptSourceDirectory)
		if readError != nil {
			return interactiveSelections{}, readError
		}
		if answer == "" {
			fmt.Fprint(outputWriter, messageEmptyInput)
			continue
		}
		candidateDirectory := filepath.Clean(answer)
		directoryInformation, statError := os.Stat(candidateDirectory)
		if statError != nil || !directoryInformation.IsDir() {
			fmt.Fprintf(outputWriter, messageInvalidDirectory, candidateDirectory)
			continue
		}
		selections.sourceDirectory = candidateDirectory
		break
	}

	for {
		answer, readError := readAnswer(lineScanner, outputWriter, promptOutputPath)
		if readError != nil {
			return interactiveSelections{}, readError
		}
		if answer == "" {
			fmt.Fprint(outputWriter, messageEmptyInput)
			continue
		}
		if pathInformation, statError := os.Stat(answer); statError == nil && pathInformation.IsDir() {
			answer = filepath.Join(answer, defaultOutputFileBaseName)
			fmt.Fprintf(outputWriter, messageUsingFileName, answer)
		}
		parentDirectory := filepath.Dir(answer)
		if _, parentStatError := os.Stat(parentDirectory); os.IsNotExist(parentStatError) {
			createAnswer, readCreateError := readAnswer(lineScanner, outputWriter, fmt.Sprintf(promptCreateDirectoryFormat, parentDirectory))
			if readCreateError != nil {
				return interactiveSelections{}, readCreateError
			}
			if !strings.EqualFold(createAnswer, affirmativeAnswer) {
				fmt.Fprint(outputWriter, messageDirectoryDeclined)
				continue
			}
			if makeDirectoryError := os.MkdirAll(parentDirectory, createdDirectoryPermBits); makeDirectoryError != nil {
				fmt.Fprintf(outputWriter, messageCreateDirectoryFailed, parentDirectory, makeDirectoryError)
				continue
			}
		}
		selections.outputPath = answer
		break
	}

	hiddenAnswer, readError := readAnswer(lineScanner, outputWriter, promptShowHidden)
	if readError != nil {
		return interactiveSelections{}, readError
	}
	selections.showHidden = strings.EqualFold(hiddenAnswer, affirmativeAnswer)

	dirsOnlyAnswer, readError := readAnswer(lineScanner, outputWriter, promptDirsOnly)
	if readError != nil {
		return interactiveSelections{}, readError
	}
	selections.dirsOnly = strings.EqualFold(dirsOnlyAnswer, affirmativeAnswer)

	fmt.Fprint(outputWriter, formatMenu)
	for {
		formatAnswer, readFormatError := readAnswer(lineScanner, outputWriter, promptFormatChoice)
		if readFormatError != nil {
			return interactiveSelections{}, readFormatError
		}
		chosenFormat, isKnownChoice := formatChoices[formatAnswer]
		if !isKnownChoice {
			continue
		}
		selections.outputFormat = chosenFormat
		break
	}
	fmt.Fprintf(outputWriter, messageExtensionNoticeFormat, output.FileExtensionForFormat(selections.outputFormat))

	return selections, nil
}

// readAnswer prints a prompt and returns the next trimmed input line.
func readAnswer(lineScanner *bufio.Scanner, outputWriter io.Writer, prompt string) (string, error) {
	fmt.Fprint(outputWriter, prompt)
	if !lineScanner.Scan() {
		if scanError := lineScanner.Err(); scanError != nil {
			return "", scanError
		}
		return "", errors.New(errorInputClosedMessage)
	}
	return strings.TrimSpace(lineScanner.Text()), nil
}

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/machino11/treegen/internal/types"
)

func TestPromptForGenerationCollectsAnswers(testingHandle *testing.T) {
	sourceDirectory := testingHandle.TempDir()
	answers := strings.Join([]string{
		sourceDirectory,
		"tree.txt",
		"y",
		"",
		"2",
	}, "\n") + "\n"

	var promptOutput strings.Builder
	selections, promptError := promptForGeneration(strings.NewReader(answers), &promptOutput)
	if promptError != nil {
		testingHandle.Fatalf("promptForGeneration failed: %v", promptError)
	}
	if selections.sourceDirectory != filepath.Clean(sourceDirectory) {
		testingHandle.Fatalf("expected source %s, got %s", sourceDirectory, selections.sourceDirectory)
	}
	if selections.outputPath != "tree.txt" {
		testingHandle.Fatalf("expected output tree.txt, got %s", selections.outputPath)
	}
	if !selections.showHidden {
		testingHandle.Fatal("expected show hidden to be enabled")
	}
	if selections.dirsOnly {
		testingHandle.Fatal("expected dirs only to stay disabled")
	}
	if selections.outputFormat != types.FormatMarkdown {
		testingHandle.Fatalf("expected markdown format, got %s", selections.outputFormat)
	}
}

func TestPromptForGenerationRepromptsInvalidSource(testingHandle *testing.T) {
	sourceDirectory := testingHandle.TempDir()
	answers := strings.Join([]string{
		filepath.Join(sourceDirectory, "does-not-exist"),
		sourceDirectory,
		"out",
		"",
		"",
		"",
	}, "\n") + "\n"

	var promptOutput strings.Builder
	selections, promptError := promptForGeneration(strings.NewReader(answers), &promptOutput)
	if promptError != nil {
		testingHandle.Fatalf("promptForGeneration failed: %v", promptError)
	}
	if selections.sourceDirectory != filepath.Clean(sourceDirectory) {
		testingHandle.Fatalf("expected source %s after re-prompt, got %s", sourceDirectory, selections.sourceDirectory)
	}
	if !strings.Contains(promptOutput.String(), "is not a valid directory") {
		testingHandle.Fatalf("expected a validation message, got:\n%s", promptOutput.String())
	}
	if selections.outputFormat != types.FormatText {
		testingHandle.Fatalf("expected the default text format, got %s", selections.outputFormat)
	}
}

func TestPromptForGenerationResolvesDirectoryOutput(testingHandle *testing.T) {
	sourceDirectory := testingHandle.TempDir()
	outputDirectory := testingHandle.TempDir()
	answers := strings.Join([]string{
		sourceDirectory,
		outputDirectory,
		"",
		"",
		"1",
	}, "\n") + "\n"

	var promptOutput strings.Builder
	selections, promptError := promptForGeneration(strings.NewReader(answers), &promptOutput)
	if promptError != nil {
		testingHandle.Fatalf("promptForGeneration failed: %v", promptError)
	}
	expectedOutput := filepath.Join(outputDirectory, defaultOutputFileBaseName)
	if selections.outputPath != expectedOutput {
		testingHandle.Fatalf("expected output %s, got %s", expectedOutput, selections.outputPath)
	}
}

func TestPromptForGenerationCreatesMissingOutputDirectory(testingHandle *testing.T) {
	sourceDirectory := testingHandle.TempDir()
	outputPath := filepath.Join(testingHandle.TempDir(), "reports", "tree.txt")
	answers := strings.Join([]string{
		sourceDirectory,
		outputPath,
		"y",
		"",
		"",
		"",
	}, "\n") + "\n"

	var promptOutput strings.Builder
	selections, promptError := promptForGeneration(strings.NewReader(answers), &promptOutput)
	if promptError != nil {
		testingHandle.Fatalf("promptForGeneration failed: %v", promptError)
	}
	if selections.outputPath != outputPath {
		testingHandle.Fatalf("expected output %s, got %s", outputPath, selections.outputPath)
	}
	createdDirectory := filepath.Dir(outputPath)
	directoryInformation, statError := os.Stat(createdDirectory)
	if statError != nil || !directoryInformation.IsDir() {
		testingHandle.Fatalf("expected %s to be created, stat: %v", createdDirectory, statError)
	}
	if !strings.Contains(promptOutput.String(), "saved with the .txt extension") {
		testingHandle.Fatalf("expected the extension notice, got:\n%s", promptOutput.String())
	}
}

func TestPromptForGenerationRepromptsWhenCreationDeclined(testingHandle *testing.T) {
	sourceDirectory := testingHandle.TempDir()
	missingOutputPath := filepath.Join(testingHandle.TempDir(), "absent", "tree.txt")
	answers := strings.Join([]string{
		sourceDirectory,
		missingOutputPath,
		"n",
		"tree.txt",
		"",
		"",
		"",
	}, "\n") + "\n"

	var promptOutput strings.Builder
	selections, promptError := promptForGeneration(strings.NewReader(answers), &promptOutput)
	if promptError != nil {
		testingHandle.Fatalf("promptForGeneration failed: %v", promptError)
	}
	if selections.outputPath != "tree.txt" {
		testingHandle.Fatalf("expected the re-prompted path, got %s", selections.outputPath)
	}
	if _, statError := os.Stat(filepath.Dir(missingOutputPath)); !os.IsNotExist(statError) {
		testingHandle.Fatalf("declined directory must not be created, stat: %v", statError)
	}
}

func TestPromptForGenerationInputClosed(testingHandle *testing.T) {
	var promptOutput strings.Builder
	_, promptError := promptForGeneration(strings.NewReader(""), &promptOutput)
	if promptError == nil {
		testingHandle.Fatal("expected an error when input closes before the prompts finish")
	}
}

package utils_test

import (
	"reflect"
	"testing"

	"github.com/machino11/treegen/internal/utils"
)

func TestDeduplicatePatterns(testingHandle *testing.T) {
	input := []string{"*.log", "node_modules", "*.log", "venv", "node_modules"}
	expected := []string{"*.log", "node_modules", "venv"}
	result := utils.DeduplicatePatterns(input)
	if !reflect.DeepEqual(result, expected) {
		testingHandle.Fatalf("expected %v, got %v", expected, result)
	}
}

func TestDeduplicatePatternsEmpty(testingHandle *testing.T) {
	result := utils.DeduplicatePatterns(nil)
	if len(result) != 0 {
		testingHandle.Fatalf("expected empty result, got %v", result)
	}
}

func TestGetApplicationVersion(testingHandle *testing.T) {
	version := utils.GetApplicationVersion()
	if version == "" {
		testingHandle.Fatal("version must never be empty")
	}
}

func TestContainsString(testingHandle *testing.T) {
	values := []string{"text", "markdown", "html"}
	if !utils.ContainsString(values, "markdown") {
		testingHandle.Fatal("expected markdown to be found")
	}
	if utils.ContainsString(values, "json") {
		testingHandle.Fatal("did not expect json to be found")
	}
}

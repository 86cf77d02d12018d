// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/machino11/treegen/internal/config"
	"github.com/machino11/treegen/internal/output"
	"github.com/machino11/treegen/internal/tree"
	"github.com/machino11/treegen/internal/types"
	"github.com/machino11/treegen/internal/utils"
)

const (
	formatFlagName           = "format"
	maxDepthFlagName         = "max-depth"
	showHiddenFlagName       = "show-hidden"
	dirsOnlyFlagName         = "dirs-only"
	showSizeFlagName         = "show-size"
	showPermissionsFlagName  = "show-permissions"
	ignoreFlagName           = "ignore"
	noDefaultIgnoresFlagName = "no-default-ignores"
	configFlagName           = "config"
	verboseFlagName          = "verbose"
	versionFlagName          = "version"

	formatFlagShorthand          = "f"
	maxDepthFlagShorthand        = "d"
	showHiddenFlagShorthand      = "a"
	showSizeFlagShorthand        = "s"
	showPermissionsFlagShorthand = "p"
	ignoreFlagShorthand          = "i"
	verboseFlagShorthand         = "v"

	formatFlagDescription           = "output format (text, markdown, html, json)"
	maxDepthFlagDescription         = "maximum depth to traverse"
	showHiddenFlagDescription       = "show hidden files and directories"
	dirsOnlyFlagDescription         = "show directories only"
	showSizeFlagDescription         = "show file sizes"
	showPermissionsFlagDescription  = "show permissions (Unix-like systems)"
	ignoreFlagDescription           = "pattern to ignore (repeatable)"
	noDefaultIgnoresFlagDescription = "do not apply the built-in ignore patterns"
	configFlagDescription           = "path to a configuration file"
	verboseFlagDescription          = "enable verbose output"
	versionFlagDescription          = "display application version"

	versionTemplate = "treegen version: %s\n"

	rootUse              = "treegen [source-directory] [output-file]"
	rootShortDescription = "generate visual directory tree structures"
	rootLongDescription  = `treegen walks a directory and writes its structure to a file.
Use --format to select text, markdown, html, or json output.
When the source directory and output file are not both provided,
treegen prompts for them interactively.`
	rootUsageExample = `  # Plain text tree
  treegen ./project tree.txt

  # Markdown with file sizes, two levels deep
  treegen ./project tree.md --format markdown --show-size -d 2

  # JSON, custom ignore patterns on top of the built-in set
  treegen ./project tree.json -f json -i '*.log' -i tmp`

	invalidFormatMessage       = "invalid format value '%s'"
	unlimitedDepthFlagValue    = -1
	errorWriteOutputFormat     = "writing %s: %w"
	adjustedOutputFormat       = "Adjusted output filename: %s"
	generatedOutputFormat      = "Tree successfully generated: %s"
	generatingTreeFormat       = "Generating tree for: %s"
	errorNegativeDepthMessage  = "max depth must be non-negative"
	defaultOutputFileBaseName  = "directory_tree"
	defaultOutputFilePermBits  = 0o644
	positionalArgumentsAtMost  = 2
	positionalArgumentsExactly = 2
)

// generationOptions stores the flag values for the root command.
type generationOptions struct {
	outputFormat     string
	maxDepth         int
	showHidden       bool
	dirsOnly         bool
	showSize         bool
	showPermissions  bool
	ignorePatterns   []string
	noDefaultIgnores bool
	configPath       string
	verbose          bool
}

// Execute runs the treegen application.
func Execute(logger *zap.Logger, loggingLevel zap.AtomicLevel) error {
	rootCommand := createRootCommand(logger, loggingLevel)
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(logger *zap.Logger, loggingLevel zap.AtomicLevel) *cobra.Command {
	var options generationOptions
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(positionalArgumentsAtMost),
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
			if options.verbose {
				loggingLevel.SetLevel(zapcore.DebugLevel)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return runGenerate(command, logger, options, arguments)
		},
	}

	rootCommand.Flags().StringVarP(&options.outputFormat, formatFlagName, formatFlagShorthand, types.FormatText, formatFlagDescription)
	rootCommand.Flags().IntVarP(&options.maxDepth, maxDepthFlagName, maxDepthFlagShorthand, unlimitedDepthFlagValue, maxDepthFlagDescription)
	rootCommand.Flags().BoolVarP(&options.showHidden, showHiddenFlagName, showHiddenFlagShorthand, false, showHiddenFlagDescription)
	rootCommand.Flags().BoolVar(&options.dirsOnly, dirsOnlyFlagName, false, dirsOnlyFlagDescription)
	rootCommand.Flags().BoolVarP(&options.showSize, showSizeFlagName, showSizeFlagShorthand, false, showSizeFlagDescription)
	rootCommand.Flags().BoolVarP(&options.showPermissions, showPermissionsFlagName, showPermissionsFlagShorthand, false, showPermissionsFlagDescription)
	rootCommand.Flags().StringArrayVarP(&options.ignorePatterns, ignoreFlagName, ignoreFlagShorthand, nil, ignoreFlagDescription)
	rootCommand.Flags().BoolVar(&options.noDefaultIgnores, noDefaultIgnoresFlagName, false, noDefaultIgnoresFlagDescription)
	rootCommand.Flags().StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	rootCommand.Flags().BoolVarP(&options.verbose, verboseFlagName, verboseFlagShorthand, false, verboseFlagDescription)
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// runGenerate performs one generation run: resolve the source and destination,
// build the tree, render it, and write the result.
func runGenerate(command *cobra.Command, logger *zap.Logger, options generationOptions, arguments []string) error {
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		ExplicitFilePath: options.configPath,
	})
	if configurationError != nil {
		return configurationError
	}

	treeConfiguration, outputFormat, resolveError := resolveConfiguration(command, options, applicationConfiguration)
	if resolveError != nil {
		return resolveError
	}

	var sourceDirectory, outputPath string
	if len(arguments) == positionalArgumentsExactly {
		sourceDirectory = arguments[0]
		outputPath = arguments[1]
	} else {
		selections, promptError := promptForGeneration(os.Stdin, os.Stdout)
		if promptError != nil {
			return promptError
		}
		sourceDirectory = selections.sourceDirectory
		outputPath = selections.outputPath
		treeConfiguration.ShowHidden = selections.showHidden
		treeConfiguration.DirsOnly = selections.dirsOnly
		outputFormat = selections.outputFormat
	}

	if !output.IsSupportedFormat(outputFormat) {
		return fmt.Errorf(invalidFormatMessage, outputFormat)
	}

	logger.Debug(fmt.Sprintf(generatingTreeFormat, sourceDirectory))

	treeBuilder := tree.NewBuilder(treeConfiguration, logger)
	rootNode, walkStatistics, buildError := treeBuilder.Build(sourceDirectory)
	if buildError != nil {
		return buildError
	}

	renderedOutput, renderError := output.Render(rootNode, treeConfiguration, outputFormat)
	if renderError != nil {
		return renderError
	}

	normalizedOutputPath := output.NormalizeOutputPath(outputPath, outputFormat)
	if normalizedOutputPath != outputPath {
		logger.Info(fmt.Sprintf(adjustedOutputFormat, normalizedOutputPath))
	}

	if writeError := os.WriteFile(normalizedOutputPath, []byte(renderedOutput), defaultOutputFilePermBits); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, normalizedOutputPath, writeError)
	}

	for _, summaryLine := range strings.Split(output.FormatSummary(walkStatistics), "\n") {
		logger.Info(summaryLine)
	}
	logger.Info(fmt.Sprintf(generatedOutputFormat, normalizedOutputPath))

	// Recorded per-entry errors are partial success, not failure.
	return nil
}

// resolveConfiguration merges defaults, configuration files, and explicitly
// set flags into the walk configuration and the selected output format.
// Flags that were set on the command line win over configuration files.
func resolveConfiguration(command *cobra.Command, options generationOptions, applicationConfiguration config.ApplicationConfiguration) (config.TreeConfig, string, error) {
	outputFormat := types.FormatText
	if applicationConfiguration.Format != "" {
		outputFormat = strings.ToLower(applicationConfiguration.Format)
	}
	if command.Flags().Changed(formatFlagName) {
		outputFormat = strings.ToLower(options.outputFormat)
	}

	treeConfiguration := config.TreeConfig{}

	if applicationConfiguration.MaxDepth != nil {
		treeConfiguration.MaxDepth = applicationConfiguration.MaxDepth
	}
	if command.Flags().Changed(maxDepthFlagName) {
		if options.maxDepth < 0 {
			return config.TreeConfig{}, "", errors.New(errorNegativeDepthMessage)
		}
		maximumDepth := options.maxDepth
		treeConfiguration.MaxDepth = &maximumDepth
	}

	treeConfiguration.ShowHidden = resolveBooleanOption(command, showHiddenFlagName, options.showHidden, applicationConfiguration.ShowHidden)
	treeConfiguration.DirsOnly = resolveBooleanOption(command, dirsOnlyFlagName, options.dirsOnly, applicationConfiguration.DirsOnly)
	treeConfiguration.ShowSize = resolveBooleanOption(command, showSizeFlagName, options.showSize, applicationConfiguration.ShowSize)
	treeConfiguration.ShowPermissions = resolveBooleanOption(command, showPermissionsFlagName, options.showPermissions, applicationConfiguration.ShowPermissions)

	includeDefaultIgnores := true
	if applicationConfiguration.DefaultIgnores != nil {
		includeDefaultIgnores = *applicationConfiguration.DefaultIgnores
	}
	if command.Flags().Changed(noDefaultIgnoresFlagName) {
		includeDefaultIgnores = !options.noDefaultIgnores
	}
	treeConfiguration.IgnorePatterns = config.CombineIgnorePatterns(includeDefaultIgnores, applicationConfiguration.Ignore, options.ignorePatterns)

	return treeConfiguration, outputFormat, nil
}

// resolveBooleanOption applies the precedence flag > configuration file > default false.
func resolveBooleanOption(command *cobra.Command, flagName string, flagValue bool, configuredValue *bool) bool {
	if command.Flags().Changed(flagName) {
		return flagValue
	}
	if configuredValue != nil {
		return *configuredValue
	}
	return false
}

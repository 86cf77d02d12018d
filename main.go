package main

import (
	"fmt"

	"github.com/machino11/treegen/internal/cli"
	"github.com/machino11/treegen/internal/utils"
)

// main is the entry point for the treegen command.
func main() {
	loggerInstance, loggingLevel, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(loggerInstance, loggingLevel); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}

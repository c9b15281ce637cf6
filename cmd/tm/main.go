package main

import (
	"fmt"
	"os"

	"task-manager/internal/cli"
	"task-manager/internal/config"
	"task-manager/internal/workspace"
)

func main() {
	// Configuration is loaded by the root command once flags are parsed:
	// defaults, config file, environment variables, then flags
	root := cli.NewRootCommand(config.NewLoader(), workspace.OpenFromConfig)

	err := root.Execute()
	if cerr := root.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

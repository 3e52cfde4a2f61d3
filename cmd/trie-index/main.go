package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
	"go.uber.org/zap"
)

const version = "0.1.0"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ui := &cli.BasicUi{Writer: os.Stdout, ErrorWriter: os.Stderr}

	c := cli.NewCLI("trie-index", version)
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"generate": func() (cli.Command, error) {
			return &GenerateCommand{UI: ui}, nil
		},
		"load": func() (cli.Command, error) {
			return &LoadCommand{UI: ui}, nil
		},
		"search": func() (cli.Command, error) {
			return &SearchCommand{UI: ui}, nil
		},
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
	}
	os.Exit(exitCode)
}

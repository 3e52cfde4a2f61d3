package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/cli"

	trie "github.com/datnguyenzzz/nogodb/lib/go-trie-index"
)

var _ cli.Command = (*GenerateCommand)(nil)

// GenerateCommand produces a synthetic "word,value" data file that the load
// command can ingest.
type GenerateCommand struct {
	UI cli.Ui
}

func (c *GenerateCommand) Run(args []string) int {
	flags := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags.Usage = func() { c.UI.Output(c.Help()) }
	file := flags.String("file", "", "Path of the data file to generate")
	sizeGB := flags.Int64("size-gb", 10, "Amount of data to generate, in GB")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if *file == "" {
		c.UI.Error("-file is required")
		return 1
	}
	if *sizeGB <= 0 {
		c.UI.Error("-size-gb must be positive")
		return 1
	}

	out, err := os.Create(*file)
	if err != nil {
		c.UI.Error(fmt.Sprintf("failed to create %s: %v", *file, err))
		return 1
	}
	defer func() { _ = out.Close() }()

	target := *sizeGB * 1024 * 1024 * 1024
	c.UI.Output(fmt.Sprintf("Generating %s of test data in %s...",
		humanize.IBytes(uint64(target)), *file))

	stats, err := trie.GenerateTestData(context.Background(), out, target)
	if err != nil {
		c.UI.Error(fmt.Sprintf("generation failed: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Test data generation completed: %s lines, %s.",
		humanize.Comma(stats.Lines), humanize.IBytes(uint64(stats.Bytes))))
	return 0
}

func (c *GenerateCommand) Help() string {
	return strings.TrimSpace(`
Usage: trie-index generate -file=<path> [-size-gb=<n>]

  Generates a synthetic data file of "word,value" lines for bulk loading.

  -file     Path of the data file to write. Required.
  -size-gb  Amount of data to generate in GB. Defaults to 10.
`)
}

func (c *GenerateCommand) Synopsis() string {
	return "Generate a synthetic data file for bulk loading"
}

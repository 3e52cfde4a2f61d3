package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/cli"

	trie "github.com/datnguyenzzz/nogodb/lib/go-trie-index"
)

var _ cli.Command = (*LoadCommand)(nil)

// LoadCommand bulk-inserts a "word,value" data file into the index.
type LoadCommand struct {
	UI cli.Ui
}

func (c *LoadCommand) Run(args []string) int {
	flags := flag.NewFlagSet("load", flag.ContinueOnError)
	flags.Usage = func() { c.UI.Output(c.Help()) }
	file := flags.String("file", "", "Data file to load")
	index := flags.String("index", "trie.index", "Path of the index file")
	noSync := flags.Bool("no-sync", false, "Skip per-write fsync, sync once at the end")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if *file == "" {
		c.UI.Error("-file is required")
		return 1
	}

	in, err := os.Open(*file)
	if err != nil {
		c.UI.Error(fmt.Sprintf("failed to open %s: %v", *file, err))
		return 1
	}
	defer func() { _ = in.Close() }()

	ctx := context.Background()
	t := trie.New(
		trie.WithFilePath(*index),
		trie.WithSyncWrites(!*noSync),
	)
	if err := t.Open(ctx); err != nil {
		c.UI.Error(fmt.Sprintf("failed to open index %s: %v", *index, err))
		return 1
	}
	defer func() { _ = t.Close(ctx) }()

	c.UI.Output(fmt.Sprintf("Inserting data from %s into %s...", *file, *index))
	start := time.Now()
	stats, err := t.LoadCSV(ctx, in)
	if err != nil {
		c.UI.Error(fmt.Sprintf("load failed: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Data inserted in %.2f seconds: %s lines inserted, %s skipped.",
		time.Since(start).Seconds(),
		humanize.Comma(stats.Inserted), humanize.Comma(stats.Skipped)))
	return 0
}

func (c *LoadCommand) Help() string {
	return strings.TrimSpace(`
Usage: trie-index load -file=<path> [-index=<path>] [-no-sync]

  Bulk-inserts "word,value" lines from a data file into the index.
  Malformed lines are skipped and reported, not fatal.

  -file     Data file to load. Required.
  -index    Path of the index file. Defaults to "trie.index".
  -no-sync  Do not fsync every node write; sync once when the load ends.
`)
}

func (c *LoadCommand) Synopsis() string {
	return "Bulk-insert a data file into the index"
}

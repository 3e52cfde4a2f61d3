package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/cli"

	trie "github.com/datnguyenzzz/nogodb/lib/go-trie-index"
)

var _ cli.Command = (*SearchCommand)(nil)

// SearchCommand enumerates every indexed key under a prefix.
type SearchCommand struct {
	UI cli.Ui
}

func (c *SearchCommand) Run(args []string) int {
	flags := flag.NewFlagSet("search", flag.ContinueOnError)
	flags.Usage = func() { c.UI.Output(c.Help()) }
	prefix := flags.String("prefix", "", "Prefix to search for")
	index := flags.String("index", "trie.index", "Path of the index file")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if *prefix == "" {
		c.UI.Error("-prefix is required")
		return 1
	}

	ctx := context.Background()
	t := trie.New(trie.WithFilePath(*index))
	if err := t.Open(ctx); err != nil {
		c.UI.Error(fmt.Sprintf("failed to open index %s: %v", *index, err))
		return 1
	}
	defer func() { _ = t.Close(ctx) }()

	start := time.Now()
	results, err := t.PrefixSearch(ctx, trie.Key(*prefix))
	if err != nil {
		c.UI.Error(fmt.Sprintf("search failed: %v", err))
		return 1
	}
	c.UI.Output(fmt.Sprintf("Search completed in %.2f seconds.", time.Since(start).Seconds()))

	if len(results) == 0 {
		c.UI.Output("No results found.")
		return 0
	}
	for _, entry := range results {
		c.UI.Output(fmt.Sprintf("%s: %v", entry.Key, entry.Values))
	}
	return 0
}

func (c *SearchCommand) Help() string {
	return strings.TrimSpace(`
Usage: trie-index search -prefix=<prefix> [-index=<path>]

  Enumerates every indexed key starting with the given prefix, together
  with the values recorded under it.

  -prefix   Prefix to search for. Required.
  -index    Path of the index file. Defaults to "trie.index".
`)
}

func (c *SearchCommand) Synopsis() string {
	return "Enumerate indexed keys under a prefix"
}

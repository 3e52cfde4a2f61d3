package go_trie_index

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LoadStats summarises one bulk load.
type LoadStats struct {
	// Inserted is the number of lines recorded in the index.
	Inserted int64
	// Skipped is the number of lines dropped: malformed input or an insert
	// that hit a capacity cap.
	Skipped int64
}

type loadEntry struct {
	key   Key
	value uint32
}

// LoadCSV bulk-inserts "key,value" lines from r. Malformed lines and
// per-line capacity errors are logged and counted, not fatal; anything
// else aborts the load.
//
// Parsing and inserting run as a two-stage pipeline, but there is only ever
// one inserting goroutine: the store's single-writer contract holds.
func (t *Trie) LoadCSV(ctx context.Context, r io.Reader) (LoadStats, error) {
	var stats LoadStats
	var parseSkipped int64
	entries := make(chan loadEntry, 1024)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(entries)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			entry, ok := parseLine(line)
			if !ok {
				zap.L().Warn("Failed to parse line, skipping", zap.String("line", line))
				parseSkipped++
				continue
			}
			select {
			case entries <- entry:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return scanner.Err()
	})

	g.Go(func() error {
		for entry := range entries {
			if err := t.Insert(ctx, entry.key, entry.value); err != nil {
				if errors.Is(err, ErrCapacityExceeded) {
					zap.L().Warn("Failed to insert line, skipping",
						zap.ByteString("key", entry.key), zap.Error(err))
					stats.Skipped++
					continue
				}
				return err
			}
			stats.Inserted++
		}
		return nil
	})

	// Each counter is touched by exactly one goroutine; Wait is the
	// synchronisation barrier before they are combined.
	err := g.Wait()
	stats.Skipped += parseSkipped
	return stats, err
}

func parseLine(line string) (loadEntry, bool) {
	keyPart, valuePart, found := strings.Cut(line, ",")
	if !found || keyPart == "" {
		return loadEntry{}, false
	}
	value, err := strconv.ParseUint(strings.TrimSpace(valuePart), 10, 32)
	if err != nil {
		return loadEntry{}, false
	}
	return loadEntry{key: Key(keyPart), value: uint32(value)}, true
}

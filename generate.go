package go_trie_index

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/go-faker/faker/v4"
)

const (
	minWordLen = 3
	maxWordLen = 10
	maxValue   = 1 << 16
)

// GenStats summarises one test-data generation run.
type GenStats struct {
	Lines int64
	Bytes int64
}

// GenerateTestData writes "word,value" lines to w until at least
// targetBytes have been produced. Words are 3 to 10 lowercase letters,
// values fall in [1, 65536], matching what the bulk loader expects.
func GenerateTestData(ctx context.Context, w io.Writer, targetBytes int64) (GenStats, error) {
	var stats GenStats
	bw := bufio.NewWriter(w)

	for stats.Bytes < targetBytes {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		n, err := fmt.Fprintf(bw, "%s,%d\n", randomWord(), rand.Intn(maxValue)+1)
		if err != nil {
			return stats, err
		}
		stats.Bytes += int64(n)
		stats.Lines++
	}
	return stats, bw.Flush()
}

// randomWord prefers dictionary-ish faker words, clamped to the 3..10
// letter range; a random-letter word fills in when faker comes up short.
func randomWord() string {
	word := faker.Word()
	if len(word) > maxWordLen {
		word = word[:maxWordLen]
	}
	if len(word) >= minWordLen {
		return word
	}

	letters := make([]byte, minWordLen+rand.Intn(maxWordLen-minWordLen+1))
	for i := range letters {
		letters[i] = byte('a' + rand.Intn(26))
	}
	return string(letters)
}

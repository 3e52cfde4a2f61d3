package go_trie_index

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"
)

func BenchmarkInsert(b *testing.B) {
	ctx := context.Background()

	keyLens := []int{4, 8, 16, 32}
	for _, keyLen := range keyLens {
		b.Run(fmt.Sprintf("keyLen=%v", keyLen), func(b *testing.B) {
			tr := New(
				WithFilePath(filepath.Join(b.TempDir(), "trie.index")),
				WithSyncWrites(false),
			)
			_ = tr.Open(ctx)
			defer func() { _ = tr.Close(ctx) }()

			keys := make([]Key, 1024)
			for i := range keys {
				keys[i] = randomKey(keyLen)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = tr.Insert(ctx, keys[i%len(keys)], uint32(i))
			}
		})
	}
}

func BenchmarkLookup(b *testing.B) {
	ctx := context.Background()
	tr := New(
		WithFilePath(filepath.Join(b.TempDir(), "trie.index")),
		WithSyncWrites(false),
	)
	_ = tr.Open(ctx)
	defer func() { _ = tr.Close(ctx) }()

	keys := make([]Key, 1024)
	for i := range keys {
		keys[i] = randomKey(8)
		_ = tr.Insert(ctx, keys[i], uint32(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Lookup(ctx, keys[i%len(keys)])
	}
}

func randomKey(n int) Key {
	k := make(Key, n)
	for i := range k {
		k[i] = byte('a' + rand.Intn(26))
	}
	return k
}

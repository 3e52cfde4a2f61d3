package go_trie_index

import "context"

// Key is a raw byte string indexed by the trie, one byte per edge. The
// engine performs no text decoding: callers encode application-level keys
// into bytes before calling in, and enumerated keys come back as the exact
// bytes that were inserted.
type Key []byte

// Entry is one result of a prefix enumeration: a full key and the values
// recorded under it, in insertion order.
type Entry struct {
	Key    Key
	Values []uint32
}

type ITrie interface {
	// Open opens the backing index file, creating it and seeding the root
	// node if it does not exist yet.
	Open(ctx context.Context) error

	// Close flushes the index and releases the backing file. No further
	// calls are valid afterwards.
	Close(ctx context.Context) error

	// Sync forces buffered index writes down to stable storage.
	Sync(ctx context.Context) error

	// Insert records value under key, creating the node path as needed.
	// Inserting a value already present under key is a no-op.
	Insert(ctx context.Context, key Key, value uint32) error

	// Lookup returns the values recorded under exactly key, in insertion
	// order, or an empty result if key was never inserted.
	Lookup(ctx context.Context, key Key) ([]uint32, error)

	// PrefixSearch enumerates every inserted key that starts with prefix,
	// together with its values. Results follow child-table order, which is
	// the order the edges were first created.
	PrefixSearch(ctx context.Context, prefix Key) ([]Entry, error)
}

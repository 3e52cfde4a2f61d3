package go_trie_index

import (
	"errors"
	"sync"

	"github.com/datnguyenzzz/nogodb/lib/go-trie-index/internal"
)

// Trie is a persistent prefix tree backed by a single file of fixed-size
// node records. Keys are matched one raw byte per edge; each key carries a
// small ordered set of uint32 values.
//
// All operations, reads included, are serialized behind one mutex. The
// on-disk format has no transaction boundary spanning multiple node writes,
// so a single exclusive critical section is what keeps a traversal from
// observing a half-linked edge.
type Trie struct {
	opts  options
	mu    sync.Mutex
	store *internal.Store
}

// Errors \\

var (
	// ErrCorruptRecord reports a record that failed to decode: a truncated
	// read or an out-of-range count. It indicates on-disk corruption, not a
	// transient condition, and is never retried.
	ErrCorruptRecord = internal.ErrCorruptRecord

	// ErrCapacityExceeded reports an insert that hit a fixed cap of the
	// record format: a full value set or a full child table. The index
	// stays valid; the new entry was not recorded.
	ErrCapacityExceeded = errors.New("node capacity exceeded")

	// ErrNodeIDOverflow reports an insert that would need more node slots
	// than a child table entry can address. The affected insert fails; the
	// index stays traversable.
	ErrNodeIDOverflow = internal.ErrNodeIDOverflow

	// ErrClosed reports a call against a trie that is not open.
	ErrClosed = errors.New("trie index is not open")
)

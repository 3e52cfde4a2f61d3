package go_trie_index

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/datnguyenzzz/nogodb/lib/go-trie-index/internal"
)

// New init a new instance of the trie index with the given configuration,
// but WILL NOT open the backing file yet.
func New(opts ...OptionFn) *Trie {
	t := &Trie{
		opts: defaultOptions,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Core functions \\

func (t *Trie) Open(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.store != nil {
		return nil
	}
	store, err := internal.OpenStore(t.opts.filePath, t.opts.syncWrites)
	if err != nil {
		zap.L().Error("Failed to open trie index", zap.String("filePath", t.opts.filePath), zap.Error(err))
		return err
	}
	t.store = store
	return nil
}

func (t *Trie) Close(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.store == nil {
		return ErrClosed
	}
	err := multierr.Append(t.store.Sync(), t.store.Close())
	t.store = nil
	return err
}

func (t *Trie) Sync(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.store == nil {
		return ErrClosed
	}
	return t.store.Sync()
}

func (t *Trie) Insert(ctx context.Context, key Key, value uint32) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.store == nil {
		return ErrClosed
	}

	current := internal.RootID
	for _, b := range key {
		next, err := t.childOrCreate(current, b)
		if err != nil {
			return err
		}
		current = next
	}

	rec, err := t.store.ReadNode(current)
	if err != nil {
		return err
	}
	full := false
	if !containsValue(rec.Values, value) {
		if len(rec.Values) < internal.MaxValues {
			rec.Values = append(rec.Values, value)
		} else {
			full = true
		}
	}
	rec.Terminal = true
	if err := t.store.WriteNode(current, rec); err != nil {
		return err
	}
	if full {
		return fmt.Errorf("%w: value set of node %d is full", ErrCapacityExceeded, current)
	}
	return nil
}

func (t *Trie) Lookup(ctx context.Context, key Key) ([]uint32, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.store == nil {
		return nil, ErrClosed
	}

	_, rec, err := t.descend(key)
	if err != nil || rec == nil {
		return nil, err
	}
	if !rec.Terminal {
		return nil, nil
	}
	return rec.Values, nil
}

func (t *Trie) PrefixSearch(ctx context.Context, prefix Key) ([]Entry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.store == nil {
		return nil, ErrClosed
	}

	current, rec, err := t.descend(prefix)
	if err != nil || rec == nil {
		return nil, err
	}

	path := append(Key(nil), prefix...)
	var results []Entry
	if err := t.collect(current, rec, path, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Traversal \\

// descend walks from the root one key byte per edge. It returns a nil
// record, without error, as soon as a byte has no matching child edge.
func (t *Trie) descend(key Key) (internal.NodeID, *internal.Record, error) {
	current := internal.RootID
	rec, err := t.store.ReadNode(current)
	if err != nil {
		return 0, nil, err
	}
	for _, b := range key {
		next, ok := rec.Child(b)
		if !ok {
			return 0, nil, nil
		}
		current = next
		if rec, err = t.store.ReadNode(current); err != nil {
			return 0, nil, err
		}
	}
	return current, rec, nil
}

// childOrCreate returns the child of parent over the edge labeled b,
// allocating and linking a fresh empty node when the edge does not exist
// yet. The parent's child-table entry is persisted before the child record,
// so a re-traversal can always find what it just linked.
func (t *Trie) childOrCreate(parent internal.NodeID, b byte) (internal.NodeID, error) {
	rec, err := t.store.ReadNode(parent)
	if err != nil {
		return 0, err
	}
	if id, ok := rec.Child(b); ok {
		return id, nil
	}

	if len(rec.Children) >= internal.MaxChildren {
		return 0, fmt.Errorf("%w: child table of node %d is full", ErrCapacityExceeded, parent)
	}
	id, err := t.store.Allocate()
	if err != nil {
		return 0, err
	}
	rec.Children = append(rec.Children, internal.ChildRef{Char: b, Node: id})
	if err := t.store.WriteNode(parent, rec); err != nil {
		return 0, err
	}
	if err := t.store.WriteNode(id, &internal.Record{Char: b}); err != nil {
		return 0, err
	}
	return id, nil
}

// collect gathers every terminal node under id, depth first, in child-table
// order. Recursion depth equals the key length below the prefix, not the
// node count, so stack usage is bounded by the longest key in the subtree.
func (t *Trie) collect(id internal.NodeID, rec *internal.Record, path Key, results *[]Entry) error {
	if rec.Terminal {
		key := append(Key(nil), path...)
		values := append([]uint32(nil), rec.Values...)
		*results = append(*results, Entry{Key: key, Values: values})
	}
	for _, child := range rec.Children {
		childRec, err := t.store.ReadNode(child.Node)
		if err != nil {
			return err
		}
		if err := t.collect(child.Node, childRec, append(path, child.Char), results); err != nil {
			return err
		}
	}
	return nil
}

func containsValue(values []uint32, v uint32) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}

var _ ITrie = (*Trie)(nil)

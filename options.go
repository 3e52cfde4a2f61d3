package go_trie_index

type OptionFn func(*Trie)

type options struct {
	// filePath is the location of the backing index file. It is created on
	// Open if absent.
	filePath string

	// syncWrites is whether every node write is fsynced before the write
	// call returns. Disabling it makes bulk loads considerably faster, but
	// a machine crash can then lose recent writes; if just the process
	// crashes (machine does not), no writes are lost either way.
	syncWrites bool
}

var defaultOptions = options{
	filePath:   "trie.index",
	syncWrites: true,
}

func WithFilePath(path string) OptionFn {
	return func(t *Trie) {
		t.opts.filePath = path
	}
}

func WithSyncWrites(sync bool) OptionFn {
	return func(t *Trie) {
		t.opts.syncWrites = sync
	}
}

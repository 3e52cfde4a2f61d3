package internal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Store owns the backing file of one index. The file is a flat sequence of
// RecordSize slots with no header; slot 0 is always the root node. The store
// never frees or reuses a slot.
//
// The store performs no locking of its own. The single-writer contract is
// enforced by the owning engine.
type Store struct {
	f          *os.File
	path       string
	syncWrites bool
}

// OpenStore opens or creates the backing file at path. If the file is empty
// it is seeded with the root record before anything else can touch it, so a
// freshly created index is always traversable.
func OpenStore(path string, syncWrites bool) (*Store, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		zap.L().Error("Failed to open index file", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	s := &Store{f: f, path: path, syncWrites: syncWrites}
	if err := s.ensureInitialized(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureInitialized() error {
	st, err := s.f.Stat()
	if err != nil {
		return err
	}
	if st.Size() > 0 {
		return nil
	}
	return s.WriteNode(RootID, &Record{})
}

// ReadNode reads and decodes the record at id. A read that runs off the end
// of the file reports ErrCorruptRecord: an identifier inside the file always
// has a full slot behind it.
func (s *Store) ReadNode(id NodeID) (*Record, error) {
	buf := make([]byte, RecordSize)
	if _, err := s.f.ReadAt(buf, int64(id)*RecordSize); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: short read at node %d", ErrCorruptRecord, id)
		}
		zap.L().Error("Failed to read node record", zap.Uint32("node", uint32(id)), zap.Error(err))
		return nil, err
	}
	rec, err := DecodeRecord(buf)
	if err != nil {
		return nil, fmt.Errorf("node %d: %w", id, err)
	}
	return rec, nil
}

// WriteNode encodes rec into a zero-filled slot and writes it at id,
// overwriting whatever was there. With syncWrites set the write is fsynced
// before WriteNode returns.
func (s *Store) WriteNode(id NodeID, rec *Record) error {
	buf := make([]byte, RecordSize)
	if err := rec.Encode(buf); err != nil {
		return err
	}
	if _, err := s.f.WriteAt(buf, int64(id)*RecordSize); err != nil {
		zap.L().Error("Failed to write node record", zap.Uint32("node", uint32(id)), zap.Error(err))
		return err
	}
	if s.syncWrites {
		return s.f.Sync()
	}
	return nil
}

// Allocate returns the identifier of the next free slot at end-of-file. It
// writes nothing: the caller must immediately write an initial record there,
// otherwise the next Allocate hands out the same identifier again.
func (s *Store) Allocate() (NodeID, error) {
	end, err := s.f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	id := end / RecordSize
	if id > int64(MaxNodeID) {
		return 0, fmt.Errorf("%w: %d nodes already allocated", ErrNodeIDOverflow, id)
	}
	return NodeID(id), nil
}

// Sync forces any index writes still buffered by the OS onto stable storage.
func (s *Store) Sync() error {
	return s.f.Sync()
}

func (s *Store) Close() error {
	return s.f.Close()
}

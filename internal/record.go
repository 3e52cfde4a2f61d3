package internal

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// RecordSize is the fixed on-disk footprint of a single node. A node's
	// identifier is its byte offset in the backing file divided by RecordSize.
	RecordSize = 1024

	// MaxValues bounds the value set carried by a terminal node.
	MaxValues = 8

	// MaxChildren bounds the child table of a node.
	MaxChildren = 64

	// MaxNodeID is the highest identifier representable inside a child table
	// entry. The entry stores the identifier as an unsigned 16-bit integer,
	// so the node population of one index file can never exceed 65536.
	MaxNodeID NodeID = 1<<16 - 1

	valueCountOffset = 2
	valuesOffset     = 3
	childCountOffset = 35
	childrenOffset   = 36
	childEntrySize   = 3
)

// RootID is the identifier of the permanent root node.
const RootID NodeID = 0

var (
	ErrCorruptRecord  = errors.New("corrupt node record")
	ErrNodeIDOverflow = errors.New("node identifier space exhausted")
)

// NodeID locates a node record within the backing file. All edges of the
// trie are expressed as NodeID values; the store is the sole owner of the
// records they point at.
type NodeID uint32

// ChildRef is one edge of the trie: the single byte labeling the edge and
// the identifier of the node it leads to.
type ChildRef struct {
	Char byte
	Node NodeID
}

// Record is the decoded form of one node slot.
//
// Values is semantically a set, but order is preserved: it is read back in
// the order the values were first appended. Children holds at most one
// entry per distinct byte.
type Record struct {
	Char     byte
	Terminal bool
	Values   []uint32
	Children []ChildRef
}

// Child returns the identifier of the child reached over the edge labeled c.
func (r *Record) Child(c byte) (NodeID, bool) {
	for _, ref := range r.Children {
		if ref.Char == c {
			return ref.Node, true
		}
	}
	return 0, false
}

// Encode serialises the record into buf, which must be exactly RecordSize
// bytes. Bytes beyond the last child entry are zero-filled.
func (r *Record) Encode(buf []byte) error {
	if len(buf) != RecordSize {
		return fmt.Errorf("encode buffer must be %d bytes, got %d", RecordSize, len(buf))
	}
	if len(r.Values) > MaxValues {
		return fmt.Errorf("record holds %d values, the format allows %d", len(r.Values), MaxValues)
	}
	if len(r.Children) > MaxChildren {
		return fmt.Errorf("record holds %d children, the format allows %d", len(r.Children), MaxChildren)
	}

	clear(buf)
	buf[0] = r.Char
	if r.Terminal {
		buf[1] = 1
	}
	buf[valueCountOffset] = byte(len(r.Values))
	for i, v := range r.Values {
		binary.LittleEndian.PutUint32(buf[valuesOffset+4*i:], v)
	}
	buf[childCountOffset] = byte(len(r.Children))
	for i, c := range r.Children {
		off := childrenOffset + childEntrySize*i
		buf[off] = c.Char
		binary.LittleEndian.PutUint16(buf[off+1:], uint16(c.Node))
	}
	return nil
}

// DecodeRecord parses one RecordSize slot. The counts are range-checked
// before any field is trusted; padding past the last child entry is ignored.
func DecodeRecord(buf []byte) (*Record, error) {
	if len(buf) != RecordSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrCorruptRecord, len(buf), RecordSize)
	}

	valueCount := int(buf[valueCountOffset])
	if valueCount > MaxValues {
		return nil, fmt.Errorf("%w: value count %d exceeds %d", ErrCorruptRecord, valueCount, MaxValues)
	}
	childCount := int(buf[childCountOffset])
	if childCount > MaxChildren {
		return nil, fmt.Errorf("%w: child count %d exceeds %d", ErrCorruptRecord, childCount, MaxChildren)
	}

	rec := &Record{
		Char:     buf[0],
		Terminal: buf[1] != 0,
	}
	if valueCount > 0 {
		rec.Values = make([]uint32, valueCount)
		for i := range rec.Values {
			rec.Values[i] = binary.LittleEndian.Uint32(buf[valuesOffset+4*i:])
		}
	}
	if childCount > 0 {
		rec.Children = make([]ChildRef, childCount)
		for i := range rec.Children {
			off := childrenOffset + childEntrySize*i
			rec.Children[i] = ChildRef{
				Char: buf[off],
				Node: NodeID(binary.LittleEndian.Uint16(buf[off+1:])),
			}
		}
	}
	return rec, nil
}

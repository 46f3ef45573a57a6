package world

import (
	"io"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/isolang/coord"
)

// Snapshot is a serializable copy of a world.
type Snapshot struct {
	Head  coord.Coord    `yaml:"head"`
	Cells []SnapshotCell `yaml:"cells"`
}

// SnapshotCell is one stored cell of a Snapshot.
type SnapshotCell struct {
	At    coord.Coord `yaml:"at"`
	Value uint32      `yaml:"value"`
}

// Snapshot copies the head and the stored cells, in coordinate order.
func (w *World[C]) Snapshot() (snap Snapshot) {
	snap.Head = w.Head
	for at, value := range w.Cells() {
		snap.Cells = append(snap.Cells, SnapshotCell{At: at, Value: value.Uint32()})
	}

	return
}

// Restore replaces the head and the stored cells with those of a snapshot.
// Values are truncated to the cell width. Origin and ONE entries are
// skipped, since neither is ever stored.
func (w *World[C]) Restore(snap Snapshot) {
	clear(w.cells)
	w.Head = snap.Head

	var zero C
	for _, sc := range snap.Cells {
		if sc.At == coord.ZERO {
			continue
		}
		value := zero.FromUint32(sc.Value)
		if value == value.One() {
			continue
		}
		w.cells[sc.At] = value
	}
}

// Encode writes the snapshot as YAML.
func (snap Snapshot) Encode(out io.Writer) (err error) {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)

	err = enc.Encode(&snap)
	if err != nil {
		return
	}

	return enc.Close()
}

// EncodeZstd writes the snapshot as zstd compressed YAML.
func (snap Snapshot) EncodeZstd(out io.Writer) (err error) {
	zw, err := zstd.NewWriter(out)
	if err != nil {
		return
	}

	err = snap.Encode(zw)
	if err != nil {
		zw.Close()
		return
	}

	return zw.Close()
}

// DecodeSnapshot reads a snapshot written by Encode or EncodeZstd.
func DecodeSnapshot(in io.Reader, compressed bool) (snap Snapshot, err error) {
	if compressed {
		var zr *zstd.Decoder
		zr, err = zstd.NewReader(in)
		if err != nil {
			return
		}
		defer zr.Close()
		in = zr
	}

	err = yaml.NewDecoder(in).Decode(&snap)
	return
}

package fmindex

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/coregx/fmindex/fm"
)

// snapshotMagic tags persisted indexes; the trailing byte versions the
// layout.
const snapshotMagic = "FMI\x01"

// ErrBadSnapshot indicates that the data being loaded is not a persisted
// index in a format this version understands.
var ErrBadSnapshot = errors.New("fmindex: not a recognized index snapshot")

// snapshot is the on-disk form: the canonical sequence plus the parts of
// the FM-index that cannot be rebuilt in linear time. Rank and count
// tables are re-derived on load.
type snapshot struct {
	Seq   []byte
	Index fm.Snapshot
}

// Save writes a compact binary form of the index to w.
//
// The payload is a zstd-compressed gob snapshot behind a short magic
// header. Saving never mutates the index and is safe to run concurrently
// with queries.
func (ix *Index) Save(w io.Writer) error {
	if _, err := io.WriteString(w, snapshotMagic); err != nil {
		return fmt.Errorf("fmindex: writing snapshot header: %w", err)
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("fmindex: opening compressed stream: %w", err)
	}
	snap := snapshot{Seq: ix.seq, Index: ix.fm.Snapshot()}
	if err := gob.NewEncoder(zw).Encode(&snap); err != nil {
		zw.Close()
		return fmt.Errorf("fmindex: encoding snapshot: %w", err)
	}
	return zw.Close()
}

// Load reads an index previously written by Save.
//
// The restored index answers every query identically to the original. A
// stream that does not start with the snapshot header fails with
// ErrBadSnapshot; structural damage to the payload surfaces as
// fm.ErrCorruptIndex.
func Load(r io.Reader) (*Index, error) {
	header := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, ErrBadSnapshot
	}
	if string(header) != snapshotMagic {
		return nil, ErrBadSnapshot
	}
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("fmindex: opening compressed stream: %w", err)
	}
	defer zr.Close()

	var snap snapshot
	if err := gob.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, fmt.Errorf("fmindex: decoding snapshot: %w", err)
	}
	fmi, err := fm.Restore(snap.Index)
	if err != nil {
		return nil, err
	}
	if len(snap.Seq) != fmi.Len() {
		return nil, fmt.Errorf("%w: sequence length %d does not match %d rows",
			fm.ErrCorruptIndex, len(snap.Seq), fmi.Rows())
	}
	return &Index{fm: fmi, seq: snap.Seq}, nil
}

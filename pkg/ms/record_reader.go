package ms

import (
	"fmt"
	"io"
	"os"

	"github.com/openseries/metastock/pkg/codec"
)

// RecordReader provides sequential and positioned access to one
// [header][record]xN binary file. A reader owns a single stream and a
// mutable cursor, so one instance is not safe for concurrent use;
// independent readers over separate streams are.
type RecordReader struct {
	src    io.ReadSeeker
	closer io.Closer
	layout codec.FileLayout
	count  int
	cursor int
}

// NewRecordReader wraps an open stream. It reads the header
// immediately; the stream stays owned by the caller.
func NewRecordReader(src io.ReadSeeker, layout codec.FileLayout) (*RecordReader, error) {
	r := &RecordReader{src: src, layout: layout}
	if err := r.Rewind(); err != nil {
		return nil, err
	}
	return r, nil
}

// OpenRecordFile opens a file on disk and wraps it; Close releases the
// file handle.
func OpenRecordFile(path string, layout codec.FileLayout) (*RecordReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := NewRecordReader(f, layout)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// Rewind re-reads the header and resets the sequential cursor to the
// first record. Restart semantics are explicit: a finished reader
// yields the identical sequence again after Rewind.
func (r *RecordReader) Rewind() error {
	if _, err := r.src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	buf := make([]byte, r.layout.Header.Length)
	if _, err := io.ReadFull(r.src, buf); err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	hdr, err := r.layout.Header.Decode(buf)
	if err != nil {
		return fmt.Errorf("decode header: %w", err)
	}
	r.count = int(hdr[codec.RecordCount].Uint())
	r.cursor = 0
	return nil
}

// Count returns the number of records the header declares.
func (r *RecordReader) Count() int {
	return r.count
}

// Next decodes the record under the cursor and advances. It returns
// io.EOF once the declared record count is exhausted. The cursor moves
// only after a fully successful decode, so a failed read can be
// retried without skipping a record.
func (r *RecordReader) Next() (codec.Record, error) {
	if r.cursor >= r.count {
		return nil, io.EOF
	}
	rec, err := r.readAt(r.cursor)
	if err != nil {
		return nil, err
	}
	r.cursor++
	return rec, nil
}

// At decodes the record at index i without disturbing the sequential
// cursor. Negative indices count from the end; anything outside
// [-count, count) fails with ErrOutOfRange.
func (r *RecordReader) At(i int) (codec.Record, error) {
	i, err := clampIndex(i, r.count)
	if err != nil {
		return nil, err
	}
	return r.readAt(i)
}

func (r *RecordReader) readAt(i int) (codec.Record, error) {
	off := int64(r.layout.Header.Length) + int64(r.layout.Record.Length)*int64(i)
	if _, err := r.src.Seek(off, io.SeekStart); err != nil {
		return nil, err
	}
	buf := make([]byte, r.layout.Record.Length)
	if _, err := io.ReadFull(r.src, buf); err != nil {
		return nil, fmt.Errorf("read record %d: %w", i, err)
	}
	rec, err := r.layout.Record.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("record %d: %w", i, err)
	}
	return rec, nil
}

// Close releases the file handle when the reader opened it; a reader
// over a caller-owned stream closes nothing.
func (r *RecordReader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// clampIndex resolves negative-from-end indices and bounds-checks
// against size.
func clampIndex(i, size int) (int, error) {
	if i < 0 {
		i += size
	}
	if i < 0 || i >= size {
		return 0, fmt.Errorf("%w: index %d, count %d", ErrOutOfRange, i, size)
	}
	return i, nil
}

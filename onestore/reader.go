package onestore

import (
	"encoding/binary"
	"io"

	"github.com/google/uuid"
)

// Reader is a positioned byte source over the revision store file. All
// multi-byte integers are little-endian; all GUIDs are 16-byte
// little-endian in Windows wire format.
type Reader struct {
	r io.ReadSeeker
}

// NewReader wraps r for positioned reads.
func NewReader(r io.ReadSeeker) *Reader {
	return &Reader{r: r}
}

// Tell returns the current byte offset.
func (r *Reader) Tell() (int64, error) {
	return r.r.Seek(0, io.SeekCurrent)
}

// Seek moves the cursor to an absolute byte offset.
func (r *Reader) Seek(pos int64) error {
	_, err := r.r.Seek(pos, io.SeekStart)
	return err
}

// ReadExact reads exactly n bytes, returning a *ParseError wrapping
// ErrTruncated if fewer remain.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	off, _ := r.Tell()
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, parseErrorAt(off, ErrTruncated)
	}
	return buf, nil
}

// ReadUint8 reads one byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.ReadExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads a little-endian uint16.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.ReadExact(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads a little-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64 reads a little-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.ReadExact(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadGUID reads a 16-byte Windows wire-format GUID.
func (r *Reader) ReadGUID() (uuid.UUID, error) {
	b, err := r.ReadExact(16)
	if err != nil {
		return uuid.UUID{}, err
	}
	return guidFromWire(b)
}

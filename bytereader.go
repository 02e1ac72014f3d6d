package exifcore

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf16"
)

// RandomAccessReader is the narrow random-access contract the core
// consumes. It is modelled on rwcarlsen/goexif/tiff.ReadAtReader, widened
// to carry its own byte order and to support zero-copy derivations.
//
// Implementations are not required to be safe for concurrent use; a
// single walk owns one RandomAccessReader.
type RandomAccessReader interface {
	io.ReaderAt

	// ByteOrder returns the byte order currently in effect for multi-byte reads.
	ByteOrder() binary.ByteOrder

	// WithByteOrder returns a derived reader sharing the same underlying
	// bytes but with the given byte order. It does not mutate the receiver.
	WithByteOrder(order binary.ByteOrder) RandomAccessReader

	// WithBaseOffset returns a derived reader whose absolute offsets are
	// shifted by delta: ReadAt(p, off) on the derived reader reads at
	// off+delta on the underlying reader. It does not mutate the receiver.
	WithBaseOffset(delta int64) RandomAccessReader

	// BaseOffset returns the cumulative delta already applied by
	// WithBaseOffset, so callers can translate an offset local to this
	// reader back into one absolute over the original underlying bytes.
	BaseOffset() int64
}

// NewRandomAccessReader wraps r (typically *os.File or *bytes.Reader)
// with the given starting byte order.
func NewRandomAccessReader(r io.ReaderAt, order binary.ByteOrder) RandomAccessReader {
	return &randomAccessReader{r: r, order: order}
}

type randomAccessReader struct {
	r      io.ReaderAt
	order  binary.ByteOrder
	base   int64
}

func (r *randomAccessReader) ReadAt(p []byte, off int64) (int, error) {
	return r.r.ReadAt(p, off+r.base)
}

func (r *randomAccessReader) ByteOrder() binary.ByteOrder {
	return r.order
}

func (r *randomAccessReader) WithByteOrder(order binary.ByteOrder) RandomAccessReader {
	cp := *r
	cp.order = order
	return &cp
}

func (r *randomAccessReader) WithBaseOffset(delta int64) RandomAccessReader {
	cp := *r
	cp.base += delta
	return &cp
}

func (r *randomAccessReader) BaseOffset() int64 {
	return r.base
}

// readAt reads exactly n bytes at an absolute offset from any
// RandomAccessReader, translating a short read into a recorded I/O error.
func readAt(r RandomAccessReader, off int64, n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := r.ReadAt(buf, off)
	if got == n {
		return buf, nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return nil, newFormatError(ErrIOTruncated, err)
}

// ReadU8At reads an unsigned 8-bit integer at an absolute offset.
func ReadU8At(r RandomAccessReader, off int64) (uint8, error) {
	b, err := readAt(r, off, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadI8At reads a signed 8-bit integer at an absolute offset.
func ReadI8At(r RandomAccessReader, off int64) (int8, error) {
	v, err := ReadU8At(r, off)
	return int8(v), err
}

// ReadU16At reads an unsigned 16-bit integer at an absolute offset,
// honouring r's current byte order.
func ReadU16At(r RandomAccessReader, off int64) (uint16, error) {
	b, err := readAt(r, off, 2)
	if err != nil {
		return 0, err
	}
	return r.ByteOrder().Uint16(b), nil
}

// ReadI16At reads a signed 16-bit integer at an absolute offset.
func ReadI16At(r RandomAccessReader, off int64) (int16, error) {
	v, err := ReadU16At(r, off)
	return int16(v), err
}

// ReadU32At reads an unsigned 32-bit integer at an absolute offset.
func ReadU32At(r RandomAccessReader, off int64) (uint32, error) {
	b, err := readAt(r, off, 4)
	if err != nil {
		return 0, err
	}
	return r.ByteOrder().Uint32(b), nil
}

// ReadI32At reads a signed 32-bit integer at an absolute offset.
func ReadI32At(r RandomAccessReader, off int64) (int32, error) {
	v, err := ReadU32At(r, off)
	return int32(v), err
}

// ReadU64At reads an unsigned 64-bit integer at an absolute offset.
func ReadU64At(r RandomAccessReader, off int64) (uint64, error) {
	b, err := readAt(r, off, 8)
	if err != nil {
		return 0, err
	}
	return r.ByteOrder().Uint64(b), nil
}

// ReadI64At reads a signed 64-bit integer at an absolute offset.
func ReadI64At(r RandomAccessReader, off int64) (int64, error) {
	v, err := ReadU64At(r, off)
	return int64(v), err
}

// ReadF32At reads a 32-bit IEEE-754 float at an absolute offset.
func ReadF32At(r RandomAccessReader, off int64) (float32, error) {
	v, err := ReadU32At(r, off)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadF64At reads a 64-bit IEEE-754 float at an absolute offset.
func ReadF64At(r RandomAccessReader, off int64) (float64, error) {
	v, err := ReadU64At(r, off)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadBytesAt reads count raw bytes at an absolute offset.
func ReadBytesAt(r RandomAccessReader, off int64, count int) ([]byte, error) {
	return readAt(r, off, count)
}

// ReadStringAt reads a fixed-length string at an absolute offset. encoding
// is either "UTF-8" (the default, bytes passed through as-is) or "UTF-16",
// used by a handful of vendor string fields (e.g. Reconyx user labels).
func ReadStringAt(r RandomAccessReader, off int64, count int, enc StringEncoding) (string, error) {
	b, err := ReadBytesAt(r, off, count)
	if err != nil {
		return "", err
	}
	if enc == EncodingUTF16 {
		return decodeUTF16(b, r.ByteOrder()), nil
	}
	return string(b), nil
}

// ReadNullTerminatedBytesAt reads up to max bytes starting at off,
// stopping at (and excluding) a zero byte. It returns the bytes read
// before the terminator, or all max bytes if no terminator was found.
func ReadNullTerminatedBytesAt(r RandomAccessReader, off int64, max int) ([]byte, error) {
	buf := make([]byte, max)
	got, err := r.ReadAt(buf, off)
	for i, b := range buf[:got] {
		if b == 0 {
			return buf[:i], nil
		}
	}
	if got < max {
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return nil, newFormatError(ErrIOTruncated, err)
	}
	return buf, nil
}

// ReadFixed16_16At reads the S15.16 fixed-point representation at an
// absolute offset: the top 16 bits are the signed integer part, the
// bottom 16 bits are the fractional numerator over 65536.
func ReadFixed16_16At(r RandomAccessReader, off int64) (float64, error) {
	raw, err := ReadU32At(r, off)
	if err != nil {
		return 0, err
	}
	var hi int16
	var lo uint16
	if r.ByteOrder() == binary.BigEndian {
		hi = int16(raw >> 16)
		lo = uint16(raw)
	} else {
		hi = int16(raw & 0xFFFF)
		lo = uint16(raw >> 16)
	}
	return float64(hi) + float64(lo)/65536.0, nil
}

// StringEncoding names the two string encodings the core can decode.
type StringEncoding int

const (
	EncodingUTF8 StringEncoding = iota
	EncodingUTF16
)

func decodeUTF16(b []byte, order binary.ByteOrder) string {
	n := len(b) / 2
	runes := make([]uint16, 0, n)
	for i := 0; i < n; i++ {
		v := order.Uint16(b[i*2:])
		if v == 0 {
			break
		}
		runes = append(runes, v)
	}
	return string(utf16.Decode(runes))
}

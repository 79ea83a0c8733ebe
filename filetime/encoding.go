package filetime

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// Binary layout: FILETIME fields are stored as a little-endian 64-bit
// integer, the same order the structure has in memory on Windows. There is
// no big-endian variant in any format this library targets.

// Size is the encoded size of a FILETIME field in bytes.
const Size = 8

// FromBytes decodes an 8-byte little-endian FILETIME. Any other length
// fails with ErrLength before anything is decoded.
func FromBytes(b []byte) (FileTime, error) {
	if len(b) != Size {
		return FileTime{}, fmt.Errorf("decode filetime: got %d bytes: %w", len(b), ErrLength)
	}
	return FromInt64(int64(binary.LittleEndian.Uint64(b))), nil
}

// Bytes returns the 8-byte little-endian encoding. It is the exact inverse
// of FromBytes: decode-then-encode reproduces any 8-byte input bit for bit.
func (ft FileTime) Bytes() []byte {
	b := make([]byte, Size)
	binary.LittleEndian.PutUint64(b, uint64(ft.ticks))
	return b
}

// Read decodes the FILETIME field at the given offset within a larger
// structure. The caller guarantees b holds Size bytes at off.
func Read(b []byte, off int) FileTime {
	return FromInt64(int64(binary.LittleEndian.Uint64(b[off : off+Size])))
}

// Put writes the FILETIME field at the given offset within a larger
// structure. The caller guarantees b holds Size bytes at off.
func Put(b []byte, off int, ft FileTime) {
	binary.LittleEndian.PutUint64(b[off:off+Size], uint64(ft.ticks))
}

// MarshalBinary implements encoding.BinaryMarshaler using the on-disk
// little-endian layout.
func (ft FileTime) MarshalBinary() ([]byte, error) {
	return ft.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (ft *FileTime) UnmarshalBinary(b []byte) error {
	v, err := FromBytes(b)
	if err != nil {
		return err
	}
	*ft = v
	return nil
}

// MarshalText implements encoding.TextMarshaler as the decimal tick count,
// so a FileTime embeds in JSON and YAML without losing range or precision.
func (ft FileTime) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, ft.ticks, 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ft *FileTime) UnmarshalText(b []byte) error {
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("parse filetime %q: %w", b, err)
	}
	*ft = FromInt64(v)
	return nil
}

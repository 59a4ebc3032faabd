// Package endian provides the byte order engine used by TRM wire code.
//
// The TRM binary layout is little-endian in every multi-byte field, so all
// reads and writes must go through an explicit little-endian primitive;
// host-order casts would corrupt every field silently on a big-endian host.
// The engine combines ByteOrder and AppendByteOrder from encoding/binary
// into one interface so both indexed and append-style writes share it.
package endian

import "encoding/binary"

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary. It is satisfied by binary.LittleEndian and
// binary.BigEndian, and the returned instances are immutable and stateless,
// safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. This is the byte
// order of every TRM binary file.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

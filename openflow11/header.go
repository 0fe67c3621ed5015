// Package openflow11 implements the OpenFlow 1.1 ("v2") wire codec: the
// experimental-bit header, the fixed 88-byte match, v1.1 instructions, and
// every message body this version's wire protocol supports (spec.md
// §3, "v1.1 message-type closure").
package openflow11

import (
	"encoding/binary"
	"fmt"

	"github.com/flowbase/ofcodec/common"
)

// Version is the OpenFlow 1.1 wire version number, carried in the low 7
// bits of the header's first byte; the top bit is the experimental flag.
const Version uint8 = 2

// VersionBits masks off the experimental flag, returning the bare version
// number from a header's first byte.
func VersionBits(b byte) uint8 { return b &^ 0x80 }

// Header is the OpenFlow 1.1 message header: version and an experimental
// flag share one byte on the wire (spec.md §4.4 step 5), unlike v1.3
// where the whole byte is the version.
type Header struct {
	Experimental bool
	Type         uint8
	Length       uint16
	Xid          uint32
}

// NewHeader builds a v1.1 header for the given message type.
func NewHeader(msgType uint8) Header {
	return Header{Type: msgType}
}

func (h *Header) Len() uint16 { return common.HeaderLen }

func (h *Header) MarshalBinary() (data []byte, err error) {
	data = make([]byte, common.HeaderLen)
	versionByte := Version
	if h.Experimental {
		versionByte |= 0x80
	}
	data[0] = versionByte
	data[1] = h.Type
	binary.BigEndian.PutUint16(data[2:4], h.Length)
	binary.BigEndian.PutUint32(data[4:8], h.Xid)
	return data, nil
}

func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < common.HeaderLen {
		return fmt.Errorf("%w: openflow11 header", common.ErrShortInput)
	}
	h.Experimental = data[0]&0x80 != 0
	if VersionBits(data[0]) != Version {
		return fmt.Errorf("%w: expected version %d, got %d", common.ErrBadMessage, Version, VersionBits(data[0]))
	}
	h.Type = data[1]
	h.Length = binary.BigEndian.Uint16(data[2:4])
	h.Xid = binary.BigEndian.Uint32(data[4:8])
	if int(h.Length) > len(data) {
		return fmt.Errorf("%w: header declares length %d, have %d bytes", common.ErrLengthMismatch, h.Length, len(data))
	}
	return nil
}

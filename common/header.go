package common

import (
	"encoding/binary"
	"fmt"
)

// HeaderLen is the fixed size of the OpenFlow message header shared by
// every version: version, type, length, xid.
const HeaderLen = 8

// Header is the 8-byte frame header used by versions whose version byte
// carries no side information (OpenFlow 1.3 and later). Versions that pack
// extra bits into the version byte (OpenFlow 1.1's experimental flag)
// define their own header type and do not embed this one.
type Header struct {
	Version uint8
	Type    uint8
	Length  uint16
	Xid     uint32
}

// NewHeader builds a header for the given version/type pair. Length is
// filled in by the owning message's MarshalBinary once the body size is
// known.
func NewHeader(version, msgType uint8) Header {
	return Header{Version: version, Type: msgType}
}

func (h *Header) Len() uint16 {
	return HeaderLen
}

func (h *Header) MarshalBinary() (data []byte, err error) {
	data = make([]byte, HeaderLen)
	data[0] = h.Version
	data[1] = h.Type
	binary.BigEndian.PutUint16(data[2:4], h.Length)
	binary.BigEndian.PutUint32(data[4:8], h.Xid)
	return
}

func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderLen {
		return fmt.Errorf("%w: header needs %d bytes, got %d", ErrShortInput, HeaderLen, len(data))
	}
	h.Version = data[0]
	h.Type = data[1]
	h.Length = binary.BigEndian.Uint16(data[2:4])
	h.Xid = binary.BigEndian.Uint32(data[4:8])
	if int(h.Length) > len(data) {
		return fmt.Errorf("%w: header declares length %d, have %d bytes", ErrLengthMismatch, h.Length, len(data))
	}
	return nil
}

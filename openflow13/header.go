// Package openflow13 implements the OpenFlow 1.3 ("v4") wire codec: the
// 8-byte message header, the OXM TLV match representation, port/queue/
// meter-band structure codecs, and every message body named in spec.md.
package openflow13

import (
	"github.com/flowbase/ofcodec/common"
)

// Version is the OpenFlow 1.3 wire version byte.
const Version uint8 = 4

// Header is the OpenFlow 1.3 message header: a plain version byte, no
// side bits packed into it (unlike openflow11.Header).
type Header struct {
	common.Header
}

// NewHeader builds a v1.3 header for the given message type; Length is
// filled in by the owning message's MarshalBinary.
func NewHeader(msgType uint8) Header {
	return Header{common.NewHeader(Version, msgType)}
}

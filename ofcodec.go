// Package ofcodec is the version-dispatching entry point for the OpenFlow
// wire codec: it peeks the version byte of a message (and, for OpenFlow
// 1.1, the experimental bit folded into that byte) and hands decoding off
// to the matching version package.
package ofcodec

import (
	"fmt"

	"github.com/flowbase/ofcodec/common"
	"github.com/flowbase/ofcodec/openflow11"
	"github.com/flowbase/ofcodec/openflow13"
	"github.com/flowbase/ofcodec/util"
)

// Message is any decoded OpenFlow message, versioned or not.
type Message = util.Message

// Encode marshals m to its wire form. This is a thin pass-through: each
// version package already produces a fully-framed message.
func Encode(m Message) ([]byte, error) {
	return m.MarshalBinary()
}

// Decode parses a single OpenFlow message from b, dispatching on the
// version byte at offset 0. OpenFlow 1.1 packs an experimental-message
// flag into the top bit of that byte (openflow11.VersionBits), so the
// version is masked before comparison.
func Decode(b []byte) (Message, error) {
	if len(b) < common.HeaderLen {
		return nil, fmt.Errorf("%w: openflow header", common.ErrShortInput)
	}
	switch openflow11.VersionBits(b[0]) {
	case openflow11.Version:
		return openflow11.ParseMessage(b)
	}
	switch b[0] {
	case openflow13.Version:
		return openflow13.ParseMessage(b)
	}
	return nil, fmt.Errorf("%w: unsupported version byte 0x%02x", common.ErrBadMessage, b[0])
}

package openflow11

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderRoundTripPlain(t *testing.T) {
	h := NewHeader(messageType("hello"))
	h.Length = 8
	h.Xid = 123
	b, err := h.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, Version, b[0])

	got := new(Header)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, h, *got)
}

func TestHeaderExperimentalBitRoundTrips(t *testing.T) {
	h := NewHeader(messageType("experimenter"))
	h.Experimental = true
	h.Length = 8
	b, err := h.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, Version|0x80, b[0])
	assert.Equal(t, Version, VersionBits(b[0]))

	got := new(Header)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.True(t, got.Experimental)
}

func TestHeaderRejectsWrongVersion(t *testing.T) {
	b := []byte{4, 0, 0, 8, 0, 0, 0, 0}
	got := new(Header)
	assert.Error(t, got.UnmarshalBinary(b))
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeStringPadsAndTruncates(t *testing.T) {
	assert.Equal(t, []byte{'e', 't', 'h', '0', 0, 0}, EncodeString("eth0", 6))
	assert.Equal(t, []byte{'a', 'b', 'c'}, EncodeString("abcdef", 3))
}

func TestStripString(t *testing.T) {
	assert.Equal(t, "eth0", StripString([]byte{'e', 't', 'h', '0', 0, 0}))
	assert.Equal(t, "eth0", StripString([]byte{'e', 't', 'h', '0'}))
}

func TestPadding(t *testing.T) {
	assert.Equal(t, 0, Padding(8, 8))
	assert.Equal(t, 6, Padding(10, 8))
	assert.Equal(t, 7, Padding(1, 8))
}

func TestCutBits(t *testing.T) {
	// eth_type is 16 bits: no truncation needed.
	assert.Equal(t, []byte{0x08, 0x00}, CutBits([]byte{0x08, 0x00}, 16))

	// vlan_vid is 13 bits: top 3 bits of the first byte are masked off.
	assert.Equal(t, []byte{0x1F, 0xFF}, CutBits([]byte{0xFF, 0xFF}, 13))

	// ip_dscp is 6 bits, single byte.
	assert.Equal(t, []byte{0x3F}, CutBits([]byte{0xFF}, 6))
}

type fakeMessage struct{ b []byte }

func (f fakeMessage) Len() uint16                       { return uint16(len(f.b)) }
func (f fakeMessage) MarshalBinary() ([]byte, error)    { return f.b, nil }
func (f *fakeMessage) UnmarshalBinary(data []byte) error { f.b = data; return nil }

func TestEncodeList(t *testing.T) {
	xs := []Message{&fakeMessage{[]byte{1, 2}}, &fakeMessage{[]byte{3}}}
	out, err := EncodeList(xs)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, out)
}

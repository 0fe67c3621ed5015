package ofcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowbase/ofcodec/openflow11"
	"github.com/flowbase/ofcodec/openflow13"
)

func TestDecodeDispatchesV13(t *testing.T) {
	h := openflow13.NewHello()
	h.Header.Xid = 1
	b, err := Encode(h)
	assert.NoError(t, err)

	msg, err := Decode(b)
	assert.NoError(t, err)
	_, ok := msg.(*openflow13.Hello)
	assert.True(t, ok)
}

func TestDecodeDispatchesV11(t *testing.T) {
	h := openflow11.NewHello()
	h.Header.Xid = 2
	b, err := Encode(h)
	assert.NoError(t, err)

	msg, err := Decode(b)
	assert.NoError(t, err)
	_, ok := msg.(*openflow11.Hello)
	assert.True(t, ok)
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	_, err := Decode([]byte{9, 0, 0, 8, 0, 0, 0, 0})
	assert.Error(t, err)
}

func TestDecodeRejectsShortInput(t *testing.T) {
	_, err := Decode([]byte{4, 0})
	assert.Error(t, err)
}

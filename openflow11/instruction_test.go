package openflow11

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeInstructionsNoMeter(t *testing.T) {
	goto1 := &GotoTable{TableID: 2}
	write := &WriteActions{Actions: []byte{0, 0, 0, 4}}

	var data []byte
	for _, ins := range []Instruction{goto1, write} {
		b, err := ins.MarshalBinary()
		assert.NoError(t, err)
		data = append(data, b...)
	}

	decoded, err := DecodeInstructions(data)
	assert.NoError(t, err)
	assert.Len(t, decoded, 2)
	assert.Equal(t, "goto_table", decoded[0].instructionType())
	assert.Equal(t, "write_actions", decoded[1].instructionType())
}

func TestWriteMetadataRoundTrip(t *testing.T) {
	i := &WriteMetadata{Metadata: 1, MetadataMask: 2}
	b, err := i.MarshalBinary()
	assert.NoError(t, err)

	got := new(WriteMetadata)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, i, got)
}

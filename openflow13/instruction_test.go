package openflow13

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGotoTableRoundTrip(t *testing.T) {
	i := &GotoTable{TableID: 3}
	b, err := i.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, int(i.Len()), len(b))

	got := new(GotoTable)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, i, got)
}

func TestWriteMetadataRoundTrip(t *testing.T) {
	i := &WriteMetadata{Metadata: 0x1122334455667788, MetadataMask: 0xffffffffffffffff}
	b, err := i.MarshalBinary()
	assert.NoError(t, err)

	got := new(WriteMetadata)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, i, got)
}

func TestApplyActionsOpaquePayload(t *testing.T) {
	i := &ApplyActions{Actions: []byte{0, 0, 0, 28, 0, 0, 0, 8, 0, 0, 0, 0}}
	b, err := i.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, int(i.Len()), len(b))

	got := new(ApplyActions)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, i.Actions, got.Actions)
}

func TestDecodeInstructionsMixedSet(t *testing.T) {
	goto1 := &GotoTable{TableID: 1}
	clear := &ClearActions{}
	apply := &ApplyActions{Actions: []byte{1, 2, 3, 4}}

	var data []byte
	for _, ins := range []Instruction{goto1, clear, apply} {
		b, err := ins.MarshalBinary()
		assert.NoError(t, err)
		data = append(data, b...)
	}

	decoded, err := DecodeInstructions(data)
	assert.NoError(t, err)
	assert.Len(t, decoded, 3)
	assert.Equal(t, "goto_table", decoded[0].instructionType())
	assert.Equal(t, "clear_actions", decoded[1].instructionType())
	assert.Equal(t, "apply_actions", decoded[2].instructionType())
	assert.Equal(t, apply.Actions, decoded[2].(*ApplyActions).Actions)
}

func TestDecodeInstructionsRejectsShortInput(t *testing.T) {
	_, err := DecodeInstructions([]byte{0, 1})
	assert.Error(t, err)
}

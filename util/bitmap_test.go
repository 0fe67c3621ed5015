package util

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowbase/ofcodec/enum"
)

func testFamily() *enum.BitFamily {
	return enum.NewBitFamily("test", map[string]uint{
		"a": 0,
		"b": 1,
		"c": 7,
		"d": 8,
	})
}

func TestFlagsToBinary(t *testing.T) {
	f := testFamily()
	data, err := FlagsToBinary(f, []string{"a", "c"}, 2)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x81}, data)
}

func TestFlagsToBinaryUnknown(t *testing.T) {
	f := testFamily()
	_, err := FlagsToBinary(f, []string{"nope"}, 2)
	assert.Error(t, err)
}

func TestBinaryToFlags(t *testing.T) {
	f := testFamily()
	flags, err := BinaryToFlags(f, []byte{0x01, 0x81})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "c", "d"}, flags)
}

func TestBinaryToFlagsUnknownBit(t *testing.T) {
	f := testFamily()
	_, err := BinaryToFlags(f, []byte{0x04})
	assert.Error(t, err)
}

func TestFlagsRoundTrip(t *testing.T) {
	f := testFamily()
	want := []string{"a", "b", "d"}
	data, err := FlagsToBinary(f, want, 2)
	assert.NoError(t, err)
	got, err := BinaryToFlags(f, data)
	assert.NoError(t, err)

	sort.Strings(want)
	sort.Strings(got)
	assert.Equal(t, want, got)
}

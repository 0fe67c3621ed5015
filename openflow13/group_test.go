package openflow13

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupModRoundTripWithBuckets(t *testing.T) {
	g := NewGroupMod()
	g.Header.Xid = 11
	g.Command = GroupCommandAdd
	g.GroupType = "select"
	g.GroupID = 42
	g.Buckets = []*Bucket{
		{Weight: 50, WatchPort: mustPortNo("any"), WatchGroup: GroupAny, Actions: []byte{0, 0, 0, 8, 0, 0, 0, 0}},
		{Weight: 50, WatchPort: mustPortNo("any"), WatchGroup: GroupAny, Actions: nil},
	}

	b, err := g.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, int(g.Len()), len(b))

	got := NewGroupMod()
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, "select", got.GroupType)
	assert.Equal(t, uint32(42), got.GroupID)
	assert.Len(t, got.Buckets, 2)
	assert.Equal(t, uint16(50), got.Buckets[0].Weight)
	assert.Equal(t, g.Buckets[0].Actions, got.Buckets[0].Actions)
}

func TestBucketRejectsLengthMismatch(t *testing.T) {
	b := new(Bucket)
	data := make([]byte, bucketHeaderLen)
	data[1] = 200 // declares a length far beyond what's supplied
	assert.Error(t, b.UnmarshalBinary(data))
}

package openflow11

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupModRoundTrip(t *testing.T) {
	g := NewGroupMod()
	g.Header.Xid = 1
	g.Command = GroupCommandAdd
	g.GroupType = "all"
	g.GroupID = 7
	g.Buckets = []*Bucket{{Weight: 1, WatchPort: GroupAny, WatchGroup: GroupAny, Actions: []byte{0, 0, 0, 8}}}

	b, err := g.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, int(g.Len()), len(b))

	got := NewGroupMod()
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, "all", got.GroupType)
	assert.Equal(t, uint32(7), got.GroupID)
	assert.Len(t, got.Buckets, 1)
}

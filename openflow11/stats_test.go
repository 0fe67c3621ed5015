package openflow11

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// PortStatsRequest/PortStats keep a 16-bit port number in v1.1 and carry
// no duration trailer.
func TestPortStatsRoundTripNoDurationTrailer(t *testing.T) {
	req := &PortStatsRequest{PortNo: 3}
	b, err := req.MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, b, portStatsRequestLen)

	gotReq := new(PortStatsRequest)
	assert.NoError(t, gotReq.UnmarshalBinary(b))
	assert.Equal(t, req, gotReq)

	stats := &PortStats{PortNo: 3, RxPackets: 10, TxPackets: 5, Collisions: 1}
	sb, err := stats.MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, sb, portStatsLen)

	gotStats := new(PortStats)
	assert.NoError(t, gotStats.UnmarshalBinary(sb))
	assert.Equal(t, stats, gotStats)
}

func TestQueueStatsRoundTrip(t *testing.T) {
	req := &QueueStatsRequest{PortNo: 2, QueueID: 1}
	b, err := req.MarshalBinary()
	assert.NoError(t, err)

	gotReq := new(QueueStatsRequest)
	assert.NoError(t, gotReq.UnmarshalBinary(b))
	assert.Equal(t, req, gotReq)

	stats := &QueueStats{PortNo: 2, QueueID: 1, TxBytes: 1000, TxPackets: 20, TxErrors: 0}
	sb, err := stats.MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, sb, queueStatsLen)

	gotStats := new(QueueStats)
	assert.NoError(t, gotStats.UnmarshalBinary(sb))
	assert.Equal(t, stats, gotStats)
}

func TestMultipartRequestPortRoundTrip(t *testing.T) {
	req := NewMultipartRequest("port")
	req.Header.Xid = 1
	req.Body = &PortStatsRequest{PortNo: 9}

	b, err := req.MarshalBinary()
	assert.NoError(t, err)

	got := new(MultipartRequest)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, "port", got.Type)
	body, ok := got.Body.(*PortStatsRequest)
	assert.True(t, ok)
	assert.Equal(t, uint16(9), body.PortNo)
}

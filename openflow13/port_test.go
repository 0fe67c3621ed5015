package openflow13

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

// S4-equivalent for v1.3: a fully populated port struct round-trips
// through its fixed 64-byte layout.
func TestPortRoundTrip(t *testing.T) {
	p := NewPort(3)
	p.HWAddr = net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	p.Name = "eth3"
	p.Config = []string{"port_down"}
	p.State = []string{"live"}
	p.Curr = []string{"1gb_fd", "fiber"}
	p.CurrSpeed = 1000000
	p.MaxSpeed = 1000000

	b, err := p.MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, b, 64)

	got := new(Port)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, p.PortNo, got.PortNo)
	assert.Equal(t, p.HWAddr, got.HWAddr)
	assert.Equal(t, p.Name, got.Name)
	assert.ElementsMatch(t, p.Config, got.Config)
	assert.ElementsMatch(t, p.Curr, got.Curr)
	assert.Equal(t, p.CurrSpeed, got.CurrSpeed)
}

func TestPortRejectsShortInput(t *testing.T) {
	got := new(Port)
	assert.Error(t, got.UnmarshalBinary(make([]byte, 10)))
}

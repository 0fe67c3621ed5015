package openflow11

import (
	"encoding/binary"
	"fmt"

	"github.com/flowbase/ofcodec/common"
)

const experimenterFixedLen = 8

// Experimenter is OFPT_EXPERIMENTER: a 32-bit experimenter id and an
// opaque body whose framing is owned by that vendor, not this codec
// (spec.md §3, generalized from the vendor-header pattern).
type Experimenter struct {
	Header
	ExperimenterID uint32
	ExpType        uint32
	Data           []byte
}

func NewExperimenter(experimenterID, expType uint32) *Experimenter {
	e := new(Experimenter)
	e.Header = NewHeader(messageType("experimenter"))
	e.ExperimenterID = experimenterID
	e.ExpType = expType
	return e
}

func (e *Experimenter) Len() uint16 {
	return e.Header.Len() + experimenterFixedLen + uint16(len(e.Data))
}

func (e *Experimenter) MarshalBinary() (data []byte, err error) {
	e.Header.Length = e.Len()
	hdr, err := e.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	data = append(data, hdr...)

	body := make([]byte, experimenterFixedLen)
	binary.BigEndian.PutUint32(body[0:4], e.ExperimenterID)
	binary.BigEndian.PutUint32(body[4:8], e.ExpType)
	data = append(data, body...)
	return append(data, e.Data...), nil
}

func (e *Experimenter) UnmarshalBinary(data []byte) error {
	if err := e.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(e.Header.Len())
	if len(data) < n+experimenterFixedLen {
		return fmt.Errorf("%w: experimenter body", common.ErrShortInput)
	}
	e.ExperimenterID = binary.BigEndian.Uint32(data[n : n+4])
	e.ExpType = binary.BigEndian.Uint32(data[n+4 : n+8])
	n += experimenterFixedLen
	if int(e.Header.Length) < n {
		return fmt.Errorf("%w: experimenter declares %d, header-only is %d", common.ErrLengthMismatch, e.Header.Length, n)
	}
	e.Data = append([]byte(nil), data[n:e.Header.Length]...)
	return nil
}

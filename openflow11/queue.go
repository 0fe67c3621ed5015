package openflow11

import (
	"encoding/binary"
	"fmt"

	"github.com/flowbase/ofcodec/common"
	"github.com/flowbase/ofcodec/util"
)

const queueHeaderLen = 8
const queuePropHeaderLen = 8

// QueueProp is one property attached to a PacketQueue. v1.1 supports only
// MinRate and Experimenter (spec.md §3); max_rate is a v1.3 addition.
type QueueProp interface {
	util.Message
	propertyType() string
}

func marshalQueuePropHeader(propType string, bodyLen int) ([]byte, error) {
	data := make([]byte, queuePropHeaderLen)
	t, err := QueueProperty.Int(propType)
	if err != nil {
		return nil, err
	}
	binary.BigEndian.PutUint16(data[0:2], uint16(t))
	binary.BigEndian.PutUint16(data[2:4], uint16(queuePropHeaderLen+bodyLen))
	return data, nil
}

type MinRate struct{ Rate uint16 }

func (m *MinRate) propertyType() string { return "min_rate" }
func (m *MinRate) Len() uint16          { return queuePropHeaderLen + 8 }
func (m *MinRate) MarshalBinary() ([]byte, error) {
	hdr, err := marshalQueuePropHeader("min_rate", 8)
	if err != nil {
		return nil, err
	}
	body := make([]byte, 8)
	binary.BigEndian.PutUint16(body[0:2], m.Rate)
	return append(hdr, body...), nil
}
func (m *MinRate) UnmarshalBinary(data []byte) error {
	if len(data) < int(m.Len()) {
		return fmt.Errorf("%w: min_rate property", common.ErrShortInput)
	}
	m.Rate = binary.BigEndian.Uint16(data[8:10])
	return nil
}

// QueuePropExperimenter carries a 32-bit experimenter id and opaque data.
type QueuePropExperimenter struct {
	ExperimenterID uint32
	Data           []byte
}

func (e *QueuePropExperimenter) propertyType() string { return "experimenter" }
func (e *QueuePropExperimenter) Len() uint16 {
	return uint16(queuePropHeaderLen + 4 + len(e.Data))
}
func (e *QueuePropExperimenter) MarshalBinary() ([]byte, error) {
	hdr, err := marshalQueuePropHeader("experimenter", 4+len(e.Data))
	if err != nil {
		return nil, err
	}
	body := make([]byte, 4+len(e.Data))
	binary.BigEndian.PutUint32(body[0:4], e.ExperimenterID)
	copy(body[4:], e.Data)
	return append(hdr, body...), nil
}
func (e *QueuePropExperimenter) UnmarshalBinary(data []byte) error {
	if len(data) < queuePropHeaderLen+4 {
		return fmt.Errorf("%w: experimenter queue property", common.ErrShortInput)
	}
	length := binary.BigEndian.Uint16(data[2:4])
	e.ExperimenterID = binary.BigEndian.Uint32(data[8:12])
	e.Data = append([]byte(nil), data[12:length]...)
	return nil
}

func decodeQueueProperty(data []byte) (QueueProp, error) {
	if len(data) < queuePropHeaderLen {
		return nil, fmt.Errorf("%w: queue property header", common.ErrShortInput)
	}
	t := binary.BigEndian.Uint16(data[0:2])
	sym, err := QueueProperty.Symbol(uint32(t))
	if err != nil {
		return nil, err
	}
	var prop QueueProp
	switch sym {
	case "min_rate":
		prop = new(MinRate)
	case "experimenter":
		prop = new(QueuePropExperimenter)
	default:
		return nil, fmt.Errorf("%w: queue property %q", common.ErrUnknownTag, sym)
	}
	if err := prop.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return prop, nil
}

// PacketQueue is ofp_packet_queue. v1.1's header carries no port
// association, unlike v1.3's (spec.md §3, openflow13.PacketQueue).
type PacketQueue struct {
	QueueID    uint32
	Properties []QueueProp
}

func (q *PacketQueue) Len() uint16 {
	n := uint16(queueHeaderLen)
	for _, p := range q.Properties {
		n += p.Len()
	}
	return n
}

func (q *PacketQueue) MarshalBinary() (data []byte, err error) {
	data = make([]byte, queueHeaderLen)
	binary.BigEndian.PutUint32(data[0:4], q.QueueID)
	binary.BigEndian.PutUint16(data[4:6], q.Len())
	for _, p := range q.Properties {
		b, err := p.MarshalBinary()
		if err != nil {
			return nil, err
		}
		data = append(data, b...)
	}
	return data, nil
}

func (q *PacketQueue) UnmarshalBinary(data []byte) error {
	if len(data) < queueHeaderLen {
		return fmt.Errorf("%w: packet queue header", common.ErrShortInput)
	}
	q.QueueID = binary.BigEndian.Uint32(data[0:4])
	length := binary.BigEndian.Uint16(data[4:6])
	if int(length) > len(data) {
		return fmt.Errorf("%w: packet queue declares %d, have %d", common.ErrLengthMismatch, length, len(data))
	}
	n := queueHeaderLen
	for n < int(length) {
		prop, err := decodeQueueProperty(data[n:])
		if err != nil {
			return err
		}
		q.Properties = append(q.Properties, prop)
		n += int(prop.Len())
	}
	return nil
}

package openflow13

import (
	"encoding/binary"
	"fmt"

	"github.com/flowbase/ofcodec/common"
	"github.com/flowbase/ofcodec/util"
)

// OxmField is a single OXM TLV entry: class, field name, optional mask,
// and value (spec.md §3, "v1.3 OXM TLV list").
type OxmField struct {
	Class   string // e.g. "openflow_basic"
	Name    string // e.g. "eth_type"
	HasMask bool
	Value   []byte
	Mask    []byte
}

// Len reports the TLV's total encoded size: 4-byte TLV header plus value
// (and mask, if present).
func (f *OxmField) Len() uint16 {
	n := uint16(4 + len(f.bodyValue()))
	if f.HasMask {
		n += uint16(len(f.bodyValue()))
	}
	return n
}

// bodyValue is the value truncated to the field's canonical bit-length
// when the field belongs to the standard class (spec.md §4.3).
func (f *OxmField) bodyValue() []byte {
	if f.Class != "openflow_basic" {
		return f.Value
	}
	if bits, ok := TLVLength(f.Name); ok {
		return util.CutBits(f.Value, bits)
	}
	return f.Value
}

func (f *OxmField) bodyMask() []byte {
	if f.Class != "openflow_basic" {
		return f.Mask
	}
	if bits, ok := TLVLength(f.Name); ok {
		return util.CutBits(f.Mask, bits)
	}
	return f.Mask
}

func (f *OxmField) MarshalBinary() (data []byte, err error) {
	classVal, err := OxmClass.Int(f.Class)
	if err != nil {
		return nil, err
	}
	fieldVal, err := OxmFieldTable.Int(f.Name)
	if err != nil {
		return nil, err
	}

	value := f.bodyValue()
	bodyLen := len(value)
	if f.HasMask {
		bodyLen += len(value)
	}
	if bodyLen > 0xff {
		return nil, fmt.Errorf("%w: oxm field %q body %d bytes exceeds 255", common.ErrInvariantViolation, f.Name, bodyLen)
	}

	data = make([]byte, 4+bodyLen)
	binary.BigEndian.PutUint16(data[0:2], uint16(classVal))
	hasMaskBit := uint8(0)
	if f.HasMask {
		hasMaskBit = 1
	}
	data[2] = uint8(fieldVal)<<1 | hasMaskBit
	data[3] = uint8(bodyLen)
	copy(data[4:], value)
	if f.HasMask {
		copy(data[4+len(value):], f.bodyMask())
	}
	return data, nil
}

func (f *OxmField) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("%w: oxm tlv header", common.ErrShortInput)
	}
	classVal := binary.BigEndian.Uint16(data[0:2])
	class, err := OxmClass.Symbol(uint32(classVal))
	if err != nil {
		return err
	}
	fieldByte := data[2]
	hasMask := fieldByte&0x1 != 0
	fieldVal := fieldByte >> 1
	name, err := OxmFieldTable.Symbol(uint32(fieldVal))
	if err != nil {
		return err
	}
	bodyLen := int(data[3])
	if len(data) < 4+bodyLen {
		return fmt.Errorf("%w: oxm tlv body", common.ErrShortInput)
	}
	f.Class = class
	f.Name = name
	f.HasMask = hasMask
	if hasMask {
		if bodyLen%2 != 0 {
			return fmt.Errorf("%w: oxm tlv with mask has odd body length %d", common.ErrLengthMismatch, bodyLen)
		}
		half := bodyLen / 2
		f.Value = append([]byte(nil), data[4:4+half]...)
		f.Mask = append([]byte(nil), data[4+half:4+bodyLen]...)
	} else {
		f.Value = append([]byte(nil), data[4:4+bodyLen]...)
	}
	return nil
}

// Match is the OXM TLV match container: an ordered list of fields,
// wrapped in a type=1 header and padded to an 8-byte boundary
// (spec.md §3, §4.3).
type Match struct {
	Fields []*OxmField
}

func NewMatch() *Match { return &Match{} }

const matchHeaderLen = 4

func (m *Match) Len() uint16 {
	n := matchHeaderLen
	for _, f := range m.Fields {
		n += int(f.Len())
	}
	n += util.Padding(n, 8)
	return uint16(n)
}

func (m *Match) MarshalBinary() (data []byte, err error) {
	body := make([]byte, 0)
	for _, f := range m.Fields {
		b, err := f.MarshalBinary()
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	matchType, err := MatchType.Int("oxm")
	if err != nil {
		return nil, err
	}
	length := matchHeaderLen + len(body)
	data = make([]byte, matchHeaderLen)
	binary.BigEndian.PutUint16(data[0:2], uint16(matchType))
	binary.BigEndian.PutUint16(data[2:4], uint16(length))
	data = append(data, body...)
	data = append(data, make([]byte, util.Padding(length, 8))...)
	return data, nil
}

func (m *Match) UnmarshalBinary(data []byte) error {
	if len(data) < matchHeaderLen {
		return fmt.Errorf("%w: match header", common.ErrShortInput)
	}
	length := binary.BigEndian.Uint16(data[2:4])
	if int(length) > len(data) {
		return fmt.Errorf("%w: match declares %d, have %d", common.ErrLengthMismatch, length, len(data))
	}
	m.Fields = nil
	n := matchHeaderLen
	for n < int(length) {
		field := new(OxmField)
		if err := field.UnmarshalBinary(data[n:length]); err != nil {
			return err
		}
		m.Fields = append(m.Fields, field)
		n += int(field.Len())
	}
	return nil
}

// Field returns the first field named name, if present.
func (m *Match) Field(name string) (*OxmField, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// AddField appends a field in openflow_basic class with no mask.
func (m *Match) AddField(name string, value []byte) {
	m.Fields = append(m.Fields, &OxmField{Class: "openflow_basic", Name: name, Value: value})
}

// AddMaskedField appends a field in openflow_basic class with a mask.
func (m *Match) AddMaskedField(name string, value, mask []byte) {
	m.Fields = append(m.Fields, &OxmField{Class: "openflow_basic", Name: name, HasMask: true, Value: value, Mask: mask})
}

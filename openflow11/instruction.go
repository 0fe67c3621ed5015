package openflow11

import (
	"encoding/binary"
	"fmt"

	"github.com/flowbase/ofcodec/common"
	"github.com/flowbase/ofcodec/util"
)

// Instruction is one entry of a flow-mod's instruction set (spec.md §3).
// v1.1 has no meter instruction (added in 1.2/1.3). Action lists inside
// WriteActions/ApplyActions are carried as opaque bytes: the action codec
// is an external collaborator (spec.md §3, §9).
type Instruction interface {
	util.Message
	instructionType() string
}

const instructionHeaderLen = 4

func marshalInstructionHeader(typ string, length int) ([]byte, error) {
	t, err := InstructionType.Int(typ)
	if err != nil {
		return nil, err
	}
	data := make([]byte, instructionHeaderLen)
	binary.BigEndian.PutUint16(data[0:2], uint16(t))
	binary.BigEndian.PutUint16(data[2:4], uint16(length))
	return data, nil
}

// GotoTable is OFPIT_GOTO_TABLE.
type GotoTable struct {
	TableID uint8
}

func (i *GotoTable) instructionType() string { return "goto_table" }
func (i *GotoTable) Len() uint16             { return 8 }
func (i *GotoTable) MarshalBinary() ([]byte, error) {
	hdr, err := marshalInstructionHeader("goto_table", 8)
	if err != nil {
		return nil, err
	}
	data := append(hdr, make([]byte, 4)...)
	data[4] = i.TableID
	return data, nil
}
func (i *GotoTable) UnmarshalBinary(data []byte) error {
	if len(data) < 8 {
		return fmt.Errorf("%w: goto_table instruction", common.ErrShortInput)
	}
	i.TableID = data[4]
	return nil
}

// WriteMetadata is OFPIT_WRITE_METADATA.
type WriteMetadata struct {
	Metadata     uint64
	MetadataMask uint64
}

func (i *WriteMetadata) instructionType() string { return "write_metadata" }
func (i *WriteMetadata) Len() uint16             { return 24 }
func (i *WriteMetadata) MarshalBinary() ([]byte, error) {
	hdr, err := marshalInstructionHeader("write_metadata", 24)
	if err != nil {
		return nil, err
	}
	data := append(hdr, make([]byte, 20)...)
	binary.BigEndian.PutUint64(data[8:16], i.Metadata)
	binary.BigEndian.PutUint64(data[16:24], i.MetadataMask)
	return data, nil
}
func (i *WriteMetadata) UnmarshalBinary(data []byte) error {
	if len(data) < 24 {
		return fmt.Errorf("%w: write_metadata instruction", common.ErrShortInput)
	}
	i.Metadata = binary.BigEndian.Uint64(data[8:16])
	i.MetadataMask = binary.BigEndian.Uint64(data[16:24])
	return nil
}

// WriteActions is OFPIT_WRITE_ACTIONS. Actions is the opaque,
// already-encoded action list (see Instruction).
type WriteActions struct {
	Actions []byte
}

func (i *WriteActions) instructionType() string { return "write_actions" }
func (i *WriteActions) Len() uint16             { return uint16(8 + len(i.Actions)) }
func (i *WriteActions) MarshalBinary() ([]byte, error) {
	hdr, err := marshalInstructionHeader("write_actions", 8+len(i.Actions))
	if err != nil {
		return nil, err
	}
	data := append(hdr, make([]byte, 4)...)
	return append(data, i.Actions...), nil
}
func (i *WriteActions) UnmarshalBinary(data []byte) error {
	if len(data) < 8 {
		return fmt.Errorf("%w: write_actions instruction", common.ErrShortInput)
	}
	length := binary.BigEndian.Uint16(data[2:4])
	if int(length) > len(data) {
		return fmt.Errorf("%w: write_actions declares %d, have %d", common.ErrLengthMismatch, length, len(data))
	}
	i.Actions = append([]byte(nil), data[8:length]...)
	return nil
}

// ApplyActions is OFPIT_APPLY_ACTIONS.
type ApplyActions struct {
	Actions []byte
}

func (i *ApplyActions) instructionType() string { return "apply_actions" }
func (i *ApplyActions) Len() uint16             { return uint16(8 + len(i.Actions)) }
func (i *ApplyActions) MarshalBinary() ([]byte, error) {
	hdr, err := marshalInstructionHeader("apply_actions", 8+len(i.Actions))
	if err != nil {
		return nil, err
	}
	data := append(hdr, make([]byte, 4)...)
	return append(data, i.Actions...), nil
}
func (i *ApplyActions) UnmarshalBinary(data []byte) error {
	if len(data) < 8 {
		return fmt.Errorf("%w: apply_actions instruction", common.ErrShortInput)
	}
	length := binary.BigEndian.Uint16(data[2:4])
	if int(length) > len(data) {
		return fmt.Errorf("%w: apply_actions declares %d, have %d", common.ErrLengthMismatch, length, len(data))
	}
	i.Actions = append([]byte(nil), data[8:length]...)
	return nil
}

// ClearActions is OFPIT_CLEAR_ACTIONS: no body beyond the header pad.
type ClearActions struct{}

func (i *ClearActions) instructionType() string { return "clear_actions" }
func (i *ClearActions) Len() uint16             { return 8 }
func (i *ClearActions) MarshalBinary() ([]byte, error) {
	hdr, err := marshalInstructionHeader("clear_actions", 8)
	if err != nil {
		return nil, err
	}
	return append(hdr, make([]byte, 4)...), nil
}
func (i *ClearActions) UnmarshalBinary(data []byte) error {
	if len(data) < 8 {
		return fmt.Errorf("%w: clear_actions instruction", common.ErrShortInput)
	}
	return nil
}

// InstructionExperimenter is OFPIT_EXPERIMENTER.
type InstructionExperimenter struct {
	ExperimenterID uint32
	Data           []byte
}

func (i *InstructionExperimenter) instructionType() string { return "experimenter" }
func (i *InstructionExperimenter) Len() uint16 {
	return uint16(8 + len(i.Data))
}
func (i *InstructionExperimenter) MarshalBinary() ([]byte, error) {
	hdr, err := marshalInstructionHeader("experimenter", 8+len(i.Data))
	if err != nil {
		return nil, err
	}
	data := append(hdr, make([]byte, 4)...)
	binary.BigEndian.PutUint32(data[4:8], i.ExperimenterID)
	return append(data, i.Data...), nil
}
func (i *InstructionExperimenter) UnmarshalBinary(data []byte) error {
	if len(data) < 8 {
		return fmt.Errorf("%w: experimenter instruction", common.ErrShortInput)
	}
	length := binary.BigEndian.Uint16(data[2:4])
	if int(length) > len(data) {
		return fmt.Errorf("%w: experimenter instruction declares %d, have %d", common.ErrLengthMismatch, length, len(data))
	}
	i.ExperimenterID = binary.BigEndian.Uint32(data[4:8])
	i.Data = append([]byte(nil), data[8:length]...)
	return nil
}

func decodeInstruction(data []byte) (Instruction, error) {
	if len(data) < instructionHeaderLen {
		return nil, fmt.Errorf("%w: instruction header", common.ErrShortInput)
	}
	t := binary.BigEndian.Uint16(data[0:2])
	sym, err := InstructionType.Symbol(uint32(t))
	if err != nil {
		return nil, err
	}
	var ins Instruction
	switch sym {
	case "goto_table":
		ins = new(GotoTable)
	case "write_metadata":
		ins = new(WriteMetadata)
	case "write_actions":
		ins = new(WriteActions)
	case "apply_actions":
		ins = new(ApplyActions)
	case "clear_actions":
		ins = new(ClearActions)
	case "experimenter":
		ins = new(InstructionExperimenter)
	default:
		return nil, fmt.Errorf("%w: instruction type %q", common.ErrUnknownTag, sym)
	}
	if err := ins.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return ins, nil
}

// DecodeInstructions parses a concatenated instruction set (as carried in
// a flow-mod body) until all of data has been consumed.
func DecodeInstructions(data []byte) ([]Instruction, error) {
	var out []Instruction
	n := 0
	for n < len(data) {
		ins, err := decodeInstruction(data[n:])
		if err != nil {
			return nil, err
		}
		out = append(out, ins)
		n += int(ins.Len())
	}
	return out, nil
}

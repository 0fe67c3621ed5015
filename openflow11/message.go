package openflow11

import (
	"encoding/binary"
	"fmt"
	"net"

	log "github.com/sirupsen/logrus"

	"github.com/flowbase/ofcodec/common"
	"github.com/flowbase/ofcodec/util"
)

// Hello is OFPT_HELLO. Elements carries the raw, already-encoded hello
// element list; this codec treats it as opaque.
type Hello struct {
	Header
	Elements []byte
}

func NewHello() *Hello {
	return &Hello{Header: NewHeader(messageType("hello"))}
}

func (h *Hello) Len() uint16 { return h.Header.Len() + uint16(len(h.Elements)) }

func (h *Hello) MarshalBinary() (data []byte, err error) {
	h.Header.Length = h.Len()
	hdr, err := h.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(hdr, h.Elements...), nil
}

func (h *Hello) UnmarshalBinary(data []byte) error {
	if err := h.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(h.Header.Len())
	if int(h.Header.Length) < n {
		return fmt.Errorf("%w: hello declares %d, header alone is %d", common.ErrLengthMismatch, h.Header.Length, n)
	}
	h.Elements = append([]byte(nil), data[n:h.Header.Length]...)
	return nil
}

// EchoRequest and EchoReply are OFPT_ECHO_REQUEST/REPLY.
type EchoRequest struct {
	Header
	Data []byte
}

func NewEchoRequest() *EchoRequest {
	return &EchoRequest{Header: NewHeader(messageType("echo_request"))}
}

func (e *EchoRequest) Len() uint16 { return e.Header.Len() + uint16(len(e.Data)) }
func (e *EchoRequest) MarshalBinary() (data []byte, err error) {
	e.Header.Length = e.Len()
	hdr, err := e.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(hdr, e.Data...), nil
}
func (e *EchoRequest) UnmarshalBinary(data []byte) error {
	if err := e.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(e.Header.Len())
	e.Data = append([]byte(nil), data[n:e.Header.Length]...)
	return nil
}

type EchoReply struct {
	Header
	Data []byte
}

func NewEchoReply() *EchoReply {
	return &EchoReply{Header: NewHeader(messageType("echo_reply"))}
}

func (e *EchoReply) Len() uint16 { return e.Header.Len() + uint16(len(e.Data)) }
func (e *EchoReply) MarshalBinary() (data []byte, err error) {
	e.Header.Length = e.Len()
	hdr, err := e.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(hdr, e.Data...), nil
}
func (e *EchoReply) UnmarshalBinary(data []byte) error {
	if err := e.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(e.Header.Len())
	e.Data = append([]byte(nil), data[n:e.Header.Length]...)
	return nil
}

// ErrorMsg is OFPT_ERROR.
type ErrorMsg struct {
	Header
	Type string
	Code string
	Data []byte
}

func NewErrorMsg(typ, code string) *ErrorMsg {
	return &ErrorMsg{Header: NewHeader(messageType("error")), Type: typ, Code: code}
}

func (e *ErrorMsg) Len() uint16 { return e.Header.Len() + 4 + uint16(len(e.Data)) }

func (e *ErrorMsg) MarshalBinary() (data []byte, err error) {
	typeVal, err := ErrorType.Int(e.Type)
	if err != nil {
		return nil, err
	}
	codeTable, ok := ErrorCode[e.Type]
	var codeVal uint32
	if ok {
		if codeVal, err = codeTable.Int(e.Code); err != nil {
			return nil, err
		}
	}

	e.Header.Length = e.Len()
	hdr, err := e.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	fixed := make([]byte, 4)
	binary.BigEndian.PutUint16(fixed[0:2], uint16(typeVal))
	binary.BigEndian.PutUint16(fixed[2:4], uint16(codeVal))
	data = append(hdr, fixed...)
	return append(data, e.Data...), nil
}

func (e *ErrorMsg) UnmarshalBinary(data []byte) error {
	if err := e.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(e.Header.Len())
	if len(data) < n+4 {
		return fmt.Errorf("%w: error message body", common.ErrShortInput)
	}
	typeVal := binary.BigEndian.Uint16(data[n : n+2])
	codeVal := binary.BigEndian.Uint16(data[n+2 : n+4])
	typeName, err := ErrorType.Symbol(uint32(typeVal))
	if err != nil {
		return err
	}
	e.Type = typeName
	if codeTable, ok := ErrorCode[typeName]; ok {
		codeName, err := codeTable.Symbol(uint32(codeVal))
		if err != nil {
			return err
		}
		e.Code = codeName
	}
	n += 4
	e.Data = append([]byte(nil), data[n:e.Header.Length]...)
	return nil
}

// FeaturesRequest is OFPT_FEATURES_REQUEST: empty body.
type FeaturesRequest struct {
	Header
}

func NewFeaturesRequest() *FeaturesRequest {
	return &FeaturesRequest{NewHeader(messageType("features_request"))}
}
func (f *FeaturesRequest) Len() uint16 { return f.Header.Len() }
func (f *FeaturesRequest) MarshalBinary() ([]byte, error) {
	f.Header.Length = f.Len()
	return f.Header.MarshalBinary()
}
func (f *FeaturesRequest) UnmarshalBinary(data []byte) error {
	return f.Header.UnmarshalBinary(data)
}

const switchFeaturesFixedLen = 24

// SwitchFeatures is OFPT_FEATURES_REPLY. v1.1 has no auxiliary connection
// id (that's a v1.3 addition); the trailing 4 bytes are reserved.
type SwitchFeatures struct {
	Header
	DatapathID   net.HardwareAddr
	Buffers      uint32
	NumTables    uint8
	Capabilities []string
}

func NewFeaturesReply() *SwitchFeatures {
	return &SwitchFeatures{Header: NewHeader(messageType("features_reply")), DatapathID: make(net.HardwareAddr, 8)}
}

func (f *SwitchFeatures) Len() uint16 { return f.Header.Len() + switchFeaturesFixedLen }

func (f *SwitchFeatures) MarshalBinary() (data []byte, err error) {
	capBits, err := util.FlagsToUint(Capabilities, f.Capabilities)
	if err != nil {
		return nil, err
	}

	f.Header.Length = f.Len()
	hdr, err := f.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	body := make([]byte, switchFeaturesFixedLen)
	copy(body[0:8], f.DatapathID)
	binary.BigEndian.PutUint32(body[8:12], f.Buffers)
	body[12] = f.NumTables
	binary.BigEndian.PutUint32(body[16:20], uint32(capBits))
	return append(hdr, body...), nil
}

func (f *SwitchFeatures) UnmarshalBinary(data []byte) error {
	if err := f.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(f.Header.Len())
	if len(data) < n+switchFeaturesFixedLen {
		return fmt.Errorf("%w: features_reply body", common.ErrShortInput)
	}
	f.DatapathID = append(net.HardwareAddr(nil), data[n:n+8]...)
	f.Buffers = binary.BigEndian.Uint32(data[n+8 : n+12])
	f.NumTables = data[n+12]
	capBits := binary.BigEndian.Uint32(data[n+16 : n+20])
	caps, err := util.UintToFlags(Capabilities, uint64(capBits))
	if err != nil {
		return err
	}
	f.Capabilities = caps
	return nil
}

// GetConfigRequest is OFPT_GET_CONFIG_REQUEST: empty body.
type GetConfigRequest struct {
	Header
}

func NewGetConfigRequest() *GetConfigRequest {
	return &GetConfigRequest{NewHeader(messageType("get_config_request"))}
}
func (g *GetConfigRequest) Len() uint16 { return g.Header.Len() }
func (g *GetConfigRequest) MarshalBinary() ([]byte, error) {
	g.Header.Length = g.Len()
	return g.Header.MarshalBinary()
}
func (g *GetConfigRequest) UnmarshalBinary(data []byte) error { return g.Header.UnmarshalBinary(data) }

const switchConfigFixedLen = 4

// SwitchConfig carries both OFPT_GET_CONFIG_REPLY and OFPT_SET_CONFIG
// bodies, which share a layout.
type SwitchConfig struct {
	Header
	Flags       []string // ofp_config_flags
	MissSendLen uint16
}

func NewGetConfigReply() *SwitchConfig {
	return &SwitchConfig{Header: NewHeader(messageType("get_config_reply"))}
}
func NewSetConfig() *SwitchConfig {
	return &SwitchConfig{Header: NewHeader(messageType("set_config"))}
}

func (c *SwitchConfig) Len() uint16 { return c.Header.Len() + switchConfigFixedLen }

func (c *SwitchConfig) MarshalBinary() (data []byte, err error) {
	flagBits, err := util.FlagsToUint(ConfigFlags, c.Flags)
	if err != nil {
		return nil, err
	}
	c.Header.Length = c.Len()
	hdr, err := c.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	body := make([]byte, switchConfigFixedLen)
	binary.BigEndian.PutUint16(body[0:2], uint16(flagBits))
	binary.BigEndian.PutUint16(body[2:4], c.MissSendLen)
	return append(hdr, body...), nil
}

func (c *SwitchConfig) UnmarshalBinary(data []byte) error {
	if err := c.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(c.Header.Len())
	if len(data) < n+switchConfigFixedLen {
		return fmt.Errorf("%w: switch_config body", common.ErrShortInput)
	}
	flagBits := binary.BigEndian.Uint16(data[n : n+2])
	flags, err := util.UintToFlags(ConfigFlags, uint64(flagBits))
	if err != nil {
		return err
	}
	c.Flags = flags
	c.MissSendLen = binary.BigEndian.Uint16(data[n+2 : n+4])
	return nil
}

const packetInFixedLen = 8

// PacketIn is OFPT_PACKET_IN. v1.1 has no cookie field (added in 1.2) and
// carries the ingress port inside Match rather than as a fixed field.
type PacketIn struct {
	Header
	BufferID uint32
	TotalLen uint16
	Reason   string
	TableID  uint8
	Match    Match
	Data     []byte
}

func NewPacketIn() *PacketIn {
	return &PacketIn{Header: NewHeader(messageType("packet_in")), BufferID: 0xffffffff}
}

func (p *PacketIn) Len() uint16 {
	return p.Header.Len() + packetInFixedLen + p.Match.Len() + 2 + uint16(len(p.Data))
}

func (p *PacketIn) MarshalBinary() (data []byte, err error) {
	reasonVal, err := PacketInReason.Int(p.Reason)
	if err != nil {
		return nil, err
	}
	p.Header.Length = p.Len()
	hdr, err := p.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	fixed := make([]byte, packetInFixedLen)
	binary.BigEndian.PutUint32(fixed[0:4], p.BufferID)
	binary.BigEndian.PutUint16(fixed[4:6], p.TotalLen)
	fixed[6] = uint8(reasonVal)
	fixed[7] = p.TableID
	data = append(hdr, fixed...)

	m, err := p.Match.MarshalBinary()
	if err != nil {
		return nil, err
	}
	data = append(data, m...)
	data = append(data, make([]byte, 2)...) // pad
	log.Debugf("packet_in(%d): %v", len(data), data)
	return append(data, p.Data...), nil
}

func (p *PacketIn) UnmarshalBinary(data []byte) error {
	if err := p.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(p.Header.Len())
	if len(data) < n+packetInFixedLen {
		return fmt.Errorf("%w: packet_in body", common.ErrShortInput)
	}
	p.BufferID = binary.BigEndian.Uint32(data[n : n+4])
	p.TotalLen = binary.BigEndian.Uint16(data[n+4 : n+6])
	reasonName, err := PacketInReason.Symbol(uint32(data[n+6]))
	if err != nil {
		return err
	}
	p.Reason = reasonName
	p.TableID = data[n+7]
	n += packetInFixedLen

	if err := p.Match.UnmarshalBinary(data[n:p.Header.Length]); err != nil {
		return err
	}
	n += int(p.Match.Len())
	n += 2 // pad
	if n > int(p.Header.Length) {
		return fmt.Errorf("%w: packet_in match overruns header length", common.ErrLengthMismatch)
	}
	p.Data = append([]byte(nil), data[n:p.Header.Length]...)
	return nil
}

const flowRemovedFixedLen = 40

// FlowRemoved is OFPT_FLOW_REMOVED. v1.1 has no table_id or hard_timeout
// field (both added in 1.2); the slots they'd occupy are padding.
type FlowRemoved struct {
	Header
	Cookie       uint64
	Priority     uint16
	Reason       string
	DurationSec  uint32
	DurationNSec uint32
	IdleTimeout  uint16
	PacketCount  uint64
	ByteCount    uint64
	Match        Match
}

func NewFlowRemoved() *FlowRemoved {
	return &FlowRemoved{Header: NewHeader(messageType("flow_removed"))}
}

func (f *FlowRemoved) Len() uint16 { return f.Header.Len() + flowRemovedFixedLen + f.Match.Len() }

func (f *FlowRemoved) MarshalBinary() (data []byte, err error) {
	reasonVal, err := FlowRemovedReason.Int(f.Reason)
	if err != nil {
		return nil, err
	}
	f.Header.Length = f.Len()
	hdr, err := f.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	fixed := make([]byte, flowRemovedFixedLen)
	binary.BigEndian.PutUint64(fixed[0:8], f.Cookie)
	binary.BigEndian.PutUint16(fixed[8:10], f.Priority)
	fixed[10] = uint8(reasonVal)
	// fixed[11] is pad
	binary.BigEndian.PutUint32(fixed[12:16], f.DurationSec)
	binary.BigEndian.PutUint32(fixed[16:20], f.DurationNSec)
	binary.BigEndian.PutUint16(fixed[20:22], f.IdleTimeout)
	// fixed[22:24] is pad
	binary.BigEndian.PutUint64(fixed[24:32], f.PacketCount)
	binary.BigEndian.PutUint64(fixed[32:40], f.ByteCount)
	data = append(hdr, fixed...)

	m, err := f.Match.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(data, m...), nil
}

func (f *FlowRemoved) UnmarshalBinary(data []byte) error {
	if err := f.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(f.Header.Len())
	if len(data) < n+flowRemovedFixedLen {
		return fmt.Errorf("%w: flow_removed body", common.ErrShortInput)
	}
	f.Cookie = binary.BigEndian.Uint64(data[n : n+8])
	f.Priority = binary.BigEndian.Uint16(data[n+8 : n+10])
	reasonName, err := FlowRemovedReason.Symbol(uint32(data[n+10]))
	if err != nil {
		return err
	}
	f.Reason = reasonName
	f.DurationSec = binary.BigEndian.Uint32(data[n+12 : n+16])
	f.DurationNSec = binary.BigEndian.Uint32(data[n+16 : n+20])
	f.IdleTimeout = binary.BigEndian.Uint16(data[n+20 : n+22])
	f.PacketCount = binary.BigEndian.Uint64(data[n+24 : n+32])
	f.ByteCount = binary.BigEndian.Uint64(data[n+32 : n+40])
	n += flowRemovedFixedLen
	return f.Match.UnmarshalBinary(data[n:f.Header.Length])
}

const portStatusFixedLen = 8

// PortStatus is OFPT_PORT_STATUS.
type PortStatus struct {
	Header
	Reason string
	Port   Port
}

func NewPortStatus() *PortStatus {
	return &PortStatus{Header: NewHeader(messageType("port_status"))}
}

func (p *PortStatus) Len() uint16 { return p.Header.Len() + portStatusFixedLen + p.Port.Len() }

func (p *PortStatus) MarshalBinary() (data []byte, err error) {
	reasonVal, err := PortReason.Int(p.Reason)
	if err != nil {
		return nil, err
	}
	p.Header.Length = p.Len()
	hdr, err := p.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	fixed := make([]byte, portStatusFixedLen)
	fixed[0] = uint8(reasonVal)
	data = append(hdr, fixed...)
	port, err := p.Port.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(data, port...), nil
}

func (p *PortStatus) UnmarshalBinary(data []byte) error {
	if err := p.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(p.Header.Len())
	if len(data) < n+portStatusFixedLen {
		return fmt.Errorf("%w: port_status body", common.ErrShortInput)
	}
	reasonName, err := PortReason.Symbol(uint32(data[n]))
	if err != nil {
		return err
	}
	p.Reason = reasonName
	n += portStatusFixedLen
	return p.Port.UnmarshalBinary(data[n:])
}

const packetOutFixedLen = 8

// PacketOut is OFPT_PACKET_OUT. Actions carries an opaque, already-encoded
// action list.
type PacketOut struct {
	Header
	BufferID uint32
	InPort   uint32
	Actions  []byte
	Data     []byte
}

func NewPacketOut() *PacketOut {
	return &PacketOut{Header: NewHeader(messageType("packet_out")), BufferID: 0xffffffff, InPort: mustPortNo("controller")}
}

func (p *PacketOut) Len() uint16 {
	return p.Header.Len() + packetOutFixedLen + 8 + uint16(len(p.Actions)) + uint16(len(p.Data))
}

func (p *PacketOut) MarshalBinary() (data []byte, err error) {
	p.Header.Length = p.Len()
	hdr, err := p.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	fixed := make([]byte, packetOutFixedLen)
	binary.BigEndian.PutUint32(fixed[0:4], p.BufferID)
	binary.BigEndian.PutUint32(fixed[4:8], p.InPort)
	data = append(hdr, fixed...)
	actionsLen := make([]byte, 2)
	binary.BigEndian.PutUint16(actionsLen, uint16(len(p.Actions)))
	data = append(data, actionsLen...)
	data = append(data, make([]byte, 6)...) // pad
	data = append(data, p.Actions...)
	return append(data, p.Data...), nil
}

func (p *PacketOut) UnmarshalBinary(data []byte) error {
	if err := p.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(p.Header.Len())
	if len(data) < n+packetOutFixedLen+8 {
		return fmt.Errorf("%w: packet_out body", common.ErrShortInput)
	}
	p.BufferID = binary.BigEndian.Uint32(data[n : n+4])
	p.InPort = binary.BigEndian.Uint32(data[n+4 : n+8])
	actionsLen := int(binary.BigEndian.Uint16(data[n+8 : n+10]))
	n += packetOutFixedLen + 8
	if n+actionsLen > int(p.Header.Length) {
		return fmt.Errorf("%w: packet_out actions_len overruns body", common.ErrLengthMismatch)
	}
	p.Actions = append([]byte(nil), data[n:n+actionsLen]...)
	n += actionsLen
	p.Data = append([]byte(nil), data[n:p.Header.Length]...)
	return nil
}

const flowModFixedLen = 40

// FlowMod is OFPT_FLOW_MOD: same fixed layout as v1.3.
type FlowMod struct {
	Header
	Cookie       uint64
	CookieMask   uint64
	TableID      uint8
	Command      uint8 // ofp_flow_mod_command
	IdleTimeout  uint16
	HardTimeout  uint16
	Priority     uint16
	BufferID     uint32
	OutPort      uint32
	OutGroup     uint32
	Flags        uint16
	Match        Match
	Instructions []Instruction
}

// ofp_flow_mod_command.
const (
	FlowModAdd          uint8 = 0
	FlowModModify       uint8 = 1
	FlowModModifyStrict uint8 = 2
	FlowModDelete       uint8 = 3
	FlowModDeleteStrict uint8 = 4
)

func NewFlowMod() *FlowMod {
	return &FlowMod{
		Header:   NewHeader(messageType("flow_mod")),
		Priority: 0x8000,
		BufferID: 0xffffffff,
		OutPort:  mustPortNo("any"),
		OutGroup: GroupAny,
	}
}

func (f *FlowMod) AddInstruction(i Instruction) { f.Instructions = append(f.Instructions, i) }

func (f *FlowMod) Len() uint16 {
	n := f.Header.Len() + flowModFixedLen + f.Match.Len()
	if f.Command == FlowModDelete || f.Command == FlowModDeleteStrict {
		return n
	}
	for _, i := range f.Instructions {
		n += i.Len()
	}
	return n
}

func (f *FlowMod) MarshalBinary() (data []byte, err error) {
	f.Header.Length = f.Len()
	hdr, err := f.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	fixed := make([]byte, flowModFixedLen)
	binary.BigEndian.PutUint64(fixed[0:8], f.Cookie)
	binary.BigEndian.PutUint64(fixed[8:16], f.CookieMask)
	fixed[16] = f.TableID
	fixed[17] = f.Command
	binary.BigEndian.PutUint16(fixed[18:20], f.IdleTimeout)
	binary.BigEndian.PutUint16(fixed[20:22], f.HardTimeout)
	binary.BigEndian.PutUint16(fixed[22:24], f.Priority)
	binary.BigEndian.PutUint32(fixed[24:28], f.BufferID)
	binary.BigEndian.PutUint32(fixed[28:32], f.OutPort)
	binary.BigEndian.PutUint32(fixed[32:36], f.OutGroup)
	binary.BigEndian.PutUint16(fixed[36:38], f.Flags)
	data = append(hdr, fixed...)

	m, err := f.Match.MarshalBinary()
	if err != nil {
		return nil, err
	}
	data = append(data, m...)

	if f.Command == FlowModDelete || f.Command == FlowModDeleteStrict {
		return data, nil
	}
	for _, i := range f.Instructions {
		b, err := i.MarshalBinary()
		if err != nil {
			return nil, err
		}
		data = append(data, b...)
		log.Debugf("flow_mod instruction: %v", b)
	}
	log.Debugf("flow_mod(%d): %v", len(data), data)
	return data, nil
}

func (f *FlowMod) UnmarshalBinary(data []byte) error {
	if err := f.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(f.Header.Len())
	if len(data) < n+flowModFixedLen {
		return fmt.Errorf("%w: flow_mod body", common.ErrShortInput)
	}
	f.Cookie = binary.BigEndian.Uint64(data[n : n+8])
	f.CookieMask = binary.BigEndian.Uint64(data[n+8 : n+16])
	f.TableID = data[n+16]
	f.Command = data[n+17]
	f.IdleTimeout = binary.BigEndian.Uint16(data[n+18 : n+20])
	f.HardTimeout = binary.BigEndian.Uint16(data[n+20 : n+22])
	f.Priority = binary.BigEndian.Uint16(data[n+22 : n+24])
	f.BufferID = binary.BigEndian.Uint32(data[n+24 : n+28])
	f.OutPort = binary.BigEndian.Uint32(data[n+28 : n+32])
	f.OutGroup = binary.BigEndian.Uint32(data[n+32 : n+36])
	f.Flags = binary.BigEndian.Uint16(data[n+36 : n+38])
	n += flowModFixedLen

	if err := f.Match.UnmarshalBinary(data[n:f.Header.Length]); err != nil {
		return err
	}
	n += int(f.Match.Len())

	f.Instructions = nil
	for n < int(f.Header.Length) {
		ins, err := decodeInstruction(data[n:f.Header.Length])
		if err != nil {
			return err
		}
		f.Instructions = append(f.Instructions, ins)
		n += int(ins.Len())
	}
	return nil
}

const portModFixedLen = 32

// PortMod is OFPT_PORT_MOD.
type PortMod struct {
	Header
	PortNo    uint32
	HWAddr    net.HardwareAddr
	Config    []string
	Mask      []string
	Advertise []string
}

func NewPortMod(portNo uint32) *PortMod {
	return &PortMod{Header: NewHeader(messageType("port_mod")), PortNo: portNo, HWAddr: make(net.HardwareAddr, ETH_ALEN)}
}

func (p *PortMod) Len() uint16 { return p.Header.Len() + portModFixedLen }

func (p *PortMod) MarshalBinary() (data []byte, err error) {
	config, err := util.FlagsToBinary(PortConfig, p.Config, 4)
	if err != nil {
		return nil, err
	}
	mask, err := util.FlagsToBinary(PortConfig, p.Mask, 4)
	if err != nil {
		return nil, err
	}
	advertise, err := util.FlagsToBinary(PortFeature, p.Advertise, 4)
	if err != nil {
		return nil, err
	}

	p.Header.Length = p.Len()
	hdr, err := p.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	body := make([]byte, portModFixedLen)
	binary.BigEndian.PutUint32(body[0:4], p.PortNo)
	copy(body[8:14], p.HWAddr)
	copy(body[16:20], config)
	copy(body[20:24], mask)
	copy(body[24:28], advertise)
	return append(hdr, body...), nil
}

func (p *PortMod) UnmarshalBinary(data []byte) error {
	if err := p.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(p.Header.Len())
	if len(data) < n+portModFixedLen {
		return fmt.Errorf("%w: port_mod body", common.ErrShortInput)
	}
	p.PortNo = binary.BigEndian.Uint32(data[n : n+4])
	p.HWAddr = append(net.HardwareAddr(nil), data[n+8:n+14]...)

	var err error
	if p.Config, err = util.BinaryToFlags(PortConfig, data[n+16:n+20]); err != nil {
		return err
	}
	if p.Mask, err = util.BinaryToFlags(PortConfig, data[n+20:n+24]); err != nil {
		return err
	}
	if p.Advertise, err = util.BinaryToFlags(PortFeature, data[n+24:n+28]); err != nil {
		return err
	}
	return nil
}

const tableModFixedLen = 8

// TableMod is OFPT_TABLE_MOD.
type TableMod struct {
	Header
	TableID uint8
	Config  uint32
}

func NewTableMod() *TableMod {
	return &TableMod{Header: NewHeader(messageType("table_mod"))}
}

func (t *TableMod) Len() uint16 { return t.Header.Len() + tableModFixedLen }

func (t *TableMod) MarshalBinary() (data []byte, err error) {
	t.Header.Length = t.Len()
	hdr, err := t.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	body := make([]byte, tableModFixedLen)
	body[0] = t.TableID
	binary.BigEndian.PutUint32(body[4:8], t.Config)
	return append(hdr, body...), nil
}

func (t *TableMod) UnmarshalBinary(data []byte) error {
	if err := t.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(t.Header.Len())
	if len(data) < n+tableModFixedLen {
		return fmt.Errorf("%w: table_mod body", common.ErrShortInput)
	}
	t.TableID = data[n]
	t.Config = binary.BigEndian.Uint32(data[n+4 : n+8])
	return nil
}

// BarrierRequest and BarrierReply are OFPT_BARRIER_REQUEST/REPLY: empty
// bodies used purely for their Xid.
type BarrierRequest struct {
	Header
}

func NewBarrierRequest() *BarrierRequest {
	return &BarrierRequest{NewHeader(messageType("barrier_request"))}
}
func (b *BarrierRequest) Len() uint16 { return b.Header.Len() }
func (b *BarrierRequest) MarshalBinary() ([]byte, error) {
	b.Header.Length = b.Len()
	return b.Header.MarshalBinary()
}
func (b *BarrierRequest) UnmarshalBinary(data []byte) error { return b.Header.UnmarshalBinary(data) }

type BarrierReply struct {
	Header
}

func NewBarrierReply() *BarrierReply {
	return &BarrierReply{NewHeader(messageType("barrier_reply"))}
}
func (b *BarrierReply) Len() uint16 { return b.Header.Len() }
func (b *BarrierReply) MarshalBinary() ([]byte, error) {
	b.Header.Length = b.Len()
	return b.Header.MarshalBinary()
}
func (b *BarrierReply) UnmarshalBinary(data []byte) error { return b.Header.UnmarshalBinary(data) }

const queueGetConfigRequestFixedLen = 8

// QueueGetConfigRequest is OFPT_QUEUE_GET_CONFIG_REQUEST.
type QueueGetConfigRequest struct {
	Header
	Port uint32
}

func NewQueueGetConfigRequest(port uint32) *QueueGetConfigRequest {
	return &QueueGetConfigRequest{Header: NewHeader(messageType("queue_get_config_request")), Port: port}
}

func (q *QueueGetConfigRequest) Len() uint16 { return q.Header.Len() + queueGetConfigRequestFixedLen }

func (q *QueueGetConfigRequest) MarshalBinary() (data []byte, err error) {
	q.Header.Length = q.Len()
	hdr, err := q.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	body := make([]byte, queueGetConfigRequestFixedLen)
	binary.BigEndian.PutUint32(body[0:4], q.Port)
	return append(hdr, body...), nil
}

func (q *QueueGetConfigRequest) UnmarshalBinary(data []byte) error {
	if err := q.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(q.Header.Len())
	if len(data) < n+queueGetConfigRequestFixedLen {
		return fmt.Errorf("%w: queue_get_config_request body", common.ErrShortInput)
	}
	q.Port = binary.BigEndian.Uint32(data[n : n+4])
	return nil
}

const queueGetConfigReplyFixedLen = 8

// QueueGetConfigReply is OFPT_QUEUE_GET_CONFIG_REPLY.
type QueueGetConfigReply struct {
	Header
	Port   uint32
	Queues []*PacketQueue
}

func NewQueueGetConfigReply(port uint32) *QueueGetConfigReply {
	return &QueueGetConfigReply{Header: NewHeader(messageType("queue_get_config_reply")), Port: port}
}

func (q *QueueGetConfigReply) Len() uint16 {
	n := q.Header.Len() + queueGetConfigReplyFixedLen
	for _, queue := range q.Queues {
		n += queue.Len()
	}
	return n
}

func (q *QueueGetConfigReply) MarshalBinary() (data []byte, err error) {
	q.Header.Length = q.Len()
	hdr, err := q.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	fixed := make([]byte, queueGetConfigReplyFixedLen)
	binary.BigEndian.PutUint32(fixed[0:4], q.Port)
	data = append(hdr, fixed...)
	for _, queue := range q.Queues {
		b, err := queue.MarshalBinary()
		if err != nil {
			return nil, err
		}
		data = append(data, b...)
	}
	return data, nil
}

func (q *QueueGetConfigReply) UnmarshalBinary(data []byte) error {
	if err := q.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(q.Header.Len())
	if len(data) < n+queueGetConfigReplyFixedLen {
		return fmt.Errorf("%w: queue_get_config_reply body", common.ErrShortInput)
	}
	q.Port = binary.BigEndian.Uint32(data[n : n+4])
	n += queueGetConfigReplyFixedLen

	q.Queues = nil
	for n < int(q.Header.Length) {
		pq := new(PacketQueue)
		if err := pq.UnmarshalBinary(data[n:q.Header.Length]); err != nil {
			return err
		}
		q.Queues = append(q.Queues, pq)
		n += int(pq.Len())
	}
	return nil
}

package openflow11

import (
	"encoding/binary"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/flowbase/ofcodec/common"
	"github.com/flowbase/ofcodec/enum"
	"github.com/flowbase/ofcodec/util"
)

// ofp_stats_type. v1.1 predates the "multipart" renaming (1.3), but the
// wire message types stay "stats_request"/"stats_reply".
var StatsType = enum.NewTable("stats-type", map[string]uint32{
	"desc":         0,
	"flow":         1,
	"aggregate":    2,
	"table":        3,
	"port":         4,
	"queue":        5,
	"experimenter": 0xffff,
})

// StatsBody is one shape a MultipartRequest/MultipartReply body can take.
type StatsBody interface {
	util.Message
}

const descStrLen = 256
const serialNumLen = 32

// DescStats is OFPST_DESC: the reply body for a switch description
// request, five fixed-width NUL-padded strings.
type DescStats struct {
	MfrDesc   string
	HWDesc    string
	SWDesc    string
	SerialNum string
	DPDesc    string
}

func (s *DescStats) Len() uint16 { return uint16(descStrLen*4 + serialNumLen) }

func (s *DescStats) MarshalBinary() (data []byte, err error) {
	data = make([]byte, s.Len())
	copy(data[0:256], util.EncodeString(s.MfrDesc, descStrLen))
	copy(data[256:512], util.EncodeString(s.HWDesc, descStrLen))
	copy(data[512:768], util.EncodeString(s.SWDesc, descStrLen))
	copy(data[768:800], util.EncodeString(s.SerialNum, serialNumLen))
	copy(data[800:1056], util.EncodeString(s.DPDesc, descStrLen))
	return data, nil
}

func (s *DescStats) UnmarshalBinary(data []byte) error {
	if len(data) < int(s.Len()) {
		return fmt.Errorf("%w: desc_stats", common.ErrShortInput)
	}
	s.MfrDesc = util.StripString(data[0:256])
	s.HWDesc = util.StripString(data[256:512])
	s.SWDesc = util.StripString(data[512:768])
	s.SerialNum = util.StripString(data[768:800])
	s.DPDesc = util.StripString(data[800:1056])
	return nil
}

const flowStatsRequestLen = 32

// FlowStatsRequest is OFPST_FLOW's request body.
type FlowStatsRequest struct {
	TableID    uint8
	OutPort    uint32
	OutGroup   uint32
	Cookie     uint64
	CookieMask uint64
	Match      Match
}

func NewFlowStatsRequest() *FlowStatsRequest {
	return &FlowStatsRequest{OutPort: mustPortNo("any"), OutGroup: GroupAny}
}

func (s *FlowStatsRequest) Len() uint16 { return flowStatsRequestLen + s.Match.Len() }

func (s *FlowStatsRequest) MarshalBinary() (data []byte, err error) {
	data = make([]byte, flowStatsRequestLen)
	data[0] = s.TableID
	binary.BigEndian.PutUint32(data[4:8], s.OutPort)
	binary.BigEndian.PutUint32(data[8:12], s.OutGroup)
	binary.BigEndian.PutUint64(data[16:24], s.Cookie)
	binary.BigEndian.PutUint64(data[24:32], s.CookieMask)
	m, err := s.Match.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(data, m...), nil
}

func (s *FlowStatsRequest) UnmarshalBinary(data []byte) error {
	if len(data) < flowStatsRequestLen {
		return fmt.Errorf("%w: flow_stats_request", common.ErrShortInput)
	}
	s.TableID = data[0]
	s.OutPort = binary.BigEndian.Uint32(data[4:8])
	s.OutGroup = binary.BigEndian.Uint32(data[8:12])
	s.Cookie = binary.BigEndian.Uint64(data[16:24])
	s.CookieMask = binary.BigEndian.Uint64(data[24:32])
	return s.Match.UnmarshalBinary(data[flowStatsRequestLen:])
}

const flowStatsFixedLen = 48

// FlowStats is OFPST_FLOW's reply body: one entry per matching flow
// entry. Same layout as openflow13.FlowStats except that there is no
// Flags field: bytes 18:24 of the fixed part are padding.
type FlowStats struct {
	TableID      uint8
	DurationSec  uint32
	DurationNSec uint32
	Priority     uint16
	IdleTimeout  uint16
	HardTimeout  uint16
	Cookie       uint64
	PacketCount  uint64
	ByteCount    uint64
	Match        Match
	Instructions []Instruction
}

func (s *FlowStats) Len() uint16 {
	n := uint16(flowStatsFixedLen) + s.Match.Len()
	for _, i := range s.Instructions {
		n += i.Len()
	}
	return n
}

func (s *FlowStats) MarshalBinary() (data []byte, err error) {
	body := make([]byte, flowStatsFixedLen)
	binary.BigEndian.PutUint16(body[0:2], s.Len())
	body[2] = s.TableID
	binary.BigEndian.PutUint32(body[4:8], s.DurationSec)
	binary.BigEndian.PutUint32(body[8:12], s.DurationNSec)
	binary.BigEndian.PutUint16(body[12:14], s.Priority)
	binary.BigEndian.PutUint16(body[14:16], s.IdleTimeout)
	binary.BigEndian.PutUint16(body[16:18], s.HardTimeout)
	binary.BigEndian.PutUint64(body[24:32], s.Cookie)
	binary.BigEndian.PutUint64(body[32:40], s.PacketCount)
	binary.BigEndian.PutUint64(body[40:48], s.ByteCount)

	m, err := s.Match.MarshalBinary()
	if err != nil {
		return nil, err
	}
	data = append(body, m...)
	for _, ins := range s.Instructions {
		b, err := ins.MarshalBinary()
		if err != nil {
			return nil, err
		}
		data = append(data, b...)
	}
	return data, nil
}

func (s *FlowStats) UnmarshalBinary(data []byte) error {
	if len(data) < flowStatsFixedLen {
		return fmt.Errorf("%w: flow_stats", common.ErrShortInput)
	}
	length := binary.BigEndian.Uint16(data[0:2])
	if int(length) > len(data) {
		return fmt.Errorf("%w: flow_stats declares %d, have %d", common.ErrLengthMismatch, length, len(data))
	}
	s.TableID = data[2]
	s.DurationSec = binary.BigEndian.Uint32(data[4:8])
	s.DurationNSec = binary.BigEndian.Uint32(data[8:12])
	s.Priority = binary.BigEndian.Uint16(data[12:14])
	s.IdleTimeout = binary.BigEndian.Uint16(data[14:16])
	s.HardTimeout = binary.BigEndian.Uint16(data[16:18])
	s.Cookie = binary.BigEndian.Uint64(data[24:32])
	s.PacketCount = binary.BigEndian.Uint64(data[32:40])
	s.ByteCount = binary.BigEndian.Uint64(data[40:48])

	if err := s.Match.UnmarshalBinary(data[flowStatsFixedLen:length]); err != nil {
		return err
	}
	n := flowStatsFixedLen + int(s.Match.Len())
	s.Instructions = nil
	for n < int(length) {
		ins, err := decodeInstruction(data[n:length])
		if err != nil {
			return err
		}
		s.Instructions = append(s.Instructions, ins)
		n += int(ins.Len())
	}
	return nil
}

const aggregateStatsRequestLen = flowStatsRequestLen

// AggregateStatsRequest is OFPST_AGGREGATE's request body; identical
// layout to FlowStatsRequest.
type AggregateStatsRequest struct {
	FlowStatsRequest
}

func NewAggregateStatsRequest() *AggregateStatsRequest {
	return &AggregateStatsRequest{FlowStatsRequest{OutPort: mustPortNo("any"), OutGroup: GroupAny}}
}

const aggregateStatsLen = 24

// AggregateStats is OFPST_AGGREGATE's reply body.
type AggregateStats struct {
	PacketCount uint64
	ByteCount   uint64
	FlowCount   uint32
}

func (s *AggregateStats) Len() uint16 { return aggregateStatsLen }

func (s *AggregateStats) MarshalBinary() (data []byte, err error) {
	data = make([]byte, aggregateStatsLen)
	binary.BigEndian.PutUint64(data[0:8], s.PacketCount)
	binary.BigEndian.PutUint64(data[8:16], s.ByteCount)
	binary.BigEndian.PutUint32(data[16:20], s.FlowCount)
	return data, nil
}

func (s *AggregateStats) UnmarshalBinary(data []byte) error {
	if len(data) < aggregateStatsLen {
		return fmt.Errorf("%w: aggregate_stats", common.ErrShortInput)
	}
	s.PacketCount = binary.BigEndian.Uint64(data[0:8])
	s.ByteCount = binary.BigEndian.Uint64(data[8:16])
	s.FlowCount = binary.BigEndian.Uint32(data[16:20])
	return nil
}

const portStatsRequestLen = 8

// PortStatsRequest is OFPST_PORT's request body. v1.1 keeps port_no at
// 16 bits (widened to 32 in 1.3); the rest is padding.
type PortStatsRequest struct {
	PortNo uint16
}

func (s *PortStatsRequest) Len() uint16 { return portStatsRequestLen }

func (s *PortStatsRequest) MarshalBinary() (data []byte, err error) {
	data = make([]byte, portStatsRequestLen)
	binary.BigEndian.PutUint16(data[0:2], s.PortNo)
	return data, nil
}

func (s *PortStatsRequest) UnmarshalBinary(data []byte) error {
	if len(data) < portStatsRequestLen {
		return fmt.Errorf("%w: port_stats_request", common.ErrShortInput)
	}
	s.PortNo = binary.BigEndian.Uint16(data[0:2])
	return nil
}

const portStatsLen = 104

// PortStats is OFPST_PORT's reply body, one entry per port. v1.1 has no
// duration trailer (added in 1.3).
type PortStats struct {
	PortNo     uint16
	RxPackets  uint64
	TxPackets  uint64
	RxBytes    uint64
	TxBytes    uint64
	RxDropped  uint64
	TxDropped  uint64
	RxErrors   uint64
	TxErrors   uint64
	RxFrameErr uint64
	RxOverErr  uint64
	RxCRCErr   uint64
	Collisions uint64
}

func (s *PortStats) Len() uint16 { return portStatsLen }

func (s *PortStats) MarshalBinary() (data []byte, err error) {
	data = make([]byte, portStatsLen)
	binary.BigEndian.PutUint16(data[0:2], s.PortNo)
	vals := []uint64{s.RxPackets, s.TxPackets, s.RxBytes, s.TxBytes, s.RxDropped,
		s.TxDropped, s.RxErrors, s.TxErrors, s.RxFrameErr, s.RxOverErr, s.RxCRCErr, s.Collisions}
	off := 8
	for _, v := range vals {
		binary.BigEndian.PutUint64(data[off:off+8], v)
		off += 8
	}
	return data, nil
}

func (s *PortStats) UnmarshalBinary(data []byte) error {
	if len(data) < portStatsLen {
		return fmt.Errorf("%w: port_stats", common.ErrShortInput)
	}
	s.PortNo = binary.BigEndian.Uint16(data[0:2])
	fields := []*uint64{&s.RxPackets, &s.TxPackets, &s.RxBytes, &s.TxBytes, &s.RxDropped,
		&s.TxDropped, &s.RxErrors, &s.TxErrors, &s.RxFrameErr, &s.RxOverErr, &s.RxCRCErr, &s.Collisions}
	off := 8
	for _, f := range fields {
		*f = binary.BigEndian.Uint64(data[off : off+8])
		off += 8
	}
	return nil
}

const queueStatsRequestLen = 8

// QueueStatsRequest is OFPST_QUEUE's request body.
type QueueStatsRequest struct {
	PortNo  uint16
	QueueID uint32
}

func (s *QueueStatsRequest) Len() uint16 { return queueStatsRequestLen }

func (s *QueueStatsRequest) MarshalBinary() (data []byte, err error) {
	data = make([]byte, queueStatsRequestLen)
	binary.BigEndian.PutUint16(data[0:2], s.PortNo)
	binary.BigEndian.PutUint32(data[4:8], s.QueueID)
	return data, nil
}

func (s *QueueStatsRequest) UnmarshalBinary(data []byte) error {
	if len(data) < queueStatsRequestLen {
		return fmt.Errorf("%w: queue_stats_request", common.ErrShortInput)
	}
	s.PortNo = binary.BigEndian.Uint16(data[0:2])
	s.QueueID = binary.BigEndian.Uint32(data[4:8])
	return nil
}

const queueStatsLen = 32

// QueueStats is OFPST_QUEUE's reply body. v1.1 has no duration trailer
// (added in 1.3).
type QueueStats struct {
	PortNo    uint32
	QueueID   uint32
	TxBytes   uint64
	TxPackets uint64
	TxErrors  uint64
}

func (s *QueueStats) Len() uint16 { return queueStatsLen }

func (s *QueueStats) MarshalBinary() (data []byte, err error) {
	data = make([]byte, queueStatsLen)
	binary.BigEndian.PutUint32(data[0:4], s.PortNo)
	binary.BigEndian.PutUint32(data[4:8], s.QueueID)
	binary.BigEndian.PutUint64(data[8:16], s.TxBytes)
	binary.BigEndian.PutUint64(data[16:24], s.TxPackets)
	binary.BigEndian.PutUint64(data[24:32], s.TxErrors)
	return data, nil
}

func (s *QueueStats) UnmarshalBinary(data []byte) error {
	if len(data) < queueStatsLen {
		return fmt.Errorf("%w: queue_stats", common.ErrShortInput)
	}
	s.PortNo = binary.BigEndian.Uint32(data[0:4])
	s.QueueID = binary.BigEndian.Uint32(data[4:8])
	s.TxBytes = binary.BigEndian.Uint64(data[8:16])
	s.TxPackets = binary.BigEndian.Uint64(data[16:24])
	s.TxErrors = binary.BigEndian.Uint64(data[24:32])
	return nil
}

const multipartFixedLen = 8

// MultipartRequest is OFPT_STATS_REQUEST, carrying one of the five
// supplemented body shapes selected by Type.
type MultipartRequest struct {
	Header
	Type  string // "desc", "flow", "aggregate", "port", "queue"
	Flags uint16
	Body  StatsBody
}

func NewMultipartRequest(statsType string) *MultipartRequest {
	m := new(MultipartRequest)
	m.Header = NewHeader(messageType("stats_request"))
	m.Type = statsType
	return m
}

func (m *MultipartRequest) Len() uint16 {
	n := m.Header.Len() + multipartFixedLen
	if m.Body != nil {
		n += m.Body.Len()
	}
	return n
}

func (m *MultipartRequest) MarshalBinary() (data []byte, err error) {
	t, err := StatsType.Int(m.Type)
	if err != nil {
		return nil, err
	}
	m.Header.Length = m.Len()
	hdr, err := m.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	data = append(data, hdr...)
	fixed := make([]byte, multipartFixedLen)
	binary.BigEndian.PutUint16(fixed[0:2], uint16(t))
	binary.BigEndian.PutUint16(fixed[2:4], m.Flags)
	data = append(data, fixed...)
	if m.Body != nil {
		b, err := m.Body.MarshalBinary()
		if err != nil {
			return nil, err
		}
		data = append(data, b...)
	}
	log.Debugf("stats_request(%d): %v", len(data), data)
	return data, nil
}

func (m *MultipartRequest) UnmarshalBinary(data []byte) error {
	if err := m.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(m.Header.Len())
	if len(data) < n+multipartFixedLen {
		return fmt.Errorf("%w: stats_request body", common.ErrShortInput)
	}
	typeVal := binary.BigEndian.Uint16(data[n : n+2])
	typeName, err := StatsType.Symbol(uint32(typeVal))
	if err != nil {
		return err
	}
	m.Type = typeName
	m.Flags = binary.BigEndian.Uint16(data[n+2 : n+4])
	n += multipartFixedLen

	if n >= int(m.Header.Length) {
		return nil
	}
	body, err := newStatsRequestBody(m.Type)
	if err != nil {
		return err
	}
	if err := body.UnmarshalBinary(data[n:m.Header.Length]); err != nil {
		return err
	}
	m.Body = body
	return nil
}

func newStatsRequestBody(statsType string) (StatsBody, error) {
	switch statsType {
	case "desc", "table":
		return nil, fmt.Errorf("%w: stats type %q has no request body", common.ErrInvariantViolation, statsType)
	case "flow":
		return NewFlowStatsRequest(), nil
	case "aggregate":
		return NewAggregateStatsRequest(), nil
	case "port":
		return new(PortStatsRequest), nil
	case "queue":
		return new(QueueStatsRequest), nil
	default:
		return nil, fmt.Errorf("%w: stats type %q", common.ErrUnknownTag, statsType)
	}
}

// MultipartReply is OFPT_STATS_REPLY. Body holds every reply entry of
// the Type's shape (the wire format repeats entries back-to-back until
// the header's declared length is consumed).
type MultipartReply struct {
	Header
	Type  string
	Flags uint16
	Body  []StatsBody
}

func NewMultipartReply(statsType string) *MultipartReply {
	m := new(MultipartReply)
	m.Header = NewHeader(messageType("stats_reply"))
	m.Type = statsType
	return m
}

func (m *MultipartReply) Len() uint16 {
	n := m.Header.Len() + multipartFixedLen
	for _, b := range m.Body {
		n += b.Len()
	}
	return n
}

func (m *MultipartReply) MarshalBinary() (data []byte, err error) {
	t, err := StatsType.Int(m.Type)
	if err != nil {
		return nil, err
	}
	m.Header.Length = m.Len()
	hdr, err := m.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	data = append(data, hdr...)
	fixed := make([]byte, multipartFixedLen)
	binary.BigEndian.PutUint16(fixed[0:2], uint16(t))
	binary.BigEndian.PutUint16(fixed[2:4], m.Flags)
	data = append(data, fixed...)
	for _, b := range m.Body {
		bb, err := b.MarshalBinary()
		if err != nil {
			return nil, err
		}
		data = append(data, bb...)
	}
	return data, nil
}

func (m *MultipartReply) UnmarshalBinary(data []byte) error {
	if err := m.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(m.Header.Len())
	if len(data) < n+multipartFixedLen {
		return fmt.Errorf("%w: stats_reply body", common.ErrShortInput)
	}
	typeVal := binary.BigEndian.Uint16(data[n : n+2])
	typeName, err := StatsType.Symbol(uint32(typeVal))
	if err != nil {
		return err
	}
	m.Type = typeName
	m.Flags = binary.BigEndian.Uint16(data[n+2 : n+4])
	n += multipartFixedLen

	m.Body = nil
	for n < int(m.Header.Length) {
		entry, err := newStatsReplyEntry(m.Type)
		if err != nil {
			return err
		}
		if err := entry.UnmarshalBinary(data[n:m.Header.Length]); err != nil {
			return err
		}
		m.Body = append(m.Body, entry)
		n += int(entry.Len())
	}
	return nil
}

func newStatsReplyEntry(statsType string) (StatsBody, error) {
	switch statsType {
	case "desc":
		return new(DescStats), nil
	case "flow":
		return new(FlowStats), nil
	case "aggregate":
		return new(AggregateStats), nil
	case "port":
		return new(PortStats), nil
	case "queue":
		return new(QueueStats), nil
	default:
		return nil, fmt.Errorf("%w: stats type %q", common.ErrUnknownTag, statsType)
	}
}

package openflow11

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/flowbase/ofcodec/common"
	"github.com/flowbase/ofcodec/util"
)

// ParseMessage decodes a single OpenFlow 1.1 message from b, dispatching
// on the message-type byte at offset 1 of the header. b must hold at
// least one complete message; trailing bytes beyond the header's
// declared Length are ignored. The experimental bit folded into the
// version byte (VersionBits) is recorded on the constructed message's
// embedded Header.
func ParseMessage(b []byte) (util.Message, error) {
	if len(b) < common.HeaderLen {
		return nil, fmt.Errorf("%w: openflow11 header", common.ErrShortInput)
	}
	if VersionBits(b[0]) != Version {
		return nil, fmt.Errorf("%w: expected version %d, got %d", common.ErrBadMessage, Version, VersionBits(b[0]))
	}
	log.Debugf("openflow11 parse: %v", b)

	typeName, err := MessageType.Symbol(uint32(b[1]))
	if err != nil {
		return nil, err
	}

	var message util.Message
	switch typeName {
	case "hello":
		message = NewHello()
	case "error":
		message = new(ErrorMsg)
	case "echo_request":
		message = NewEchoRequest()
	case "echo_reply":
		message = NewEchoReply()
	case "experimenter":
		message = NewExperimenter(0, 0)
	case "features_request":
		message = NewFeaturesRequest()
	case "features_reply":
		message = NewFeaturesReply()
	case "get_config_request":
		message = NewGetConfigRequest()
	case "get_config_reply":
		message = NewGetConfigReply()
	case "set_config":
		message = NewSetConfig()
	case "packet_in":
		message = NewPacketIn()
	case "flow_removed":
		message = NewFlowRemoved()
	case "port_status":
		message = NewPortStatus()
	case "packet_out":
		message = NewPacketOut()
	case "flow_mod":
		message = NewFlowMod()
	case "group_mod":
		message = NewGroupMod()
	case "port_mod":
		message = NewPortMod(0)
	case "table_mod":
		message = NewTableMod()
	case "stats_request":
		message = new(MultipartRequest)
	case "stats_reply":
		message = new(MultipartReply)
	case "barrier_request":
		message = NewBarrierRequest()
	case "barrier_reply":
		message = NewBarrierReply()
	case "queue_get_config_request":
		message = NewQueueGetConfigRequest(0)
	case "queue_get_config_reply":
		message = NewQueueGetConfigReply(0)
	default:
		return nil, fmt.Errorf("%w: message type %q", common.ErrUnknownTag, typeName)
	}

	if err := message.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return message, nil
}

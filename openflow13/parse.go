package openflow13

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/flowbase/ofcodec/common"
	"github.com/flowbase/ofcodec/util"
)

// ParseMessage decodes a single OpenFlow 1.3 message from b, dispatching
// on the message-type byte at offset 1 of the header. b must hold at
// least one complete message; trailing bytes beyond the header's
// declared Length are ignored.
func ParseMessage(b []byte) (util.Message, error) {
	if len(b) < common.HeaderLen {
		return nil, fmt.Errorf("%w: openflow13 header", common.ErrShortInput)
	}
	if b[0] != Version {
		return nil, fmt.Errorf("%w: expected version %d, got %d", common.ErrBadMessage, Version, b[0])
	}
	log.Debugf("openflow13 parse: %v", b)

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
	case "role_request":
		message = NewRoleRequest("nochange")
	case "role_reply":
		message = NewRoleReply("nochange")
	case "get_async_request":
		message = NewGetAsyncRequest()
	case "get_async_reply":
		message = NewGetAsyncReply()
	case "set_async":
		message = NewSetAsync()
	case "meter_mod":
		message = NewMeterMod()
	default:
		return nil, fmt.Errorf("%w: message type %q", common.ErrUnknownTag, typeName)
	}

	if err := message.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return message, nil
}

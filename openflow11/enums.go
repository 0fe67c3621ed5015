package openflow11

import "github.com/flowbase/ofcodec/enum"

// Message type family (ofp_type). v1.1 predates roles, async masks, and
// meters (spec.md, "v1.1 message-type closure"), so those symbols are
// absent here.
var MessageType = enum.NewTable("message-type", map[string]uint32{
	"hello":                    0,
	"error":                    1,
	"echo_request":             2,
	"echo_reply":               3,
	"experimenter":             4,
	"features_request":         5,
	"features_reply":           6,
	"get_config_request":       7,
	"get_config_reply":         8,
	"set_config":               9,
	"packet_in":                10,
	"flow_removed":             11,
	"port_status":              12,
	"packet_out":                13,
	"flow_mod":                 14,
	"group_mod":                15,
	"port_mod":                 16,
	"table_mod":                17,
	"stats_request":            18,
	"stats_reply":              19,
	"barrier_request":          20,
	"barrier_reply":            21,
	"queue_get_config_request": 22,
	"queue_get_config_reply":   23,
})

// messageType resolves a message-type symbol to its wire value for use in
// constructors, where the symbol is a compile-time literal and therefore
// always present.
func messageType(name string) uint8 {
	v, err := MessageType.Int(name)
	if err != nil {
		panic(err)
	}
	return uint8(v)
}

func mustPortNo(name string) uint32 {
	v, err := PortNo.Int(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Reserved port numbers (ofp_port_no). v1.1 reserves the top 256 values,
// same numbering as v1.3's equivalents.
var PortNo = enum.NewTable("port-no", map[string]uint32{
	"in_port":    0xfffffff8,
	"table":      0xfffffff9,
	"normal":     0xfffffffa,
	"flood":      0xfffffffb,
	"all":        0xfffffffc,
	"controller": 0xfffffffd,
	"local":      0xfffffffe,
	"any":        0xffffffff,
})

// ofp_port_config.
var PortConfig = enum.NewBitFamily("port-config", map[string]uint{
	"port_down":    0,
	"no_recv":      2,
	"no_fwd":       5,
	"no_packet_in": 6,
})

// ofp_port_state.
var PortState = enum.NewBitFamily("port-state", map[string]uint{
	"link_down": 0,
	"blocked":   1,
	"live":      2,
})

// ofp_port_features.
var PortFeature = enum.NewBitFamily("port-feature", map[string]uint{
	"10mb_hd":    0,
	"10mb_fd":    1,
	"100mb_hd":   2,
	"100mb_fd":   3,
	"1gb_hd":     4,
	"1gb_fd":     5,
	"10gb_fd":    6,
	"other":      7,
	"copper":     8,
	"fiber":      9,
	"autoneg":    10,
	"pause":      11,
	"pause_asym": 12,
})

// ofp_capabilities.
var Capabilities = enum.NewBitFamily("capabilities", map[string]uint{
	"flow_stats":   0,
	"table_stats":  1,
	"port_stats":   2,
	"group_stats":  3,
	"ip_reasm":     5,
	"queue_stats":  6,
	"arp_match_ip": 7,
})

// ofp_config_flags.
var ConfigFlags = enum.NewBitFamily("config-flags", map[string]uint{
	"frag_drop":                 0,
	"frag_reasm":                1,
	"invalid_ttl_to_controller": 2,
})

// ofp_packet_in_reason.
var PacketInReason = enum.NewTable("packet-in-reason", map[string]uint32{
	"no_match": 0,
	"action":   1,
})

// ofp_port_reason.
var PortReason = enum.NewTable("port-reason", map[string]uint32{
	"add":    0,
	"delete": 1,
	"modify": 2,
})

// ofp_flow_removed_reason.
var FlowRemovedReason = enum.NewTable("flow-removed-reason", map[string]uint32{
	"idle_timeout": 0,
	"hard_timeout": 1,
	"delete":       2,
})

// ofp_queue_properties.
var QueueProperty = enum.NewTable("queue-property", map[string]uint32{
	"min_rate":     1,
	"experimenter": 0xffff,
})

// ofp_instruction_type.
var InstructionType = enum.NewTable("instruction-type", map[string]uint32{
	"goto_table":     1,
	"write_metadata": 2,
	"write_actions":  3,
	"apply_actions":  4,
	"clear_actions":  5,
	"experimenter":   0xffff,
})

// ofp_flow_wildcards: which fixed-match slots are wildcarded. Bits 6/7
// (tp_src/tp_dst) are consulted jointly with the decoded ip_proto to pick
// between tcp_* and udp_* (spec.md §4.3).
var FlowWildcard = enum.NewBitFamily("flow-wildcard", map[string]uint{
	"in_port":    0,
	"vlan_vid":   1,
	"vlan_pcp":   2,
	"eth_type":   3,
	"ip_dscp":    4,
	"ip_proto":   5,
	"tp_src":     6,
	"tp_dst":     7,
	"mpls_label": 8,
	"mpls_tc":    9,
})

// ofp_group_type.
var GroupType = enum.NewTable("group-type", map[string]uint32{
	"all":      0,
	"select":   1,
	"indirect": 2,
	"ff":       3,
})

// ofp_error_type.
var ErrorType = enum.NewTable("error-type", map[string]uint32{
	"hello_failed":         0,
	"bad_request":          1,
	"bad_action":           2,
	"bad_instruction":      3,
	"bad_match":            4,
	"flow_mod_failed":      5,
	"group_mod_failed":     6,
	"port_mod_failed":      7,
	"table_mod_failed":     8,
	"queue_op_failed":      9,
	"switch_config_failed": 10,
	"experimenter":         0xffff,
})

// ErrorCode holds the per-error-type code sub-maps, same representative
// subset as openflow13.ErrorCode for the families v1.1 shares.
var ErrorCode = map[string]*enum.Table{
	"hello_failed": enum.NewTable("error-code/hello_failed", map[string]uint32{
		"incompatible": 0,
		"eperm":        1,
	}),
	"bad_request": enum.NewTable("error-code/bad_request", map[string]uint32{
		"bad_version":    0,
		"bad_type":       1,
		"bad_stat":       2,
		"bad_len":        3,
		"buffer_unknown": 4,
		"eperm":          5,
	}),
	"flow_mod_failed": enum.NewTable("error-code/flow_mod_failed", map[string]uint32{
		"unknown":      0,
		"table_full":   1,
		"bad_table_id": 2,
		"overlap":      3,
		"eperm":        4,
		"bad_timeout":  5,
		"bad_command":  6,
	}),
}

package openflow13

import "github.com/flowbase/ofcodec/enum"

// Message type family (ofp_type). Several request/reply families share a
// single wire type: all stats-request variants are "stats_request" on the
// wire (MultipartRequest), and likewise for "stats_reply".
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
	"packet_out":               13,
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
	"role_request":             24,
	"role_reply":               25,
	"get_async_request":        26,
	"get_async_reply":          27,
	"set_async":                28,
	"meter_mod":                29,
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

// mustPortNo resolves a reserved-port symbol for use in constructors,
// where the symbol is a compile-time literal and therefore always
// present.
func mustPortNo(name string) uint32 {
	v, err := PortNo.Int(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Reserved port numbers (ofp_port_no).
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
	"40gb_fd":    7,
	"100gb_fd":   8,
	"1tb_fd":     9,
	"other":      10,
	"copper":     11,
	"fiber":      12,
	"autoneg":    13,
	"pause":      14,
	"pause_asym": 15,
})

// ofp_capabilities.
var Capabilities = enum.NewBitFamily("capabilities", map[string]uint{
	"flow_stats":   0,
	"table_stats":  1,
	"port_stats":   2,
	"group_stats":  3,
	"ip_reasm":     5,
	"queue_stats":  6,
	"port_blocked": 8,
})

// ofp_config_flags.
var ConfigFlags = enum.NewBitFamily("config-flags", map[string]uint{
	"frag_drop":                  0,
	"frag_reasm":                 1,
	"invalid_ttl_to_controller":  2,
})

// ofp_packet_in_reason.
var PacketInReason = enum.NewTable("packet-in-reason", map[string]uint32{
	"no_match":    0,
	"action":      1,
	"invalid_ttl": 2,
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
	"group_delete": 3,
})

// ofp_packet_in_reason / ofp_port_reason / ofp_flow_removed_reason bit
// families, used by the three async-mask pairs (spec.md, "async" supplement).
var PacketInReasonMask = enum.NewBitFamily("packet-in-reason-mask", map[string]uint{
	"no_match":    0,
	"action":      1,
	"invalid_ttl": 2,
})

var PortReasonMask = enum.NewBitFamily("port-reason-mask", map[string]uint{
	"add":    0,
	"delete": 1,
	"modify": 2,
})

var FlowRemovedReasonMask = enum.NewBitFamily("flow-removed-reason-mask", map[string]uint{
	"idle_timeout": 0,
	"hard_timeout": 1,
	"delete":       2,
	"group_delete": 3,
})

// ofp_controller_role.
var ControllerRole = enum.NewTable("controller-role", map[string]uint32{
	"nochange": 0,
	"equal":    1,
	"master":   2,
	"slave":    3,
})

// ofp_queue_properties.
var QueueProperty = enum.NewTable("queue-property", map[string]uint32{
	"min_rate":     1,
	"max_rate":     2,
	"experimenter": 0xffff,
})

// ofp_meter_band_type.
var MeterBandType = enum.NewTable("meter-band-type", map[string]uint32{
	"drop":         1,
	"dscp_remark":  2,
	"experimenter": 0xffff,
})

// ofp_meter_flags.
var MeterFlag = enum.NewBitFamily("meter-flag", map[string]uint{
	"kbps":  0,
	"pktps": 1,
	"burst": 2,
	"stats": 3,
})

// ofp_instruction_type.
var InstructionType = enum.NewTable("instruction-type", map[string]uint32{
	"goto_table":     1,
	"write_metadata": 2,
	"write_actions":  3,
	"apply_actions":  4,
	"clear_actions":  5,
	"meter":          6,
	"experimenter":   0xffff,
})

// ofp_oxm_class.
var OxmClass = enum.NewTable("oxm-class", map[string]uint32{
	"nxm_0":          0x0000,
	"nxm_1":          0x0001,
	"openflow_basic": 0x8000,
	"experimenter":   0xffff,
})

// ofp_group_type.
var GroupType = enum.NewTable("group-type", map[string]uint32{
	"all":      0,
	"select":   1,
	"indirect": 2,
	"ff":       3,
})

// ofp_match_type.
var MatchType = enum.NewTable("match-type", map[string]uint32{
	"standard": 0,
	"oxm":      1,
})

// OxmFieldTable maps oxm_ofb_match_fields symbols to the field id within
// the openflow_basic class.
var OxmFieldTable = enum.NewTable("oxm-field", map[string]uint32{
	"in_port":     0,
	"in_phy_port": 1,
	"metadata":    2,
	"eth_dst":     3,
	"eth_src":     4,
	"eth_type":    5,
	"vlan_vid":    6,
	"vlan_pcp":    7,
	"ip_dscp":     8,
	"ip_ecn":      9,
	"ip_proto":    10,
	"ipv4_src":    11,
	"ipv4_dst":    12,
	"tcp_src":     13,
	"tcp_dst":     14,
	"udp_src":     15,
	"udp_dst":     16,
	"sctp_src":    17,
	"sctp_dst":    18,
	"icmpv4_type": 19,
	"icmpv4_code": 20,
	"arp_op":      21,
	"arp_spa":     22,
	"arp_tpa":     23,
	"arp_sha":     24,
	"arp_tha":     25,
	"ipv6_src":    26,
	"ipv6_dst":    27,
	"mpls_label":  34,
	"mpls_tc":     35,
	"mpls_bos":    36,
	"tunnel_id":   38,
})

// tlvLength gives the canonical bit-length of each oxm_ofb_match_fields
// value (and its mask, when the field supports one). Values/masks are
// truncated to this width before being framed on the wire (spec.md §4.3).
var tlvLength = map[string]int{
	"in_port":     32,
	"in_phy_port": 32,
	"metadata":    64,
	"eth_dst":     48,
	"eth_src":     48,
	"eth_type":    16,
	"vlan_vid":    13,
	"vlan_pcp":    3,
	"ip_dscp":     6,
	"ip_ecn":      2,
	"ip_proto":    8,
	"ipv4_src":    32,
	"ipv4_dst":    32,
	"tcp_src":     16,
	"tcp_dst":     16,
	"udp_src":     16,
	"udp_dst":     16,
	"sctp_src":    16,
	"sctp_dst":    16,
	"icmpv4_type": 8,
	"icmpv4_code": 8,
	"arp_op":      16,
	"arp_spa":     32,
	"arp_tpa":     32,
	"arp_sha":     48,
	"arp_tha":     48,
	"ipv6_src":    128,
	"ipv6_dst":    128,
	"mpls_label":  20,
	"mpls_tc":     3,
	"mpls_bos":    1,
	"tunnel_id":   64,
}

// TLVLength returns the canonical bit-length for an openflow_basic field
// name, and whether the field is known.
func TLVLength(field string) (int, bool) {
	n, ok := tlvLength[field]
	return n, ok
}

// ofp_error_type.
var ErrorType = enum.NewTable("error-type", map[string]uint32{
	"hello_failed":          0,
	"bad_request":           1,
	"bad_action":            2,
	"bad_instruction":       3,
	"bad_match":              4,
	"flow_mod_failed":       5,
	"group_mod_failed":      6,
	"port_mod_failed":       7,
	"table_mod_failed":      8,
	"queue_op_failed":       9,
	"switch_config_failed":  10,
	"role_request_failed":   11,
	"meter_mod_failed":      12,
	"table_features_failed": 13,
	"experimenter":          0xffff,
})

// ErrorCode holds the per-error-type code sub-maps named in spec.md §4.1.
// Only a representative subset of codes is populated per type; the table
// is still total in the enum.Table sense for its declared domain.
var ErrorCode = map[string]*enum.Table{
	"hello_failed": enum.NewTable("error-code/hello_failed", map[string]uint32{
		"incompatible": 0,
		"eperm":        1,
	}),
	"bad_request": enum.NewTable("error-code/bad_request", map[string]uint32{
		"bad_version":   0,
		"bad_type":      1,
		"bad_stat":      2,
		"bad_len":       3,
		"buffer_unknown": 4,
		"eperm":         5,
	}),
	"bad_match": enum.NewTable("error-code/bad_match", map[string]uint32{
		"bad_type":   0,
		"bad_len":    1,
		"bad_tag":    2,
		"bad_field":  4,
		"bad_value":  5,
		"bad_mask":   6,
		"bad_prereq": 7,
		"dup_field":  8,
	}),
	"flow_mod_failed": enum.NewTable("error-code/flow_mod_failed", map[string]uint32{
		"unknown":       0,
		"table_full":    1,
		"bad_table_id":  2,
		"overlap":       3,
		"eperm":         4,
		"bad_timeout":   5,
		"bad_command":   6,
		"bad_flags":     7,
	}),
}

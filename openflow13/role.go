package openflow13

import (
	"encoding/binary"
	"fmt"

	"github.com/flowbase/ofcodec/common"
)

const roleFixedLen = 24

// RoleRequest is OFPT_ROLE_REQUEST: asks the switch to change this
// controller connection's role (spec.md, "role" supplement).
type RoleRequest struct {
	Header
	Role         string // "nochange", "equal", "master", "slave"
	GenerationID uint64
}

func NewRoleRequest(role string) *RoleRequest {
	return &RoleRequest{Header: NewHeader(messageType("role_request")), Role: role}
}

func (r *RoleRequest) Len() uint16 { return r.Header.Len() + roleFixedLen }

func (r *RoleRequest) MarshalBinary() (data []byte, err error) {
	roleVal, err := ControllerRole.Int(r.Role)
	if err != nil {
		return nil, err
	}
	r.Header.Length = r.Len()
	hdr, err := r.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	body := make([]byte, roleFixedLen)
	binary.BigEndian.PutUint32(body[0:4], roleVal)
	binary.BigEndian.PutUint64(body[8:16], r.GenerationID)
	return append(hdr, body...), nil
}

func (r *RoleRequest) UnmarshalBinary(data []byte) error {
	if err := r.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(r.Header.Len())
	if len(data) < n+roleFixedLen {
		return fmt.Errorf("%w: role_request body", common.ErrShortInput)
	}
	roleVal := binary.BigEndian.Uint32(data[n : n+4])
	role, err := ControllerRole.Symbol(roleVal)
	if err != nil {
		return err
	}
	r.Role = role
	r.GenerationID = binary.BigEndian.Uint64(data[n+8 : n+16])
	return nil
}

// RoleReply is OFPT_ROLE_REPLY: same layout as RoleRequest.
type RoleReply struct {
	RoleRequest
}

func NewRoleReply(role string) *RoleReply {
	rr := &RoleReply{RoleRequest{Header: NewHeader(messageType("role_reply")), Role: role}}
	return rr
}

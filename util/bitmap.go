package util

import (
	"fmt"

	"github.com/flowbase/ofcodec/common"
	"github.com/flowbase/ofcodec/enum"
)

// FlagsToBinary produces a big-endian bitmap of size bytes in which bit b
// is set iff flags contains the symbol family maps to bit b. Bit 0 is the
// least-significant bit of the last byte. An unknown flag is an error.
func FlagsToBinary(family *enum.BitFamily, flags []string, size int) ([]byte, error) {
	data := make([]byte, size)
	for _, flag := range flags {
		bit, err := family.Bit(flag)
		if err != nil {
			return nil, err
		}
		byteIdx := size - 1 - int(bit/8)
		if byteIdx < 0 {
			return nil, fmt.Errorf("%w: flag %q needs bit %d, bitmap is only %d bytes", common.ErrInvariantViolation, flag, bit, size)
		}
		data[byteIdx] |= 1 << (bit % 8)
	}
	return data, nil
}

// FlagsToUint packs flags into a uint64 bitmap using family's bit
// positions. Use this instead of FlagsToBinary when the protocol field is
// a fixed-width integer rather than a separate bitmap buffer (e.g.
// ofp_meter_flags, ofp_config_flags).
func FlagsToUint(family *enum.BitFamily, flags []string) (uint64, error) {
	var bits uint64
	for _, flag := range flags {
		bit, err := family.Bit(flag)
		if err != nil {
			return 0, err
		}
		if bit >= 64 {
			return 0, fmt.Errorf("%w: flag %q needs bit %d, exceeds 64-bit width", common.ErrInvariantViolation, flag, bit)
		}
		bits |= 1 << bit
	}
	return bits, nil
}

// UintToFlags inverts FlagsToUint: every set bit in bits is resolved back
// to its symbol via family's reverse direction, in ascending bit-order. A
// set bit with no defined symbol is an error.
func UintToFlags(family *enum.BitFamily, bits uint64) ([]string, error) {
	var flags []string
	for bit := uint(0); bit < 64; bit++ {
		if bits&(1<<bit) == 0 {
			continue
		}
		name, err := family.Symbol(bit)
		if err != nil {
			return nil, err
		}
		flags = append(flags, name)
	}
	return flags, nil
}

// BinaryToFlags inverts FlagsToBinary: every set bit in data is resolved
// back to its symbol via family's reverse direction. A set bit with no
// defined symbol is an error. The result is returned in ascending
// bit-order.
func BinaryToFlags(family *enum.BitFamily, data []byte) ([]string, error) {
	var flags []string
	size := len(data)
	for bit := 0; bit < size*8; bit++ {
		byteIdx := size - 1 - bit/8
		if data[byteIdx]&(1<<(uint(bit)%8)) == 0 {
			continue
		}
		name, err := family.Symbol(uint(bit))
		if err != nil {
			return nil, err
		}
		flags = append(flags, name)
	}
	return flags, nil
}

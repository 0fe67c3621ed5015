package enum

import "fmt"

import "github.com/flowbase/ofcodec/common"

// BitFamily is a bidirectional map between a symbolic flag name and its
// bit position within a flag-set bitmap (bit 0 = least-significant bit).
// It backs util.FlagsToBinary / util.BinaryToFlags.
type BitFamily struct {
	family string
	toBit  map[string]uint
	toName map[uint]string
}

// NewBitFamily builds a closed bidirectional bit table for one family.
func NewBitFamily(family string, pairs map[string]uint) *BitFamily {
	f := &BitFamily{
		family: family,
		toBit:  make(map[string]uint, len(pairs)),
		toName: make(map[uint]string, len(pairs)),
	}
	for name, bit := range pairs {
		if _, dup := f.toName[bit]; dup {
			panic(fmt.Sprintf("enum: duplicate bit %d in family %q", bit, family))
		}
		f.toBit[name] = bit
		f.toName[bit] = name
	}
	return f
}

// Bit resolves a flag symbol to its bit position.
func (f *BitFamily) Bit(symbol string) (uint, error) {
	b, ok := f.toBit[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %s flag %q", common.ErrUnknownTag, f.family, symbol)
	}
	return b, nil
}

// Symbol resolves a bit position back to its flag symbol.
func (f *BitFamily) Symbol(bit uint) (string, error) {
	s, ok := f.toName[bit]
	if !ok {
		return "", fmt.Errorf("%w: %s bit %d", common.ErrUnknownTag, f.family, bit)
	}
	return s, nil
}

// Package enum implements the family-parametric symbolic-to-wire-value
// lookup that every OpenFlow version codec is built on: message types,
// port numbers, reasons, roles, queue properties, instruction types, OXM
// classes and fields, and the bit-position tables that back flag sets.
//
// Tables are built once per version package and never mutated; both
// directions are total on their declared domain and report ErrUnknownTag
// on anything outside it.
package enum

import (
	"fmt"

	"github.com/flowbase/ofcodec/common"
)

// Table is a bidirectional map between a symbolic name and its 32-bit
// wire value, scoped to one enumeration family (e.g. "message-type").
type Table struct {
	family string
	toInt  map[string]uint32
	toName map[uint32]string
}

// NewTable builds a closed bidirectional table for one family. Panics on a
// duplicate wire value, since that would make the reverse direction
// ambiguous and every family in this codec is defined by a fixed literal
// table at init time.
func NewTable(family string, pairs map[string]uint32) *Table {
	t := &Table{
		family: family,
		toInt:  make(map[string]uint32, len(pairs)),
		toName: make(map[uint32]string, len(pairs)),
	}
	for name, val := range pairs {
		if _, dup := t.toName[val]; dup {
			panic(fmt.Sprintf("enum: duplicate value %d in family %q", val, family))
		}
		t.toInt[name] = val
		t.toName[val] = name
	}
	return t
}

// Int resolves a symbol to its wire value.
func (t *Table) Int(symbol string) (uint32, error) {
	v, ok := t.toInt[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %s symbol %q", common.ErrUnknownTag, t.family, symbol)
	}
	return v, nil
}

// Symbol resolves a wire value back to its symbol.
func (t *Table) Symbol(value uint32) (string, error) {
	s, ok := t.toName[value]
	if !ok {
		return "", fmt.Errorf("%w: %s value %d", common.ErrUnknownTag, t.family, value)
	}
	return s, nil
}

// Has reports whether symbol is defined in this family, without erroring.
func (t *Table) Has(symbol string) bool {
	_, ok := t.toInt[symbol]
	return ok
}

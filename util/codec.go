package util

// EncodeList concatenates the per-element encodings of xs, in order.
func EncodeList(xs []Message) ([]byte, error) {
	var out []byte
	for _, x := range xs {
		b, err := x.MarshalBinary()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// EncodeString right-pads s with NUL bytes out to max, truncating if s is
// longer than max.
func EncodeString(s string, max int) []byte {
	data := make([]byte, max)
	copy(data, []byte(s))
	return data
}

// StripString returns the prefix of data before its first NUL byte, or
// the whole buffer as a string if there is none.
func StripString(data []byte) string {
	for i, b := range data {
		if b == 0 {
			return string(data[:i])
		}
	}
	return string(data)
}

// Padding returns the smallest non-negative p such that
// (length+p) % alignment == 0.
func Padding(length, alignment int) int {
	rem := length % alignment
	if rem == 0 {
		return 0
	}
	return alignment - rem
}

// CutBits right-truncates value to exactly ceil(bits/8) bytes, masking the
// top bits of the first retained byte so only the low `bits` significant
// bits of the original value remain meaningful. value is assumed
// big-endian with no leading bytes beyond what bits already implies; if it
// is longer, the extra leading bytes are dropped. A value shorter than
// ceil(bits/8) bytes is not extended: the result has len(value) bytes.
func CutBits(value []byte, bits int) []byte {
	n := (bits + 7) / 8
	if n > len(value) {
		n = len(value)
	}
	cut := make([]byte, n)
	copy(cut, value[len(value)-n:])

	lead := bits % 8
	if lead != 0 && n > 0 {
		cut[0] &= 0xFF >> uint(8-lead)
	}
	return cut
}

package reducer

import "strings"

// ParseBits decodes a sequence over the '0'/'1' alphabet. Any other rune
// fails with ErrParse, naming the offending position.
func ParseBits(s string) ([]bool, error) {
	out := make([]bool, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			out = append(out, false)
		case '1':
			out = append(out, true)
		default:
			return nil, parsef(i, r)
		}
	}
	return out, nil
}

// FormatBits is the inverse of ParseBits.
func FormatBits(seq []bool) string {
	var b strings.Builder
	b.Grow(len(seq))
	for _, v := range seq {
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// DecodeString decodes a sequence over an arbitrary alphabet using the
// caller's per-rune decoder. Decoder failures are reported as ErrParse with
// the rune's position.
func DecodeString[T comparable](s string, decode func(rune) (T, error)) ([]T, error) {
	out := make([]T, 0, len(s))
	for i, r := range s {
		v, err := decode(r)
		if err != nil {
			return nil, decodef(i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ReprogramBits parses s and reprograms r.
func ReprogramBits(r *Reducer[bool], s string) error {
	seq, err := ParseBits(s)
	if err != nil {
		return err
	}
	return r.Reprogram(seq)
}

// ReconfigureBits parses s and reconfigures r.
func ReconfigureBits(r *Reducer[bool], s string) error {
	seq, err := ParseBits(s)
	if err != nil {
		return err
	}
	return r.Reconfigure(seq)
}

// ReinputBits parses s and replaces r's leaf inputs.
func ReinputBits(r *Reducer[bool], s string) error {
	seq, err := ParseBits(s)
	if err != nil {
		return err
	}
	return r.Reinput(seq)
}

// OutputBit evaluates r and renders the root value as "0" or "1".
func OutputBit(r *Reducer[bool]) string {
	if r.Output() {
		return "1"
	}
	return "0"
}

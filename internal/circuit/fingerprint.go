package circuit

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Fingerprint returns the canonical circuit identity: a sha256 hex digest
// over length-prefixed fields in declaration order. Every field carries its
// own length prefix so adjacent fields can never alias.
func (d *Definition) Fingerprint() string {
	h := sha256.New()
	field := func(s string) {
		var n [8]byte
		binary.BigEndian.PutUint64(n[:], uint64(len(s)))
		h.Write(n[:])
		h.Write([]byte(s))
	}
	for _, c := range d.Contacts {
		field(c.Name)
		field(c.Parent)
	}
	for _, s := range d.Shorts {
		field(s.From)
		field(s.To)
	}
	field(d.Program)
	field(d.State)
	return hex.EncodeToString(h.Sum(nil))
}

package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

// RandomHex issues 12-byte random hex ids. Session ids get a "sess_" prefix
// at the service layer; the generator itself stays prefix-free.
type RandomHex struct{}

func (RandomHex) New() string {
	buf := make([]byte, 12)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

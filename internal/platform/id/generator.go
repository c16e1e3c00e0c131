package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator produces the identifiers handed out for coaches, teams, players
// and the rest of the domain entities. IDs are opaque; callers must not
// parse them.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator issues 128-bit hex identifiers from crypto/rand.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("generate id entropy: %w", err)
	}
	return hex.EncodeToString(buf[:]), nil
}

// Package utils provides small helpers shared by the transport and service
// layers: JSON response writing and random identifier generation.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces random (version 4) UUID strings. Each value carries
// 122 bits from crypto/rand, which makes collisions practically impossible
// without any coordination between callers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new random UUID in its canonical 36-character form.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}

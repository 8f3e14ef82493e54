package idgen

import "github.com/google/uuid"

// UUIDGenerator implements core.IDGenerator with random (v4) UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new random UUID in canonical form
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

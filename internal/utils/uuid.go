package utils

import "github.com/google/uuid"

// UUIDGenerator issues portal link IDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 so link IDs sort by creation time. If the v7
// source fails a random v4 is returned instead.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

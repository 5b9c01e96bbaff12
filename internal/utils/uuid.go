package utils

import "github.com/google/uuid"

// UUIDGenerator issues UUIDv7 identifiers. Version 7 is time-ordered, so
// identifiers issued close together sort together in logs. Falls back to a
// random UUIDv4 if the v7 source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

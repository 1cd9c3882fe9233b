package repository

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces opaque identifier suffixes. Implementations must not repeat a value
// within a process lifetime.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator draws random UUIDs.
type UUIDGenerator struct{}

// NewID returns a random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator hands out 1, 2, 3, ... and is safe for concurrent use.
type SequenceGenerator struct {
	next atomic.Uint64
}

// NewSequenceGenerator returns a generator starting at 1.
func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

// NewID returns the next number in the sequence.
func (g *SequenceGenerator) NewID() string {
	return strconv.FormatUint(g.next.Add(1), 10)
}

package plan

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator produces opaque course identifiers. Uniqueness is the only
// contract; callers must not parse the returned strings.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUID identifiers.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator issues monotonically increasing identifiers. Intended
// for tests that need deterministic ids; not safe for concurrent use.
type SequenceGenerator struct {
	Prefix string
	next   int
}

// NewID returns the next identifier in the sequence.
func (g *SequenceGenerator) NewID() string {
	g.next++
	prefix := g.Prefix
	if prefix == "" {
		prefix = "course"
	}
	return fmt.Sprintf("%s-%d", prefix, g.next)
}

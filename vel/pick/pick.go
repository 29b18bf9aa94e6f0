package pick

import "github.com/google/uuid"

// ID uniquely identifies a pick within a Store.
type ID string

// NewID returns a fresh pick ID.
func NewID() ID {
	return ID(uuid.New().String())
}

// Origin records how a pick entered the set.
type Origin int

const (
	// OriginOriginal marks picks present when the set was loaded.
	OriginOriginal Origin = iota
	// OriginAdded marks picks added through the editing API.
	OriginAdded
	// OriginEdited marks picks whose velocity was changed after loading.
	OriginEdited
)

// String returns the origin name.
func (o Origin) String() string {
	switch o {
	case OriginOriginal:
		return "original"
	case OriginAdded:
		return "added"
	case OriginEdited:
		return "edited"
	default:
		return "unknown"
	}
}

// Pick is a single observed velocity sample on the line: a trace index,
// a two-way time in milliseconds, and a velocity in m/s.
type Pick struct {
	ID       ID
	Trace    int
	Time     float64
	Velocity float64
	Origin   Origin
}

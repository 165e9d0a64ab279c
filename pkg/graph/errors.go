package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVertex is returned (wrapped in a [PreconditionError]) when an
	// operation references a vertex id that is not present in the graph.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrEdgeNotFound is returned (wrapped in a [PreconditionError]) by
	// [Graph.RemoveEdge] when the named edge does not exist.
	ErrEdgeNotFound = errors.New("edge not found")

	// ErrSelfLoop is returned by [Graph.Validate] when a vertex lists itself
	// as a neighbour.
	ErrSelfLoop = errors.New("self loop")

	// ErrAsymmetric is returned by [Graph.Validate] when u lists v a different
	// number of times than v lists u.
	ErrAsymmetric = errors.New("adjacency is not symmetric")

	// ErrNegativeVertex is returned by [Graph.Validate] for negative ids.
	ErrNegativeVertex = errors.New("negative vertex id")
)

// PreconditionError reports an operation that was called with arguments the
// graph cannot honour: a missing vertex or a missing edge. The graph is left
// unchanged whenever a PreconditionError is returned.
type PreconditionError struct {
	Op  string // Operation name, e.g. "add edge"
	U   int
	V   int
	Err error // ErrUnknownVertex or ErrEdgeNotFound
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s (%d, %d): %v", e.Op, e.U, e.V, e.Err)
}

// Unwrap returns the underlying sentinel for errors.Is compatibility.
func (e *PreconditionError) Unwrap() error { return e.Err }

// IsPrecondition reports whether err is (or wraps) a [PreconditionError].
func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

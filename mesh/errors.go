package mesh

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	// ErrOutOfMemory is returned when an element allocation fails. The
	// mesh is left unchanged: any handles accumulated earlier in the
	// same operator are rolled back before this is returned.
	ErrOutOfMemory = errors.New("mesh: out of memory")

	// ErrInvalidTopology is returned when an operator's topological
	// precondition isn't met (e.g. MakeVertexEdge given a face the
	// vertex's orbit never touches). The mesh is left unchanged.
	ErrInvalidTopology = errors.New("mesh: invalid topology")

	// ErrInvalidHandle is returned when a dangling or foreign handle is
	// passed to an operator that validates its arguments.
	ErrInvalidHandle = errors.New("mesh: invalid handle")
)

// CheckError reports a single invariant violation found by Mesh.Check.
type CheckError struct {
	Invariant string
	Detail    string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("mesh: invariant %s violated: %s", e.Invariant, e.Detail)
}

func checkErrorf(invariant, format string, args ...any) *CheckError {
	return &CheckError{Invariant: invariant, Detail: fmt.Sprintf(format, args...)}
}

// Package circuit: gate and circuit value types.

package circuit

// GateName identifies an instruction in the emitted gate set.
type GateName string

// The gate set qsweep emits. Rotation angles are carried in Gate.Param;
// all other gates ignore it.
const (
	// GateRZ is a single-qubit Z rotation: diag(e^{-iθ/2}, e^{+iθ/2}).
	GateRZ GateName = "rz"
	// GateRXX is the two-qubit XX rotation exp(-iθ/2 · X⊗X).
	GateRXX GateName = "rxx"
	// GateX is the Pauli-X flip.
	GateX GateName = "x"
	// GateH is the Hadamard gate.
	GateH GateName = "h"
	// GateSdg is the inverse phase gate S† = diag(1, -i).
	GateSdg GateName = "sdg"
	// GateMeasure is a terminal computational-basis measurement marker.
	GateMeasure GateName = "measure"
)

// Gate is one instruction: a name, its target qubits in application
// order, and an optional rotation angle.
type Gate struct {
	Name    GateName
	Targets []int
	Param   float64
}

// Basis is a tagged measurement-basis variant. The zero value is not a
// valid basis; dispatch sites must match a named constant explicitly and
// reject everything else.
type Basis int

const (
	// BasisPauli measures a Pauli string: per-qubit rotations into the
	// computational basis followed by measure instructions.
	BasisPauli Basis = iota + 1
)

// String implements fmt.Stringer for diagnostics.
func (b Basis) String() string {
	switch b {
	case BasisPauli:
		return "pauli"
	default:
		return "unknown"
	}
}

// Circuit is an append-only instruction list over a fixed qubit register.
// Metadata is an opaque caller-owned annotation (the sweep engine stores
// its CircuitParameters there); Clone copies it by reference.
type Circuit struct {
	nQubits  int
	Gates    []Gate
	Metadata any
}

// Package statevec: dense state representation and gate application.

package statevec

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qsweep/circuit"
)

// MaxQubits bounds the register width; 2^24 amplitudes is already 256 MiB.
const MaxQubits = 24

var (
	// ErrQubitCount indicates a register width outside [1, MaxQubits].
	ErrQubitCount = errors.New("statevec: qubit count out of range")

	// ErrQubitIndex indicates a gate target outside the register.
	ErrQubitIndex = errors.New("statevec: qubit index out of range")

	// ErrWidthMismatch indicates a circuit register wider or narrower
	// than the state it is run on.
	ErrWidthMismatch = errors.New("statevec: circuit width does not match state")

	// ErrUnknownGate indicates an instruction this simulator cannot apply.
	ErrUnknownGate = errors.New("statevec: unknown gate")
)

// State is a normalized pure state over n qubits. Amplitude index i
// assigns bit q of i to qubit q.
type State struct {
	n    int
	amps []complex128
}

// New creates the all-zeros computational basis state |0…0⟩.
// Errors: ErrQubitCount.
func New(n int) (*State, error) {
	if n < 1 || n > MaxQubits {
		return nil, fmt.Errorf("New: %w", ErrQubitCount)
	}
	st := &State{n: n, amps: make([]complex128, 1<<n)}
	st.amps[0] = 1

	return st, nil
}

// NumQubits returns the register width.
func (s *State) NumQubits() int { return s.n }

// Amplitude returns the amplitude of basis state i (0 ≤ i < 2^n).
func (s *State) Amplitude(i int) complex128 { return s.amps[i] }

// ApplyGate applies one instruction in place. Measure markers are
// ignored; sampling is out of scope for this simulator.
// Errors: ErrQubitIndex, ErrUnknownGate.
func (s *State) ApplyGate(g circuit.Gate) error {
	const op = "State.ApplyGate"
	for _, q := range g.Targets {
		if q < 0 || q >= s.n {
			return fmt.Errorf("%s(%s): %w", op, g.Name, ErrQubitIndex)
		}
	}

	switch g.Name {
	case circuit.GateRZ:
		s.applyRZ(g.Targets[0], g.Param)
	case circuit.GateRXX:
		if len(g.Targets) != 2 || g.Targets[0] == g.Targets[1] {
			return fmt.Errorf("%s(%s): %w", op, g.Name, ErrQubitIndex)
		}
		s.applyRXX(g.Targets[0], g.Targets[1], g.Param)
	case circuit.GateX:
		s.applyX(g.Targets[0])
	case circuit.GateH:
		s.applyH(g.Targets[0])
	case circuit.GateSdg:
		s.applySdg(g.Targets[0])
	case circuit.GateMeasure:
		// marker only
	default:
		return fmt.Errorf("%s(%s): %w", op, g.Name, ErrUnknownGate)
	}

	return nil
}

// Run applies every instruction of c in order.
// Errors: ErrWidthMismatch plus anything ApplyGate returns.
func (s *State) Run(c *circuit.Circuit) error {
	if c == nil || c.NumQubits() != s.n {
		return fmt.Errorf("State.Run: %w", ErrWidthMismatch)
	}
	for _, g := range c.Gates {
		if err := s.ApplyGate(g); err != nil {
			return fmt.Errorf("State.Run: %w", err)
		}
	}

	return nil
}

// applyRZ multiplies by diag(e^{-iθ/2}, e^{+iθ/2}) on qubit q.
func (s *State) applyRZ(q int, theta float64) {
	bit := 1 << q
	neg := cmplx.Exp(complex(0, -theta/2))
	pos := cmplx.Exp(complex(0, theta/2))
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= pos
		} else {
			s.amps[i] *= neg
		}
	}
}

// applyRXX applies exp(-iθ/2 · X⊗X) on qubits a and b: each amplitude
// pair (i, i^mask) mixes as (c·x - i·s·y, c·y - i·s·x).
func (s *State) applyRXX(a, b int, theta float64) {
	mask := (1 << a) | (1 << b)
	c := complex(math.Cos(theta/2), 0)
	is := complex(0, math.Sin(theta/2))
	for i := range s.amps {
		j := i ^ mask
		if i >= j {
			continue // visit each pair once
		}
		x, y := s.amps[i], s.amps[j]
		s.amps[i] = c*x - is*y
		s.amps[j] = c*y - is*x
	}
}

// applyX swaps amplitude pairs differing in bit q.
func (s *State) applyX(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			s.amps[i], s.amps[i|bit] = s.amps[i|bit], s.amps[i]
		}
	}
}

// applyH applies the Hadamard on qubit q.
func (s *State) applyH(q int) {
	bit := 1 << q
	invSqrt2 := complex(1/math.Sqrt2, 0)
	for i := range s.amps {
		if i&bit == 0 {
			lo, hi := s.amps[i], s.amps[i|bit]
			s.amps[i] = (lo + hi) * invSqrt2
			s.amps[i|bit] = (lo - hi) * invSqrt2
		}
	}
}

// applySdg multiplies every bit-set amplitude by -i.
func (s *State) applySdg(q int) {
	bit := 1 << q
	minusI := complex(0, -1)
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= minusI
		}
	}
}

// Probabilities returns the Born-rule distribution over basis states.
func (s *State) Probabilities() []float64 {
	probs := make([]float64, len(s.amps))
	for i, a := range s.amps {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}

	return probs
}

// OccupationProbability returns P(qubit q measures 1), i.e. the total
// probability mass of basis states with bit q set. Out-of-range q
// returns 0.
func (s *State) OccupationProbability(q int) float64 {
	if q < 0 || q >= s.n {
		return 0
	}
	bit := 1 << q
	var p float64
	for i, a := range s.amps {
		if i&bit != 0 {
			p += real(a)*real(a) + imag(a)*imag(a)
		}
	}

	return p
}

// Package circuit: measurement labels and basis dispatch.

package circuit

import (
	"fmt"
	"strings"
)

// labelAlphabet is the full set of characters a measurement label may
// use: identity plus the three Pauli axes, lowercase only.
const labelAlphabet = "ixyz"

// MeasurementLabels returns the canonical label family for an n-mode
// chain, in a fixed order.
//
// For n == 1 there are no edge pairs, so the family degenerates to the
// three single-qubit axes ["z", "x", "y"]. For n >= 2 it contains five
// labels: the all-z occupation readout plus the four strings probing the
// products of edge Majorana operators, which carry z on every interior
// qubit and one of x/y on each edge:
//
//	z…z,  x z…z x,  x z…z y,  y z…z x,  y z…z y
//
// Errors: ErrQubitCount for n < 1.
func MeasurementLabels(n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("MeasurementLabels: %w", ErrQubitCount)
	}
	if n == 1 {
		return []string{"z", "x", "y"}, nil
	}

	interior := strings.Repeat("z", n-2)
	return []string{
		strings.Repeat("z", n),
		"x" + interior + "x",
		"x" + interior + "y",
		"y" + interior + "x",
		"y" + interior + "y",
	}, nil
}

// validateLabel checks length and alphabet of a measurement label for an
// n-qubit circuit.
func validateLabel(label string, n int) error {
	if len(label) != n {
		return ErrInvalidLabel
	}
	for i := 0; i < n; i++ {
		if !strings.ContainsRune(labelAlphabet, rune(label[i])) {
			return ErrInvalidLabel
		}
	}

	return nil
}

// MeasurePauliString clones base and appends the rotations and
// measurements reading out the Pauli string label, character q acting on
// qubit q:
//
//	'x' → H, then measure
//	'y' → S†, H, then measure
//	'z' → measure
//	'i' → untouched, not measured
//
// The base circuit is never mutated.
// Errors: ErrNilCircuit, ErrInvalidLabel.
// Complexity: O(len(base.Gates) + n).
func MeasurePauliString(base *Circuit, label string) (*Circuit, error) {
	const op = "MeasurePauliString"
	if base == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilCircuit)
	}
	if err := validateLabel(label, base.nQubits); err != nil {
		return nil, fmt.Errorf("%s(%q): %w", op, label, err)
	}

	out := base.Clone()
	var q int
	var err error
	for q = 0; q < out.nQubits; q++ {
		switch label[q] {
		case 'x':
			err = out.AppendH(q)
		case 'y':
			if err = out.AppendSdg(q); err == nil {
				err = out.AppendH(q)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%s(%q): %w", op, label, err)
		}
	}
	for q = 0; q < out.nQubits; q++ {
		if label[q] == 'i' {
			continue
		}
		if err = out.AppendMeasure(q); err != nil {
			return nil, fmt.Errorf("%s(%q): %w", op, label, err)
		}
	}

	return out, nil
}

// Measure dispatches on the tagged basis variant. Only BasisPauli is
// implemented; any other value is rejected with ErrUnsupportedBasis so a
// typo or a future basis can never silently measure in the wrong frame.
func Measure(base *Circuit, basis Basis, label string) (*Circuit, error) {
	switch basis {
	case BasisPauli:
		return MeasurePauliString(base, label)
	default:
		return nil, fmt.Errorf("Measure(%v): %w", basis, ErrUnsupportedBasis)
	}
}

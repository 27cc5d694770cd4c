// Package circuit: sentinel error set.

package circuit

import "errors"

var (
	// ErrQubitCount indicates a non-positive qubit count at construction.
	ErrQubitCount = errors.New("circuit: qubit count must be >= 1")

	// ErrQubitIndex indicates a gate target outside [0, NumQubits).
	ErrQubitIndex = errors.New("circuit: qubit index out of range")

	// ErrSameTarget indicates a two-qubit gate addressing one qubit twice.
	ErrSameTarget = errors.New("circuit: two-qubit gate targets must differ")

	// ErrNilCircuit indicates a nil *Circuit where one is required.
	ErrNilCircuit = errors.New("circuit: nil circuit")

	// ErrInvalidLabel indicates a measurement label with the wrong length
	// or characters outside the lowercase alphabet "ixyz".
	ErrInvalidLabel = errors.New("circuit: invalid measurement label")

	// ErrUnsupportedBasis indicates a measurement basis this package does
	// not implement; callers must not rely on any fallback behavior.
	ErrUnsupportedBasis = errors.New("circuit: unsupported measurement basis")
)

// Package kitaev: sentinel error set.
// Sentinels are wrapped with an operation tag at the call site via
// fmt.Errorf("op: %w", err); tests match them with errors.Is.

package kitaev

import "errors"

var (
	// ErrModeCount indicates a non-positive number of fermionic modes.
	ErrModeCount = errors.New("kitaev: number of modes must be >= 1")

	// ErrCouplingNotFinite indicates a NaN or ±Inf coupling parameter
	// (tunneling, superconducting pairing or chemical potential).
	ErrCouplingNotFinite = errors.New("kitaev: coupling parameters must be finite")

	// ErrBadOptions indicates invalid diagonalization options
	// (non-positive tolerance, non-positive iteration cap, negative zero
	// threshold, or non-finite values).
	ErrBadOptions = errors.New("kitaev: invalid options")

	// ErrNotBdG indicates that the input matrix does not have the
	// Bogoliubov–de Gennes structure: even dimension, symmetric, and
	// anticommuting with the particle-hole swap.
	ErrNotBdG = errors.New("kitaev: matrix is not a BdG Hamiltonian")

	// ErrDiagonalize indicates that the quasiparticle transform could not
	// be constructed: the eigensolver failed to converge, the spectrum
	// violated particle-hole pairing, or the resulting transform failed
	// its canonical checks.
	ErrDiagonalize = errors.New("kitaev: diagonalization failed")
)

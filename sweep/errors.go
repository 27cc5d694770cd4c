// Package sweep: sentinel errors and the per-record generation error.

package sweep

import (
	"errors"
	"fmt"
)

var (
	// ErrNoQubits indicates an empty qubit list in the configuration.
	ErrNoQubits = errors.New("sweep: qubit list must not be empty")

	// ErrDuplicateQubit indicates a repeated physical qubit index.
	ErrDuplicateQubit = errors.New("sweep: duplicate qubit index")

	// ErrNoValues indicates an empty parameter-value axis; every axis of
	// the grid needs at least one value.
	ErrNoValues = errors.New("sweep: every parameter axis needs at least one value")

	// ErrBadBasis indicates a measurement basis the engine cannot
	// dispatch to.
	ErrBadBasis = errors.New("sweep: unsupported measurement basis")
)

// GenerationError ties a generation failure to the grid point that
// produced it. Circuits yields it in the error position and keeps
// enumerating; GenerateAll returns it and stops.
type GenerationError struct {
	Params CircuitParameters
	Err    error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("sweep: generation failed at t=%g Δ=%g μ=%g occ=%v label=%q: %v",
		e.Params.Tunneling, e.Params.Superconducting, e.Params.ChemicalPotential,
		e.Params.OccupiedOrbitals, e.Params.MeasurementLabel, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *GenerationError) Unwrap() error { return e.Err }

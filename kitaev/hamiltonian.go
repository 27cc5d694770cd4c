// Package kitaev: BdG Hamiltonian assembly for the open Kitaev chain.

package kitaev

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qsweep/matrix"
)

// hamiltonianErrorf wraps an underlying error with Hamiltonian context.
func hamiltonianErrorf(err error) error {
	return fmt.Errorf("Hamiltonian: %w", err)
}

// Hamiltonian assembles the 2n×2n Bogoliubov–de Gennes matrix of the open
// Kitaev chain with n = nModes sites:
//
//	H = [[ M,  D],
//	     [ Dᵀ, -M]]
//
// where M = -t(U+L) - μI couples nearest neighbors and the chemical
// potential, and D = Δ(U-L) is the antisymmetric pairing block (U and L
// are the n×n upper/lower shift matrices).
//
// Stage 1 (Validate): nModes >= 1, all couplings finite.
// Stage 2 (Assemble): write the four blocks with fixed index order.
//
// Inputs:
//   - nModes:            number of fermionic modes (chain sites), >= 1
//   - tunneling:         hopping amplitude t
//   - superconducting:   pairing strength Δ
//   - chemicalPotential: on-site potential μ
//
// Errors: ErrModeCount, ErrCouplingNotFinite, allocation failures.
// Determinism: fixed write order; identical inputs give identical matrices.
// Complexity: O(n²) time and memory (the matrix itself).
func Hamiltonian(nModes int, tunneling, superconducting, chemicalPotential float64) (*matrix.Dense, error) {
	if nModes < 1 {
		return nil, hamiltonianErrorf(ErrModeCount)
	}
	for _, c := range []float64{tunneling, superconducting, chemicalPotential} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, hamiltonianErrorf(ErrCouplingNotFinite)
		}
	}

	n := nModes
	h, err := matrix.NewDense(2*n, 2*n)
	if err != nil {
		return nil, hamiltonianErrorf(err)
	}

	// Diagonal of M and -M: the chemical potential term.
	var i int
	for i = 0; i < n; i++ {
		if err = h.Set(i, i, -chemicalPotential); err != nil {
			return nil, hamiltonianErrorf(err)
		}
		if err = h.Set(n+i, n+i, chemicalPotential); err != nil {
			return nil, hamiltonianErrorf(err)
		}
	}

	// Nearest-neighbor bonds: hopping into M/-M, pairing into D/Dᵀ.
	for i = 0; i+1 < n; i++ {
		// M[i,i+1] = M[i+1,i] = -t; lower-right block carries +t.
		if err = h.Set(i, i+1, -tunneling); err != nil {
			return nil, hamiltonianErrorf(err)
		}
		if err = h.Set(i+1, i, -tunneling); err != nil {
			return nil, hamiltonianErrorf(err)
		}
		if err = h.Set(n+i, n+i+1, tunneling); err != nil {
			return nil, hamiltonianErrorf(err)
		}
		if err = h.Set(n+i+1, n+i, tunneling); err != nil {
			return nil, hamiltonianErrorf(err)
		}

		// D[i,i+1] = Δ, D[i+1,i] = -Δ; Dᵀ mirrors with the sign flipped.
		if err = h.Set(i, n+i+1, superconducting); err != nil {
			return nil, hamiltonianErrorf(err)
		}
		if err = h.Set(i+1, n+i, -superconducting); err != nil {
			return nil, hamiltonianErrorf(err)
		}
		if err = h.Set(n+i+1, i, superconducting); err != nil {
			return nil, hamiltonianErrorf(err)
		}
		if err = h.Set(n+i, i+1, -superconducting); err != nil {
			return nil, hamiltonianErrorf(err)
		}
	}

	return h, nil
}

// validateBdG checks that h is a plausible BdG matrix: non-nil, square
// with even dimension >= 2, symmetric within tol, and anticommuting with
// the particle-hole swap S (S·h·S = -h, where S exchanges the two halves
// of the index range).
//
// Errors: ErrNotBdG (structure), wrapped matrix sentinels (shape/symmetry).
// Complexity: O(n²).
func validateBdG(h *matrix.Dense, tol float64) error {
	if err := matrix.ValidateSymmetric(h, tol); err != nil {
		return err
	}
	dim := h.Rows()
	if dim < 2 || dim%2 != 0 {
		return ErrNotBdG
	}

	n := dim / 2
	var i, j int
	var a, b float64
	var err error
	for i = 0; i < dim; i++ {
		for j = 0; j < dim; j++ {
			if a, err = h.At(i, j); err != nil {
				return err
			}
			if b, err = h.At((i+n)%dim, (j+n)%dim); err != nil {
				return err
			}
			if math.Abs(a+b) > tol {
				return ErrNotBdG
			}
		}
	}

	return nil
}

// Package kitaev: option and result types for the BdG diagonalizer.

package kitaev

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qsweep/matrix"
)

// Default numeric thresholds for Diagonalize.
const (
	// DefaultTol is the Jacobi convergence tolerance.
	DefaultTol = 1e-10
	// DefaultMaxIter caps the number of Jacobi rotations. Classical
	// Jacobi annihilates one pivot per rotation, so the cap scales with
	// the square of the matrix dimension; 2000 covers chains well past
	// a hundred modes.
	DefaultMaxIter = 2000
	// DefaultZeroTol classifies an eigenvalue as a zero mode when
	// |λ| <= DefaultZeroTol.
	DefaultZeroTol = 1e-8
)

// Options tunes the numerical behavior of Diagonalize.
//
//   - Tol      : Jacobi convergence tolerance (> 0).
//   - MaxIter  : safety cap on Jacobi rotations (>= 1).
//   - ZeroTol  : eigenvalues with |λ| <= ZeroTol are treated as exact
//     zero modes and run through the particle-hole pairing path (>= 0).
type Options struct {
	Tol     float64
	MaxIter int
	ZeroTol float64
}

// DefaultOptions returns the recommended thresholds for chains up to a
// few hundred modes.
func DefaultOptions() Options {
	return Options{
		Tol:     DefaultTol,
		MaxIter: DefaultMaxIter,
		ZeroTol: DefaultZeroTol,
	}
}

// validate checks option sanity; returns ErrBadOptions on violation.
func (o *Options) validate() error {
	if o == nil {
		return ErrBadOptions
	}
	if !(o.Tol > 0) || math.IsInf(o.Tol, 0) {
		return ErrBadOptions
	}
	if o.MaxIter < 1 {
		return ErrBadOptions
	}
	if o.ZeroTol < 0 || math.IsNaN(o.ZeroTol) || math.IsInf(o.ZeroTol, 0) {
		return ErrBadOptions
	}

	return nil
}

// Transform is the quasiparticle picture of a diagonalized BdG Hamiltonian.
//
// W is n×2n with rows w_i = [u_i | v_i]; quasiparticle i annihilates as
// b_i = Σ_k u_ik a_k + v_ik a†_k. Energies holds the matching excitation
// energies, non-negative and ascending (exact zero modes first).
//
// A canonical transform satisfies W·Wᵀ = I and U·Vᵀ + V·Uᵀ = 0, with
// U = W[:, :n] and V = W[:, n:]. Diagonalize enforces both before
// returning; CheckCanonical re-verifies them for callers and tests.
type Transform struct {
	NModes   int
	W        *matrix.Dense
	Energies []float64
}

// U returns a fresh n×n copy of the particle block W[:, :n].
func (tr *Transform) U() (*matrix.Dense, error) { return tr.block(0) }

// V returns a fresh n×n copy of the hole block W[:, n:].
func (tr *Transform) V() (*matrix.Dense, error) { return tr.block(tr.NModes) }

// block copies columns [off, off+n) of W into a new n×n Dense.
func (tr *Transform) block(off int) (*matrix.Dense, error) {
	n := tr.NModes
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Transform.block: %w", err)
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = tr.W.At(i, off+j); err != nil {
				return nil, fmt.Errorf("Transform.block: %w", err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Transform.block: %w", err)
			}
		}
	}

	return out, nil
}

// CheckCanonical verifies the two algebraic constraints of a fermionic
// Bogoliubov transform within tol:
//
//	max |(W·Wᵀ - I)[i,j]|        <= tol   (orthonormal quasiparticles)
//	max |(U·Vᵀ + V·Uᵀ)[i,j]|     <= tol   (anticommuting annihilators)
//
// Returns ErrDiagonalize on violation.
// Complexity: O(n³).
func (tr *Transform) CheckCanonical(tol float64) error {
	const op = "Transform.CheckCanonical"
	if tr == nil || tr.W == nil {
		return fmt.Errorf("%s: %w", op, ErrDiagonalize)
	}
	n := tr.NModes
	if tr.W.Rows() != n || tr.W.Cols() != 2*n || len(tr.Energies) != n {
		return fmt.Errorf("%s: %w", op, ErrDiagonalize)
	}

	wt, err := matrix.Transpose(tr.W)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	gram, err := matrix.Mul(tr.W, wt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	var i, j int
	var g, want float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g, err = gram.At(i, j); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(g-want) > tol {
				return fmt.Errorf("%s: %w", op, ErrDiagonalize)
			}
		}
	}

	u, err := tr.U()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	v, err := tr.V()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	vt, err := matrix.Transpose(v)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	ut, err := matrix.Transpose(u)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	uvt, err := matrix.Mul(u, vt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	vut, err := matrix.Mul(v, ut)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	anti, err := matrix.Add(uvt, vut)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g, err = anti.At(i, j); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			if math.Abs(g) > tol {
				return fmt.Errorf("%s: %w", op, ErrDiagonalize)
			}
		}
	}

	return nil
}

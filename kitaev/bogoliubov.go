// Package kitaev: Bogoliubov diagonalization of BdG Hamiltonians.

package kitaev

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/qsweep/matrix"
)

// opDiagonalize tags all Diagonalize error wrapping.
const opDiagonalize = "Diagonalize"

// sEigenTol bounds how far the eigenvalues of the particle-hole operator
// restricted to the zero space may drift from ±1 before the zero sector
// is declared inconsistent.
const sEigenTol = 1e-6

// diagErrorf wraps an underlying error with the Diagonalize tag.
func diagErrorf(err error) error {
	return fmt.Errorf("%s: %w", opDiagonalize, err)
}

// Diagonalize computes the canonical quasiparticle transform of a BdG
// Hamiltonian h (2n×2n, as produced by Hamiltonian).
//
// Stage 1 (Validate): options sane; h symmetric, even-dimensional and
// particle-hole antisymmetric (S·h·S = -h).
// Stage 2 (Eigen): Jacobi-diagonalize h; sort the spectrum ascending.
// Stage 3 (Select): particle-hole symmetry pairs every eigenvalue λ with
// -λ, so one representative per pair suffices. Strictly positive modes
// (λ > ZeroTol) are taken directly. Exact zero modes come in S-conjugate
// pairs; they are recombined into vectors z with ⟨z_i, S·z_j⟩ = 0 by
// diagonalizing S restricted to the zero space and averaging one
// S-eigenvector of each sign.
// Stage 4 (Canonicalize): fix row signs deterministically and verify
// W·Wᵀ = I and U·Vᵀ + V·Uᵀ = 0.
//
// The returned Transform has n rows ordered by ascending energy with
// zero modes first; zero-mode energies are reported as exactly 0.
//
// Errors: ErrBadOptions, ErrNotBdG, ErrDiagonalize (eigensolver failure,
// broken particle-hole pairing, or failed canonical checks).
// Determinism: fixed scan orders everywhere; identical inputs yield
// identical transforms.
// Complexity: O(MaxIter·n³) time, O(n²) memory.
func Diagonalize(h *matrix.Dense, opts *Options) (*Transform, error) {
	if err := opts.validate(); err != nil {
		return nil, diagErrorf(err)
	}
	if err := validateBdG(h, opts.Tol); err != nil {
		return nil, diagErrorf(err)
	}

	dim := h.Rows()
	n := dim / 2

	vals, vecs, err := matrix.Eigen(h, opts.Tol, opts.MaxIter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", opDiagonalize, ErrDiagonalize, err)
	}

	// Sort eigenpair indices by ascending eigenvalue; ties keep the
	// original column order for determinism.
	order := make([]int, dim)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })

	// Partition the sorted spectrum into zero and strictly positive modes.
	var zeroIdx, posIdx []int
	for _, idx := range order {
		switch {
		case math.Abs(vals[idx]) <= opts.ZeroTol:
			zeroIdx = append(zeroIdx, idx)
		case vals[idx] > opts.ZeroTol:
			posIdx = append(posIdx, idx)
		}
	}

	// Particle-hole symmetry demands an even number of zero modes and
	// exactly one positive partner per remaining ± pair.
	k := len(zeroIdx)
	if k%2 != 0 || len(posIdx) != n-k/2 {
		return nil, diagErrorf(ErrDiagonalize)
	}

	w, err := matrix.NewDense(n, dim)
	if err != nil {
		return nil, diagErrorf(err)
	}
	energies := make([]float64, n)

	// Zero sector: recombine S-conjugate Majorana partners.
	if k > 0 {
		if err = fillZeroModes(w, vecs, zeroIdx, n, opts); err != nil {
			return nil, err
		}
		// energies[0 .. k/2-1] stay exactly 0.
	}

	// Positive sector: copy eigenvector columns into rows, ascending.
	var i, row int
	var v float64
	for p, idx := range posIdx {
		row = k/2 + p
		energies[row] = vals[idx]
		for i = 0; i < dim; i++ {
			if v, err = vecs.At(i, idx); err != nil {
				return nil, diagErrorf(err)
			}
			if err = w.Set(row, i, v); err != nil {
				return nil, diagErrorf(err)
			}
		}
	}

	canonicalizeRowSigns(w)

	tr := &Transform{NModes: n, W: w, Energies: energies}
	canonTol := math.Max(opts.ZeroTol, 1e3*opts.Tol)
	if err = tr.CheckCanonical(canonTol); err != nil {
		return nil, err
	}

	return tr, nil
}

// fillZeroModes writes the recombined zero-mode rows into w[0 .. k/2-1].
//
// The particle-hole operator S (index swap i ↔ i+n) maps the zero space
// onto itself, so S restricted to span(zero eigenvectors) is a small
// symmetric matrix B with eigenvalues ±1. Averaging one +1 eigenvector
// with one -1 eigenvector yields unit vectors z with ⟨z_i, S·z_j⟩ = 0,
// exactly the condition U·Vᵀ + V·Uᵀ = 0 needs on the zero sector.
func fillZeroModes(w, vecs *matrix.Dense, zeroIdx []int, n int, opts *Options) error {
	dim := 2 * n
	k := len(zeroIdx)

	// V0: zero eigenvectors as columns, ascending-λ order.
	v0, err := matrix.NewDense(dim, k)
	if err != nil {
		return diagErrorf(err)
	}
	var i, a, b int
	var v float64
	for a = 0; a < k; a++ {
		for i = 0; i < dim; i++ {
			if v, err = vecs.At(i, zeroIdx[a]); err != nil {
				return diagErrorf(err)
			}
			if err = v0.Set(i, a, v); err != nil {
				return diagErrorf(err)
			}
		}
	}

	// B = V0ᵀ·S·V0, with (S·x)[i] = x[(i+n) mod 2n].
	bm, err := matrix.NewDense(k, k)
	if err != nil {
		return diagErrorf(err)
	}
	var acc, va, vb float64
	for a = 0; a < k; a++ {
		for b = 0; b < k; b++ {
			acc = 0
			for i = 0; i < dim; i++ {
				if va, err = v0.At(i, a); err != nil {
					return diagErrorf(err)
				}
				if vb, err = v0.At((i+n)%dim, b); err != nil {
					return diagErrorf(err)
				}
				acc += va * vb
			}
			if err = bm.Set(a, b, acc); err != nil {
				return diagErrorf(err)
			}
		}
	}

	bvals, bvecs, err := matrix.Eigen(bm, opts.Tol, opts.MaxIter)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", opDiagonalize, ErrDiagonalize, err)
	}

	// Split the S-spectrum into +1 and -1 branches; anything else means
	// the zero space is not particle-hole invariant.
	var plus, minus []int
	for a = 0; a < k; a++ {
		if math.Abs(math.Abs(bvals[a])-1) > sEigenTol {
			return diagErrorf(ErrDiagonalize)
		}
		if bvals[a] > 0 {
			plus = append(plus, a)
		} else {
			minus = append(minus, a)
		}
	}
	if len(plus) != k/2 || len(minus) != k/2 {
		return diagErrorf(ErrDiagonalize)
	}

	// z_m = (V0·p_m + V0·q_m) / √2 for the m-th (+1, -1) pair.
	invSqrt2 := 1.0 / math.Sqrt2
	var m int
	var pc, mc, sum float64
	for m = 0; m < k/2; m++ {
		for i = 0; i < dim; i++ {
			sum = 0
			for a = 0; a < k; a++ {
				if v, err = v0.At(i, a); err != nil {
					return diagErrorf(err)
				}
				if pc, err = bvecs.At(a, plus[m]); err != nil {
					return diagErrorf(err)
				}
				if mc, err = bvecs.At(a, minus[m]); err != nil {
					return diagErrorf(err)
				}
				sum += v * (pc + mc)
			}
			if err = w.Set(m, i, sum*invSqrt2); err != nil {
				return diagErrorf(err)
			}
		}
	}

	return nil
}

// canonicalizeRowSigns flips each row of w so that its largest-magnitude
// component (first one on ties) is non-negative. Negating a quasiparticle
// row is a gauge choice; fixing it keeps outputs reproducible.
func canonicalizeRowSigns(w *matrix.Dense) {
	rows, cols := w.Rows(), w.Cols()
	var i, j, lead int
	var v, best float64
	for i = 0; i < rows; i++ {
		lead, best = 0, 0
		for j = 0; j < cols; j++ {
			v, _ = w.At(i, j)
			if math.Abs(v) > best {
				best, lead = math.Abs(v), j
			}
		}
		if v, _ = w.At(i, lead); v < 0 {
			for j = 0; j < cols; j++ {
				v, _ = w.At(i, j)
				_ = w.Set(i, j, -v)
			}
		}
	}
}

// Package matrix: linear-algebra kernels on *Dense.
// Every kernel validates via the canonical validators, allocates exactly
// one result, never mutates its inputs, and walks memory in a fixed order
// so identical inputs always produce identical outputs.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for dot products and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opEigen     = "Eigen"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so callers can match sentinels with errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Shared helper for Add/Sub: one validation, one allocation, one flat loop.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if a.r != b.r || a.c != b.c {
		return nil, matrixErrorf(opTag, ErrDimensionMismatch)
	}

	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Single flat loop 0..n-1; deterministic accumulation order.
	length := a.r * a.c
	for idx := 0; idx < length; idx++ {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time and memory.
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time and memory.
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Stage 1 (Validate): both operands non-nil, a.Cols == b.Rows.
// Stage 2 (Compute): row-major i→k→j loops with a zero-skip on A[i,k].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*c) time, O(r*c) memory.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Row-major multiplication into res.data:
	// a.data layout i*aCols + k, b.data layout k*bCols + j.
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input is never mutated.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and memory.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// NaN/Inf in alpha propagate; the input is never mutated.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and memory.
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	n := m.r * m.c
	for idx := 0; idx < n; idx++ {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order; zero x[j] entries are skipped.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time, O(r) memory for y.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, m.r)
	var i, j, base int
	var acc, xv float64
	for i = 0; i < m.r; i++ {
		acc = ZeroSum
		base = i * m.c
		for j = 0; j < m.c; j++ {
			xv = x[j]
			if xv != 0 { // skip zero multiplications
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// classical Jacobi rotations.
//
// Stage 1 (Validate): m non-nil, square, symmetric within tol.
// Stage 2 (Rotate): repeatedly pick the pivot (p,q) with the largest
// |A[p,q]| in fixed i→j scan order and annihilate it with a Givens
// rotation, accumulating rotations into Q.
// Stage 3 (Extract): once max |off-diagonal| < tol, read eigenvalues off
// the diagonal; the columns of Q are the matching eigenvectors (Q is
// orthogonal, A = Q·diag(λ)·Qᵀ).
//
// The eigenvalues are returned unsorted, in diagonal order; callers that
// need an ordering convention sort on their side.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square), ErrAsymmetry
// (not symmetric within tol), ErrEigenFailed (no convergence within
// maxIter sweeps).
//
// Determinism: fixed pivot scan and fixed update order produce stable
// results for identical inputs.
// Complexity: O(maxIter·n³) time, O(n²) memory.
//
// Good defaults for the spectra this library produces: tol ≈ 1e-10,
// maxIter ≈ 100..300 for n ≤ 128.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Working copy A and orthogonal accumulator Q (initialized to identity).
	n := m.r
	a := m.Clone()
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		iter           int
		base           int
		p, pq          int // pivot indices (pq plays the role of q)
		maxOff, off    float64
		app, aqq, apq  float64 // A[p,p], A[q,q], A[p,q]
		aip, aiq       float64
		newIP, newIQ   float64
		qip, qiq       float64
		theta, t, c, s float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// Find pivot (p,q) maximizing |A[p,q]| over the strict upper triangle.
		maxOff = NormZero
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, pq = off, i, j
				}
			}
		}

		// Converged: all off-diagonal mass below tol.
		if maxOff < tol {
			break
		}

		app = a.data[p*n+p]
		aqq = a.data[pq*n+pq]
		apq = a.data[p*n+pq]

		// Guard: avoid division by ~zero off-diagonal.
		if math.Abs(apq) <= tol {
			continue
		}

		// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)); c = 1/√(1+t²), s = t·c.
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Apply the rotation to A, keeping symmetry explicit.
		for i = 0; i < n; i++ {
			if i == p || i == pq {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+pq]
			newIP = c*aip - s*aiq
			newIQ = s*aip + c*aiq
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+pq], a.data[pq*n+i] = newIQ, newIQ
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[pq*n+pq] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+pq], a.data[pq*n+p] = 0, 0

		// Accumulate the rotation into Q.
		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qiq = q.data[i*n+pq]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+pq] = s*qip + c*qiq
		}
	}

	// Final convergence check on the remaining off-diagonal mass.
	maxOff = NormZero
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[base+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	// Eigenvalues live on the diagonal of the rotated matrix.
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}

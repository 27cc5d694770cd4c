// Package matrix: canonical validation checks shared by all kernels.
// Each validator returns a plain sentinel (possibly tagged) so call sites
// can wrap uniformly and tests can match with errors.Is. All checks are
// pure, deterministic and allocation-free; the symmetry check scans only
// the upper triangle.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix otherwise. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows with both inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly length n.
// Errors: ErrNilMatrix (nil slice), ErrDimensionMismatch. Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks that m is square and |m[i,j] - m[j,i]| ≤ tol
// for all i < j. The tolerance must be finite; a negative tol is folded
// to its absolute value.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tol),
// ErrAsymmetry on violation.
// Complexity: O(n²), Space O(1).
func ValidateSymmetric(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}

	// Scan the strict upper triangle once; fixed i→j order keeps the
	// short-circuit behavior reproducible.
	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// MaxOffDiagonal returns max_{i≠j} |m[i,j]| for a square matrix.
// Useful to verify (near-)diagonality after a basis change.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(n²).
func MaxOffDiagonal(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, validatorErrorf("MaxOffDiagonal", err)
	}
	n := m.r
	var i, j int
	var off, maxOff float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			off = math.Abs(m.data[i*n+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}

	return maxOff, nil
}

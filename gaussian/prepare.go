// Package gaussian: circuit synthesis from a Bogoliubov transform.

package gaussian

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/qsweep/circuit"
	"github.com/katalvlaran/qsweep/matrix"
)

var (
	// ErrBadTransform indicates a transform that is nil, misshapen
	// (W must be n×2n), not orthonormal, or that failed to reduce to the
	// identity during synthesis.
	ErrBadTransform = errors.New("gaussian: invalid Bogoliubov transform")

	// ErrInvalidOccupation indicates an occupied-orbital list with an
	// index outside [0, n) or a duplicate entry.
	ErrInvalidOccupation = errors.New("gaussian: invalid occupied orbitals")
)

const (
	// orthoTol bounds the allowed deviation of W·Wᵀ from the identity.
	orthoTol = 1e-8
	// pivotEps skips Givens rotations on already-negligible entries.
	pivotEps = 1e-12
	// reduceTol bounds the final distance of the reduced matrix from I.
	reduceTol = 1e-8
)

// prepErrorf wraps an underlying error with the Prepare tag.
func prepErrorf(err error) error {
	return fmt.Errorf("Prepare: %w", err)
}

// Prepare synthesizes the circuit taking the vacuum |0…0⟩ to the
// Gaussian state defined by the n×2n Bogoliubov transform w with the
// given quasiparticle orbitals occupied.
//
// Stage 1 (Validate): w is n×2n with W·Wᵀ = I; occupied ⊆ [0, n) without
// duplicates.
// Stage 2 (Occupy): occupying orbital i exchanges the roles of b_i and
// b†_i, which in W swaps the u and v halves of row i.
// Stage 3 (Majorana): build the 2n×2n orthogonal matrix R interleaving
// (u+v) on even rows and (u-v) on odd rows, and set M := Rᵀ.
// Stage 4 (Reduce): triangularize M column by column with Givens
// rotations acting only on adjacent rows (i-1, i), recording every
// applied rotation.
// Stage 5 (Signs): sweep the diagonal and fold negative entries into
// recorded θ = π rotations; a leftover -1 in the last slot marks a
// final mode flip.
// Stage 6 (Verify): the fully reduced M must be the identity within
// tolerance, otherwise the transform was not canonical.
// Stage 7 (Emit): the recorded product maps the quasiparticle Majorana
// frame onto the standard one, so the circuit plays it back inverted:
// the mode flip first as an X on the last qubit, then one gate per
// rotation from last recorded to first — plane p even → RZ(θ) on qubit
// p/2, odd → RXX(θ) on qubits ((p-1)/2, (p+1)/2).
//
// Errors: ErrBadTransform, ErrInvalidOccupation.
// Determinism: fixed elimination and sweep orders; identical inputs
// yield identical gate lists.
// Complexity: O(n³) time, O(n²) memory, O(n²) emitted gates.
func Prepare(w *matrix.Dense, occupied []int) (*circuit.Circuit, error) {
	if err := validateTransform(w); err != nil {
		return nil, err
	}
	n := w.Rows()
	if err := validateOccupied(occupied, n); err != nil {
		return nil, err
	}

	m, err := majoranaMatrix(w, occupied)
	if err != nil {
		return nil, err
	}

	rots, flip, err := reduce(m)
	if err != nil {
		return nil, err
	}

	qc, err := circuit.New(n)
	if err != nil {
		return nil, prepErrorf(err)
	}
	if err = emitReversed(qc, rots, flip, n); err != nil {
		return nil, err
	}

	return qc, nil
}

// validateTransform checks shape and orthonormality of w.
func validateTransform(w *matrix.Dense) error {
	if err := matrix.ValidateNotNil(w); err != nil {
		return prepErrorf(ErrBadTransform)
	}
	n := w.Rows()
	if w.Cols() != 2*n {
		return prepErrorf(ErrBadTransform)
	}

	wt, err := matrix.Transpose(w)
	if err != nil {
		return prepErrorf(err)
	}
	gram, err := matrix.Mul(w, wt)
	if err != nil {
		return prepErrorf(err)
	}
	var i, j int
	var g, want float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g, err = gram.At(i, j); err != nil {
				return prepErrorf(err)
			}
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(g-want) > orthoTol {
				return prepErrorf(ErrBadTransform)
			}
		}
	}

	return nil
}

// validateOccupied rejects out-of-range and duplicate orbital indices.
func validateOccupied(occupied []int, n int) error {
	seen := make(map[int]struct{}, len(occupied))
	for _, idx := range occupied {
		if idx < 0 || idx >= n {
			return prepErrorf(ErrInvalidOccupation)
		}
		if _, dup := seen[idx]; dup {
			return prepErrorf(ErrInvalidOccupation)
		}
		seen[idx] = struct{}{}
	}

	return nil
}

// majoranaMatrix builds M = Rᵀ, where R is the Majorana-picture image of
// w after occupation swaps: even row 2j carries (u+v)_j, odd row 2j+1
// carries (u-v)_j. For a canonical transform R is orthogonal.
func majoranaMatrix(w *matrix.Dense, occupied []int) (*matrix.Dense, error) {
	n := w.Rows()
	dim := 2 * n

	occ := make(map[int]struct{}, len(occupied))
	for _, idx := range occupied {
		occ[idx] = struct{}{}
	}

	r, err := matrix.NewDense(dim, dim)
	if err != nil {
		return nil, prepErrorf(err)
	}
	var j, k int
	var u, v float64
	for j = 0; j < n; j++ {
		for k = 0; k < n; k++ {
			if u, err = w.At(j, k); err != nil {
				return nil, prepErrorf(err)
			}
			if v, err = w.At(j, n+k); err != nil {
				return nil, prepErrorf(err)
			}
			// Occupied orbital: swap the roles of u and v for this row.
			if _, ok := occ[j]; ok {
				u, v = v, u
			}
			if err = r.Set(2*j, 2*k, u+v); err != nil {
				return nil, prepErrorf(err)
			}
			if err = r.Set(2*j+1, 2*k+1, u-v); err != nil {
				return nil, prepErrorf(err)
			}
		}
	}

	m, err := matrix.Transpose(r)
	if err != nil {
		return nil, prepErrorf(err)
	}

	return m, nil
}

// planeRotation records one applied Givens rotation on the adjacent
// Majorana pair (p, p+1).
type planeRotation struct {
	p     int
	theta float64
}

// reduce triangularizes m with adjacent-row Givens rotations, recording
// every applied rotation, then fixes diagonal signs and verifies the
// reduction reached the identity. The returned flip reports a leftover
// -1 in the last diagonal slot.
func reduce(m *matrix.Dense) ([]planeRotation, bool, error) {
	dim := m.Rows()

	var rots []planeRotation
	var col, i int
	var pivot, above, theta float64
	var err error
	for col = 0; col < dim-1; col++ {
		for i = dim - 1; i > col; i-- {
			if pivot, err = m.At(i, col); err != nil {
				return nil, false, prepErrorf(err)
			}
			if math.Abs(pivot) <= pivotEps {
				continue
			}
			if above, err = m.At(i-1, col); err != nil {
				return nil, false, prepErrorf(err)
			}
			theta = math.Atan2(pivot, above)
			rotateAdjacent(m, i-1, theta)
			rots = append(rots, planeRotation{p: i - 1, theta: theta})
		}
	}

	// Diagonal sign sweep: a π rotation on plane (i, i+1) negates both
	// rows, pushing any stray -1 toward the last slot.
	var d float64
	for i = 0; i < dim-1; i++ {
		if d, err = m.At(i, i); err != nil {
			return nil, false, prepErrorf(err)
		}
		if d < 0 {
			rotateAdjacent(m, i, math.Pi)
			rots = append(rots, planeRotation{p: i, theta: math.Pi})
		}
	}
	flip := false
	if d, err = m.At(dim-1, dim-1); err != nil {
		return nil, false, prepErrorf(err)
	}
	if d < 0 {
		flip = true
		negateRow(m, dim-1)
	}

	if err = verifyIdentity(m); err != nil {
		return nil, false, err
	}

	return rots, flip, nil
}

// emitReversed plays the recorded reduction back as a circuit. The
// recorded product sends the quasiparticle Majorana frame to the
// standard one, so the state is prepared by the inverse: the mode flip
// first, then the rotations from last to first. Each gate acts on the
// Majorana frame as the transpose of the like-angled Givens rotation,
// so the recorded angles carry over unchanged.
func emitReversed(qc *circuit.Circuit, rots []planeRotation, flip bool, n int) error {
	if flip {
		// Flipping the last Majorana mode is an X on the last qubit.
		if err := qc.AppendX(n - 1); err != nil {
			return prepErrorf(err)
		}
	}
	var i int
	var err error
	for i = len(rots) - 1; i >= 0; i-- {
		if err = emitPlaneGate(qc, rots[i].p, rots[i].theta, n); err != nil {
			return err
		}
	}

	return nil
}

// rotateAdjacent applies the Givens rotation with angle theta on the
// adjacent row pair (p, p+1) of m, in place:
//
//	row'_p     =  cos θ · row_p + sin θ · row_{p+1}
//	row'_{p+1} = -sin θ · row_p + cos θ · row_{p+1}
func rotateAdjacent(m *matrix.Dense, p int, theta float64) {
	cols := m.Cols()
	c, s := math.Cos(theta), math.Sin(theta)
	var j int
	var a, b float64
	for j = 0; j < cols; j++ {
		a, _ = m.At(p, j)
		b, _ = m.At(p+1, j)
		_ = m.Set(p, j, c*a+s*b)
		_ = m.Set(p+1, j, -s*a+c*b)
	}
}

// negateRow flips the sign of row i in place.
func negateRow(m *matrix.Dense, i int) {
	cols := m.Cols()
	var j int
	var v float64
	for j = 0; j < cols; j++ {
		v, _ = m.At(i, j)
		_ = m.Set(i, j, -v)
	}
}

// emitPlaneGate appends the gate realizing a rotation on the Majorana
// plane (p, p+1): even p pairs the two Majoranas of qubit p/2 (an RZ),
// odd p straddles qubits (p-1)/2 and (p+1)/2 (an RXX).
func emitPlaneGate(qc *circuit.Circuit, p int, theta float64, n int) error {
	var err error
	if p%2 == 0 {
		err = qc.AppendRZ(p/2, theta)
	} else {
		err = qc.AppendRXX((p-1)/2, (p+1)/2, theta)
	}
	if err != nil {
		return prepErrorf(err)
	}

	return nil
}

// verifyIdentity checks that the reduced matrix is the identity within
// reduceTol; anything else means the input transform was not canonical.
func verifyIdentity(m *matrix.Dense) error {
	dim := m.Rows()
	var i, j int
	var v, want float64
	var err error
	for i = 0; i < dim; i++ {
		for j = 0; j < dim; j++ {
			if v, err = m.At(i, j); err != nil {
				return prepErrorf(err)
			}
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(v-want) > reduceTol {
				return prepErrorf(ErrBadTransform)
			}
		}
	}

	return nil
}

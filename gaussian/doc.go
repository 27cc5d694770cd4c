// Package gaussian synthesizes quantum circuits preparing fermionic
// Gaussian states: eigenstates of quadratic fermionic Hamiltonians,
// specified by a Bogoliubov transform W and a set of occupied
// quasiparticle orbitals.
//
// ✨ Key features:
//   - Prepare: turn (W, occupied) into a gate sequence over the rz/rxx/x
//     gate set, acting on the vacuum |0…0⟩
//   - Majorana reduction: the transform is rewritten in the Majorana
//     picture as a 2n×2n orthogonal matrix and triangularized with
//     adjacent-plane Givens rotations; each rotation maps directly onto
//     one hardware gate (even planes → RZ, odd planes → RXX)
//   - Deterministic: fixed elimination order, fixed sign sweep; identical
//     inputs emit identical circuits
//
// The synthesized circuit satisfies, for every mode q,
//
//	⟨n_q⟩ = Σ_{i∉occupied} V[i,q]² + Σ_{i∈occupied} U[i,q]²
//
// with U = W[:, :n], V = W[:, n:], which is how the tests verify it
// against the statevec simulator.
//
// ⚙️ Usage:
//
//	qc, err := gaussian.Prepare(tr.W, []int{0, 2})
//
// Errors are sentinels wrapped with an operation tag; match with errors.Is.
package gaussian

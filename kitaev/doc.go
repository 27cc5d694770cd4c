// Package kitaev builds and diagonalizes Bogoliubov–de Gennes (BdG)
// Hamiltonians for the one-dimensional Kitaev chain with open boundaries.
//
// ✨ Key features:
//   - Hamiltonian: assemble the 2n×2n real symmetric BdG matrix from the
//     tunneling amplitude t, superconducting pairing Δ and chemical potential μ
//   - Diagonalize: extract the quasiparticle transform W and the non-negative
//     excitation energies via Jacobi eigen-decomposition
//   - Zero-mode handling: exactly degenerate Majorana pairs are resolved into
//     a canonical particle-hole-balanced basis, keeping results deterministic
//     even at the topological sweet spot t = Δ, μ = 0
//
// The chain Hamiltonian in fermionic form is
//
//	H = -t Σ (a†_j a_{j+1} + h.c.) + Δ Σ (a_j a_{j+1} + h.c.) - μ Σ a†_j a_j
//
// and its BdG matrix is the block form [[M, D], [Dᵀ, -M]] with
// M = -t(U+L) - μI symmetric and D = Δ(U-L) antisymmetric, where U and L
// are the upper/lower shift matrices. Particle-hole symmetry S·H·S = -H
// (S swaps the two blocks) pairs every eigenvalue λ with -λ; Diagonalize
// keeps one representative per pair.
//
// ⚙️ Usage:
//
//	h, err := kitaev.Hamiltonian(5, 1.0, 1.0, 0.0)
//	opts := kitaev.DefaultOptions()
//	tr, err := kitaev.Diagonalize(h, &opts)
//	// tr.W is the n×2n quasiparticle transform, tr.Energies ascending ≥ 0
//
// All operations are deterministic and return sentinel errors wrapped with
// an operation tag; match with errors.Is.
package kitaev

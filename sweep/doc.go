// Package sweep enumerates measurement circuits for the Kitaev chain
// across a multi-dimensional parameter grid: every combination of
// tunneling, pairing, chemical potential, occupied orbitals and
// measurement label becomes one circuit.
//
// ✨ Key features:
//   - Parameters: lazy, restartable cross-product enumeration (iter.Seq)
//     in a fixed nesting order — tunneling, pairing, chemical potential,
//     occupations, label
//   - Circuits: pull-based generation; a record that fails to generate is
//     reported as a *GenerationError and the sweep continues, so one bad
//     point never poisons the rest of the grid
//   - GenerateAll: eager fail-fast variant for callers that want a slice
//     or nothing
//   - Explicit caching: the Bogoliubov transform is memoized per coupling
//     triple and the preparation circuit per (couplings, occupations);
//     Stats exposes the build counters so cache behavior is testable
//
// Every emitted circuit carries its CircuitParameters as Metadata, so
// downstream consumers can tie results back to the grid point.
//
// ⚙️ Usage:
//
//	eng, err := sweep.New(sweep.Config{
//	    Qubits:                  []int{0, 1, 2},
//	    TunnelingValues:         []float64{1.0},
//	    SuperconductingValues:   []float64{0.5, 1.0},
//	    ChemicalPotentialValues: []float64{0.0, 2.0},
//	    OccupiedOrbitalsList:    [][]int{{}, {0}},
//	})
//	for qc, err := range eng.Circuits() {
//	    if err != nil {
//	        var gerr *sweep.GenerationError
//	        // inspect gerr.Params, keep consuming
//	        continue
//	    }
//	    // use qc
//	}
//
// All configuration problems surface at New as sentinel errors.
package sweep

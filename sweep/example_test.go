package sweep_test

import (
	"fmt"

	"github.com/katalvlaran/qsweep/sweep"
)

// ExampleEngine_Circuits sweeps a tiny grid and reports its shape and
// cache behavior.
func ExampleEngine_Circuits() {
	eng, err := sweep.New(sweep.Config{
		Qubits:                  []int{0, 1},
		TunnelingValues:         []float64{1.0},
		SuperconductingValues:   []float64{0.5, 1.0},
		ChemicalPotentialValues: []float64{0.0},
		OccupiedOrbitalsList:    [][]int{{}, {0}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	generated := 0
	for _, cerr := range eng.Circuits() {
		if cerr != nil {
			fmt.Println("error:", cerr)
			return
		}
		generated++
	}

	stats := eng.Stats()
	fmt.Printf("circuits: %d\n", generated)
	fmt.Printf("diagonalizations: %d\n", stats.TransformBuilds)
	fmt.Printf("preparations: %d\n", stats.BaseBuilds)

	// Output:
	// circuits: 20
	// diagonalizations: 2
	// preparations: 4
}

package matrix_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qsweep/matrix"
)

// ExampleEigen diagonalizes a small symmetric matrix and prints its
// sorted spectrum.
func ExampleEigen() {
	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(0, 0, 2)
	_ = m.Set(0, 1, 1)
	_ = m.Set(1, 0, 1)
	_ = m.Set(1, 1, 2)

	vals, _, err := matrix.Eigen(m, 1e-12, 100)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sort.Float64s(vals)
	fmt.Printf("eigenvalues: [%.1f %.1f]\n", vals[0], vals[1])

	// Output:
	// eigenvalues: [1.0 3.0]
}

// ExampleMul multiplies two small matrices.
func ExampleMul() {
	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(0, 1, 2)
	_ = a.Set(1, 0, 3)
	_ = a.Set(1, 1, 4)

	id, _ := matrix.Identity(2)
	c, _ := matrix.Mul(a, id)
	fmt.Print(c)

	// Output:
	// [1, 2]
	// [3, 4]
}

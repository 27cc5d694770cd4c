package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsweep/circuit"
)

// TestMeasurementLabels_SingleMode checks the degenerate n=1 family.
func TestMeasurementLabels_SingleMode(t *testing.T) {
	labels, err := circuit.MeasurementLabels(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "x", "y"}, labels)
}

// TestMeasurementLabels_Chain checks the five-label family for n >= 2.
func TestMeasurementLabels_Chain(t *testing.T) {
	labels, err := circuit.MeasurementLabels(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"zz", "xx", "xy", "yx", "yy"}, labels)

	labels, err = circuit.MeasurementLabels(4)
	require.NoError(t, err)
	assert.Equal(t, []string{"zzzz", "xzzx", "xzzy", "yzzx", "yzzy"}, labels)
}

// TestMeasurementLabels_Rejection covers invalid mode counts.
func TestMeasurementLabels_Rejection(t *testing.T) {
	_, err := circuit.MeasurementLabels(0)
	assert.ErrorIs(t, err, circuit.ErrQubitCount)
}

// TestMeasurePauliString_Rotations verifies the appended rotation and
// measurement pattern for a mixed label.
func TestMeasurePauliString_Rotations(t *testing.T) {
	base, err := circuit.New(4)
	require.NoError(t, err)
	require.NoError(t, base.AppendX(0)) // payload to check non-mutation

	meas, err := circuit.MeasurePauliString(base, "xzyi")
	require.NoError(t, err)

	// base: 1 payload gate, untouched.
	assert.Equal(t, 1, base.Len(), "base circuit must not be mutated")

	// meas: payload + H(0) + Sdg(2) + H(2) + measure(0,1,2); qubit 3 idle.
	want := []circuit.Gate{
		{Name: circuit.GateX, Targets: []int{0}},
		{Name: circuit.GateH, Targets: []int{0}},
		{Name: circuit.GateSdg, Targets: []int{2}},
		{Name: circuit.GateH, Targets: []int{2}},
		{Name: circuit.GateMeasure, Targets: []int{0}},
		{Name: circuit.GateMeasure, Targets: []int{1}},
		{Name: circuit.GateMeasure, Targets: []int{2}},
	}
	assert.Equal(t, want, meas.Gates)
}

// TestMeasurePauliString_AllZ measures every qubit without rotations.
func TestMeasurePauliString_AllZ(t *testing.T) {
	base, err := circuit.New(3)
	require.NoError(t, err)

	meas, err := circuit.MeasurePauliString(base, "zzz")
	require.NoError(t, err)
	require.Equal(t, 3, meas.Len())
	for q, g := range meas.Gates {
		assert.Equal(t, circuit.GateMeasure, g.Name)
		assert.Equal(t, []int{q}, g.Targets)
	}
}

// TestMeasurePauliString_InvalidLabels rejects wrong lengths, uppercase
// characters and symbols outside the alphabet.
func TestMeasurePauliString_InvalidLabels(t *testing.T) {
	base, err := circuit.New(3)
	require.NoError(t, err)

	for _, label := range []string{"", "zz", "zzzz", "zZz", "abz", "z z"} {
		_, merr := circuit.MeasurePauliString(base, label)
		assert.ErrorIs(t, merr, circuit.ErrInvalidLabel, "label %q", label)
	}

	_, err = circuit.MeasurePauliString(nil, "zzz")
	assert.ErrorIs(t, err, circuit.ErrNilCircuit)
}

// TestMeasure_BasisDispatch checks the tagged-variant dispatch: pauli is
// routed, everything else rejected.
func TestMeasure_BasisDispatch(t *testing.T) {
	base, err := circuit.New(2)
	require.NoError(t, err)

	meas, err := circuit.Measure(base, circuit.BasisPauli, "xy")
	require.NoError(t, err)
	assert.Greater(t, meas.Len(), 0)

	_, err = circuit.Measure(base, circuit.Basis(0), "xy")
	assert.ErrorIs(t, err, circuit.ErrUnsupportedBasis)
	_, err = circuit.Measure(base, circuit.Basis(99), "xy")
	assert.ErrorIs(t, err, circuit.ErrUnsupportedBasis)
}

// TestBasis_String covers the stringer.
func TestBasis_String(t *testing.T) {
	assert.Equal(t, "pauli", circuit.BasisPauli.String())
	assert.Equal(t, "unknown", circuit.Basis(42).String())
}

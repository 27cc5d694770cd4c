// Package sweep: the circuit-generation engine.

package sweep

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/qsweep/circuit"
	"github.com/katalvlaran/qsweep/gaussian"
	"github.com/katalvlaran/qsweep/kitaev"
)

// Engine generates measurement circuits for every point of a configured
// parameter grid. It is safe for concurrent use; the caches behind it
// are shared across all iterations.
type Engine struct {
	cfg    Config
	nModes int
	labels []string
	diag   kitaev.Options
	cache  *circuitCache
}

// New validates the configuration and builds an engine.
//
// Stage 1 (Validate): qubits present and distinct, every coupling axis
// non-empty, basis known.
// Stage 2 (Defaults): vacuum-only occupations, canonical label family,
// default diagonalizer options, Pauli basis for the zero Basis value.
//
// Errors: ErrNoQubits, ErrDuplicateQubit, ErrNoValues, ErrBadBasis,
// circuit.ErrInvalidLabel (bad custom label), circuit.ErrQubitCount.
func New(cfg Config) (*Engine, error) {
	n := len(cfg.Qubits)
	if n == 0 {
		return nil, fmt.Errorf("New: %w", ErrNoQubits)
	}
	seen := make(map[int]struct{}, n)
	for _, q := range cfg.Qubits {
		if _, dup := seen[q]; dup {
			return nil, fmt.Errorf("New: %w", ErrDuplicateQubit)
		}
		seen[q] = struct{}{}
	}
	if len(cfg.TunnelingValues) == 0 ||
		len(cfg.SuperconductingValues) == 0 ||
		len(cfg.ChemicalPotentialValues) == 0 {
		return nil, fmt.Errorf("New: %w", ErrNoValues)
	}

	if cfg.Basis == 0 {
		cfg.Basis = circuit.BasisPauli
	}
	if cfg.Basis != circuit.BasisPauli {
		return nil, fmt.Errorf("New: %w", ErrBadBasis)
	}

	if cfg.OccupiedOrbitalsList == nil {
		cfg.OccupiedOrbitalsList = [][]int{{}}
	}

	labels := cfg.Labels
	if labels == nil {
		var err error
		if labels, err = circuit.MeasurementLabels(n); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	} else {
		probe, err := circuit.New(n)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		for _, label := range labels {
			if _, err = circuit.Measure(probe, cfg.Basis, label); err != nil {
				return nil, fmt.Errorf("New: %w", err)
			}
		}
	}

	diag := kitaev.DefaultOptions()
	if cfg.DiagOptions != nil {
		diag = *cfg.DiagOptions
	}

	return &Engine{
		cfg:    cfg,
		nModes: n,
		labels: labels,
		diag:   diag,
		cache:  newCircuitCache(),
	}, nil
}

// NModes returns the number of chain modes (one per configured qubit).
func (e *Engine) NModes() int { return e.nModes }

// Qubits returns a copy of the configured physical qubit list.
func (e *Engine) Qubits() []int {
	out := make([]int, len(e.cfg.Qubits))
	copy(out, e.cfg.Qubits)

	return out
}

// Backend returns the opaque execution handle from the configuration;
// the engine itself never invokes it.
func (e *Engine) Backend() any { return e.cfg.Backend }

// Labels returns a copy of the measurement-label family in sweep order.
func (e *Engine) Labels() []string {
	out := make([]string, len(e.labels))
	copy(out, e.labels)

	return out
}

// NumCircuits returns the total grid size without generating anything.
func (e *Engine) NumCircuits() int {
	return len(e.cfg.TunnelingValues) *
		len(e.cfg.SuperconductingValues) *
		len(e.cfg.ChemicalPotentialValues) *
		len(e.cfg.OccupiedOrbitalsList) *
		len(e.labels)
}

// Stats returns the cache build counters accumulated so far.
func (e *Engine) Stats() CacheStats { return e.cache.snapshot() }

// Parameters returns a lazy, restartable enumeration of every grid
// point, nested tunneling → pairing → chemical potential → occupations
// → label (rightmost axis fastest). Each yielded record owns its
// OccupiedOrbitals slice.
func (e *Engine) Parameters() iter.Seq[CircuitParameters] {
	return func(yield func(CircuitParameters) bool) {
		for _, tn := range e.cfg.TunnelingValues {
			for _, sc := range e.cfg.SuperconductingValues {
				for _, mu := range e.cfg.ChemicalPotentialValues {
					for _, occ := range e.cfg.OccupiedOrbitalsList {
						for _, label := range e.labels {
							occCopy := make([]int, len(occ))
							copy(occCopy, occ)
							p := CircuitParameters{
								Tunneling:         tn,
								Superconducting:   sc,
								ChemicalPotential: mu,
								OccupiedOrbitals:  occCopy,
								MeasurementBasis:  e.cfg.Basis,
								MeasurementLabel:  label,
							}
							if !yield(p) {
								return
							}
						}
					}
				}
			}
		}
	}
}

// Circuits returns a lazy enumeration of generated circuits in
// Parameters order. A grid point that fails to generate yields
// (nil, *GenerationError) and enumeration continues; consumers decide
// whether to skip or abort.
func (e *Engine) Circuits() iter.Seq2[*circuit.Circuit, error] {
	return func(yield func(*circuit.Circuit, error) bool) {
		for params := range e.Parameters() {
			qc, err := e.Generate(params)
			if err != nil {
				if !yield(nil, &GenerationError{Params: params, Err: err}) {
					return
				}
				continue
			}
			if !yield(qc, nil) {
				return
			}
		}
	}
}

// GenerateAll eagerly materializes the whole sweep, failing fast on the
// first bad grid point.
func (e *Engine) GenerateAll() ([]*circuit.Circuit, error) {
	out := make([]*circuit.Circuit, 0, e.NumCircuits())
	for qc, err := range e.Circuits() {
		if err != nil {
			return nil, err
		}
		out = append(out, qc)
	}

	return out, nil
}

// Generate builds the measurement circuit for one grid point: memoized
// diagonalization, memoized Gaussian preparation, then the measurement
// appended on a clone. The result carries params as Metadata.
func (e *Engine) Generate(params CircuitParameters) (*circuit.Circuit, error) {
	tKey := transformKey{t: params.Tunneling, d: params.Superconducting, mu: params.ChemicalPotential}
	tr, err := e.cache.transform(tKey, func() (*kitaev.Transform, error) {
		h, herr := kitaev.Hamiltonian(e.nModes, params.Tunneling, params.Superconducting, params.ChemicalPotential)
		if herr != nil {
			return nil, herr
		}

		return kitaev.Diagonalize(h, &e.diag)
	})
	if err != nil {
		return nil, err
	}

	bKey := baseKey{t: tKey.t, d: tKey.d, mu: tKey.mu, occ: occString(params.OccupiedOrbitals)}
	base, err := e.cache.base(bKey, func() (*circuit.Circuit, error) {
		return gaussian.Prepare(tr.W, params.OccupiedOrbitals)
	})
	if err != nil {
		return nil, err
	}

	// Measure clones the cached base; the cache entry is never mutated.
	qc, err := circuit.Measure(base, params.MeasurementBasis, params.MeasurementLabel)
	if err != nil {
		return nil, err
	}
	qc.Metadata = params

	return qc, nil
}

// Package circuit: construction and append operations.

package circuit

import "fmt"

// circuitErrorf wraps an underlying error with method context.
func circuitErrorf(method string, err error) error {
	return fmt.Errorf("Circuit.%s: %w", method, err)
}

// New creates an empty circuit over n qubits.
// Errors: ErrQubitCount for n < 1.
func New(n int) (*Circuit, error) {
	if n < 1 {
		return nil, fmt.Errorf("New: %w", ErrQubitCount)
	}

	return &Circuit{nQubits: n}, nil
}

// NumQubits returns the register width.
func (c *Circuit) NumQubits() int { return c.nQubits }

// Len returns the number of appended instructions.
func (c *Circuit) Len() int { return len(c.Gates) }

// Clone returns a deep copy of the instruction list over the same
// register. Metadata is copied by reference; gate target slices are
// duplicated so the copies never alias.
func (c *Circuit) Clone() *Circuit {
	cp := &Circuit{
		nQubits:  c.nQubits,
		Gates:    make([]Gate, len(c.Gates)),
		Metadata: c.Metadata,
	}
	for i, g := range c.Gates {
		targets := make([]int, len(g.Targets))
		copy(targets, g.Targets)
		cp.Gates[i] = Gate{Name: g.Name, Targets: targets, Param: g.Param}
	}

	return cp
}

// checkQubit validates a single target index.
func (c *Circuit) checkQubit(method string, q int) error {
	if q < 0 || q >= c.nQubits {
		return circuitErrorf(method, ErrQubitIndex)
	}

	return nil
}

// appendOne validates and appends a single-qubit gate.
func (c *Circuit) appendOne(method string, name GateName, q int, param float64) error {
	if err := c.checkQubit(method, q); err != nil {
		return err
	}
	c.Gates = append(c.Gates, Gate{Name: name, Targets: []int{q}, Param: param})

	return nil
}

// AppendRZ appends an RZ(theta) rotation on qubit q.
// Errors: ErrQubitIndex.
func (c *Circuit) AppendRZ(q int, theta float64) error {
	return c.appendOne("AppendRZ", GateRZ, q, theta)
}

// AppendRXX appends an RXX(theta) rotation on the qubit pair (a, b).
// Errors: ErrQubitIndex, ErrSameTarget.
func (c *Circuit) AppendRXX(a, b int, theta float64) error {
	const method = "AppendRXX"
	if err := c.checkQubit(method, a); err != nil {
		return err
	}
	if err := c.checkQubit(method, b); err != nil {
		return err
	}
	if a == b {
		return circuitErrorf(method, ErrSameTarget)
	}
	c.Gates = append(c.Gates, Gate{Name: GateRXX, Targets: []int{a, b}, Param: theta})

	return nil
}

// AppendX appends a Pauli-X flip on qubit q.
// Errors: ErrQubitIndex.
func (c *Circuit) AppendX(q int) error {
	return c.appendOne("AppendX", GateX, q, 0)
}

// AppendH appends a Hadamard on qubit q.
// Errors: ErrQubitIndex.
func (c *Circuit) AppendH(q int) error {
	return c.appendOne("AppendH", GateH, q, 0)
}

// AppendSdg appends an inverse phase gate S† on qubit q.
// Errors: ErrQubitIndex.
func (c *Circuit) AppendSdg(q int) error {
	return c.appendOne("AppendSdg", GateSdg, q, 0)
}

// AppendMeasure appends a computational-basis measurement marker on
// qubit q.
// Errors: ErrQubitIndex.
func (c *Circuit) AppendMeasure(q int) error {
	return c.appendOne("AppendMeasure", GateMeasure, q, 0)
}

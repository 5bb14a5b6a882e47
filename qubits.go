package qprep

import "fmt"

// QubitCount is the number of qubits a state vector describes.
type QubitCount int

const (
	TwoQubits   QubitCount = 2
	ThreeQubits QubitCount = 3
)

// Supported reports whether n is a register size this package prepares.
func (n QubitCount) Supported() bool {
	return n == TwoQubits || n == ThreeQubits
}

// Dimension returns the vector length 2^n for a supported qubit count.
func Dimension(n QubitCount) (int, error) {
	if !n.Supported() {
		return 0, fmt.Errorf("%w: only 2 or 3 qubits are supported, got %d", ErrInvalidInput, n)
	}

	return 1 << uint(n), nil
}

/*
Validate checks that values holds exactly 2^n amplitudes for the requested
qubit count. Both an unsupported count and a length mismatch are reported
as ErrInvalidInput.
*/
func Validate(values Amplitudes, n QubitCount) error {
	dim, err := Dimension(n)
	if err != nil {
		return err
	}

	if len(values) != dim {
		return fmt.Errorf(
			"%w: %d qubits need exactly %d amplitudes, got %d",
			ErrInvalidInput, n, dim, len(values),
		)
	}

	return nil
}

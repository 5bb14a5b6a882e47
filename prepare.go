package qprep

import "github.com/theapemachine/errnie"

/*
PrepareState turns raw amplitudes into a state vector for an n-qubit
register: the length must be exactly 2^n and the result has unit norm.
The input is left untouched.
*/
func PrepareState(values Amplitudes, n QubitCount) (Amplitudes, error) {
	errnie.Info("PrepareState - qubits %d, amplitudes %v", n, values)

	if err := Validate(values, n); err != nil {
		return nil, err
	}

	state, err := Normalize(values)
	if err != nil {
		return nil, err
	}

	errnie.Info("PrepareState - norm %v -> %v", values.Norm(), state.Norm())

	return state, nil
}

// Prepare pulls amplitudes from src and prepares them for n qubits.
func Prepare(src Source, n QubitCount) (Amplitudes, error) {
	values, err := src.Amplitudes(n)
	if err != nil {
		return nil, err
	}

	return PrepareState(values, n)
}

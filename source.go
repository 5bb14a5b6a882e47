package qprep

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects where the amplitudes of a run come from.
type Mode string

const (
	ModeManual Mode = "manual"
	ModeTest   Mode = "test"
)

// ParseMode accepts "manual"/"m" and "test"/"t", ignoring case and padding.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual", "m":
		return ModeManual, nil
	case "test", "t":
		return ModeTest, nil
	}

	return "", fmt.Errorf("%w: mode must be 'manual'/'m' or 'test'/'t', got %q", ErrInvalidInput, s)
}

/*
Source supplies the raw, not yet normalized amplitudes for a register of
n qubits.
*/
type Source interface {
	Amplitudes(n QubitCount) (Amplitudes, error)
}

// ManualSource parses amplitudes the user typed.
type ManualSource struct {
	Fields []string
}

// NewManualSource splits a line of user input into amplitude fields.
func NewManualSource(line string) *ManualSource {
	return &ManualSource{Fields: SplitFields(line)}
}

// Amplitudes parses the fields and checks that there are exactly 2^n.
func (src *ManualSource) Amplitudes(n QubitCount) (Amplitudes, error) {
	values, err := ParseAmplitudes(src.Fields)
	if err != nil {
		return nil, err
	}

	if err := Validate(values, n); err != nil {
		return nil, err
	}

	return values, nil
}

// TestSource yields the basis state |0...0⟩.
type TestSource struct{}

func (TestSource) Amplitudes(n QubitCount) (Amplitudes, error) {
	return BasisState(n)
}

// NewSource returns the Source for mode; input is only read in manual mode.
func NewSource(mode Mode, input string) (Source, error) {
	switch mode {
	case ModeManual:
		return NewManualSource(input), nil
	case ModeTest:
		return TestSource{}, nil
	}

	return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, mode)
}

// BasisState returns 1 followed by 2^n - 1 zeros.
func BasisState(n QubitCount) (Amplitudes, error) {
	dim, err := Dimension(n)
	if err != nil {
		return nil, err
	}

	amps := make(Amplitudes, dim)
	amps[0] = 1

	return amps, nil
}

// SplitFields breaks a line on whitespace and commas, dropping empty fields.
func SplitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// ParseAmplitudes parses every field with ParseAmplitude.
func ParseAmplitudes(fields []string) (Amplitudes, error) {
	amps := make(Amplitudes, 0, len(fields))

	for i, field := range fields {
		amplitude, err := ParseAmplitude(field)
		if err != nil {
			return nil, fmt.Errorf("amplitude %d: %w", i, err)
		}

		amps = append(amps, amplitude)
	}

	return amps, nil
}

/*
ParseAmplitude reads a real, imaginary or complex literal such as "1",
"-0.5", "2i", "1+2i" or "(1-2i)". A trailing "j" is read as "i", and a bare
unit ("i", "-j") means plus or minus one times i.
*/
func ParseAmplitude(s string) (complex128, error) {
	lit := strings.TrimSpace(s)
	lit = strings.TrimSuffix(strings.TrimPrefix(lit, "("), ")")

	if n := len(lit); n > 0 && (lit[n-1] == 'j' || lit[n-1] == 'J') {
		lit = lit[:n-1] + "i"
	}

	switch lit {
	case "i", "+i":
		lit = "1i"
	case "-i":
		lit = "-1i"
	}

	value, err := strconv.ParseComplex(lit, 128)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}

	return value, nil
}

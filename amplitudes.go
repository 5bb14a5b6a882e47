package qprep

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
	"strconv"
	"strings"
)

// Tolerance is the accepted deviation of a normalized vector's norm from 1.
const Tolerance = 1e-9

// DefaultPrecision is the number of decimals String prints per component.
const DefaultPrecision = 4

/*
Amplitudes is an ordered vector of complex coefficients, one per basis state
of a small register. Methods never write to the receiver, so a normalized
vector can be handed around freely.
*/
type Amplitudes []complex128

/*
Norm returns the Euclidean length sqrt(sum |a|^2). The running sum is kept
with math.Hypot so very large finite components do not overflow to +Inf.
*/
func (amps Amplitudes) Norm() float64 {
	var norm float64

	for _, amplitude := range amps {
		norm = math.Hypot(norm, cmplx.Abs(amplitude))
	}

	return norm
}

// IsNormalized reports whether the norm is within tol of 1.
func (amps Amplitudes) IsNormalized(tol float64) bool {
	return math.Abs(amps.Norm()-1) <= tol
}

/*
Probabilities returns |a|^2 for every component, which is the chance of
observing each basis state. For a normalized vector the values sum to 1.
*/
func (amps Amplitudes) Probabilities() []float64 {
	probs := make([]float64, len(amps))

	for i, amplitude := range amps {
		prob := cmplx.Abs(amplitude)
		probs[i] = prob * prob // Square of the modulus
	}

	return probs
}

// Qubits returns log2(len) when the length is a power of two, or 0.
func (amps Amplitudes) Qubits() QubitCount {
	n := uint(len(amps))
	if n == 0 || n&(n-1) != 0 {
		return 0
	}

	return QubitCount(bits.TrailingZeros(n))
}

// Clone returns a copy that shares no memory with amps.
func (amps Amplitudes) Clone() Amplitudes {
	out := make(Amplitudes, len(amps))
	copy(out, amps)
	return out
}

/*
Normalize returns a new vector with the same length and the same ratios
between components, scaled so its norm is 1. A zero vector has no direction
to keep and fails with ErrInvalidState, as does any vector whose norm is NaN
or infinite.
*/
func Normalize(values Amplitudes) (Amplitudes, error) {
	norm := values.Norm()

	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, fmt.Errorf("%w: cannot normalize vector with norm %v", ErrInvalidState, norm)
	}

	out := make(Amplitudes, len(values))

	for i, amplitude := range values {
		out[i] = complex(real(amplitude)/norm, imag(amplitude)/norm)
	}

	return out, nil
}

/*
Format renders the vector as "[(re+imi) ...]" with precision decimals per
part. A negative precision prints the shortest exact representation instead.
Values that round to zero print without a sign.
*/
func (amps Amplitudes) Format(precision int) string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, amplitude := range amps {
		if i > 0 {
			sb.WriteByte(' ')
		}

		re := roundTo(real(amplitude), precision)
		im := roundTo(imag(amplitude), precision)

		sb.WriteByte('(')
		sb.WriteString(formatFloat(re, precision))

		if im < 0 {
			sb.WriteByte('-')
			im = -im
		} else {
			sb.WriteByte('+')
		}

		sb.WriteString(formatFloat(im, precision))
		sb.WriteString("i)")
	}

	sb.WriteByte(']')

	return sb.String()
}

func (amps Amplitudes) String() string {
	return amps.Format(DefaultPrecision)
}

func roundTo(x float64, precision int) float64 {
	if precision >= 0 && !math.IsNaN(x) && !math.IsInf(x, 0) {
		pow := math.Pow10(precision)
		if scaled := x * pow; !math.IsInf(scaled, 0) {
			x = math.Round(scaled) / pow
		}
	}

	// Drops the sign of negative zero.
	if x == 0 {
		return 0
	}

	return x
}

func formatFloat(x float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	return strconv.FormatFloat(x, 'f', precision, 64)
}

package qprep

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPrepareState(t *testing.T) {
	Convey("Given raw amplitudes for two qubits", t, func() {
		values := Amplitudes{1, 1, 0, 0}

		Convey("When preparing the state", func() {
			state, err := PrepareState(values, TwoQubits)

			Convey("Then it should be normalized with its length kept", func() {
				So(err, ShouldBeNil)
				So(state, ShouldHaveLength, 4)
				So(state.IsNormalized(Tolerance), ShouldBeTrue)
				So(real(state[0]), ShouldAlmostEqual, 1/math.Sqrt2, Tolerance)
			})
		})

		Convey("When preparing them for three qubits", func() {
			state, err := PrepareState(values, ThreeQubits)

			Convey("Then it should fail with invalid input and no output", func() {
				So(state, ShouldBeNil)
				So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
			})
		})
	})

	Convey("Given three values for a two qubit register", t, func() {
		state, err := PrepareState(Amplitudes{1, 0, 0}, TwoQubits)

		Convey("Then it should fail with invalid input and no output", func() {
			So(state, ShouldBeNil)
			So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
		})
	})

	Convey("Given an all zero register", t, func() {
		state, err := PrepareState(make(Amplitudes, 8), ThreeQubits)

		Convey("Then it should fail with invalid state", func() {
			So(state, ShouldBeNil)
			So(errors.Is(err, ErrInvalidState), ShouldBeTrue)
			So(errors.Is(err, ErrInvalidInput), ShouldBeFalse)
		})
	})
}

func TestPrepare(t *testing.T) {
	Convey("Given the test source", t, func() {
		Convey("When preparing a three qubit state", func() {
			state, err := Prepare(TestSource{}, ThreeQubits)

			Convey("Then the basis state should come back unchanged", func() {
				So(err, ShouldBeNil)
				So(state, ShouldResemble, Amplitudes{1, 0, 0, 0, 0, 0, 0, 0})
				So(state.Norm(), ShouldAlmostEqual, 1.0, Tolerance)
			})
		})
	})

	Convey("Given a manual source with complex input", t, func() {
		src := NewManualSource("1 1j -1 -1j")

		Convey("When preparing a two qubit state", func() {
			state, err := Prepare(src, TwoQubits)

			Convey("Then every amplitude should have magnitude one half", func() {
				So(err, ShouldBeNil)
				So(state.String(), ShouldEqual, "[(0.5000+0.0000i) (0.0000+0.5000i) (-0.5000+0.0000i) (0.0000-0.5000i)]")
			})
		})
	})

	Convey("Given a manual source with a malformed value", t, func() {
		_, err := Prepare(NewManualSource("1 x 0 0"), TwoQubits)
		So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
	})
}

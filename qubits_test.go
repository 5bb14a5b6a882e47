package qprep

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDimension(t *testing.T) {
	Convey("Given supported qubit counts", t, func() {
		two, err := Dimension(TwoQubits)
		So(err, ShouldBeNil)
		So(two, ShouldEqual, 4)

		three, err := Dimension(ThreeQubits)
		So(err, ShouldBeNil)
		So(three, ShouldEqual, 8)
	})

	Convey("Given unsupported qubit counts", t, func() {
		for _, n := range []QubitCount{-1, 0, 1, 4, 10} {
			_, err := Dimension(n)
			So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
		}
	})
}

func TestValidate(t *testing.T) {
	Convey("Given a request for two qubits", t, func() {
		Convey("When four amplitudes are supplied", func() {
			Convey("Then validation should pass", func() {
				So(Validate(Amplitudes{1, 0, 0, 0}, TwoQubits), ShouldBeNil)
			})
		})

		Convey("When three amplitudes are supplied", func() {
			err := Validate(Amplitudes{1, 0, 0}, TwoQubits)

			Convey("Then it should fail with invalid input", func() {
				So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "exactly 4 amplitudes, got 3")
			})
		})

		Convey("When eight amplitudes are supplied", func() {
			err := Validate(make(Amplitudes, 8), TwoQubits)

			Convey("Then it should fail with invalid input", func() {
				So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
			})
		})
	})

	Convey("Given a request for three qubits with eight amplitudes", t, func() {
		So(Validate(make(Amplitudes, 8), ThreeQubits), ShouldBeNil)
	})

	Convey("Given a request for an unsupported qubit count", t, func() {
		err := Validate(make(Amplitudes, 16), 4)
		So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
	})
}

package tile

import (
	"encoding/json"
	"fmt"
)

// Rotation is the clockwise rotation of a tile, in degrees.
type Rotation int

// RotationStep is the number of degrees a tile turns with each rotation.
const RotationStep Rotation = 90

// Rotations are the allowed values of a Rotation.
var Rotations = [...]Rotation{0, 90, 180, 270}

// Next returns the rotation one step clockwise, wrapping 270 back to 0.
func (r Rotation) Next() Rotation {
	return (r.normalize() + RotationStep) % 360
}

// Valid determines if the rotation is one of the allowed values.
func (r Rotation) Valid() bool {
	for _, r2 := range Rotations {
		if r == r2 {
			return true
		}
	}
	return false
}

// normalize maps the rotation into [0, 360) and down to the nearest step.
func (r Rotation) normalize() Rotation {
	r %= 360
	if r < 0 {
		r += 360
	}
	return r - r%RotationStep
}

// RandomRotation chooses one of the four allowed rotations uniformly using intn, which should behave like math/rand.Intn.
func RandomRotation(intn func(n int) int) Rotation {
	return Rotations[intn(len(Rotations))]
}

// UnmarshalJSON implements the encoding/json.Unmarshaler interface, rejecting rotations that are not a multiple of 90 degrees.
func (r *Rotation) UnmarshalJSON(b []byte) error {
	var i int
	if err := json.Unmarshal(b, &i); err != nil {
		return err
	}
	r2 := Rotation(i)
	if !r2.Valid() {
		return fmt.Errorf("invalid rotation: %v", i)
	}
	*r = r2
	return nil
}

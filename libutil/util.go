package libutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/constraints"
)

const (
	Rad2Deg = float32(180 / math.Pi)
	Deg2Rad = float32(math.Pi / 180)
)

const InvalidAddress uintptr = 0xffff_ffff_ffff_ffff

func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Min[T constraints.Integer | constraints.Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Integer | constraints.Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Divides every component by 255, for colors edited in the 0-255 range
func Unorm(c mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{c[0] / 255, c[1] / 255, c[2] / 255}
}

package internal

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Vec2 is both a point and a direction in the plane.
type Vec2 r2.Point

var (
	Zero  = Vec2{}
	UnitX = Vec2{X: 1}
	UnitY = Vec2{Y: 1}
)

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// VecFromAngle returns the unit vector at the given angle, in radians, from
// the positive x axis.
func VecFromAngle(angle float64) Vec2 {
	y, x := math.Sincos(angle)
	return Vec2{X: x, Y: y}
}

func (v Vec2) r2() r2.Point {
	return r2.Point(v)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2(v.r2().Add(o.r2()))
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2(v.r2().Sub(o.r2()))
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2(v.r2().Mul(f))
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.r2().Dot(o.r2())
}

// Cross returns the z component of the 3D cross product, also known as the
// perp-dot product.
func (v Vec2) Cross(o Vec2) float64 {
	return v.r2().Cross(o.r2())
}

func (v Vec2) Length() float64 {
	return v.r2().Norm()
}

func (v Vec2) LengthSquared() float64 {
	return v.Dot(v)
}

func (v Vec2) Distance(o Vec2) float64 {
	return o.Sub(v).Length()
}

func (v Vec2) DistanceSquared(o Vec2) float64 {
	return o.Sub(v).LengthSquared()
}

// Normalize returns the unit vector pointing the same way as v, or the zero
// vector if v is zero.
func (v Vec2) Normalize() Vec2 {
	return Vec2(v.r2().Normalize())
}

// Perp returns v rotated a quarter turn counterclockwise (in a y-up frame).
func (v Vec2) Perp() Vec2 {
	return Vec2(v.r2().Ortho())
}

func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Angle is the angle of v from the positive x axis, in (-π, π].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleBetween returns the signed angle that rotates v onto o.
func (v Vec2) AngleBetween(o Vec2) float64 {
	return math.Atan2(v.Cross(o), v.Dot(o))
}

func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Add(o.Sub(v).Mul(t))
}

// Clamp clamps each component into [min, max].
func (v Vec2) Clamp(min, max Vec2) Vec2 {
	return Vec2{
		X: math.Max(min.X, math.Min(max.X, v.X)),
		Y: math.Max(min.Y, math.Min(max.Y, v.Y)),
	}
}

func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func (v Vec2) IsNormalized() bool {
	return math.Abs(v.LengthSquared()-1) <= 2e-4
}

package internal

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Line2 is the infinite, undirected line A*x + B*y = C.
type Line2 struct {
	A, B, C float64
}

func NewLine2(a, b, c float64) Line2 {
	return DefaultStrictMode.Line2(a, b, c)
}

func NewLine2FromPoints(point1, point2 Vec2) Line2 {
	return DefaultStrictMode.Line2FromPoints(point1, point2)
}

func NewLine2FromPointAxis(point, axis Vec2) Line2 {
	return DefaultStrictMode.Line2FromPointAxis(point, axis)
}

func (m StrictMode) Line2(a, b, c float64) Line2 {
	line := Line2{A: a, B: b, C: c}
	m.check("line", line.validity)
	return line
}

// Line2FromPoints builds the line through two distinct points.
func (m StrictMode) Line2FromPoints(point1, point2 Vec2) Line2 {
	a := point2.Y - point1.Y
	b := point1.X - point2.X
	c := a*point1.X + b*point1.Y
	return m.Line2(a, b, c)
}

// Line2FromPointAxis builds the line through point running along axis. The
// axis need not be normalized but must not be zero.
func (m StrictMode) Line2FromPointAxis(point, axis Vec2) Line2 {
	m.check("line axis", func() error {
		if axis.LengthSquared() > 0 {
			return nil
		}
		return errors.New("axis is zero")
	})
	return m.Line2FromPoints(point, point.Add(axis))
}

func (l Line2) validity() (err error) {
	if l.A == 0 && l.B == 0 {
		err = multierr.Append(err, errors.New("a and b are both zero"))
	}
	if !isFinite(l.A) || !isFinite(l.B) || !isFinite(l.C) {
		err = multierr.Append(err, errors.Errorf("coefficients (%g, %g, %g) are not finite", l.A, l.B, l.C))
	}
	return err
}

// X solves for x at the given y. Horizontal lines have no solution.
func (l Line2) X(y float64) (float64, bool) {
	assertValid("line", l.validity)
	if l.A == 0 {
		return 0, false
	}
	return (l.C - l.B*y) / l.A, true
}

// Y solves for y at the given x. Vertical lines have no solution.
func (l Line2) Y(x float64) (float64, bool) {
	assertValid("line", l.validity)
	if l.B == 0 {
		return 0, false
	}
	return (l.C - l.A*x) / l.B, true
}

// Axis is the unit direction of the line.
func (l Line2) Axis() Vec2 {
	assertValid("line", l.validity)
	return V(-l.B, l.A).Normalize()
}

// ClosestPoint intersects the line with its perpendicular through point. The
// two are never parallel, so this always succeeds.
func (l Line2) ClosestPoint(point Vec2) Vec2 {
	assertValid("line", l.validity)
	a := l.B
	b := -l.A
	perpendicular := Line2{A: a, B: b, C: a*point.X + b*point.Y}
	closest, _ := l.IntersectionPoint(perpendicular)
	return closest
}

// IntersectionPoint solves the two implicit forms together. Parallel lines
// report false, and so do coincident ones: the caller cannot tell "nowhere"
// from "everywhere".
func (l Line2) IntersectionPoint(other Line2) (Vec2, bool) {
	assertValid("line", l.validity)
	determinant := l.A*other.B - other.A*l.B
	if determinant == 0 {
		return Vec2{}, false
	}
	return Vec2{
		X: (other.B*l.C - l.B*other.C) / determinant,
		Y: (l.A*other.C - other.A*l.C) / determinant,
	}, true
}

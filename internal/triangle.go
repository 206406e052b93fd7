package internal

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Triangle2 is an ordered triple of vertices. Its winding is derived from the
// signed area rather than stored.
type Triangle2 struct {
	Vertices [3]Vec2
}

func NewTriangle2(a, b, c Vec2) Triangle2 {
	return DefaultStrictMode.Triangle2(a, b, c)
}

func (m StrictMode) Triangle2(a, b, c Vec2) Triangle2 {
	triangle := Triangle2{Vertices: [3]Vec2{a, b, c}}
	m.check("triangle", triangle.validity)
	return triangle
}

func (t Triangle2) validity() (err error) {
	for i, vertex := range t.Vertices {
		if !vertex.IsFinite() {
			err = multierr.Append(err, errors.Errorf("vertex %d %v is not finite", i, vertex))
		}
	}
	return err
}

func (t Triangle2) A() Vec2 { return t.Vertices[0] }
func (t Triangle2) B() Vec2 { return t.Vertices[1] }
func (t Triangle2) C() Vec2 { return t.Vertices[2] }

func (t *Triangle2) SetA(a Vec2) {
	t.Vertices[0] = a
	assertValid("triangle", t.validity)
}

func (t *Triangle2) SetB(b Vec2) {
	t.Vertices[1] = b
	assertValid("triangle", t.validity)
}

func (t *Triangle2) SetC(c Vec2) {
	t.Vertices[2] = c
	assertValid("triangle", t.validity)
}

func (t Triangle2) HasVertex(v Vec2) bool {
	return t.Vertices[0] == v || t.Vertices[1] == v || t.Vertices[2] == v
}

// Interior angles, in radians.

func (t Triangle2) AAngle() float64 {
	return math.Abs(t.C().Sub(t.A()).AngleBetween(t.B().Sub(t.A())))
}

func (t Triangle2) BAngle() float64 {
	return math.Abs(t.C().Sub(t.B()).AngleBetween(t.A().Sub(t.B())))
}

func (t Triangle2) CAngle() float64 {
	return math.Abs(t.A().Sub(t.C()).AngleBetween(t.B().Sub(t.C())))
}

// Angle bisectors average the direction angles towards the two other
// vertices. A line is undirected, so landing on the opposite direction when
// the angles straddle ±π still yields the right line.
func angleBisector(vertex, towards1, towards2 Vec2) Line2 {
	angle := (UnitX.AngleBetween(towards1.Sub(vertex)) + UnitX.AngleBetween(towards2.Sub(vertex))) * 0.5
	return NewLine2FromPointAxis(vertex, VecFromAngle(angle))
}

func (t Triangle2) AAngleBisector() Line2 {
	assertValid("triangle", t.validity)
	return angleBisector(t.A(), t.B(), t.C())
}

func (t Triangle2) BAngleBisector() Line2 {
	assertValid("triangle", t.validity)
	return angleBisector(t.B(), t.C(), t.A())
}

func (t Triangle2) CAngleBisector() Line2 {
	assertValid("triangle", t.validity)
	return angleBisector(t.C(), t.B(), t.A())
}

func (t Triangle2) Edges() [3]LineSegment2 {
	return [3]LineSegment2{t.AB(), t.BC(), t.CA()}
}

func (t Triangle2) AB() LineSegment2 {
	assertValid("triangle", t.validity)
	return LineSegment2{Start: t.A(), End: t.B()}
}

func (t Triangle2) BC() LineSegment2 {
	assertValid("triangle", t.validity)
	return LineSegment2{Start: t.B(), End: t.C()}
}

func (t Triangle2) CA() LineSegment2 {
	assertValid("triangle", t.validity)
	return LineSegment2{Start: t.C(), End: t.A()}
}

// SignedArea is positive for clockwise triangles, matching
// VertexList2.IsClockwise.
func (t Triangle2) SignedArea() float64 {
	return t.B().Sub(t.A()).Cross(t.C().Sub(t.A())) * 0.5
}

func (t Triangle2) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t Triangle2) IsClockwise() bool {
	return t.SignedArea() > 0
}

// Circumcenter intersects the perpendicular bisectors of two edges. Collinear
// vertices, including repeated ones, have no circumcenter.
func (t Triangle2) Circumcenter() (Vec2, bool) {
	assertValid("triangle", t.validity)
	ab, bc := t.AB(), t.BC()
	if ab.IsDegenerate() || bc.IsDegenerate() {
		return Vec2{}, false
	}
	center, ok := ab.PerpendicularBisector().IntersectionPoint(bc.PerpendicularBisector())
	if !ok || !center.IsFinite() {
		return Vec2{}, false
	}
	return center, true
}

// Circumcircle passes through all three vertices. Its stored radius is twice
// the circumradius, like every Circle.
func (t Triangle2) Circumcircle() (Circle, bool) {
	center, ok := t.Circumcenter()
	if !ok {
		return Circle{}, false
	}
	return NewCircle(center, center.Distance(t.A())*2), true
}

// Centroid intersects two medians.
func (t Triangle2) Centroid() (Vec2, bool) {
	assertValid("triangle", t.validity)
	midBC, midCA := t.BC().Center(), t.CA().Center()
	if t.A() == midBC || t.B() == midCA {
		return Vec2{}, false
	}
	median1 := NewLine2FromPoints(t.A(), midBC)
	median2 := NewLine2FromPoints(t.B(), midCA)
	return median1.IntersectionPoint(median2)
}

// Incenter intersects two angle bisectors.
func (t Triangle2) Incenter() (Vec2, bool) {
	assertValid("triangle", t.validity)
	if t.AB().IsDegenerate() || t.BC().IsDegenerate() || t.CA().IsDegenerate() {
		return Vec2{}, false
	}
	return t.AAngleBisector().IntersectionPoint(t.BAngleBisector())
}

// Scale scales the triangle uniformly about its centroid. Triangles without a
// centroid are left alone.
func (t *Triangle2) Scale(factor float64) {
	centroid, ok := t.Centroid()
	if !ok {
		return
	}
	for i, vertex := range t.Vertices {
		t.Vertices[i] = centroid.Add(vertex.Sub(centroid).Mul(factor))
	}
	assertValid("triangle", t.validity)
}

func (t Triangle2) Scaled(factor float64) Triangle2 {
	t.Scale(factor)
	return t
}

// ContainsPoint uses sign consistency of the three sub-triangles. Points on an
// edge count as inside.
func (t Triangle2) ContainsPoint(point Vec2) bool {
	assertValid("triangle", t.validity)
	sign := func(p1, p2, p3 Vec2) float64 {
		return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
	}
	d1 := sign(point, t.A(), t.B())
	d2 := sign(point, t.B(), t.C())
	d3 := sign(point, t.C(), t.A())
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

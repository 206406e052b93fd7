package internal

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// LineRay2 starts at Start and runs forever along the unit vector Axis.
type LineRay2 struct {
	Start Vec2
	Axis  Vec2
}

func NewLineRay2(start, axis Vec2) LineRay2 {
	return DefaultStrictMode.LineRay2(start, axis)
}

// LineRay2 normalizes axis. A zero axis stays zero and fails validation.
func (m StrictMode) LineRay2(start, axis Vec2) LineRay2 {
	ray := LineRay2{Start: start, Axis: axis.Normalize()}
	m.check("ray", ray.validity)
	return ray
}

func (r LineRay2) validity() (err error) {
	if !r.Start.IsFinite() {
		err = multierr.Append(err, errors.Errorf("start %v is not finite", r.Start))
	}
	if !r.Axis.IsFinite() {
		err = multierr.Append(err, errors.Errorf("axis %v is not finite", r.Axis))
	} else if !r.Axis.IsNormalized() {
		err = multierr.Append(err, errors.Errorf("axis %v is not normalized", r.Axis))
	}
	return err
}

// ClosestPoint projects onto the ray, never behind its start.
func (r LineRay2) ClosestPoint(point Vec2) Vec2 {
	assertValid("ray", r.validity)
	t := math.Max(point.Sub(r.Start).Dot(r.Axis), 0)
	return r.Start.Add(r.Axis.Mul(t))
}

func (r LineRay2) Segment(length float64) LineSegment2 {
	assertValid("ray", r.validity)
	return NewLineSegment2(r.Start, r.Start.Add(r.Axis.Mul(length)))
}

func (r LineRay2) Line() Line2 {
	assertValid("ray", r.validity)
	return NewLine2FromPointAxis(r.Start, r.Axis)
}

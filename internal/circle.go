package internal

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Circle stores twice its effective radius: every containment, collision and
// projection query works with Radius * 0.5.
type Circle struct {
	Center Vec2
	Radius float64
}

func NewCircle(center Vec2, radius float64) Circle {
	return DefaultStrictMode.Circle(center, radius)
}

func (m StrictMode) Circle(center Vec2, radius float64) Circle {
	circle := Circle{Center: center, Radius: radius}
	m.check("circle", circle.validity)
	return circle
}

func (c Circle) validity() (err error) {
	if !c.Center.IsFinite() {
		err = multierr.Append(err, errors.Errorf("center %v is not finite", c.Center))
	}
	if !isFinite(c.Radius) {
		err = multierr.Append(err, errors.Errorf("radius %g is not finite", c.Radius))
	} else if c.Radius <= 0 {
		err = multierr.Append(err, errors.Errorf("radius %g is not positive", c.Radius))
	}
	return err
}

// EffectiveRadius is the distance from the center to the boundary.
func (c Circle) EffectiveRadius() float64 {
	return c.Radius * 0.5
}

func (c Circle) ClosestPoint(point Vec2) Vec2 {
	if c.ContainsPoint(point) {
		return point
	}
	return c.Center.Add(point.Sub(c.Center).Normalize().Mul(c.EffectiveRadius()))
}

// ContainsPoint includes the boundary.
func (c Circle) ContainsPoint(point Vec2) bool {
	assertValid("circle", c.validity)
	return c.Center.Distance(point) <= c.EffectiveRadius()
}

package internal

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Aabb is an axis aligned box given by its center and its full extents.
type Aabb struct {
	Position Vec2
	Size     Vec2
}

func NewAabb(position, size Vec2) Aabb {
	return DefaultStrictMode.Aabb(position, size)
}

func (m StrictMode) Aabb(position, size Vec2) Aabb {
	aabb := Aabb{Position: position, Size: size}
	m.check("aabb", aabb.validity)
	return aabb
}

func (b Aabb) validity() (err error) {
	if !b.Position.IsFinite() {
		err = multierr.Append(err, errors.Errorf("position %v is not finite", b.Position))
	}
	if !b.Size.IsFinite() {
		err = multierr.Append(err, errors.Errorf("size %v is not finite", b.Size))
	}
	if b.Size.X < 0 || b.Size.Y < 0 {
		err = multierr.Append(err, errors.Errorf("size %v is negative", b.Size))
	}
	return err
}

func (b Aabb) rect() r2.Rect {
	return r2.RectFromCenterSize(b.Position.r2(), b.Size.r2())
}

func (b Aabb) Min() Vec2 {
	return Vec2(b.rect().Lo())
}

func (b Aabb) Max() Vec2 {
	return Vec2(b.rect().Hi())
}

// ClosestPoint clamps the point into the box, per axis.
func (b Aabb) ClosestPoint(point Vec2) Vec2 {
	assertValid("aabb", b.validity)
	return Vec2(b.rect().ClampPoint(point.r2()))
}

// ContainsPoint is a strict interior test: points on the boundary are outside.
func (b Aabb) ContainsPoint(point Vec2) bool {
	assertValid("aabb", b.validity)
	return b.rect().InteriorContainsPoint(point.r2())
}

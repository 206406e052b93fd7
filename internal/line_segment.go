package internal

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// LineSegment2 joins Start to End. Start and End may coincide, in which case
// the segment behaves like a point.
type LineSegment2 struct {
	Start Vec2
	End   Vec2
}

func NewLineSegment2(start, end Vec2) LineSegment2 {
	return DefaultStrictMode.LineSegment2(start, end)
}

func (m StrictMode) LineSegment2(start, end Vec2) LineSegment2 {
	segment := LineSegment2{Start: start, End: end}
	m.check("segment", segment.validity)
	return segment
}

func (s LineSegment2) validity() (err error) {
	if !s.Start.IsFinite() {
		err = multierr.Append(err, errors.Errorf("start %v is not finite", s.Start))
	}
	if !s.End.IsFinite() {
		err = multierr.Append(err, errors.Errorf("end %v is not finite", s.End))
	}
	return err
}

func (s LineSegment2) IsDegenerate() bool {
	return s.Start == s.End
}

func (s LineSegment2) Center() Vec2 {
	assertValid("segment", s.validity)
	return s.Start.Add(s.End).Mul(0.5)
}

func (s LineSegment2) Length() float64 {
	assertValid("segment", s.validity)
	return s.Start.Distance(s.End)
}

// Axis is the unit direction from Start to End, or zero for a degenerate
// segment.
func (s LineSegment2) Axis() Vec2 {
	assertValid("segment", s.validity)
	return s.End.Sub(s.Start).Normalize()
}

// ClosestPoint projects onto the segment with t clamped to [0, 1].
func (s LineSegment2) ClosestPoint(point Vec2) Vec2 {
	assertValid("segment", s.validity)
	ab := s.End.Sub(s.Start)
	lengthSquared := ab.Dot(ab)
	if lengthSquared == 0 {
		return s.Start
	}
	t := point.Sub(s.Start).Dot(ab) / lengthSquared
	t = math.Max(0, math.Min(1, t))
	return s.Start.Add(ab.Mul(t))
}

// PerpendicularBisector runs through the midpoint at right angles to the
// segment. The segment must not be degenerate.
func (s LineSegment2) PerpendicularBisector() Line2 {
	assertValid("segment", s.validity)
	return NewLine2FromPointAxis(s.Center(), s.Axis().Perp().Negate())
}

// IsSame compares segments without regard to direction.
func (s LineSegment2) IsSame(other LineSegment2) bool {
	return (s.Start == other.Start && s.End == other.End) ||
		(s.Start == other.End && s.End == other.Start)
}

func (s LineSegment2) Reversed() LineSegment2 {
	return LineSegment2{Start: s.End, End: s.Start}
}

// Line extends the segment to an infinite line. The segment must not be
// degenerate.
func (s LineSegment2) Line() Line2 {
	return NewLine2FromPoints(s.Start, s.End)
}

package internal

// Collidable is the closed set of shapes the collision dispatcher knows about.
// Adding a shape means adding a type hint method and the matching arms in
// Colliding; there is no open-ended virtual dispatch.
type Collidable interface {
	collidableTypeHint()
}

// Collidable types enumerated here with type hint
func (Circle) collidableTypeHint()       {}
func (LineSegment2) collidableTypeHint() {}

// Colliding reports whether two shapes overlap. It is symmetric in its
// arguments.
func Colliding(a, b Collidable) bool {
	switch a := a.(type) {
	case Circle:
		switch b := b.(type) {
		case Circle:
			return CirclesColliding(a, b)
		case LineSegment2:
			return CircleSegmentColliding(a, b)
		}
	case LineSegment2:
		switch b := b.(type) {
		case Circle:
			return CircleSegmentColliding(b, a)
		case LineSegment2:
			return SegmentsColliding(a, b)
		}
	}
	fatalf("no collision test for %T and %T", a, b)
	return false
}

// Two circles collide when their centers are closer than the sum of their
// effective radii.
func CirclesColliding(a, b Circle) bool {
	combinedRadius := (a.Radius + b.Radius) * 0.5
	return a.Center.DistanceSquared(b.Center) < combinedRadius*combinedRadius
}

func CircleSegmentColliding(circle Circle, segment LineSegment2) bool {
	return segment.ClosestPoint(circle.Center).Distance(circle.Center) < circle.EffectiveRadius()
}

// SegmentsColliding is the classic orientation test: each segment's endpoints
// must lie strictly on opposite sides of the other. Collinear overlap and
// shared endpoints fall out of the strict comparison rather than being
// handled.
func SegmentsColliding(a, b LineSegment2) bool {
	return ccw(a.Start, b.Start, b.End) != ccw(a.End, b.Start, b.End) &&
		ccw(a.Start, a.End, b.Start) != ccw(a.Start, a.End, b.End)
}

func ccw(a, b, c Vec2) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

package internal

// Polyline is an open chain of vertices. Its edges do not wrap around.
type Polyline []Vec2

func (p Polyline) LineSegments() []LineSegment2 {
	if len(p) < 2 {
		return nil
	}
	segments := make([]LineSegment2, 0, len(p)-1)
	for i := 0; i < len(p)-1; i++ {
		segments = append(segments, NewLineSegment2(p[i], p[i+1]))
	}
	return segments
}

// ClosestPoint finds the nearest point over every edge. The polyline must not
// be empty.
func (p Polyline) ClosestPoint(point Vec2) Vec2 {
	if len(p) == 0 {
		fatalf("closest point on empty polyline")
	}
	DefaultStrictMode.check("point", func() error {
		if point.IsFinite() {
			return nil
		}
		return errNonFinite(point)
	})
	if len(p) == 1 {
		return p[0]
	}

	segments := p.LineSegments()
	closest := segments[0].ClosestPoint(point)
	closestDistance := closest.Distance(point)
	for _, segment := range segments[1:] {
		candidate := segment.ClosestPoint(point)
		if distance := candidate.Distance(point); distance < closestDistance {
			closest, closestDistance = candidate, distance
		}
	}
	return closest
}

// Length is the summed length of every edge.
func (p Polyline) Length() float64 {
	var length float64
	for i := 1; i < len(p); i++ {
		length += p[i-1].Distance(p[i])
	}
	return length
}

func (p Polyline) clone() Polyline {
	if p == nil {
		return nil
	}
	return append(Polyline(nil), p...)
}

package internal

import "github.com/pkg/errors"

// Simplifier reduces an open chain of vertices to a sparser chain that stays
// within tolerance of it. The first and last vertices are always kept.
type Simplifier interface {
	Simplify(vertices []Vec2, tolerance float64, observer Observer) Polyline
}

type GreedySimplifier struct{}

func (GreedySimplifier) Simplify(vertices []Vec2, tolerance float64, observer Observer) Polyline {
	return SimplifyGreedy(vertices, tolerance, observer)
}

type RecursiveSimplifier struct{}

func (RecursiveSimplifier) Simplify(vertices []Vec2, tolerance float64, observer Observer) Polyline {
	return SimplifyRecursive(vertices, tolerance, observer)
}

// ParseSimplifier looks a strategy up by name.
func ParseSimplifier(name string) (Simplifier, error) {
	switch name {
	case "greedy":
		return GreedySimplifier{}, nil
	case "recursive":
		return RecursiveSimplifier{}, nil
	}
	return nil, errors.Errorf("unknown simplification strategy %q", name)
}

// SimplifyGreedy walks the chain once, keeping a vertex whenever it is
// further than tolerance from the last vertex kept.
func SimplifyGreedy(vertices []Vec2, tolerance float64, observer Observer) Polyline {
	observer = orNoop(observer)
	polyline := Polyline{}
	if len(vertices) == 0 {
		return polyline
	}

	polyline = append(polyline, vertices[0])
	for i := 1; i < len(vertices); i++ {
		vertex := vertices[i]
		previous := polyline[len(polyline)-1]
		keep := vertex.Distance(previous) > tolerance || i == len(vertices)-1

		observer.Observe(Step{
			Kind:      StepGreedyVertex,
			Point:     vertex,
			Polyline:  polyline.clone(),
			Previous:  previous,
			Tolerance: tolerance,
			Kept:      keep,
		})

		if keep {
			polyline = append(polyline, vertex)
		}
	}
	return polyline
}

// SimplifyRecursive is Douglas-Peucker: the span between the endpoints is
// split at the vertex deviating most from the segment joining them, until no
// vertex deviates by more than tolerance.
func SimplifyRecursive(vertices []Vec2, tolerance float64, observer Observer) Polyline {
	observer = orNoop(observer)
	switch len(vertices) {
	case 0:
		return Polyline{}
	case 1:
		return Polyline{vertices[0]}
	}
	anchor := NewLineSegment2(vertices[0], vertices[len(vertices)-1])
	return subdivide(anchor, vertices[1:len(vertices)-1], tolerance, observer)
}

// subdivide simplifies the vertices strictly between the anchor's endpoints.
func subdivide(anchor LineSegment2, between []Vec2, tolerance float64, observer Observer) Polyline {
	if len(between) == 0 {
		observer.Observe(Step{
			Kind:      StepSubdivide,
			Anchor:    anchor,
			Tolerance: tolerance,
		})
		return Polyline{anchor.Start, anchor.End}
	}

	furthest := 0
	deviation := anchor.ClosestPoint(between[0]).Distance(between[0])
	for i, vertex := range between[1:] {
		if distance := anchor.ClosestPoint(vertex).Distance(vertex); distance > deviation {
			furthest, deviation = i+1, distance
		}
	}
	split := deviation > tolerance

	observer.Observe(Step{
		Kind:      StepSubdivide,
		Point:     between[furthest],
		Polyline:  Polyline(cloneVecs(between)),
		Anchor:    anchor,
		Furthest:  between[furthest],
		Deviation: deviation,
		Tolerance: tolerance,
		Kept:      split,
	})

	if !split {
		return Polyline{anchor.Start, anchor.End}
	}

	pivot := between[furthest]
	left := subdivide(NewLineSegment2(anchor.Start, pivot), between[:furthest], tolerance, observer)
	right := subdivide(NewLineSegment2(pivot, anchor.End), between[furthest+1:], tolerance, observer)
	// Both halves contain the pivot.
	return append(left, right[1:]...)
}

package internal

// Ear clipping triangulation of a simple polygon. An ear is a vertex whose
// triangle with its two neighbours is convex and holds no other vertex of the
// polygon. Clipping an ear leaves a simple polygon with one fewer vertex, so
// repeating until three vertices remain triangulates the whole thing.
//
// The scan restarts from the first vertex after every clip, which keeps the
// output deterministic at the cost of O(n³) worst case time.

func TriangulateEarClipping(vertices []Vec2, observer Observer) []Triangle2 {
	observer = orNoop(observer)
	if len(vertices) < 3 {
		return nil
	}

	polygon := VertexList2(cloneVecs(vertices))
	if !polygon.IsSimplePolygon() {
		return nil
	}
	polygon.MakeCounterclockwise()
	if polygon.SignedArea() == 0 {
		// Every vertex is collinear, so there are no ears to find.
		return nil
	}

	remaining := []Vec2(polygon)
	triangles := make([]Triangle2, 0, len(remaining)-2)
	for len(remaining) > 3 {
		ear := -1
		for i := range remaining {
			n := len(remaining)
			prev, next := CircularIndex(i-1, n), CircularIndex(i+1, n)
			candidate := NewTriangle2(remaining[prev], remaining[i], remaining[next])

			// The polygon now winds counterclockwise, so a convex vertex forms a
			// counterclockwise triangle with its neighbours. Zero area triangles
			// are not ears.
			convex := candidate.SignedArea() < 0
			var blocking []Vec2
			if convex {
				for j, other := range remaining {
					if j == prev || j == i || j == next {
						continue
					}
					if candidate.ContainsPoint(other) {
						blocking = append(blocking, other)
					}
				}
			}
			accepted := convex && len(blocking) == 0

			observer.Observe(Step{
				Kind:      StepEarCandidate,
				Point:     remaining[i],
				Triangles: cloneTriangles(triangles),
				Candidate: candidate,
				Convex:    convex,
				Accepted:  accepted,
				Blocking:  blocking,
			})

			if accepted {
				triangles = append(triangles, candidate)
				ear = i
				break
			}
		}

		// A polygon that passes the approximate simplicity test can still have
		// no ear, for example when edges touch without crossing. Give up rather
		// than spin.
		if ear < 0 {
			return nil
		}
		remaining = append(remaining[:ear], remaining[ear+1:]...)
	}

	triangles = append(triangles, NewTriangle2(remaining[0], remaining[1], remaining[2]))
	return triangles
}

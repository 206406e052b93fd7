package internal

// Incremental triangulation by circumcircle repair (Bowyer-Watson). Points are
// inserted one at a time into a triangulation seeded with a super-triangle
// that encloses every input point. Each insertion removes the triangles whose
// circumcircle contains the new point and fans the hole's boundary to it.
//
// This is O(n²) in the number of points, as there is no point location
// structure. It is intended for interactive point counts.

const (
	superTriangleGrowth    = 1.1
	superTriangleMargin    = 1.2
	maxSuperTriangleGrowth = 512
)

// SuperTriangle builds a triangle around the centroid of points, grown until
// it contains all of them and then given some extra margin. It fails only if
// the points are too spread out to enclose in a bounded number of steps.
func SuperTriangle(points []Vec2) (Triangle2, bool) {
	if len(points) == 0 {
		return Triangle2{}, false
	}
	var center Vec2
	for _, point := range points {
		center = center.Add(point)
	}
	center = center.Mul(1 / float64(len(points)))

	super := NewTriangle2(
		center.Add(V(-100, -100)),
		center.Add(V(-100, 100)),
		center.Add(V(150, 0)),
	)

	containsAll := func() bool {
		for _, point := range points {
			if !super.ContainsPoint(point) {
				return false
			}
		}
		return true
	}

	for i := 0; !containsAll(); i++ {
		if i == maxSuperTriangleGrowth {
			return Triangle2{}, false
		}
		super.Scale(superTriangleGrowth)
	}
	super.Scale(superTriangleMargin)
	return super, true
}

func TriangulateIncremental(points []Vec2, observer Observer) []Triangle2 {
	observer = orNoop(observer)
	points = uniquePoints(points)
	if len(points) < 3 {
		return nil
	}

	super, ok := SuperTriangle(points)
	if !ok {
		return nil
	}

	triangulation := []Triangle2{super}
	for _, point := range points {
		var badIndices []int
		var bad []Triangle2
		var circumcircles []Circle
		for i, triangle := range triangulation {
			// Collinear triangles have no circumcircle and can never be bad.
			circumcircle, ok := triangle.Circumcircle()
			if !ok {
				continue
			}
			if circumcircle.ContainsPoint(point) {
				badIndices = append(badIndices, i)
				bad = append(bad, triangle)
				circumcircles = append(circumcircles, circumcircle)
			}
		}

		boundary, shared := cavityBoundary(bad)

		observer.Observe(Step{
			Kind:          StepInsertPoint,
			Point:         point,
			Triangles:     cloneTriangles(triangulation),
			Bad:           cloneTriangles(bad),
			Circumcircles: circumcircles,
			Boundary:      cloneSegments(boundary),
			Shared:        cloneSegments(shared),
		})

		if len(bad) == 0 {
			continue
		}

		triangulation = removeIndices(triangulation, badIndices)
		for _, edge := range boundary {
			triangulation = append(triangulation, NewTriangle2(edge.Start, edge.End, point))
		}
	}

	result := make([]Triangle2, 0, len(triangulation))
	for _, triangle := range triangulation {
		if touchesTriangle(triangle, super) {
			continue
		}
		result = append(result, triangle)
	}
	return result
}

// The boundary of the union of the bad triangles is made of the edges that
// belong to exactly one of them. Edges shared by two bad triangles are
// interior to the cavity. Edge identity ignores direction.
func cavityBoundary(bad []Triangle2) (boundary, shared []LineSegment2) {
	for i, triangle := range bad {
		for _, edge := range triangle.Edges() {
			isShared := false
		search:
			for j, other := range bad {
				if i == j {
					continue
				}
				for _, otherEdge := range other.Edges() {
					if edge.IsSame(otherEdge) {
						isShared = true
						break search
					}
				}
			}
			if isShared {
				shared = append(shared, edge)
			} else {
				boundary = append(boundary, edge)
			}
		}
	}
	return boundary, shared
}

// Remove the elements at the given ascending indices, preserving order.
func removeIndices(triangles []Triangle2, indices []int) []Triangle2 {
	result := make([]Triangle2, 0, len(triangles)-len(indices))
	next := 0
	for i, triangle := range triangles {
		if next < len(indices) && indices[next] == i {
			next++
			continue
		}
		result = append(result, triangle)
	}
	return result
}

func touchesTriangle(triangle, super Triangle2) bool {
	for _, vertex := range super.Vertices {
		if triangle.HasVertex(vertex) {
			return true
		}
	}
	return false
}

// Repeated points would be fanned to themselves, producing zero area
// triangles, so only the first occurrence is kept.
func uniquePoints(points []Vec2) []Vec2 {
	seen := make(map[Vec2]struct{}, len(points))
	unique := make([]Vec2, 0, len(points))
	for _, point := range points {
		if _, ok := seen[point]; ok {
			continue
		}
		seen[point] = struct{}{}
		unique = append(unique, point)
	}
	return unique
}

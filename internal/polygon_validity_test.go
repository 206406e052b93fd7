package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a polygon triangulation is valid. The rules are:
// 1. The set of points in the triangles must equal the set of points in the polygon.
// 2. The set of edges in the polygon is a subset of the set of edges in the triangles.
// 3. Every triangle is counterclockwise
// 4. No triangle has zero area
// 5. The sum of the areas of all triangles is equal to the area of the polygon.
func AssertValidTriangulation(t *testing.T, polygon VertexList2, triangles []Triangle2) {
	t.Helper()
	require.Len(t, triangles, len(polygon)-2, "an n-gon has n-2 triangles")

	requireSameVertexSet(t, polygon, triangles)

	triangleEdges := make(normalizedSegmentSet)
	var triangleArea float64
	for _, tri := range triangles {
		require.NotZero(t, tri.SignedArea(), "zero area triangle: %v", tri)
		require.False(t, tri.IsClockwise(), "clockwise triangle: %v", tri)
		triangleArea += tri.Area()
		for _, edge := range tri.Edges() {
			triangleEdges.add(edge)
		}
	}

	for _, edge := range polygon.Edges() {
		require.True(t, triangleEdges.contains(edge), "polygon edge %v is not an edge of any triangle", edge)
	}

	polygonArea := polygon.SignedArea()
	if polygonArea < 0 {
		polygonArea = -polygonArea
	}
	require.InDelta(t, polygonArea, triangleArea, 1e-6*polygonArea, "sum of the areas of all triangles is equal to the area of the polygon")
}

// Helper to check a point set triangulation. Every point must be used, no
// triangle may be degenerate, no two triangles may overlap, and no point may
// lie strictly inside the circumcircle of a triangle.
func AssertValidPointTriangulation(t *testing.T, points []Vec2, triangles []Triangle2) {
	t.Helper()
	requireSameVertexSet(t, points, triangles)

	for _, tri := range triangles {
		require.NotZero(t, tri.SignedArea(), "zero area triangle: %v", tri)
		circumcircle, ok := tri.Circumcircle()
		require.True(t, ok)
		for _, point := range points {
			distance := point.Distance(circumcircle.Center)
			require.False(t, distance < circumcircle.EffectiveRadius()-1e-9,
				"point %v is inside the circumcircle of %v", point, tri)
		}
	}

	requireNoOverlap(t, triangles)
}

func requireSameVertexSet(t *testing.T, points []Vec2, triangles []Triangle2) {
	t.Helper()
	expected := make(map[Vec2]struct{})
	for _, p := range points {
		expected[p] = struct{}{}
	}
	actual := make(map[Vec2]struct{})
	for _, tri := range triangles {
		for _, v := range tri.Vertices {
			actual[v] = struct{}{}
		}
	}
	require.Equal(t, expected, actual, "set of points in the triangles must equal the input points")
}

// Check overlap by sampling. The centroid of each triangle, and points pulled
// slightly inward from each of its vertices, must be strictly inside that
// triangle only.
func requireNoOverlap(t *testing.T, triangles []Triangle2) {
	t.Helper()
	for i, tri := range triangles {
		centroid, ok := tri.Centroid()
		require.True(t, ok)
		samples := []Vec2{centroid}
		for _, v := range tri.Vertices {
			samples = append(samples, v.Lerp(centroid, 0.05))
		}
		for j, other := range triangles {
			if i == j {
				continue
			}
			for _, sample := range samples {
				require.False(t, strictlyContains(other, sample), "triangles %v and %v overlap at %v", tri, other, sample)
			}
		}
	}
}

func strictlyContains(tri Triangle2, point Vec2) bool {
	d1 := NewTriangle2(point, tri.A(), tri.B()).SignedArea()
	d2 := NewTriangle2(point, tri.B(), tri.C()).SignedArea()
	d3 := NewTriangle2(point, tri.C(), tri.A()).SignedArea()
	return (d1 > 0 && d2 > 0 && d3 > 0) || (d1 < 0 && d2 < 0 && d3 < 0)
}

// Used in the helper above, this is a "normalized" line segment, where the
// lexicographically lower point is always first
type normalizedSegment struct {
	lower, upper Vec2
}

func newNormalizedSegment(segment LineSegment2) normalizedSegment {
	a, b := segment.Start, segment.End
	if a.Y < b.Y || (a.Y == b.Y && a.X < b.X) {
		return normalizedSegment{a, b}
	}
	return normalizedSegment{b, a}
}

type normalizedSegmentSet map[normalizedSegment]struct{}

func (set normalizedSegmentSet) add(segment LineSegment2) {
	set[newNormalizedSegment(segment)] = struct{}{}
}

func (set normalizedSegmentSet) contains(segment LineSegment2) bool {
	_, ok := set[newNormalizedSegment(segment)]
	return ok
}

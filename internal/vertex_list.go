package internal

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// VertexList2 is the boundary of a closed polygon. The last vertex connects
// back to the first.
type VertexList2 []Vec2

func errNonFinite(v Vec2) error {
	return errors.Errorf("point %v is not finite", v)
}

// CheckVertices panics, in strict mode, listing every vertex that is not
// finite.
func (m StrictMode) CheckVertices(vertices []Vec2) {
	m.check("vertices", func() (err error) {
		for i, v := range vertices {
			if !v.IsFinite() {
				err = multierr.Append(err, errors.Wrapf(errNonFinite(v), "vertex %d", i))
			}
		}
		return err
	})
}

func (vl VertexList2) Edges() []LineSegment2 {
	edges := make([]LineSegment2, 0, len(vl))
	for i := range vl {
		edges = append(edges, NewLineSegment2(vl[i], vl[CircularIndex(i+1, len(vl))]))
	}
	return edges
}

// IsSimplePolygon checks every pair of edges that do not share a vertex for a
// crossing. Edges that merely touch are not detected, since segment collision
// uses strict orientation tests.
//
// TODO: replace the O(n²) pair scan with a sweep line once inputs grow past a
// few hundred vertices.
func (vl VertexList2) IsSimplePolygon() bool {
	edges := vl.Edges()
	n := len(edges)
	for i := 0; i < n; i++ {
		// Skip the edge itself and its successor, and for the first edge also
		// the last one, which wraps around to share vertex 0.
		last := n
		if i == 0 {
			last = n - 1
		}
		for j := i + 2; j < last; j++ {
			if SegmentsColliding(edges[i], edges[j]) {
				return false
			}
		}
	}
	return true
}

// SignedArea is the shoelace sum halved. Positive means clockwise.
func (vl VertexList2) SignedArea() float64 {
	var area float64
	for i := range vl {
		j := CircularIndex(i+1, len(vl))
		area += vl[i].X * vl[j].Y
		area -= vl[j].X * vl[i].Y
	}
	return area / 2
}

func (vl VertexList2) IsClockwise() bool {
	return vl.SignedArea() > 0
}

func (vl VertexList2) Reversed() VertexList2 {
	reversed := make(VertexList2, 0, len(vl))
	for i := len(vl) - 1; i >= 0; i-- {
		reversed = append(reversed, vl[i])
	}
	return reversed
}

func (vl *VertexList2) MakeClockwise() {
	if !vl.IsClockwise() {
		*vl = vl.Reversed()
	}
}

func (vl *VertexList2) MakeCounterclockwise() {
	if vl.IsClockwise() {
		*vl = vl.Reversed()
	}
}

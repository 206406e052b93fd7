package render

import (
	"math"

	"github.com/osuushi/geom2d/internal"
	"github.com/osuushi/geom2d/internal/dbg"
)

// DrawStep paints an algorithm checkpoint onto the canvas.
func DrawStep(canvas *Canvas, step internal.Step, theme Theme) {
	switch step.Kind {
	case internal.StepInsertPoint:
		for _, triangle := range step.Triangles {
			canvas.DrawTriangle(triangle, theme.Triangle)
		}
		for _, triangle := range step.Bad {
			canvas.DrawTriangle(triangle, theme.TriangleBad)
		}
		for _, circle := range step.Circumcircles {
			canvas.DrawCircle(circle, theme.Circumcircle)
		}
		for _, edge := range step.Boundary {
			canvas.DrawSegment(edge, theme.EdgeKeep)
		}
		for _, edge := range step.Shared {
			canvas.DrawSegment(edge, theme.EdgeRemove)
		}
		canvas.DrawPoint(step.Point, theme.PointCurrent)

	case internal.StepEarCandidate:
		for _, triangle := range step.Triangles {
			canvas.DrawTriangle(triangle, theme.Triangle)
		}
		if step.Accepted {
			canvas.DrawTriangle(step.Candidate, theme.EarAccepted)
		} else {
			canvas.DrawTriangle(step.Candidate, theme.EarRejected)
		}
		for _, vertex := range step.Blocking {
			canvas.DrawPoint(vertex, theme.VertexBad)
		}
		canvas.DrawPoint(step.Point, theme.PointCurrent)

	case internal.StepGreedyVertex:
		canvas.DrawPolyline(step.Polyline, theme.Result)
		canvas.DrawPoint(step.Previous, theme.VertexPrevious)
		if step.Tolerance > 0 && !math.IsInf(step.Tolerance, 1) {
			// Circles store twice their effective radius.
			canvas.DrawCircle(internal.NewCircle(step.Previous, step.Tolerance*2), theme.VertexPreviousRadius)
		}
		canvas.DrawPoint(step.Point, theme.VertexCurrent)
		if step.Kept {
			canvas.DrawSegment(internal.NewLineSegment2(step.Previous, step.Point), theme.LineNew)
		}

	case internal.StepSubdivide:
		if !step.Kept {
			canvas.DrawSegment(step.Anchor, theme.Result)
			for _, vertex := range step.Polyline {
				canvas.DrawPoint(vertex, theme.CompleteVertex)
			}
			break
		}
		canvas.DrawSegment(step.Anchor, theme.IncompleteLine)
		canvas.DrawPoint(step.Furthest, theme.IncompleteVertex)
		canvas.DrawSegment(internal.NewLineSegment2(step.Furthest, step.Anchor.Center()), theme.IncompleteLineSkinny)
	}

	canvas.DrawLabel(step.Point, dbg.Name(step.Point), theme.Label)
}

// DrawTriangulation paints a finished triangulation with its vertices.
func DrawTriangulation(canvas *Canvas, triangles []internal.Triangle2, theme Theme) {
	for _, triangle := range triangles {
		canvas.DrawTriangle(triangle, theme.Triangle)
		for _, vertex := range triangle.Vertices {
			canvas.DrawPoint(vertex, theme.Vertex)
		}
	}
}

// DrawInput paints a polygon, in the "bad" style if it is not simple.
func DrawInput(canvas *Canvas, vertices internal.VertexList2, theme Theme) {
	style := theme.Polygon
	if len(vertices) >= 3 && !vertices.IsSimplePolygon() {
		style = theme.PolygonBad
	}
	canvas.DrawPolygon(vertices, style)
	for _, vertex := range vertices {
		canvas.DrawPoint(vertex, theme.Vertex)
	}
}

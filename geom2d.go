// Planar geometry primitives and the algorithms built from them.
//
// This package provides validated shapes (boxes, circles, lines, rays,
// segments, triangles, polylines and polygons), closest point and containment
// queries, pairwise collision tests, two triangulation algorithms and two
// polyline simplification strategies. Every algorithm can report intermediate
// state to an Observer, which is how the renderer shows it step by step.
//
// The NewX constructors and the algorithm entry points validate under
// DefaultStrictMode and report problems as errors. DefaultStrictMode is Strict
// unless the module is built with the "release" build tag, which turns the
// checks off. A mode can also be chosen explicitly with its methods
// (Strict.Circle, Lenient.Circle, ...), which panic with a GeometryError
// instead; HandleGeometryPanicRecover turns that panic back into an error.
package geom2d

import (
	"github.com/osuushi/geom2d/internal"
)

type Vec2 = internal.Vec2
type Aabb = internal.Aabb
type Circle = internal.Circle
type Line2 = internal.Line2
type LineRay2 = internal.LineRay2
type LineSegment2 = internal.LineSegment2
type Triangle2 = internal.Triangle2
type Polyline = internal.Polyline
type VertexList2 = internal.VertexList2
type Collidable = internal.Collidable

type GeometryError = internal.GeometryError

type StrictMode = internal.StrictMode

const (
	Lenient           = internal.Lenient
	Strict            = internal.Strict
	DefaultStrictMode = internal.DefaultStrictMode
)

type Observer = internal.Observer
type ObserverFunc = internal.ObserverFunc
type Step = internal.Step
type StepKind = internal.StepKind
type Stepper = internal.Stepper
type StepRecorder = internal.StepRecorder
type Simplifier = internal.Simplifier

const (
	StepInsertPoint  = internal.StepInsertPoint
	StepEarCandidate = internal.StepEarCandidate
	StepGreedyVertex = internal.StepGreedyVertex
	StepSubdivide    = internal.StepSubdivide
)

func V(x, y float64) Vec2 {
	return internal.V(x, y)
}

func NewStepper(target int) *Stepper {
	return internal.NewStepper(target)
}

func ParseSimplifier(name string) (Simplifier, error) {
	return internal.ParseSimplifier(name)
}

func Colliding(a, b Collidable) bool {
	return internal.Colliding(a, b)
}

// HandleGeometryPanicRecover converts a recovered GeometryError into an error
// and re-panics anything else. Call it with recover() in a deferred function.
func HandleGeometryPanicRecover(r interface{}) error {
	return internal.HandleGeometryPanicRecover(r)
}

// Run fn, converting a geometry panic into an error.
func guard(fn func()) (err error) {
	defer func() {
		recoveredErr := internal.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}

func NewAabb(position, size Vec2) (b Aabb, err error) {
	err = guard(func() { b = DefaultStrictMode.Aabb(position, size) })
	return b, err
}

func NewCircle(center Vec2, radius float64) (c Circle, err error) {
	err = guard(func() { c = DefaultStrictMode.Circle(center, radius) })
	return c, err
}

func NewLine2(a, b, c float64) (l Line2, err error) {
	err = guard(func() { l = DefaultStrictMode.Line2(a, b, c) })
	return l, err
}

func NewLine2FromPoints(point1, point2 Vec2) (l Line2, err error) {
	err = guard(func() { l = DefaultStrictMode.Line2FromPoints(point1, point2) })
	return l, err
}

func NewLine2FromPointAxis(point, axis Vec2) (l Line2, err error) {
	err = guard(func() { l = DefaultStrictMode.Line2FromPointAxis(point, axis) })
	return l, err
}

func NewLineRay2(start, axis Vec2) (r LineRay2, err error) {
	err = guard(func() { r = DefaultStrictMode.LineRay2(start, axis) })
	return r, err
}

func NewLineSegment2(start, end Vec2) (s LineSegment2, err error) {
	err = guard(func() { s = DefaultStrictMode.LineSegment2(start, end) })
	return s, err
}

func NewTriangle2(a, b, c Vec2) (t Triangle2, err error) {
	err = guard(func() { t = DefaultStrictMode.Triangle2(a, b, c) })
	return t, err
}

// TriangulateIncremental triangulates a point set by inserting one point at a
// time and repairing the triangles whose circumcircle it falls in. Repeated
// points are used once. Fewer than three distinct points give no triangles.
func TriangulateIncremental(points []Vec2, observers ...Observer) (triangles []Triangle2, err error) {
	err = guard(func() {
		DefaultStrictMode.CheckVertices(points)
		triangles = internal.TriangulateIncremental(points, internal.MultiObserver(observers...))
	})
	return triangles, err
}

// TriangulateEarClipping triangulates a simple polygon, given in either
// winding. A polygon that is not simple, or has fewer than three vertices,
// gives no triangles.
func TriangulateEarClipping(vertices []Vec2, observers ...Observer) (triangles []Triangle2, err error) {
	err = guard(func() {
		DefaultStrictMode.CheckVertices(vertices)
		triangles = internal.TriangulateEarClipping(vertices, internal.MultiObserver(observers...))
	})
	return triangles, err
}

func SimplifyGreedy(vertices []Vec2, tolerance float64, observers ...Observer) (polyline Polyline, err error) {
	err = guard(func() {
		DefaultStrictMode.CheckVertices(vertices)
		polyline = internal.SimplifyGreedy(vertices, tolerance, internal.MultiObserver(observers...))
	})
	return polyline, err
}

func SimplifyRecursive(vertices []Vec2, tolerance float64, observers ...Observer) (polyline Polyline, err error) {
	err = guard(func() {
		DefaultStrictMode.CheckVertices(vertices)
		polyline = internal.SimplifyRecursive(vertices, tolerance, internal.MultiObserver(observers...))
	})
	return polyline, err
}

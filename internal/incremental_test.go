package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuperTriangle(t *testing.T) {
	t.Run("contains every point", func(t *testing.T) {
		points := append(Sunflower(50), V(1000, -400), V(-350, 900))
		super, ok := SuperTriangle(points)
		require.True(t, ok)
		for _, p := range points {
			assert.True(t, super.ContainsPoint(p), "%v", p)
		}
	})

	t.Run("no points", func(t *testing.T) {
		_, ok := SuperTriangle(nil)
		assert.False(t, ok)
	})

	t.Run("unbounded spread", func(t *testing.T) {
		_, ok := SuperTriangle([]Vec2{V(0, 0), V(1e300, 0)})
		assert.False(t, ok)
	})
}

func TestTriangulateIncremental(t *testing.T) {
	t.Run("right triangle", func(t *testing.T) {
		points := []Vec2{V(0, 0), V(4, 0), V(0, 3)}
		triangles := TriangulateIncremental(points, nil)
		require.Len(t, triangles, 1)
		AssertValidPointTriangulation(t, points, triangles)
	})

	t.Run("quadrilateral", func(t *testing.T) {
		points := []Vec2{V(0, 0), V(4, 0), V(0, 3), V(4, 3.5)}
		triangles := TriangulateIncremental(points, nil)
		require.Len(t, triangles, 2)
		AssertValidPointTriangulation(t, points, triangles)
	})

	t.Run("sunflower", func(t *testing.T) {
		points := Sunflower(40)
		AssertValidPointTriangulation(t, points, TriangulateIncremental(points, nil))
	})

	t.Run("jittered grid", func(t *testing.T) {
		points := JitteredGrid(6)
		AssertValidPointTriangulation(t, points, TriangulateIncremental(points, nil))
	})

	t.Run("repeated points are used once", func(t *testing.T) {
		points := []Vec2{V(0, 0), V(4, 0), V(0, 3), V(0, 0), V(4, 0)}
		triangles := TriangulateIncremental(points, nil)
		require.Len(t, triangles, 1)
		AssertValidPointTriangulation(t, points, triangles)
	})

	t.Run("too few points", func(t *testing.T) {
		assert.Empty(t, TriangulateIncremental(nil, nil))
		assert.Empty(t, TriangulateIncremental([]Vec2{V(0, 0), V(1, 1)}, nil))
		assert.Empty(t, TriangulateIncremental([]Vec2{V(0, 0), V(1, 1), V(0, 0)}, nil))
	})

	t.Run("collinear points", func(t *testing.T) {
		assert.Empty(t, TriangulateIncremental([]Vec2{V(0, 0), V(1, 0), V(2, 0)}, nil))
	})
}

func TestTriangulateIncrementalSteps(t *testing.T) {
	points := JitteredGrid(4)
	var recorder StepRecorder
	triangles := TriangulateIncremental(points, &recorder)

	require.Len(t, recorder.Steps, len(points), "one step per inserted point")
	for i, step := range recorder.Steps {
		assert.Equal(t, StepInsertPoint, step.Kind)
		assert.Equal(t, points[i], step.Point)
		assert.Len(t, step.Circumcircles, len(step.Bad))
		for _, bad := range step.Bad {
			assert.Contains(t, step.Triangles, bad)
		}
		// Fanning the boundary replaces the bad triangles.
		if i+1 < len(recorder.Steps) {
			next := recorder.Steps[i+1]
			assert.Len(t, next.Triangles, len(step.Triangles)-len(step.Bad)+len(step.Boundary))
		}
	}

	t.Run("the first point splits the super triangle", func(t *testing.T) {
		first := recorder.Steps[0]
		assert.Len(t, first.Triangles, 1)
		assert.Len(t, first.Bad, 1)
		assert.Len(t, first.Boundary, 3)
		assert.Empty(t, first.Shared)
	})

	t.Run("observing does not change the result", func(t *testing.T) {
		assert.Equal(t, TriangulateIncremental(points, nil), triangles)
	})

	t.Run("stepper captures one step", func(t *testing.T) {
		stepper := NewStepper(3)
		TriangulateIncremental(points, stepper)
		step, ok := stepper.Captured()
		require.True(t, ok)
		assert.Equal(t, points[2], step.Point)
		assert.Equal(t, len(points), stepper.Last())
	})
}

package dbg

import (
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"

	"github.com/osuushi/geom2d/internal"
)

func TestName(t *testing.T) {
	t.Run("equal values share a name", func(t *testing.T) {
		a := internal.NewTriangle2(internal.V(0, 0), internal.V(1, 0), internal.V(0, 1))
		b := internal.NewTriangle2(internal.V(0, 0), internal.V(1, 0), internal.V(0, 1))
		assert.Equal(t, Name(a), Name(b))
		assert.NotEmpty(t, Name(a))
	})

	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, "Ø", Name(nil))
		var triangle *internal.Triangle2
		assert.Equal(t, "Ø", Name(triangle))
		var polyline internal.Polyline
		assert.Equal(t, "Ø", Name(polyline))
	})

	t.Run("slices are named by contents", func(t *testing.T) {
		a := internal.Polyline{internal.V(0, 0), internal.V(1, 1)}
		b := internal.Polyline{internal.V(0, 0), internal.V(1, 1)}
		assert.Equal(t, Name(a), Name(b))
	})
}

func TestColored(t *testing.T) {
	point := internal.V(3, 4)
	assert.Equal(t, aurora.Yellow(Name(point)).String(), Colored(point))

	circle := internal.NewCircle(point, 1)
	assert.Equal(t, aurora.Magenta(Name(circle)).String(), Colored(circle))

	assert.Equal(t, aurora.Red(Name("other")).String(), Colored("other"))
}

func TestDump(t *testing.T) {
	dump := Dump(internal.NewLineSegment2(internal.V(0, 0), internal.V(1, 0)))
	assert.Contains(t, dump, "Start")
	assert.Contains(t, dump, "End")
}

func TestDescribe(t *testing.T) {
	var recorder internal.StepRecorder
	internal.TriangulateEarClipping([]internal.Vec2{internal.V(0, 0), internal.V(1, 0), internal.V(1, 1), internal.V(0, 1)}, &recorder)
	if assert.NotEmpty(t, recorder.Steps) {
		description := Describe(recorder.Steps[0])
		assert.True(t, strings.HasPrefix(description, "ear candidate "), description)
		assert.Contains(t, description, "accepted=true")
	}

	description := Describe(internal.Step{Kind: internal.StepSubdivide, Deviation: 0.5, Kept: false})
	assert.Contains(t, description, "deviation 0.5 split=false")
}

package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"

	"github.com/osuushi/geom2d/internal"
)

// This converts arbitrary comparable values into random readable names. It
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it. Shapes are compared by value, so two equal
// triangles share a name, which is exactly what you want when reading a step
// trace.

var (
	memoLock sync.Mutex
	memo     = make(map[interface{}]string)
)

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return value.IsNil()
	}
	return false
}

func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}
	// Slices are not hashable, so they are named by their contents.
	if !reflect.TypeOf(obj).Comparable() {
		obj = fmt.Sprint(obj)
	}

	memoLock.Lock()
	defer memoLock.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Colored is Name, painted by the kind of shape for terminal output.
func Colored(obj interface{}) string {
	name := Name(obj)
	switch obj.(type) {
	case internal.Triangle2, *internal.Triangle2:
		return aurora.Cyan(name).String()
	case internal.Circle, *internal.Circle:
		return aurora.Magenta(name).String()
	case internal.LineSegment2, *internal.LineSegment2, internal.Line2, internal.LineRay2:
		return aurora.Green(name).String()
	case internal.Vec2:
		return aurora.Yellow(name).String()
	case internal.Polyline, internal.VertexList2:
		return aurora.Blue(name).String()
	}
	return aurora.Red(name).String()
}

// Dump pretty prints a value, one field per line.
func Dump(obj interface{}) string {
	return fmt.Sprintf("%# v", pretty.Formatter(obj))
}

// Describe summarizes a step as one line, naming the shapes involved.
func Describe(step internal.Step) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", step.Kind, Colored(step.Point))
	switch step.Kind {
	case internal.StepInsertPoint:
		fmt.Fprintf(&b, ": %d triangles, %d bad, %d boundary edges", len(step.Triangles), len(step.Bad), len(step.Boundary))
	case internal.StepEarCandidate:
		fmt.Fprintf(&b, ": candidate %s convex=%t accepted=%t", Colored(step.Candidate), step.Convex, step.Accepted)
		for _, blocker := range step.Blocking {
			fmt.Fprintf(&b, " blocked by %s", Colored(blocker))
		}
	case internal.StepGreedyVertex:
		fmt.Fprintf(&b, ": previous %s kept=%t", Colored(step.Previous), step.Kept)
	case internal.StepSubdivide:
		fmt.Fprintf(&b, ": anchor %s deviation %g split=%t", Colored(step.Anchor), step.Deviation, step.Kept)
	}
	return b.String()
}

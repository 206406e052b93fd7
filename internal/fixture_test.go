package internal

import (
	"embed"
	"log"
	"math"
)

// Test shapes. SVG fixtures live in the fixtures/ directory and are available
// by name, sans extension. Loading a fixture that is missing or malformed is a
// bug in the test, so it exits instead of returning an error.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) VertexList2 {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	polygons, err := ReadSVGPolygons(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one shape found in fixture %q", name)
	}
	return VertexList2(polygons[0])
}

// Some ad hoc code specified fixtures

func SimpleStar() VertexList2 {
	var points VertexList2
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, V(radius*math.Cos(angle), radius*math.Sin(angle)))
	}
	return points
}

func UnitSquare() VertexList2 {
	return VertexList2{V(0, 0), V(1, 0), V(1, 1), V(0, 1)}
}

// A square with a notch cut into its top edge, so that one vertex is
// reflex.
func NotchedSquare() VertexList2 {
	return VertexList2{V(0, 0), V(4, 0), V(4, 4), V(2, 1), V(0, 4)}
}

// A bow tie crosses itself in the middle.
func BowTie() VertexList2 {
	return VertexList2{V(0, 0), V(2, 2), V(2, 0), V(0, 2)}
}

// Points on a sunflower spiral are well spread and in general position.
func Sunflower(n int) []Vec2 {
	const goldenAngle = 2.399963
	points := make([]Vec2, 0, n)
	for i := 0; i < n; i++ {
		r := math.Sqrt(float64(i) + 0.5)
		angle := float64(i) * goldenAngle
		points = append(points, V(r*math.Cos(angle), r*math.Sin(angle)))
	}
	return points
}

// A grid of points, each nudged by a different amount so that no four are
// cocircular.
func JitteredGrid(size int) []Vec2 {
	points := make([]Vec2, 0, size*size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			points = append(points, V(
				float64(x)+0.1*float64((x*7+y*3)%5),
				float64(y)+0.13*float64((x*3+y*5)%7),
			))
		}
	}
	return points
}

func reflectX(vl VertexList2) VertexList2 {
	reflected := make(VertexList2, len(vl))
	for i, v := range vl {
		reflected[i] = V(-v.X, v.Y)
	}
	return reflected
}

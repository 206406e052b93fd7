package internal

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) SVG reader. It finds every <polygon>
// and <polyline> element, in document order with polygons first, and reads
// the vertices out of their points attribute. Transforms are ignored.

func ReadSVGPolygons(r io.Reader) ([][]Vec2, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	var result [][]Vec2
	for _, tag := range []string{"polygon", "polyline"} {
		for _, element := range root.FindAll(tag) {
			vertices, err := parseSVGPoints(element.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "<%s>", tag)
			}
			if len(vertices) == 0 {
				continue
			}
			result = append(result, vertices)
		}
	}
	if len(result) == 0 {
		return nil, errors.New("no polygon or polyline elements found")
	}
	return result, nil
}

// The points attribute is a list of numbers separated by commas and/or
// whitespace, taken in x, y pairs.
func parseSVGPoints(points string) ([]Vec2, error) {
	fields := strings.FieldsFunc(points, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", points)
	}

	vertices := make([]Vec2, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		vertex := V(x, y)
		if !vertex.IsFinite() {
			return nil, errNonFinite(vertex)
		}
		vertices = append(vertices, vertex)
	}
	return vertices, nil
}

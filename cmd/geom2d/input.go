package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/geom2d/internal"
)

// Input on stdin is newline separated points in the form "x y", with each
// polygon separated by an extra newline. Lines starting with # are comments.
func readPolygons(in io.Reader) ([][]internal.Vec2, error) {
	polygons := [][]internal.Vec2{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []internal.Vec2{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		// Read the next line
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = []internal.Vec2{}
			}
			continue
		}

		// Parse the point out of the line
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(line string) (internal.Vec2, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return internal.Vec2{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return internal.Vec2{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return internal.Vec2{}, errors.Wrap(err, "y")
	}
	return internal.V(x, y), nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/geom2d"
	"github.com/osuushi/geom2d/internal"
	"github.com/osuushi/geom2d/internal/dbg"
	"github.com/osuushi/geom2d/internal/render"
)

// Command line front end for the geometry algorithms. Input is read from
// stdin (or --input), either as newline separated "x y" points with a blank
// line between polygons, or as an SVG document with --svg. Results are written
// to stdout, one shape per line, and can be rendered to a PNG.

var (
	app = kingpin.New("geom2d", "Triangulate, simplify and check planar polygons.")

	inputFile = app.Flag("input", "Read from this file instead of stdin.").Short('i').ExistingFile()
	svgInput  = app.Flag("svg", "Input is an SVG document; its polygon and polyline elements are used.").Bool()
	lenient   = app.Flag("lenient", "Skip the up front check of input vertices. Shapes built from them are still checked unless built with the release tag.").Bool()
	verbose   = app.Flag("verbose", "Log every algorithm step.").Short('v').Bool()
	themeFile = app.Flag("theme", "YAML rendering theme.").ExistingFile()
	renderTo  = app.Flag("render", "Write a PNG rendering to this file.").PlaceHolder("FILE.png").String()
	step      = app.Flag("step", "Render this algorithm step, counting from 1, instead of the result.").Int()
	preview   = app.Flag("preview", "Show the rendering inline (iTerm image protocol).").Bool()
	scale     = app.Flag("scale", "Pixels per unit when rendering.").Default("20").Float64()

	incrementalCmd = app.Command("incremental", "Triangulate each point set by incremental insertion.")

	earclipCmd = app.Command("earclip", "Triangulate each simple polygon by ear clipping.")
	jobs       = earclipCmd.Flag("jobs", "Polygons to triangulate concurrently.").Short('j').Default("4").Int()

	simplifyCmd = app.Command("simplify", "Simplify each polyline.")
	strategy    = simplifyCmd.Flag("strategy", "Simplification strategy.").Default("recursive").Enum("greedy", "recursive")
	tolerance   = simplifyCmd.Flag("tolerance", "Largest allowed deviation.").Default("1").Float64()

	checkCmd = app.Command("check", "Report whether each polygon is simple, and its winding.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(context.Background(), command, logger); err != nil {
		logger.Error("failed", zap.Error(err))
		os.Exit(1)
	}
}

type session struct {
	command  string
	logger   *zap.Logger
	mode     internal.StrictMode
	out      io.Writer
	stepper  *internal.Stepper
	observer internal.Observer

	polygons [][]internal.Vec2
	// One per input polygon, whichever the command produced.
	triangulations [][]internal.Triangle2
	polylines      []internal.Polyline
}

func run(ctx context.Context, command string, logger *zap.Logger) error {
	polygons, err := readInput()
	if err != nil {
		return err
	}
	logger.Info("read input", zap.Int("polygons", len(polygons)))

	s := &session{
		command:  command,
		logger:   logger,
		mode:     internal.Strict,
		out:      os.Stdout,
		stepper:  internal.NewStepper(*step),
		polygons: polygons,
	}
	if *lenient {
		s.mode = internal.Lenient
	}
	s.observer = internal.MultiObserver(s.stepper, internal.ObserverFunc(func(st internal.Step) {
		logger.Debug(dbg.Describe(st))
	}))

	switch command {
	case incrementalCmd.FullCommand():
		err = s.incremental()
	case earclipCmd.FullCommand():
		err = s.earclip(ctx)
	case simplifyCmd.FullCommand():
		err = s.simplify()
	case checkCmd.FullCommand():
		err = s.check()
	}
	if err != nil {
		return err
	}

	if *step > 0 {
		logger.Info("algorithm steps", zap.Int("last", s.stepper.Last()))
		if captured, ok := s.stepper.Captured(); ok {
			logger.Debug("captured step", zap.Int("step", *step), zap.String("state", dbg.Dump(captured)))
		}
	}
	if *renderTo != "" || *preview {
		return s.render()
	}
	return nil
}

func readInput() ([][]internal.Vec2, error) {
	in := os.Stdin
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer file.Close()
		in = file
	}
	if *svgInput {
		return internal.ReadSVGPolygons(in)
	}
	return readPolygons(in)
}

// Run fn on one input polygon, turning a geometry panic into an error.
func (s *session) guard(index int, fn func()) (err error) {
	defer func() {
		if recoveredErr := internal.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			err = errors.Wrapf(recoveredErr, "polygon %d", index)
		}
	}()
	fn()
	return nil
}

// Validate vertices under the session's mode.
func (s *session) validate(index int, vertices []internal.Vec2) error {
	return s.guard(index, func() { s.mode.CheckVertices(vertices) })
}

func (s *session) incremental() error {
	for i, points := range s.polygons {
		if err := s.validate(i, points); err != nil {
			return err
		}
		var triangles []internal.Triangle2
		if err := s.guard(i, func() { triangles = internal.TriangulateIncremental(points, s.observer) }); err != nil {
			return err
		}
		s.logger.Info("triangulated", zap.Int("polygon", i), zap.Int("points", len(points)), zap.Int("triangles", len(triangles)))
		s.triangulations = append(s.triangulations, triangles)
		s.printTriangles(triangles)
	}
	return nil
}

func (s *session) earclip(ctx context.Context) error {
	// Stepping and step logging need a single ordered run. Otherwise the
	// polygons are independent and can be clipped concurrently.
	if *step > 0 || *verbose || s.mode == internal.Lenient {
		for i, vertices := range s.polygons {
			if err := s.validate(i, vertices); err != nil {
				return err
			}
			var triangles []internal.Triangle2
			if err := s.guard(i, func() { triangles = internal.TriangulateEarClipping(vertices, s.observer) }); err != nil {
				return err
			}
			s.triangulations = append(s.triangulations, triangles)
		}
	} else {
		triangulations, err := geom2d.TriangulatePolygons(ctx, s.polygons, *jobs)
		if err != nil {
			return err
		}
		s.triangulations = triangulations
	}

	for i, triangles := range s.triangulations {
		if len(triangles) == 0 {
			s.logger.Warn("polygon not triangulated", zap.Int("polygon", i), zap.String("reason", "not simple or degenerate"))
			continue
		}
		s.logger.Info("triangulated", zap.Int("polygon", i), zap.Int("triangles", len(triangles)))
		s.printTriangles(triangles)
	}
	return nil
}

func (s *session) simplify() error {
	simplifier, err := internal.ParseSimplifier(*strategy)
	if err != nil {
		return err
	}
	for i, vertices := range s.polygons {
		if err := s.validate(i, vertices); err != nil {
			return err
		}
		var polyline internal.Polyline
		if err := s.guard(i, func() { polyline = simplifier.Simplify(vertices, *tolerance, s.observer) }); err != nil {
			return err
		}
		s.logger.Info("simplified",
			zap.Int("polyline", i),
			zap.String("strategy", *strategy),
			zap.Int("before", len(vertices)),
			zap.Int("after", len(polyline)),
		)
		s.polylines = append(s.polylines, polyline)
		s.printVertices(polyline)
	}
	return nil
}

func (s *session) check() error {
	for i, vertices := range s.polygons {
		if err := s.validate(i, vertices); err != nil {
			return err
		}
		polygon := internal.VertexList2(vertices)
		winding := "counterclockwise"
		if polygon.IsClockwise() {
			winding = "clockwise"
		}
		var simple bool
		if err := s.guard(i, func() { simple = polygon.IsSimplePolygon() }); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "polygon %d: %d vertices, simple=%t, %s, area %g\n",
			i, len(polygon), simple, winding, math.Abs(polygon.SignedArea()))
	}
	return nil
}

func (s *session) printTriangles(triangles []internal.Triangle2) {
	for _, triangle := range triangles {
		s.printVertices(triangle.Vertices[:])
	}
}

func (s *session) printVertices(vertices []internal.Vec2) {
	fields := make([]string, 0, len(vertices)*2)
	for _, v := range vertices {
		fields = append(fields, fmt.Sprintf("%g", v.X), fmt.Sprintf("%g", v.Y))
	}
	fmt.Fprintln(s.out, strings.Join(fields, " "))
}

func (s *session) render() (err error) {
	defer func() {
		if recoveredErr := internal.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			err = errors.Wrap(recoveredErr, "render")
		}
	}()

	theme := render.DefaultTheme()
	if *themeFile != "" {
		file, err := os.Open(*themeFile)
		if err != nil {
			return errors.Wrap(err, "open theme")
		}
		defer file.Close()
		if theme, err = render.LoadTheme(file); err != nil {
			return errors.Wrap(err, *themeFile)
		}
	}

	canvas := render.NewCanvas()
	canvas.Scale = *scale
	canvas.Background = theme.Background

	if *step > 0 {
		captured, ok := s.stepper.Captured()
		if !ok {
			return errors.Errorf("step %d out of range, the run had %d steps", *step, s.stepper.Last())
		}
		render.DrawStep(canvas, captured, theme)
	} else {
		for _, vertices := range s.polygons {
			if s.command == simplifyCmd.FullCommand() {
				canvas.DrawPolyline(vertices, theme.Polygon)
				continue
			}
			render.DrawInput(canvas, vertices, theme)
		}
		for _, triangles := range s.triangulations {
			render.DrawTriangulation(canvas, triangles, theme)
		}
		for _, polyline := range s.polylines {
			canvas.DrawPolyline(polyline, theme.Result)
		}
	}

	if *renderTo != "" {
		if err := canvas.SavePNG(*renderTo); err != nil {
			return err
		}
		s.logger.Info("rendered", zap.String("file", *renderTo))
	}
	if *preview {
		return canvas.Preview(os.Stdout)
	}
	return nil
}

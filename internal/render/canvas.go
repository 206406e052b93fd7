package render

import (
	"image"
	"io"
	"math"
	"os"
	"sort"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/osuushi/geom2d/internal"
)

// This is for debugging purposes only. A Canvas queues shapes in world
// coordinates and paints them when an image is requested, fitted to the
// bounds of everything drawn, with the origin at the bottom left.

const (
	DefaultScale   = 20
	DefaultPadding = 20
	// Images are never larger than this on either side. The scale shrinks to
	// fit.
	MaxImageSize = 4096
)

type Canvas struct {
	// Pixels per world unit.
	Scale float64
	// Pixels around the drawing.
	Padding    float64
	Background string

	ops      []drawOp
	min, max internal.Vec2
	bounded  bool
}

// The viewport is the world space region that ends up in the image. Unbounded
// shapes are clipped to it.
type viewport struct {
	min, max internal.Vec2
}

type drawOp struct {
	style Style
	// Closed paths are filled unless the style asks for an outline.
	closed bool
	path   func(c *gg.Context, view viewport)
}

func NewCanvas() *Canvas {
	return &Canvas{
		Scale:      DefaultScale,
		Padding:    DefaultPadding,
		Background: "#000000",
	}
}

func (c *Canvas) include(points ...internal.Vec2) {
	for _, p := range points {
		if !p.IsFinite() {
			continue
		}
		if !c.bounded {
			c.min, c.max, c.bounded = p, p, true
			continue
		}
		c.min = internal.V(math.Min(c.min.X, p.X), math.Min(c.min.Y, p.Y))
		c.max = internal.V(math.Max(c.max.X, p.X), math.Max(c.max.Y, p.Y))
	}
}

// Invisible shapes are dropped and do not grow the bounds.
func (c *Canvas) push(style Style, closed bool, bounds []internal.Vec2, path func(*gg.Context, viewport)) {
	if !style.Visible {
		return
	}
	c.include(bounds...)
	c.ops = append(c.ops, drawOp{style: style, closed: closed, path: path})
}

// Len reports how many shapes are queued.
func (c *Canvas) Len() int {
	return len(c.ops)
}

func (c *Canvas) DrawAabb(b internal.Aabb, style Style) {
	min, max := b.Min(), b.Max()
	c.push(style, true, []internal.Vec2{min, max}, func(ctx *gg.Context, _ viewport) {
		ctx.DrawRectangle(min.X, min.Y, b.Size.X, b.Size.Y)
	})
}

// DrawCircle draws the circle's effective radius, which is what containment
// and collision use.
func (c *Canvas) DrawCircle(circle internal.Circle, style Style) {
	r := circle.EffectiveRadius()
	bounds := []internal.Vec2{circle.Center.Sub(internal.V(r, r)), circle.Center.Add(internal.V(r, r))}
	c.push(style, true, bounds, func(ctx *gg.Context, _ viewport) {
		if style.Segments > 2 {
			ctx.DrawRegularPolygon(style.Segments, circle.Center.X, circle.Center.Y, r, 0)
			return
		}
		ctx.DrawCircle(circle.Center.X, circle.Center.Y, r)
	})
}

// DrawLine draws the part of an infinite line that crosses the viewport. It
// does not grow the viewport.
func (c *Canvas) DrawLine(line internal.Line2, style Style) {
	c.push(style, false, nil, func(ctx *gg.Context, view viewport) {
		var a, b internal.Vec2
		if math.Abs(line.B) >= math.Abs(line.A) {
			// Closer to horizontal, so solve for y at the left and right edges.
			y1, _ := line.Y(view.min.X)
			y2, _ := line.Y(view.max.X)
			a, b = internal.V(view.min.X, y1), internal.V(view.max.X, y2)
		} else {
			x1, _ := line.X(view.min.Y)
			x2, _ := line.X(view.max.Y)
			a, b = internal.V(x1, view.min.Y), internal.V(x2, view.max.Y)
		}
		ctx.DrawLine(a.X, a.Y, b.X, b.Y)
	})
}

// DrawRay draws from the start of the ray to past the edge of the viewport.
func (c *Canvas) DrawRay(ray internal.LineRay2, style Style) {
	c.push(style, false, []internal.Vec2{ray.Start}, func(ctx *gg.Context, view viewport) {
		length := view.max.Sub(view.min).Length() + ray.Start.Distance(view.min)
		end := ray.Start.Add(ray.Axis.Mul(length))
		ctx.DrawLine(ray.Start.X, ray.Start.Y, end.X, end.Y)
	})
}

func (c *Canvas) DrawSegment(segment internal.LineSegment2, style Style) {
	if segment.IsDegenerate() {
		return
	}
	c.push(style, false, []internal.Vec2{segment.Start, segment.End}, func(ctx *gg.Context, _ viewport) {
		ctx.DrawLine(segment.Start.X, segment.Start.Y, segment.End.X, segment.End.Y)
	})
}

func (c *Canvas) DrawTriangle(triangle internal.Triangle2, style Style) {
	c.drawPath(triangle.Vertices[:], true, style)
}

func (c *Canvas) DrawPolygon(vertices internal.VertexList2, style Style) {
	c.drawPath(vertices, true, style)
}

func (c *Canvas) DrawPolyline(polyline internal.Polyline, style Style) {
	c.drawPath(polyline, false, style)
}

func (c *Canvas) drawPath(vertices []internal.Vec2, closed bool, style Style) {
	if len(vertices) == 0 {
		return
	}
	vertices = append([]internal.Vec2(nil), vertices...)
	c.push(style, closed, vertices, func(ctx *gg.Context, _ viewport) {
		ctx.MoveTo(vertices[0].X, vertices[0].Y)
		for _, v := range vertices[1:] {
			ctx.LineTo(v.X, v.Y)
		}
		if closed {
			ctx.ClosePath()
		}
	})
}

// DrawPoint draws a disc whose size is in pixels, so it reads the same at any
// scale.
func (c *Canvas) DrawPoint(point internal.Vec2, style Style) {
	c.push(style, true, []internal.Vec2{point}, func(ctx *gg.Context, _ viewport) {
		x, y := ctx.TransformPoint(point.X, point.Y)
		ctx.Push()
		ctx.Identity()
		ctx.DrawCircle(x, y, 2*math.Max(style.Thickness, 1))
		ctx.Pop()
	})
}

// DrawLabel writes text next to a point. Text is laid out in pixel space so
// it is not mirrored by the flipped y axis.
func (c *Canvas) DrawLabel(point internal.Vec2, text string, style Style) {
	c.push(style, false, []internal.Vec2{point}, func(ctx *gg.Context, _ viewport) {
		x, y := ctx.TransformPoint(point.X, point.Y)
		ctx.Push()
		ctx.Identity()
		ctx.DrawStringAnchored(text, x+6, y-6, 0, 0)
		ctx.Pop()
	})
}

func (c *Canvas) view() viewport {
	if !c.bounded {
		return viewport{min: internal.V(-1, -1), max: internal.V(1, 1)}
	}
	min, max := c.min, c.max
	// Give degenerate drawings some extent so lines still have room.
	if max.X-min.X < internal.Tolerance {
		min.X, max.X = min.X-1, max.X+1
	}
	if max.Y-min.Y < internal.Tolerance {
		min.Y, max.Y = min.Y-1, max.Y+1
	}
	return viewport{min: min, max: max}
}

// Render paints every queued shape, by ascending depth, into a new image.
func (c *Canvas) Render() (image.Image, error) {
	view := c.view()
	extent := view.max.Sub(view.min)
	scale := c.Scale
	if limit := (MaxImageSize - 2*c.Padding) / math.Max(extent.X, extent.Y); scale > limit {
		scale = limit
	}
	width := int(scale*extent.X + 2*c.Padding)
	height := int(scale*extent.Y + 2*c.Padding)

	background, err := ParseColor(c.Background)
	if err != nil {
		return nil, errors.Wrap(err, "background")
	}

	// Set up the context
	ctx := gg.NewContext(width, height)
	ctx.SetColor(background)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	ctx.Fill()
	ctx.SetFontFace(basicfont.Face7x13)

	// Flip the context so the origin is at the bottom left
	ctx.Translate(0, float64(height))
	ctx.Scale(1, -1)
	// Translate for padding
	ctx.Translate(c.Padding, c.Padding)
	// Scale
	ctx.Scale(scale, scale)
	// Translate to min
	ctx.Translate(-view.min.X, -view.min.Y)

	ops := append([]drawOp(nil), c.ops...)
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].style.Depth < ops[j].style.Depth
	})
	for _, op := range ops {
		col, err := ParseColor(op.style.Color)
		if err != nil {
			return nil, err
		}
		ctx.SetColor(col)
		ctx.SetLineWidth(math.Max(op.style.Thickness, 1))
		op.path(ctx, view)
		if op.closed && !op.style.Outline {
			ctx.Fill()
		} else {
			ctx.Stroke()
		}
	}
	return ctx.Image(), nil
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	img, err := c.Render()
	if err != nil {
		return err
	}
	return errors.Wrap(gg.NewContextForImage(img).EncodePNG(w), "encode png")
}

func (c *Canvas) SavePNG(path string) error {
	img, err := c.Render()
	if err != nil {
		return err
	}
	return errors.Wrapf(gg.SavePNG(path, img), "save %s", path)
}

// Preview shows the image inline in terminals that speak the iTerm image
// protocol.
func (c *Canvas) Preview(out *os.File) error {
	file, err := os.CreateTemp("", "geom2d-*.png")
	if err != nil {
		return errors.Wrap(err, "preview")
	}
	path := file.Name()
	file.Close()
	defer os.Remove(path)

	if err := c.SavePNG(path); err != nil {
		return err
	}
	imgcat.CatFile(path, out)
	return nil
}

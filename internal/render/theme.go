package render

import (
	_ "embed"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Style says how one visual role is painted. Thickness is in pixels. Depth
// orders drawing; lower depths are painted first.
type Style struct {
	Visible   bool    `yaml:"visible"`
	Color     string  `yaml:"color"`
	Outline   bool    `yaml:"outline"`
	Thickness float64 `yaml:"thickness"`
	Segments  int     `yaml:"segments"`
	Depth     float64 `yaml:"depth"`
}

// Theme holds a Style per role that DrawStep knows how to paint.
type Theme struct {
	Background string `yaml:"background"`

	Polygon    Style `yaml:"polygon"`
	PolygonBad Style `yaml:"polygon_bad"`
	Vertex     Style `yaml:"vertex"`
	Triangle   Style `yaml:"triangle"`
	Result     Style `yaml:"result"`
	Label      Style `yaml:"label"`

	PointCurrent Style `yaml:"point_current"`
	TriangleBad  Style `yaml:"triangle_bad"`
	EdgeKeep     Style `yaml:"edge_keep"`
	EdgeRemove   Style `yaml:"edge_remove"`
	Circumcircle Style `yaml:"circumcircle"`

	EarAccepted Style `yaml:"ear_accepted"`
	EarRejected Style `yaml:"ear_rejected"`
	VertexBad   Style `yaml:"vertex_bad"`

	VertexPrevious       Style `yaml:"vertex_previous"`
	VertexPreviousRadius Style `yaml:"vertex_previous_radius"`
	VertexCurrent        Style `yaml:"vertex_current"`
	LineNew              Style `yaml:"line_new"`
	IncompleteLine       Style `yaml:"incomplete_line"`
	IncompleteLineSkinny Style `yaml:"incomplete_line_skinny"`
	IncompleteVertex     Style `yaml:"incomplete_vertex"`
	CompleteVertex       Style `yaml:"complete_vertex"`
}

//go:embed default_theme.yaml
var defaultThemeYAML []byte

func DefaultTheme() Theme {
	var theme Theme
	if err := yaml.Unmarshal(defaultThemeYAML, &theme); err != nil {
		panic(errors.Wrap(err, "embedded default theme"))
	}
	return theme
}

// LoadTheme reads a YAML theme. Roles and fields the document leaves out keep
// their default values.
func LoadTheme(r io.Reader) (Theme, error) {
	theme := DefaultTheme()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&theme); err != nil && err != io.EOF {
		return Theme{}, errors.Wrap(err, "decode theme")
	}
	if err := theme.validate(); err != nil {
		return Theme{}, err
	}
	return theme, nil
}

func (t Theme) styles() map[string]Style {
	return map[string]Style{
		"polygon":                t.Polygon,
		"polygon_bad":            t.PolygonBad,
		"vertex":                 t.Vertex,
		"triangle":               t.Triangle,
		"result":                 t.Result,
		"label":                  t.Label,
		"point_current":          t.PointCurrent,
		"triangle_bad":           t.TriangleBad,
		"edge_keep":              t.EdgeKeep,
		"edge_remove":            t.EdgeRemove,
		"circumcircle":           t.Circumcircle,
		"ear_accepted":           t.EarAccepted,
		"ear_rejected":           t.EarRejected,
		"vertex_bad":             t.VertexBad,
		"vertex_previous":        t.VertexPrevious,
		"vertex_previous_radius": t.VertexPreviousRadius,
		"vertex_current":         t.VertexCurrent,
		"line_new":               t.LineNew,
		"incomplete_line":        t.IncompleteLine,
		"incomplete_line_skinny": t.IncompleteLineSkinny,
		"incomplete_vertex":      t.IncompleteVertex,
		"complete_vertex":        t.CompleteVertex,
	}
}

func (t Theme) validate() error {
	if _, err := ParseColor(t.Background); err != nil {
		return errors.Wrap(err, "background")
	}
	for role, style := range t.styles() {
		if _, err := ParseColor(style.Color); err != nil {
			return errors.Wrapf(err, "style %s", role)
		}
		if style.Thickness < 0 {
			return errors.Errorf("style %s: negative thickness %g", role, style.Thickness)
		}
		if style.Segments < 0 {
			return errors.Errorf("style %s: negative segment count %d", role, style.Segments)
		}
	}
	return nil
}

// ParseColor reads "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.NRGBA{}, errors.Errorf("invalid color %q", hex)
	}
	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(err, "invalid color %q", hex)
	}
	return color.NRGBA{
		R: uint8(value >> 24),
		G: uint8(value >> 16),
		B: uint8(value >> 8),
		A: uint8(value),
	}, nil
}

package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()
	require.NoError(t, theme.validate())
	assert.Equal(t, "#000000", theme.Background)
	assert.False(t, theme.Label.Visible)

	for role, style := range theme.styles() {
		if role == "label" {
			continue
		}
		assert.True(t, style.Visible, "%s should be visible by default", role)
	}
}

func TestLoadTheme(t *testing.T) {
	t.Run("overrides keep the rest", func(t *testing.T) {
		theme, err := LoadTheme(strings.NewReader(`
background: "#fff"
label:
  visible: true
triangle:
  color: "#123456"
`))
		require.NoError(t, err)
		defaults := DefaultTheme()

		assert.Equal(t, "#fff", theme.Background)
		assert.True(t, theme.Label.Visible)
		assert.Equal(t, defaults.Label.Color, theme.Label.Color)
		assert.Equal(t, "#123456", theme.Triangle.Color)
		assert.Equal(t, defaults.Triangle.Thickness, theme.Triangle.Thickness)
		assert.Equal(t, defaults.Polygon, theme.Polygon)
	})

	t.Run("empty document is the default theme", func(t *testing.T) {
		theme, err := LoadTheme(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, DefaultTheme(), theme)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := LoadTheme(strings.NewReader("triangles:\n  visible: true\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode theme")
	})

	t.Run("bad color", func(t *testing.T) {
		_, err := LoadTheme(strings.NewReader("vertex:\n  color: chartreuse\n"))
		assert.EqualError(t, err, `style vertex: invalid color "chartreuse"`)
	})

	t.Run("negative thickness", func(t *testing.T) {
		_, err := LoadTheme(strings.NewReader("result:\n  thickness: -2\n"))
		assert.EqualError(t, err, "style result: negative thickness -2")
	})

	t.Run("negative segments", func(t *testing.T) {
		_, err := LoadTheme(strings.NewReader("circumcircle:\n  segments: -1\n"))
		assert.EqualError(t, err, "style circumcircle: negative segment count -1")
	})
}

func TestParseColor(t *testing.T) {
	cases := map[string]color.NRGBA{
		"#fff":      {0xff, 0xff, 0xff, 0xff},
		"#102030":   {0x10, 0x20, 0x30, 0xff},
		"#10203040": {0x10, 0x20, 0x30, 0x40},
		"a0b":       {0xaa, 0x00, 0xbb, 0xff},
	}
	for input, expected := range cases {
		t.Run(input, func(t *testing.T) {
			actual, err := ParseColor(input)
			require.NoError(t, err)
			assert.Equal(t, expected, actual)
		})
	}

	for _, input := range []string{"", "#", "#12345", "#gggggg", "red"} {
		t.Run("invalid "+input, func(t *testing.T) {
			_, err := ParseColor(input)
			assert.Error(t, err)
		})
	}
}

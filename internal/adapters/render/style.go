package render

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Margins struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Bounds of the plotted area in data coordinates (meters).
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

type FontSizes struct {
	Title float64 `yaml:"title"`
	Axis  float64 `yaml:"axis"`
	Label float64 `yaml:"label"`
	Tick  float64 `yaml:"tick"`
}

// Colors are hex strings: #rgb, #rrggbb or #rrggbbaa.
type Colors struct {
	Background string `yaml:"background"`
	Start      string `yaml:"start"`
	End        string `yaml:"end"`
	Visited    string `yaml:"visited"`
	Skipped    string `yaml:"skipped"`
	Penalty    string `yaml:"penalty"`
	Path       string `yaml:"path"`
	Grid       string `yaml:"grid"`
	Text       string `yaml:"text"`
}

// Style controls the look of the rendered route. Sizes are in pixels unless noted.
type Style struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Margin Margins `yaml:"margin"`

	Title  string `yaml:"title"`
	XLabel string `yaml:"x_label"`
	YLabel string `yaml:"y_label"`

	Bounds   Bounds  `yaml:"bounds"`
	AutoFit  bool    `yaml:"auto_fit"`
	GridStep float64 `yaml:"grid_step"` // meters

	ArrowShrink    float64 `yaml:"arrow_shrink"`
	ArrowHead      float64 `yaml:"arrow_head"`
	MarkerRadius   float64 `yaml:"marker_radius"`
	EndpointRadius float64 `yaml:"endpoint_radius"`
	LabelOffset    float64 `yaml:"label_offset"`

	FontSize FontSizes `yaml:"font_size"`
	Colors   Colors    `yaml:"colors"`
}

func DefaultStyle() Style {
	return Style{
		Width:  1000,
		Height: 1000,
		Margin: Margins{Left: 90, Right: 40, Top: 70, Bottom: 80},

		Title:  "UAV Optimal Delivery Path Visualization",
		XLabel: "X (meters)",
		YLabel: "Y (meters)",

		Bounds:   Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100},
		AutoFit:  true,
		GridStep: 10,

		ArrowShrink:    0.9,
		ArrowHead:      14,
		MarkerRadius:   9,
		EndpointRadius: 11,
		LabelOffset:    6,

		FontSize: FontSizes{Title: 22, Axis: 18, Label: 16, Tick: 13},
		Colors: Colors{
			Background: "#ffffff",
			Start:      "#008000",
			End:        "#ff0000",
			Visited:    "#0000ff",
			Skipped:    "#808080",
			Penalty:    "#ff0000",
			Path:       "#0000ff",
			Grid:       "#b0b0b0",
			Text:       "#000000",
		},
	}
}

// LoadStyle reads a YAML style file on top of DefaultStyle.
// Keys absent from the file keep their default values; unknown keys are rejected.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("load style: read %q: %w", path, err)
	}

	style := DefaultStyle()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&style); err != nil && !errors.Is(err, io.EOF) {
		return Style{}, fmt.Errorf("load style: parse %q: %w", path, err)
	}

	if err := style.Validate(); err != nil {
		return Style{}, fmt.Errorf("load style %q: %w", path, err)
	}
	return style, nil
}

func (s Style) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid style: canvas %dx%d must be positive", s.Width, s.Height)
	}
	if s.Margin.Left < 0 || s.Margin.Right < 0 || s.Margin.Top < 0 || s.Margin.Bottom < 0 {
		return errors.New("invalid style: margins must be non-negative")
	}
	if float64(s.Width) <= s.Margin.Left+s.Margin.Right || float64(s.Height) <= s.Margin.Top+s.Margin.Bottom {
		return errors.New("invalid style: margins leave no room for the plot")
	}
	for _, v := range []float64{s.Bounds.MinX, s.Bounds.MinY, s.Bounds.MaxX, s.Bounds.MaxY, s.GridStep} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return errors.New("invalid style: bounds and grid_step must be finite")
		}
	}
	if s.Bounds.MaxX <= s.Bounds.MinX || s.Bounds.MaxY <= s.Bounds.MinY {
		return fmt.Errorf("invalid style: bounds %+v are empty", s.Bounds)
	}
	if s.GridStep <= 0 {
		return errors.New("invalid style: grid_step must be positive")
	}
	if s.ArrowShrink <= 0 || s.ArrowShrink > 1 {
		return fmt.Errorf("invalid style: arrow_shrink %v must be in (0, 1]", s.ArrowShrink)
	}
	if s.ArrowHead < 0 || s.MarkerRadius <= 0 || s.EndpointRadius <= 0 || s.LabelOffset < 0 {
		return errors.New("invalid style: marker and arrow sizes must be positive")
	}
	if s.FontSize.Title <= 0 || s.FontSize.Axis <= 0 || s.FontSize.Label <= 0 || s.FontSize.Tick <= 0 {
		return errors.New("invalid style: font sizes must be positive")
	}
	if _, err := s.Colors.palette(); err != nil {
		return fmt.Errorf("invalid style: %w", err)
	}
	return nil
}

type palette struct {
	background, start, end, visited, skipped, penalty, path, grid, text color.RGBA
}

func (c Colors) palette() (palette, error) {
	var p palette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", c.Background, &p.background},
		{"start", c.Start, &p.start},
		{"end", c.End, &p.end},
		{"visited", c.Visited, &p.visited},
		{"skipped", c.Skipped, &p.skipped},
		{"penalty", c.Penalty, &p.penalty},
		{"path", c.Path, &p.path},
		{"grid", c.Grid, &p.grid},
		{"text", c.Text, &p.text},
	}
	for _, f := range fields {
		col, err := parseHexColor(f.hex)
		if err != nil {
			return palette{}, fmt.Errorf("color %s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

func parseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("%q is not a hex color", s)
	}

	b, err := hex.DecodeString(h)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q is not a hex color: %w", s, err)
	}
	// color.RGBA is alpha-premultiplied.
	a := uint32(b[3])
	return color.RGBA{
		R: uint8(uint32(b[0]) * a / 0xff),
		G: uint8(uint32(b[1]) * a / 0xff),
		B: uint8(uint32(b[2]) * a / 0xff),
		A: b[3],
	}, nil
}

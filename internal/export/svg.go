package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG format, one circle per lit
// dot in the dot's pen colour.
func CanvasToSVG(canvas *viz.Canvas, scale float64, background, foreground string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)

	dotRadius := scale * 0.4
	sw, sh := canvas.SubSize()
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			fill := canvas.Colors[y/4][x/2]
			if fill == "" {
				fill = foreground
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// BodyMark is one body's position in a top-down diagram.
type BodyMark struct {
	Name     string
	Radius   float64
	Distance float64
	Color    solar.Color
	HasRing  bool
	X, Z     float64
}

// Marks pairs body configs with recorded positions, index for index.
func Marks(cfgs []solar.BodyConfig, xs, zs []float64) []BodyMark {
	n := len(cfgs)
	if len(xs) < n {
		n = len(xs)
	}
	if len(zs) < n {
		n = len(zs)
	}
	marks := make([]BodyMark, n)
	for i := 0; i < n; i++ {
		c := cfgs[i]
		marks[i] = BodyMark{
			Name: c.Name, Radius: c.Radius, Distance: c.Distance,
			Color: c.Color, HasRing: c.HasRing, X: xs[i], Z: zs[i],
		}
	}
	return marks
}

// OrbitDiagram is the top-down view of the system: orbit circles, every
// body as a disc in its colour, the ring as an annulus outline, and trails
// for bodies with recorded tracks.
type OrbitDiagram struct {
	Size       int
	Background string
	OrbitColor string
	Labels     bool
	Trails     map[int][][2]float64
}

// bodyScale inflates body radii so small planets stay visible.
const bodyScale = 1.5

func (d OrbitDiagram) Write(w io.Writer, marks []BodyMark) error {
	_, err := io.WriteString(w, d.SVG(marks))
	return err
}

func (d OrbitDiagram) SVG(marks []BodyMark) string {
	size := d.Size
	if size <= 0 {
		size = 800
	}
	bg := d.Background
	if bg == "" {
		bg = "#000000"
	}
	orbitColor := d.OrbitColor
	if orbitColor == "" {
		orbitColor = "#808080"
	}

	extent := 1.0
	for _, m := range marks {
		extent = math.Max(extent, m.Distance+m.Radius*scene.RingOuterScale*bodyScale)
	}
	extent *= 1.05
	half := float64(size) / 2
	k := half / extent
	px := func(x float64) float64 { return half + x*k }

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="none" stroke="%s" stroke-opacity="0.5">
`, size, size, size, size, bg, orbitColor)

	for _, m := range marks {
		if m.Distance <= 0 {
			continue
		}
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, half, half, m.Distance*k)
	}
	sb.WriteString("</g>\n")

	for i, trail := range d.Trails {
		if i < 0 || i >= len(marks) || len(trail) < 2 {
			continue
		}
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, marks[i].Color.Hex())
		for j, p := range trail {
			if j > 0 {
				sb.WriteString(" L")
			}
			fmt.Fprintf(&sb, "%.1f,%.1f", px(p[0]), px(p[1]))
		}
		sb.WriteString("\"/>\n")
	}

	for _, m := range marks {
		cx, cy := px(m.X), px(m.Z)
		r := math.Max(m.Radius*k*bodyScale, 1)
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"><title>%s</title></circle>
`, cx, cy, r, m.Color.Hex(), m.Name)
		if m.HasRing {
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="%.1f" stroke-opacity="0.8"/>
`, cx, cy, r*(scene.RingInnerScale+scene.RingOuterScale)/2, scene.RingColor.Hex(), r*(scene.RingOuterScale-scene.RingInnerScale))
		}
		if d.Labels {
			fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" fill="%s" font-family="Arial" font-size="12">%s</text>
`, cx+r+3, cy-r-3, orbitColor, m.Name)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/template"

	"github.com/ja7ad/pemev/pkg/landscape"
	"github.com/ja7ad/pemev/pkg/util"
)

const (
	chartWidth  = 900
	chartHeight = 540
	marginLeft  = 70
	marginRight = 230
	marginTop   = 50
	marginBot   = 60
)

// Chart is the input of WriteSVG.
type Chart struct {
	Title     string
	Subtitle  string
	Threshold float64
	Curves    []landscape.Curve
}

type svgLine struct {
	Label   string
	Color   string
	Points  string
	LegendY float64
}

type svgTick struct {
	Pos   float64
	Label string
}

type svgView struct {
	Title, Subtitle          string
	Width, Height            int
	Left, Right, Top, Bottom float64
	MidX                     float64
	Threshold                float64
	ThresholdY               float64
	ZoneY, ZoneH             float64
	Lines                    []svgLine
	XTicks, YTicks           []svgTick
	PlotW                    float64
	LegendX, LegendEnd       float64
	LegendText               float64
	ZoneLegendY              float64
	ThresholdLegendY         float64
}

// axis maps data coordinates to pixels: x on log10(growth), y linear.
type axis struct {
	xMin, xMax, yMin, yMax   float64
	left, right, top, bottom float64
}

func (a axis) x(g float64) float64 {
	return a.left + util.SafeDiv(math.Log10(g)-a.xMin, a.xMax-a.xMin)*(a.right-a.left)
}

func (a axis) y(s float64) float64 {
	return a.bottom - util.SafeDiv(s-a.yMin, a.yMax-a.yMin)*(a.bottom-a.top)
}

func newAxis(c Chart) axis {
	a := axis{
		xMin: math.Inf(1), xMax: math.Inf(-1),
		yMin: c.Threshold, yMax: landscape.ZoneTop(c.Curves, c.Threshold),
		left: marginLeft, right: chartWidth - marginRight,
		top: marginTop, bottom: chartHeight - marginBot,
	}
	for _, cv := range c.Curves {
		for _, p := range cv.Points {
			e := math.Log10(p.Growth)
			a.xMin, a.xMax = math.Min(a.xMin, e), math.Max(a.xMax, e)
			a.yMin = math.Min(a.yMin, p.Score)
		}
	}
	if math.IsInf(a.xMin, 0) {
		a.xMin, a.xMax = landscape.DefaultStartExp, landscape.DefaultStopExp
	}
	if a.xMax == a.xMin {
		a.xMax = a.xMin + 1
	}
	a.yMin -= 0.05
	a.yMax += 0.05
	return a
}

func (a axis) view(c Chart) svgView {
	v := svgView{
		Title:      c.Title,
		Subtitle:   c.Subtitle,
		Width:      chartWidth,
		Height:     chartHeight,
		Left:       a.left,
		Right:      a.right,
		Top:        a.top,
		Bottom:     a.bottom,
		MidX:       (a.left + a.right) / 2,
		Threshold:  c.Threshold,
		PlotW:      a.right - a.left,
		LegendX:    a.right + 20,
		LegendEnd:  a.right + 44,
		LegendText: a.right + 50,
	}
	v.ThresholdY = a.y(c.Threshold)
	v.ZoneY = a.y(landscape.ZoneTop(c.Curves, c.Threshold))
	v.ZoneH = v.ThresholdY - v.ZoneY

	legendY := a.top + 10
	for _, cv := range c.Curves {
		var pts strings.Builder
		for i, p := range cv.Points {
			if i > 0 {
				pts.WriteByte(' ')
			}
			fmt.Fprintf(&pts, "%.2f,%.2f", a.x(p.Growth), a.y(p.Score))
		}
		v.Lines = append(v.Lines, svgLine{Label: cv.Label, Color: cv.Color, Points: pts.String(), LegendY: legendY})
		legendY += 22
	}
	v.ThresholdLegendY = legendY
	v.ZoneLegendY = legendY + 22

	for e := math.Ceil(a.xMin - 1e-9); e <= a.xMax+1e-9; e++ {
		v.XTicks = append(v.XTicks, svgTick{Pos: a.x(math.Pow(10, e)), Label: fmt.Sprintf("%gx", math.Pow(10, e))})
	}
	for i := int(math.Ceil(a.yMin * 10)); float64(i)/10 <= a.yMax; i++ {
		s := float64(i) / 10
		v.YTicks = append(v.YTicks, svgTick{Pos: a.y(s), Label: fmt.Sprintf("%.1f", s)})
	}
	return v
}

// WriteSVG renders the ethical landscape: one line per curve on a log
// growth axis, the threshold as a dashed line and the remorse-free zone
// shaded above it.
func WriteSVG(w io.Writer, c Chart) error {
	if c.Title == "" {
		c.Title = "PEMEV Ethical Landscape - Safe Growth Zones for Type I Transition"
	}
	return svgTpl.Execute(w, newAxis(c).view(c))
}

var svgTpl = template.Must(template.New("svg").Parse(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}" font-family="system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif" font-size="12">
<rect width="100%" height="100%" fill="#fff"/>
<text x="{{printf "%.1f" .MidX}}" y="22" text-anchor="middle" font-size="15">{{.Title | html}}</text>
{{- if .Subtitle}}
<text x="{{printf "%.1f" .MidX}}" y="38" text-anchor="middle" fill="#555">{{.Subtitle | html}}</text>
{{- end}}
<rect class="zone" x="{{printf "%.2f" .Left}}" y="{{printf "%.2f" .ZoneY}}" width="{{printf "%.2f" .PlotW}}" height="{{printf "%.2f" .ZoneH}}" fill="lightgreen" fill-opacity="0.3"/>
<g stroke="#ddd" stroke-dasharray="3,3">
{{- range .XTicks}}
<line x1="{{printf "%.2f" .Pos}}" y1="{{printf "%.2f" $.Top}}" x2="{{printf "%.2f" .Pos}}" y2="{{printf "%.2f" $.Bottom}}"/>
{{- end}}
{{- range .YTicks}}
<line x1="{{printf "%.2f" $.Left}}" y1="{{printf "%.2f" .Pos}}" x2="{{printf "%.2f" $.Right}}" y2="{{printf "%.2f" .Pos}}"/>
{{- end}}
</g>
<g fill="#333">
{{- range .XTicks}}
<text x="{{printf "%.2f" .Pos}}" y="{{printf "%.2f" $.Bottom}}" dy="16" text-anchor="middle">{{.Label}}</text>
{{- end}}
{{- range .YTicks}}
<text x="{{printf "%.2f" $.Left}}" y="{{printf "%.2f" .Pos}}" dx="-8" dy="4" text-anchor="end">{{.Label}}</text>
{{- end}}
</g>
<line x1="{{printf "%.2f" .Left}}" y1="{{printf "%.2f" .Bottom}}" x2="{{printf "%.2f" .Right}}" y2="{{printf "%.2f" .Bottom}}" stroke="#000"/>
<line x1="{{printf "%.2f" .Left}}" y1="{{printf "%.2f" .Top}}" x2="{{printf "%.2f" .Left}}" y2="{{printf "%.2f" .Bottom}}" stroke="#000"/>
<text x="{{printf "%.1f" .MidX}}" y="{{printf "%.2f" .Bottom}}" dy="40" text-anchor="middle">Energy Growth Factor (log scale)</text>
<text transform="translate(20 {{printf "%.2f" .ThresholdY}}) rotate(-90)" text-anchor="middle">Ethical Score</text>
<line class="threshold" x1="{{printf "%.2f" .Left}}" y1="{{printf "%.2f" .ThresholdY}}" x2="{{printf "%.2f" .Right}}" y2="{{printf "%.2f" .ThresholdY}}" stroke="#000" stroke-dasharray="6,4"/>
{{- range .Lines}}
<polyline fill="none" stroke="{{.Color | html}}" stroke-width="2" points="{{.Points}}"/>
{{- end}}
<g>
{{- range .Lines}}
<line x1="{{printf "%.1f" $.LegendX}}" y1="{{printf "%.1f" .LegendY}}" x2="{{printf "%.1f" $.LegendEnd}}" y2="{{printf "%.1f" .LegendY}}" stroke="{{.Color | html}}" stroke-width="2"/>
<text x="{{printf "%.1f" $.LegendText}}" y="{{printf "%.1f" .LegendY}}" dy="4">{{.Label | html}}</text>
{{- end}}
<line x1="{{printf "%.1f" .LegendX}}" y1="{{printf "%.1f" .ThresholdLegendY}}" x2="{{printf "%.1f" .LegendEnd}}" y2="{{printf "%.1f" .ThresholdLegendY}}" stroke="#000" stroke-dasharray="6,4"/>
<text x="{{printf "%.1f" .LegendText}}" y="{{printf "%.1f" .ThresholdLegendY}}" dy="4">Ethical threshold ({{printf "%.2f" .Threshold}})</text>
<rect x="{{printf "%.1f" .LegendX}}" y="{{printf "%.1f" .ZoneLegendY}}" transform="translate(0 -6)" width="24" height="12" fill="lightgreen" fill-opacity="0.3"/>
<text x="{{printf "%.1f" .LegendText}}" y="{{printf "%.1f" .ZoneLegendY}}" dy="4">Remorse-free zone</text>
</g>
</svg>
`))

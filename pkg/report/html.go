package report

import (
	"bytes"
	"html/template"
	"io"
)

// WriteHTML renders d as a standalone page. chart, when non-empty, is an SVG
// produced by WriteSVG and is embedded verbatim.
func WriteHTML(w io.Writer, d *Document, chart []byte) error {
	type view struct {
		*Document
		Chart template.HTML
	}
	var buf bytes.Buffer
	// chart comes from WriteSVG, which escapes every text node it emits.
	if err := htmlTpl.Execute(&buf, view{Document: d, Chart: template.HTML(stripXMLDecl(chart))}); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func stripXMLDecl(b []byte) []byte {
	if i := bytes.Index(b, []byte("?>")); i >= 0 && bytes.HasPrefix(b, []byte("<?xml")) {
		return bytes.TrimLeft(b[i+2:], "\r\n")
	}
	return b
}

var htmlTpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>PEMEV Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
.small{color:#555}
.badge{display:inline-block;border:1px solid #ccd;padding:2px 6px;border-radius:6px}
.RECOMMEND{background:#e6f6e6}
.REJECT{background:#fbeaea}
</style>

<h1>PEMEV Report</h1>

<p class="small">
Run: <code>{{.RunID}}</code> &nbsp;|&nbsp;
Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}} UTC &nbsp;|&nbsp;
Threshold: {{printf "%.2f" .Threshold}}
</p>

<h2>Weights</h2>
<ul>
<li>Energy: {{printf "%.4f" .Weights.Energy}}</li>
<li>Equity: {{printf "%.4f" .Weights.Equity}}</li>
<li>Sustainability: {{printf "%.4f" .Weights.Sustainability}}</li>
{{if .Provenance}}<li>Source: <span class="badge">{{.Provenance}}</span></li>{{end}}
</ul>

{{with .Baseline}}
<h2>Baseline</h2>
<ul>
<li>Date: {{.Date.Format "2006-01-02"}}</li>
<li>Current energy use: {{.CurrentPower.Scientific}}</li>
<li>Type I target: {{.TargetPower.Scientific}}</li>
<li>Kardashev: {{printf "%.3f" .Index}} (stated {{printf "%.2f" .StatedIndex}})</li>
<li>Progress to Type I: {{printf "%.1f" .ProgressPct}}%</li>
<li>Energy gap: ~{{printf "%.0f" .GapFactor}}x</li>
</ul>
{{end}}

{{if .Results}}
<h2>Scenarios</h2>
<table>
<thead>
<tr>
<th>name</th><th>growth</th><th>years</th><th>K</th><th>progress</th>
<th>equity</th><th>sustainability</th><th>bonus</th><th>score</th><th>horizon</th><th>classification</th>
</tr>
</thead>
<tbody>
{{range .Results}}
{{if .Result}}
<tr class="{{.Result.Classification}}">
<td>{{.Name}}</td>
<td>{{printf "%g" .Result.GrowthFactor}}</td>
<td>{{printf "%g" .Result.Years}}</td>
<td>{{printf "%.3f" .Result.Index}}</td>
<td>{{printf "%.4f" .Result.Progress}}</td>
<td>{{printf "%.2f" .Result.Equity}}{{if .Result.UsedHints}}*{{end}}</td>
<td>{{printf "%.2f" .Result.Sustainability}}{{if .Result.UsedHints}}*{{end}}</td>
<td>{{printf "%.2f" .Result.Bonus}}</td>
<td>{{printf "%.3f" .Result.Score}}</td>
<td>{{printf "%.3f" .Result.RemorseHorizon}}</td>
<td>{{.Result.Classification}}</td>
</tr>
{{else}}
<tr><td>{{.Name}}</td><td colspan="10" style="text-align:left">error: {{.Error}}</td></tr>
{{end}}
{{end}}
</tbody>
</table>
<p class="small">* real-world hint</p>
{{end}}

{{if .Chart}}
<h2>Ethical landscape</h2>
{{.Chart}}
{{end}}
</html>`))

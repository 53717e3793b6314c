package exports

import (
	"bytes"
	"fmt"
	"html/template"

	"Backend-ECW-B2S/src/models"
)

const pdfTitle = "Volunteer Activities"

var pdfTemplate = template.Must(template.New("activities").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4 landscape; margin: 1cm; }
  body { font-family: Helvetica, Arial, sans-serif; font-size: 8px; }
  h1 { font-size: 14px; margin-bottom: 2px; }
  .meta { color: #666; margin-bottom: 8px; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #999; padding: 2px 4px; text-align: left; }
  th { background: #e6f3ff; }
  tr:nth-child(even) td { background: #f7f7f7; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="meta">{{.RowCount}} activities</div>
<table>
  <thead>
    <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
  </thead>
  <tbody>
    {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
    {{end}}
  </tbody>
</table>
</body>
</html>`))

type pdfData struct {
	Title    string
	RowCount int
	Headers  []string
	Rows     [][]string
}

// renderHTML builds the printable table the PDF path feeds to Chrome.
func renderHTML(rows []models.FlatRow) (string, error) {
	data := pdfData{
		Title:    pdfTitle,
		RowCount: len(rows),
		Headers:  Headers(),
	}
	for i := range rows {
		data.Rows = append(data.Rows, Cells(&rows[i]))
	}

	var buf bytes.Buffer
	if err := pdfTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render pdf template: %w", err)
	}
	return buf.String(), nil
}

/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: html.go
Description: HTML report generation for Akaylee ArchRec. Renders a
classification run report as a styled, self-contained HTML page with one
score table per query file.
*/

package reporting

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/kleascm/akaylee-archrec/pkg/interfaces"
)

// reportTemplate is the self-contained HTML page for a run report.
const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<title>Akaylee ArchRec Report</title>
<style>
body { font-family: sans-serif; margin: 2em; background: #fafafa; }
h1 { color: #333; }
h2 { color: #555; margin-top: 1.5em; }
table { border-collapse: collapse; margin-top: 0.5em; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: right; }
th { background: #eee; }
td.arch { text-align: left; font-family: monospace; }
tr.best { background: #dfd; }
.meta { color: #777; font-size: 0.9em; }
</style>
</head>
<body>
<h1>Akaylee ArchRec Report</h1>
<p class="meta">Session {{.SessionID}} &mdash; {{.CreatedAt.Format "2006-01-02 15:04:05"}} &mdash; corpus: {{.CorpusDir}} ({{len .Corpus}} architectures)</p>
{{range .Files}}
<h2>{{.File}}</h2>
<p class="meta">{{.Size}} bytes{{if .TextSection}}, text section extracted{{end}}{{if .BestMatch}} &mdash; best match: <b>{{.BestMatch}}</b>{{else}} &mdash; best match undetermined{{end}}</p>
<table>
<tr><th>Architecture</th><th>Bigram KL</th><th>Trigram KL</th></tr>
{{$best := .BestMatch}}
{{range .Results}}
<tr{{if and $best (eq .Arch $best)}} class="best"{{end}}><td class="arch">{{.Arch}}</td><td>{{printf "%.6f" .BigramDivergence}}</td><td>{{printf "%.6f" .TrigramDivergence}}</td></tr>
{{end}}
</table>
{{end}}
</body>
</html>
`

// WriteHTML writes the run report as a standalone HTML page next to the
// JSON reports, returning the written path.
func (w *Writer) WriteHTML(report *interfaces.RunReport) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}

	timestamp := report.CreatedAt.Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_archrec_%s.html", timestamp, report.SessionID)
	path := filepath.Join(w.outputDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, report); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	return path, nil
}

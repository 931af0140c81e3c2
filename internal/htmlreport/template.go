package htmlreport

// documentTemplate is the page skeleton. The InlineCSS branch embeds the
// stylesheet for self-contained documents; the other branch links an
// external report.css for setups that serve assets separately.
const documentTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Audit report: {{.URL}}</title>
{{if .InlineCSS}}<style>{{.InlineCSS}}</style>{{else}}<link rel="stylesheet" href="report.css">{{end}}
</head>
<body>
<header>
<h1>Audit results <span class="version">({{.Version}})</span></h1>
<p class="url">{{.URL}}</p>
</header>
<main>
{{range .Aggregations}}<section class="aggregation">
<h2>{{.Name}}</h2>
{{range .Items}}<div class="item">
{{if .Name}}<h3>{{.Name}}{{if .Scored}} <span class="score {{.Tier}}">{{.Percent}}%</span>{{end}}</h3>{{end}}
<ul class="audits">
{{range .Audits}}<li>
<span class="score {{.ScoreClass}}">{{.ScoreText}}</span>
<span class="description">{{.Description}}</span>
{{if .DisplayValue}}<em class="display-value">({{.DisplayValue}})</em>{{end}}
{{if .DebugString}}<p class="debug">{{.DebugString}}</p>{{end}}
{{if .Extended}}<div class="extended">{{.Extended}}</div>{{end}}
</li>
{{end}}</ul>
</div>
{{end}}</section>
{{end}}</main>
</body>
</html>
`

// documentStyle is the stylesheet embedded when inline assets are
// requested.
const documentStyle = `
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem auto; max-width: 60rem; color: #212121; }
header .url { color: #616161; }
.version { font-weight: normal; color: #9e9e9e; }
.aggregation { border-top: 1px solid #e0e0e0; padding-top: 1rem; }
.audits { list-style: none; padding-left: 1rem; }
.audits li { margin-bottom: 0.5rem; }
.score { font-weight: bold; }
.score.pass, .score.high { color: #2e7d32; }
.score.fail, .score.low { color: #c62828; }
.score.medium { color: #f9a825; }
.score.info { color: #00838f; }
.debug { color: #757575; font-size: 0.875rem; margin: 0.25rem 0 0 1.5rem; }
.extended { margin: 0.25rem 0 0 1.5rem; }
.audit-table { font-family: ui-monospace, monospace; background: #fafafa; padding: 0.5rem; }
`

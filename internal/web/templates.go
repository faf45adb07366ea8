package web

// pageTemplate is the whole dashboard page: sidebar with the date and the
// card list, and the detail region of the selected card.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Projects</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:system-ui,sans-serif;background:#f3f4f6;color:#111827;display:flex;min-height:100vh}
aside{width:320px;background:#fff;border-right:1px solid #e5e7eb;padding:16px;overflow-y:auto}
#currentDate{font-weight:700;margin-bottom:4px}
.count{color:#6b7280;font-size:12px;margin-bottom:12px}
#projectList a{text-decoration:none;color:inherit}
.project-card{border-radius:8px;padding:12px 14px;margin-bottom:10px;color:#fff;cursor:pointer}
.project-card h3{font-size:15px;margin-bottom:4px}
.project-card p{font-size:13px}
.project-card.selected{outline:3px solid #111827}
{{.PaletteCSS}}
main{flex:1;padding:24px}
#projectDetails{background:#fff;border-radius:8px;padding:20px;min-height:200px}
.details-header{display:flex;justify-content:space-between;align-items:center;margin-bottom:8px}
.details-header button{border:0;border-radius:6px;padding:6px 12px;color:#fff;cursor:pointer}
.details-separator{border-top:1px solid #e5e7eb;margin:12px 0}
.details-content p{margin-top:8px}
.placeholder{color:#6b7280}
code{background:#f3f4f6;padding:0 4px;border-radius:4px}
</style>
</head>
<body>
<aside>
<div id="currentDate">{{.Date}}</div>
{{- if not .Failure}}
<div class="count">{{.Count}}</div>
{{- end}}
<div id="projectList">
{{- if .Failure}}
<p>{{.Failure}}</p>
{{- else}}
{{- range .Cards}}
<a href="?project={{.Index}}"><div class="project-card {{.Color}}{{if .Selected}} selected{{end}}"{{if .DarkText}} style="color:#333"{{end}}>
<h3>{{.Title}}</h3>
<p>{{.Description}}</p>
</div></a>
{{- end}}
{{- end}}
</div>
</aside>
<main>
<div id="projectDetails">
{{- with .Detail}}
<div class="details-header {{.Color}}">
<h2>{{.Title}}</h2>
{{- if .HasOpen}}
<button data-href="{{.OpenURL}}" onclick="window.open(this.dataset.href, '_blank')">{{.OpenLabel}}</button>
{{- end}}
</div>
<p>{{.Description}}</p>
<div class="details-separator"></div>
<p><strong>{{.DeadlineLabel}}</strong> {{.Deadline}}</p>
<p><strong>{{.TaskLabel}}</strong> {{.Task}}</p>
<div class="details-content">
{{- range .Lines}}
<p>{{.}}</p>
{{- end}}
</div>
{{- else}}
<p class="placeholder">{{.Placeholder}}</p>
{{- end}}
</div>
</main>
</body>
</html>
`

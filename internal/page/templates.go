package page

// pageTemplateHTML is the default dashboard page. Custom templates receive
// the same data: .Title, .ElementID, .Width, .Height, .EChartsURL,
// .Summaries and .OptionJSON.
const pageTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    body { font-family: system-ui, -apple-system, "Segoe UI", sans-serif; margin: 1.5rem; color: #1f2933; }
    .run-summary h1 { font-size: 1.4rem; margin: 1rem 0 0.2rem; }
    .run-summary h2 { font-size: 1rem; margin: 0 0 0.8rem; color: #52606d; }
  </style>
</head>
<body>
{{- range .Summaries }}
  <div class="run-summary"><h1>{{ .Title }}</h1><h2>{{ .Subtitle }}</h2></div>
{{- end }}
  <div id="{{ .ElementID }}" style="width: {{ .Width }}px; height: {{ .Height }}px;"></div>
  <script src="{{ .EChartsURL }}"></script>
  <script>
    var option = {{ .OptionJSON }};
    var chart = echarts.init(document.getElementById({{ .ElementID }}), null, { renderer: "canvas" });
    chart.setOption(option);
  </script>
</body>
</html>
`

// fallbackTemplateHTML replaces the dashboard when the leaderboard could not
// be loaded. The body holds exactly one text node and no chart.
const fallbackTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{ .Title }}</title>
</head>
<body>{{ .Message }}</body></html>`

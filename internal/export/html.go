package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

// reportTemplate lays out a single career path for PDF printing. Sections
// mirror the interactive report: skills, skill-gap table with course links,
// project suggestions, and the roadmap.
var reportTemplate = template.Must(template.New("career-path").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
<style>
  @page { size: A4; margin: 18mm 16mm; }
  body { font-family: Helvetica, Arial, sans-serif; color: #1a1a2e; font-size: 12px; }
  h1 { font-size: 22px; border-bottom: 2px solid #3949ab; padding-bottom: 6px; }
  h2 { font-size: 15px; color: #3949ab; margin-top: 18px; }
  ul { margin: 4px 0; padding-left: 18px; }
  table { width: 100%; border-collapse: collapse; margin-top: 6px; }
  th, td { border: 1px solid #c5cae9; padding: 5px 8px; text-align: left; vertical-align: top; }
  th { background: #e8eaf6; }
  .tag { display: inline-block; background: #e8eaf6; border-radius: 3px; padding: 1px 7px; margin-right: 4px; }
  .stage { page-break-inside: avoid; margin-bottom: 8px; }
  a { color: #3949ab; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
{{if .Tags}}<p>{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</p>{{end}}

{{if .RequiredSkills}}<h2>Required skills</h2><ul>{{range .RequiredSkills}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{if .MissingSkills}}<h2>Missing skills</h2><ul>{{range .MissingSkills}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{if .WeakSkills}}<h2>Weak skills</h2><ul>{{range .WeakSkills}}<li>{{.}}</li>{{end}}</ul>{{end}}

{{if .SkillGapReport}}
<h2>Skill gap report</h2>
<table>
<tr><th>Skill</th><th>Your level</th><th>Recommended courses</th></tr>
{{range .SkillGapReport}}
<tr>
  <td>{{.Skill}}</td>
  <td>{{.YourLevel}}</td>
  <td>{{range $i, $c := .RecommendedCourses}}{{if $i}}<br>{{end}}<a href="{{$c.Link}}">{{$c.Title}}</a>{{end}}</td>
</tr>
{{end}}
</table>
{{end}}

{{if .ProjectSuggestions}}
<h2>Project suggestions</h2>
{{range .ProjectSuggestions}}
<div class="stage"><strong>{{.Title}}</strong><br>{{.Description}}{{if .Link}}<br><a href="{{.Link}}">{{.Link}}</a>{{end}}</div>
{{end}}
{{end}}

{{if .Roadmap}}
<h2>Roadmap</h2>
{{range .Roadmap}}
<div class="stage"><strong>{{.Title}}</strong><ul>{{range .Steps}}<li>{{.}}</li>{{end}}</ul></div>
{{end}}
{{end}}
</body>
</html>
`))

// RenderHTML renders the printable report page for one career path.
func RenderHTML(path types.CareerPath) (string, error) {
	var sb strings.Builder
	if err := reportTemplate.Execute(&sb, path); err != nil {
		return "", fmt.Errorf("failed to render report template: %w", err)
	}
	return sb.String(), nil
}

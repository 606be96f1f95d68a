// Package preview renders a resume document as an HTML fragment for the
// on-screen preview pane. It mirrors the PDF section order so the preview
// and the download stay in step.
package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/misbah/resumeai/internal/types"
)

const fragmentHTML = `<div class="resume-preview">
  <h1 class="resume-name">{{.DisplayName}}</h1>
  <h2 class="resume-title">{{.DisplayTitle}}</h2>
  <p class="contact">Email: {{orValue .Contact.Email}} | Phone: {{orValue .Contact.Phone}}</p>
{{- if .Contact.LinkedIn}}
  <p class="contact linkedin">LinkedIn: {{.Contact.LinkedIn}}</p>
{{- end}}
  <h3>PROFESSIONAL SUMMARY</h3>
  <p class="summary">{{.Summary}}</p>
  <h3>TECHNICAL SKILLS</h3>
  <p class="skills">{{joinSkills .Skills}}</p>
  <h3>EXPERIENCE</h3>
{{- range .Experience}}
  <div class="job">
    <p class="job-line">{{.Role}} at {{.Company}}</p>
{{- if .Details}}
    <p class="job-detail">- {{index .Details 0}}</p>
{{- end}}
  </div>
{{- end}}
  <h3>EDUCATION</h3>
{{- range .Education}}
  <p class="education-line">{{orValue .Degree}} from {{orValue .Institution}} ({{orValue .Year}})</p>
{{- end}}
</div>
`

var fragmentTmpl = template.Must(template.New("preview").Funcs(template.FuncMap{
	"orValue": types.OrValue,
	"joinSkills": func(skills []string) string {
		return strings.Join(skills, " | ")
	},
}).Parse(fragmentHTML))

// HTML renders doc into a preview fragment. Like the PDF renderer it must
// succeed for any well-formed document; a template failure is an internal
// defect.
func HTML(doc *types.ResumeDocument) (string, error) {
	var buf bytes.Buffer
	if err := fragmentTmpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return buf.String(), nil
}

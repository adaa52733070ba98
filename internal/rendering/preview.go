package rendering

import (
	"embed"
	"html/template"
	"strings"

	"cv-generator/internal/cv"
)

//go:embed templates/preview.html.tmpl
var templateFS embed.FS

// Renderer is a pure function from Document to preview HTML. It renders
// whatever document it is given, live or export snapshot, with no state of
// its own.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded preview template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("preview.html.tmpl").Funcs(template.FuncMap{
		"formatDate": FormatDate,
	}).ParseFS(templateFS, "templates/preview.html.tmpl")
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse preview template", Cause: err}
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the preview HTML for doc. Optional sections are omitted
// entirely when their collection is empty, and delegate-role conference
// entries render without their title line.
func (r *Renderer) Render(doc cv.Document) (string, error) {
	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, doc); err != nil {
		return "", &RenderError{Message: "failed to execute preview template", Cause: err}
	}
	return sb.String(), nil
}

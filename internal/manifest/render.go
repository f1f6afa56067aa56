package manifest

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// documentTemplate writes sections separated by a blank line, each preceded
// by its comment lines.
const documentTemplate = `{{ range $i, $s := .Sections }}{{ if $i }}
{{ end }}{{ range splitList "\n" $s.Comment }}{{ if . }}# {{ . }}
{{ end }}{{ end }}[{{ $s.Header }}]
{{ range $s.Options }}{{ .Key }} = {{ trim .Value }}
{{ end }}{{ end }}`

var renderTemplate = template.Must(
	template.New("variants.ini").Funcs(sprig.TxtFuncMap()).Parse(documentTemplate),
)

// Render writes doc in canonical INI form. The output parses back to an
// equal document.
func Render(doc *Document, w io.Writer) error {
	if err := renderTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("render variants ini: %w", err)
	}
	return nil
}

// RenderString returns the canonical INI form of doc.
func RenderString(doc *Document) (string, error) {
	var b strings.Builder
	if err := Render(doc, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

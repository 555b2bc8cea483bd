package version

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

// TemplateGenerator renders the sockchat app-info template into a go source
// file
type TemplateGenerator struct {
	outFile      string
	templatePath string
}

// NewTemplateGenerator returns a new instance of TemplateGenerator
func NewTemplateGenerator(outFile, templatePath string) *TemplateGenerator {
	return &TemplateGenerator{
		outFile:      outFile,
		templatePath: templatePath,
	}
}

// Generate renders data and replaces outFile. Output that is valid go is
// gofmt'ed, the file is only written once rendering succeeded.
func (t *TemplateGenerator) Generate(data VersionData) error {
	tmpl, err := template.New(filepath.Base(t.templatePath)).ParseFiles(t.templatePath)

	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}

	if err := tmpl.Execute(buf, data); err != nil {
		return err
	}

	out := buf.Bytes()

	if formatted, err := format.Source(out); err == nil {
		out = formatted
	}

	if err := os.MkdirAll(filepath.Dir(t.outFile), 0751); err != nil {
		return err
	}

	return os.WriteFile(t.outFile, out, 0644)
}

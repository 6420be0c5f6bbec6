package schema

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// Generator is written into the header of rendered files.
const Generator = "teamwork-proxy generate"

var sourceTemplate = template.Must(template.New("records").Funcs(template.FuncMap{
	"goType":   goType,
	"wireName": wireName,
	"isString": func(t TypeRef) bool { return t.Kind == KindString },
}).Parse(`// Code generated by {{.Generator}}. DO NOT EDIT.

package {{.Package}}

import "encoding/json"
{{range .Records}}
{{if .Origin}}// {{.Name}} is synthesized from the {{.Origin}} field.{{else}}// {{.Name}} is synthesized from the {{.Name}} sample payload.{{end}}
type {{.Name}} struct {
{{- range .Fields}}
	{{.GoName}} {{goType .Type}} ` + "`" + `json:"{{.NormalizedName}}"` + "`" + `
{{- end}}
}

type {{wireName .Name}} struct {
{{- range .Fields}}
	{{.GoName}} {{goType .Type}} ` + "`" + `json:"{{.OriginalName}}"` + "`" + `
{{- end}}
}

// UnmarshalJSON decodes a {{.Name}} from upstream field names.
func (r *{{.Name}}) UnmarshalJSON(data []byte) error {
	var w {{wireName .Name}}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = {{.Name}}(w)
{{- range .Fields}}{{if isString .Type}}
	r.{{.GoName}} = emptyAsNil(r.{{.GoName}})
{{- end}}{{end}}
	return nil
}
{{end}}
// emptyAsNil treats the upstream's empty strings as absent values.
func emptyAsNil(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}
`))

// Render emits gofmt-formatted Go source declaring records in package pkg.
// Every record reference must resolve within records.
func Render(pkg string, records []RecordSpec) ([]byte, error) {
	known := make(map[string]bool, len(records))
	for _, r := range records {
		known[r.Name] = true
	}
	for _, r := range records {
		for _, ref := range r.References() {
			if !known[ref] {
				return nil, fmt.Errorf("record %s references undefined record %s", r.Name, ref)
			}
		}
	}

	var buf bytes.Buffer
	err := sourceTemplate.Execute(&buf, struct {
		Generator string
		Package   string
		Records   []RecordSpec
	}{
		Generator: Generator,
		Package:   pkg,
		Records:   records,
	})
	if err != nil {
		return nil, fmt.Errorf("error executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("error formatting generated source: %w", err)
	}
	return src, nil
}

func goType(t TypeRef) string {
	switch t.Kind {
	case KindString:
		return "*string"
	case KindInteger:
		return "*int64"
	case KindFloat:
		return "*float64"
	case KindBoolean:
		return "*bool"
	case KindRecord:
		return "*" + t.Record
	case KindList:
		if t.Elem != nil && t.Elem.Kind == KindRecord {
			return "[]" + t.Elem.Record
		}
	}
	return "json.RawMessage"
}

// wireName is the unexported struct that carries upstream JSON tags.
func wireName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:] + "Wire"
}

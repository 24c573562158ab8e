package main

import (
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// templateData is the input passed to the Go template.
type templateData struct {
	Package      string
	MirrorImport string
	Structs      []structModel
}

// genTemplate is the Go source template for generated descriptor files.
//
// Tags are emitted with printf %q so quotes inside tag strings survive the
// round trip; mirror.FieldInfo.Tag is a string type, so the untyped constant
// converts without an explicit reflect import.
var genTemplate = template.Must(
	template.New("derive").Parse(`// Code generated by derive; DO NOT EDIT.

package {{.Package}}

import "{{.MirrorImport}}"
{{range .Structs}}
// {{.Name}}Mirror is the build-time descriptor for {{.Name}}.
var {{.Name}}Mirror = mirror.StructInfo{
	Name: "{{.Name}}",
	Path: "{{.Path}}",
	Fields: []mirror.FieldInfo{
{{- range .Fields}}
		{Name: "{{.Name}}", Path: "{{.Path}}", Tag: {{printf "%q" .Tag}}, Index: {{.Index}}, Exported: {{.Exported}}},
{{- end}}
	},
}
{{end}}
func init() {
{{- range .Structs}}
	mirror.MustRegisterStatic({{.Name}}Mirror)
{{- end}}
}
`),
)

// render executes the template for a manifest's structs.
func render(m Manifest, structs []structModel) (string, error) {
	var out strings.Builder
	err := genTemplate.Execute(&out, templateData{
		Package:      m.Package,
		MirrorImport: m.MirrorImport,
		Structs:      structs,
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	if err = renameFile(tmpPath, targetPath); err != nil {
		return err
	}
	return nil
}

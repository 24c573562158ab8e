package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// structModel is the parsed shape of one struct, ready for the template.
type structModel struct {
	Name   string
	Path   string
	Fields []fieldModel
}

type fieldModel struct {
	Name     string
	Path     string
	Tag      string
	Index    int
	Exported bool
}

// builtinTypes are predeclared identifiers that keep their plain name as a
// type path instead of being qualified with the package name.
var builtinTypes = map[string]struct{}{
	"bool": {}, "string": {}, "error": {},
	"int": {}, "int8": {}, "int16": {}, "int32": {}, "int64": {},
	"uint": {}, "uint8": {}, "uint16": {}, "uint32": {}, "uint64": {},
	"uintptr": {},
	"float32": {}, "float64": {}, "complex64": {}, "complex128": {},
}

// builtinAliases maps alias identifiers to the name the reflect runtime
// reports, so generated paths match mirror.PathOf exactly: reflect sees byte
// as uint8, rune as int32, and any as the unnamed empty interface.
var builtinAliases = map[string]string{
	"byte": "uint8",
	"rune": "int32",
	"any":  "interface {}",
}

// parseStructs extracts the requested structs from a Go source file.
//
// Every name listed in the manifest must be found, and must be a struct
// type; anything else is a hard error so stale manifests fail loudly.
func parseStructs(sourcePath, pkgName string, names []string) ([]structModel, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, sourcePath, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("derive: parsing %s: %w", sourcePath, err)
	}

	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}

	models := make(map[string]structModel, len(names))

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok || typeSpec.Name == nil {
				continue
			}
			if _, want := wanted[typeSpec.Name.Name]; !want {
				continue
			}

			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				return nil, fmt.Errorf("derive: %s is not a struct type", typeSpec.Name.Name)
			}

			model, err := buildStructModel(fset, typeSpec.Name.Name, pkgName, structType)
			if err != nil {
				return nil, err
			}
			models[model.Name] = model
		}
	}

	// Preserve manifest order and report anything unfound.
	out := make([]structModel, 0, len(names))
	for _, n := range names {
		model, found := models[n]
		if !found {
			return nil, fmt.Errorf("derive: struct %s not found in %s", n, sourcePath)
		}
		out = append(out, model)
	}
	return out, nil
}

func buildStructModel(fset *token.FileSet, name, pkgName string, st *ast.StructType) (structModel, error) {
	model := structModel{
		Name: name,
		Path: pkgName + "." + name,
	}

	index := 0
	for _, field := range st.Fields.List {
		path := typePathFromExpr(fset, field.Type, pkgName)

		tag := ""
		if field.Tag != nil {
			// The AST carries the backtick-quoted literal; unquote to the
			// raw tag content.
			unquoted, err := strconv.Unquote(field.Tag.Value)
			if err != nil {
				return structModel{}, fmt.Errorf("derive: %s: bad tag %s: %w", name, field.Tag.Value, err)
			}
			tag = unquoted
		}

		if len(field.Names) == 0 {
			// Embedded field: its name is the base type name.
			fieldName := embeddedFieldName(field.Type)
			model.Fields = append(model.Fields, fieldModel{
				Name:     fieldName,
				Path:     path,
				Tag:      tag,
				Index:    index,
				Exported: isExported(fieldName),
			})
			index++
			continue
		}

		for _, ident := range field.Names {
			model.Fields = append(model.Fields, fieldModel{
				Name:     ident.Name,
				Path:     path,
				Tag:      tag,
				Index:    index,
				Exported: isExported(ident.Name),
			})
			index++
		}
	}

	return model, nil
}

// typePathFromExpr renders a field type expression as the type-path string
// mirror.PathOf would produce for it at run time. Local named types are
// qualified with the package name; selector expressions keep their package
// qualifier as written; builtin aliases are normalized via builtinAliases.
func typePathFromExpr(fset *token.FileSet, expr ast.Expr, pkgName string) string {
	switch e := expr.(type) {
	case *ast.Ident:
		if canonical, alias := builtinAliases[e.Name]; alias {
			return canonical
		}
		if _, builtin := builtinTypes[e.Name]; builtin {
			return e.Name
		}
		return pkgName + "." + e.Name
	case *ast.StarExpr:
		return "*" + typePathFromExpr(fset, e.X, pkgName)
	case *ast.ArrayType:
		if e.Len == nil {
			return "[]" + typePathFromExpr(fset, e.Elt, pkgName)
		}
		return "[" + renderExpr(fset, e.Len) + "]" + typePathFromExpr(fset, e.Elt, pkgName)
	case *ast.MapType:
		return "map[" + typePathFromExpr(fset, e.Key, pkgName) + "]" + typePathFromExpr(fset, e.Value, pkgName)
	case *ast.ChanType:
		return "chan " + typePathFromExpr(fset, e.Value, pkgName)
	case *ast.SelectorExpr:
		return renderExpr(fset, e)
	default:
		// Anonymous structs, func types, etc.: fall back to the source text.
		return renderExpr(fset, expr)
	}
}

// renderExpr prints an expression back to source form.
func renderExpr(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return "<invalid>"
	}
	return buf.String()
}

// embeddedFieldName returns the implicit name of an embedded field.
func embeddedFieldName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return embeddedFieldName(e.X)
	case *ast.SelectorExpr:
		if e.Sel != nil {
			return e.Sel.Name
		}
	}
	return ""
}

func isExported(name string) bool {
	if name == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

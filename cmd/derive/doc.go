// Command derive — static reflection via code generation.
//
// derive is the build-time half of the mirror toolkit. Instead of walking
// struct fields at run time, it parses Go source and emits descriptors as
// plain code:
//
//   - You write a small derive.yaml manifest next to your types.
//   - You add a //go:generate ... directive in the owner Go file.
//   - derive generates a <name>_mirror.gen.go file containing:
//   - one mirror.StructInfo value per listed struct
//   - an init() that registers each descriptor with mirror.MustRegisterStatic
//
// After generation, mirror.Lookup resolves those types with zero runtime
// field walking.
//
// Manifest format (YAML):
//
//	package: examples
//	source: models.go
//	out: models_mirror.gen.go
//	structs:
//	  - Player
//	  - User
//	  - Product
//
// Usage:
//
//	derive --manifest ./derive.yaml
//
// Paths in the manifest are resolved relative to the manifest file, and
// output is written atomically (temp file + rename) so readers never observe
// partial writes.
package main

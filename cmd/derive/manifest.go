package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// mirrorImportPath is the import emitted into generated files. The manifest
// can override it for forks and vendored setups.
const mirrorImportPath = "github.com/hbenali/mirror"

// Manifest is the full input schema consumed by the generator.
type Manifest struct {
	// Package is the package name of the source (and generated) file.
	Package string `yaml:"package"`

	// Source is the Go file to parse, relative to the manifest.
	Source string `yaml:"source"`

	// Out is the generated file path, relative to the manifest.
	Out string `yaml:"out"`

	// Structs lists the struct type names to derive descriptors for.
	Structs []string `yaml:"structs"`

	// MirrorImport optionally overrides the mirror import path.
	MirrorImport string `yaml:"mirrorImport"`
}

// loadManifest reads and validates a manifest file.
func loadManifest(path string) (Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("derive: reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return Manifest{}, fmt.Errorf("derive: parsing manifest %s: %w", path, err)
	}

	if err := validateManifest(&m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// validateManifest checks semantic correctness and applies defaults.
func validateManifest(m *Manifest) error {
	var missing []string

	requireNonEmpty := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}

	requireNonEmpty("package", m.Package)
	requireNonEmpty("source", m.Source)
	requireNonEmpty("out", m.Out)

	if len(m.Structs) == 0 {
		missing = append(missing, "structs (must have at least 1)")
	}

	if len(missing) > 0 {
		return fmt.Errorf("derive: manifest missing required fields: %v", missing)
	}

	seen := make(map[string]struct{}, len(m.Structs))
	for _, name := range m.Structs {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("derive: manifest lists an empty struct name")
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("derive: duplicate struct name: %s", name)
		}
		seen[name] = struct{}{}
	}

	if strings.TrimSpace(m.MirrorImport) == "" {
		m.MirrorImport = mirrorImportPath
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func main() {
	cmd := newRootCmd(os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:          "derive",
		Short:        "derive — generate static mirror descriptors from Go source",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(manifestPath, stderr)
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "derive.yaml", "path to the derive manifest")
	cmd.SetErr(stderr)
	return cmd
}

// run executes the generator logic. It exists separately from main to allow
// unit testing without os.Exit.
func run(manifestPath string, stderr io.Writer) error {
	m, err := loadManifest(manifestPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return err
	}

	// Manifest-relative paths.
	baseDir := filepath.Dir(filepath.Clean(manifestPath))
	sourcePath := filepath.Join(baseDir, m.Source)
	outPath := filepath.Join(baseDir, m.Out)

	structs, err := parseStructs(sourcePath, m.Package, m.Structs)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return err
	}

	code, err := render(m, structs)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return err
	}

	if err := writeFileAtomic(outPath, []byte(code), 0o644); err != nil {
		_, _ = fmt.Fprintln(stderr, "derive: writing output:", err)
		return err
	}
	return nil
}

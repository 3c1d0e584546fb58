// Package main generates markdown API reference pages for the devmenu
// packages using gomarkdoc.
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Package is a Go package to document.
type Package struct {
	Name  string
	Path  string
	Title string
}

// Packages to document, in index order.
var packages = []Package{
	{Name: "widgets", Path: "pkg/widgets", Title: "Floating control"},
	{Name: "dock", Path: "pkg/dock", Title: "Dock resolution"},
	{Name: "gestures", Path: "pkg/gestures", Title: "Gesture tracking"},
	{Name: "animation", Path: "pkg/animation", Title: "Animation"},
	{Name: "rendering", Path: "pkg/rendering", Title: "Geometry and color"},
	{Name: "snapshot", Path: "pkg/snapshot", Title: "PNG snapshots"},
	{Name: "errors", Path: "pkg/errors", Title: "Errors"},
	{Name: "testing", Path: "pkg/testing", Title: "Test helpers"},
}

func main() {
	root, err := findRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding repo root: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Repository root: %s\n", root)

	if err := ensureGomarkdoc(); err != nil {
		fmt.Fprintf(os.Stderr, "Error ensuring gomarkdoc: %v\n", err)
		os.Exit(1)
	}

	apiDir := filepath.Join(root, "docs", "api")
	if err := os.MkdirAll(apiDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating api directory: %v\n", err)
		os.Exit(1)
	}

	var written []Package
	for _, pkg := range packages {
		if _, err := os.Stat(filepath.Join(root, pkg.Path)); os.IsNotExist(err) {
			fmt.Printf("Skipping %s (not found)\n", pkg.Name)
			continue
		}
		fmt.Printf("Generating docs for %s...\n", pkg.Name)
		ok, err := generatePackageDocs(root, pkg, apiDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating docs for %s: %v\n", pkg.Name, err)
			os.Exit(1)
		}
		if ok {
			written = append(written, pkg)
		}
	}

	index := filepath.Join(apiDir, "README.md")
	if err := os.WriteFile(index, []byte(renderIndex(written)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing index: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nWrote %d pages to %s\n", len(written), apiDir)
}

func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

func ensureGomarkdoc() error {
	if _, err := exec.LookPath("gomarkdoc"); err == nil {
		return nil
	}
	fmt.Println("Installing gomarkdoc...")
	cmd := exec.Command("go", "install", "github.com/princjef/gomarkdoc/cmd/gomarkdoc@latest")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// generatePackageDocs writes one page. It reports false when gomarkdoc
// produced nothing usable for the package.
func generatePackageDocs(root string, pkg Package, apiDir string) (bool, error) {
	cmd := exec.Command("gomarkdoc", "./"+pkg.Path)
	cmd.Dir = root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("  Warning: skipping %s (gomarkdoc: %s)\n", pkg.Name, strings.TrimSpace(stderr.String()))
		return false, nil
	}
	if stdout.Len() == 0 {
		fmt.Printf("  Warning: no documentation generated for %s\n", pkg.Name)
		return false, nil
	}

	page := fmt.Sprintf("# %s\n\n`%s`\n%s", pkg.Title, pkg.Path, processMarkdown(stdout.String()))
	return true, os.WriteFile(filepath.Join(apiDir, pkg.Name+".md"), []byte(page), 0644)
}

func renderIndex(pkgs []Package) string {
	var b strings.Builder
	b.WriteString("# API Reference\n\n")
	for _, pkg := range pkgs {
		fmt.Fprintf(&b, "- [%s](%s.md) `%s`\n", pkg.Title, pkg.Name, pkg.Path)
	}
	return b.String()
}

// processMarkdown strips the parts of gomarkdoc output that the page header
// replaces: the package heading, the import block and the index.
func processMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	inIndex := false
	inImport := false

	for i, line := range lines {
		if i == 0 && strings.HasPrefix(line, "# ") {
			continue
		}

		if line == "## Index" {
			inIndex = true
			continue
		}
		if inIndex {
			if !strings.HasPrefix(line, "## ") {
				continue
			}
			inIndex = false
		}

		if line == "```go" && i+1 < len(lines) && strings.HasPrefix(lines[i+1], "import ") {
			inImport = true
			continue
		}
		if inImport {
			if line == "```" {
				inImport = false
			}
			continue
		}

		if strings.HasPrefix(line, "<details><summary>") && strings.HasSuffix(line, "</summary>") {
			summary := strings.TrimSuffix(strings.TrimPrefix(line, "<details><summary>"), "</summary>")
			result = append(result, "", "**"+summary+":**", "")
			continue
		}
		if line == "</details>" || line == "<p>" || line == "</p>" {
			continue
		}

		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

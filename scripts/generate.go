//go:build ignore

// Command generate writes endpoint/catalogue_gen.go from endpoint/routes.yaml.
//
// It is run through go generate from the endpoint package directory:
//
//	go generate ./endpoint
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

const (
	catalogueFile = "routes.yaml"
	outputFile    = "catalogue_gen.go"
)

var hostClasses = map[string]string{
	"api":     "HostAPI",
	"content": "HostContent",
	"notify":  "HostNotify",
}

type Catalogue struct {
	Routes []Route `yaml:"routes"`
}

type Route struct {
	Name string `yaml:"name"`
	Host string `yaml:"host"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cat, err := readCatalogue(catalogueFile)
	if err != nil {
		return fmt.Errorf("reading catalogue: %w", err)
	}

	src, err := render(cat)
	if err != nil {
		return fmt.Errorf("rendering catalogue: %w", err)
	}

	fmt.Printf("Writing %d routes to %s\n", len(cat.Routes), outputFile)
	return os.WriteFile(outputFile, src, 0644)
}

func readCatalogue(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cat Catalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}

	seen := make(map[string]string, len(cat.Routes))
	for _, r := range cat.Routes {
		if _, ok := hostClasses[r.Host]; !ok {
			return nil, fmt.Errorf("route %q: unknown host class %q", r.Name, r.Host)
		}
		ident := goName(r.Name)
		if prev, ok := seen[ident]; ok {
			return nil, fmt.Errorf("routes %q and %q both map to %s", prev, r.Name, ident)
		}
		seen[ident] = r.Name
	}
	return &cat, nil
}

func render(cat *Catalogue) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by scripts/generate.go from routes.yaml; DO NOT EDIT.\n\n")
	b.WriteString("package endpoint\n\n")

	b.WriteString("const (\n")
	for i, r := range cat.Routes {
		if i == 0 {
			fmt.Fprintf(&b, "\t%s ID = iota\n", goName(r.Name))
			continue
		}
		fmt.Fprintf(&b, "\t%s\n", goName(r.Name))
	}
	b.WriteString("\n\tnumIDs\n)\n\n")

	b.WriteString("var catalogue = [numIDs]route{\n")
	for _, r := range cat.Routes {
		fmt.Fprintf(&b, "\t%s: {%q, %s},\n", goName(r.Name), r.Name, hostClasses[r.Host])
	}
	b.WriteString("}\n")

	return format.Source(b.Bytes())
}

// goName turns a route name such as "files/list_folder/continue" into
// FilesListFolderContinue.
func goName(name string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '_' }) {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"
	"github.com/signadot/flat/ir"
	"github.com/signadot/flat/schema"
)

func getObjFile(cc *cli.Context, path string) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parseObj(path, d)
}

// parseObj parses d as YAML if path has a YAML extension and as JSON
// otherwise.  Standard input is tried as JSON, then YAML.
func parseObj(path string, d []byte) (*ir.Node, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return ir.ParseYAML(d)
	}
	node, err := ir.ParseJSON(d)
	if err == nil || path != "-" {
		return node, err
	}
	return ir.ParseYAML(d)
}

// eachObjFile calls f with each parsed file, or standard input if
// there are no files.
func eachObjFile(cc *cli.Context, files []string, f func(i int, path string, node *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		node, err := getObjFile(cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := f(i, file, node); err != nil {
			return err
		}
	}
	return nil
}

func loadSchema(cc *cli.Context, path, name string) (*schema.Node, error) {
	node, err := getObjFile(cc, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema %s: %w", path, err)
	}
	doc, err := schema.ParseDocument(node)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema %s: %w", path, err)
	}
	return docSchema(doc, name)
}

// docSchema returns the definition name of doc, or what doc accepts
// if name is empty.
func docSchema(doc *schema.Document, name string) (*schema.Node, error) {
	if name != "" {
		s := doc.Lookup(name)
		if s == nil {
			return nil, fmt.Errorf("%w: %q", schema.ErrUnknownRef, name)
		}
		return s, nil
	}
	if doc.Accept == nil {
		return nil, fmt.Errorf("%w: schema has no accept, use -s to name a definition", cli.ErrUsage)
	}
	return doc.Accept, nil
}

func writeSep(w io.Writer, i int) error {
	if i == 0 {
		return nil
	}
	_, err := w.Write([]byte("---\n"))
	return err
}

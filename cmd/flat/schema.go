package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/flat/schema"
)

func schemaList(cfg *SchemaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Schema.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: schema requires a schema file", cli.ErrUsage)
	}
	node, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	doc, err := schema.ParseDocument(node)
	if err != nil {
		return err
	}
	names := args[1:]
	if len(names) == 0 {
		names = doc.Names()
	}
	for _, name := range names {
		s := doc.Lookup(name)
		if s == nil {
			return fmt.Errorf("%w: %q", schema.ErrUnknownRef, name)
		}
		if err := writeDef(cc.Out, name, s); err != nil {
			return err
		}
	}
	if len(args) == 1 && doc.Accept != nil {
		return writeDef(cc.Out, "accept", doc.Accept)
	}
	return nil
}

// writeDef writes a line for s and an indented line per field path.
func writeDef(w io.Writer, name string, s *schema.Node) error {
	if _, err := fmt.Fprintf(w, "%s: %s [%s]\n", name, s, s.Bucket()); err != nil {
		return err
	}
	for _, f := range s.Fields() {
		if _, err := fmt.Fprintf(w, "  %s\n", f); err != nil {
			return err
		}
	}
	return nil
}

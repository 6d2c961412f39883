package main

import (
	"fmt"
	"io"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/flat"
	"github.com/signadot/flat/ir"
	"github.com/signadot/flat/schema"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: check requires a schema file", cli.ErrUsage)
	}
	s, err := loadSchema(cc, args[0], cfg.Name)
	if err != nil {
		return err
	}
	colors := newDiffColors(cfg.colors(cc.Out))
	failed := 0
	err = eachObjFile(cc, args[1:], func(_ int, path string, data *ir.Node) error {
		ok, err := checkOne(cfg, cc.Out, colors, s, path, data)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		theLog.Warn("round trip failed", "documents", failed)
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkOne reports whether data survives normalizing, encoding and
// denormalizing with s, writing the outcome to w.
func checkOne(cfg *CheckConfig, w io.Writer, colors *diffColors, s *schema.Node, path string, data *ir.Node) (bool, error) {
	d, err := flat.Normalize(s, data).MarshalJSON()
	if err != nil {
		return false, err
	}
	var res flat.Result
	if err := res.UnmarshalJSON(d); err != nil {
		return false, fmt.Errorf("%s: error decoding normalized form: %w", path, err)
	}
	back, err := flat.Denormalize(s, &res)
	if err != nil {
		_, err = fmt.Fprintf(w, "%s: %s\n", path, colors.del(err.Error()))
		return false, err
	}
	if ir.Equal(data, back) {
		if !cfg.Quiet {
			_, err = fmt.Fprintf(w, "%s: ok\n", path)
		}
		return true, err
	}
	if _, err := fmt.Fprintf(w, "%s: mismatch\n", path); err != nil {
		return false, err
	}
	want := string(ir.EncodeJSONIndent(data, "  "))
	got := string(ir.EncodeJSONIndent(back, "  "))
	if err := writeLineDiff(w, colors, want, got); err != nil {
		return false, err
	}
	if data.Type != ir.ObjectType || back.Type != ir.ObjectType {
		return false, nil
	}
	patch, err := jsonpatch.CreateMergePatch(ir.EncodeJSON(data), ir.EncodeJSON(back))
	if err != nil {
		return false, fmt.Errorf("%s: error creating merge patch: %w", path, err)
	}
	_, err = fmt.Fprintf(w, "merge patch: %s\n", patch)
	return false, err
}

type diffColors struct {
	del, ins func(a ...any) string
}

func newDiffColors(on bool) *diffColors {
	if !on {
		return &diffColors{del: fmt.Sprint, ins: fmt.Sprint}
	}
	del := color.RGB(196, 64, 64)
	del.EnableColor()
	ins := color.RGB(8, 196, 16)
	ins.EnableColor()
	return &diffColors{del: del.SprintFunc(), ins: ins.SprintFunc()}
}

// writeLineDiff writes a unified line diff of want and got without
// hunk headers.
func writeLineDiff(w io.Writer, colors *diffColors, want, got string) error {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)
	for _, diff := range diffs {
		var prefix string
		paint := fmt.Sprint
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix, paint = "-", colors.del
		case diffmatchpatch.DiffInsert:
			prefix, paint = "+", colors.ins
		case diffmatchpatch.DiffEqual:
			prefix = " "
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			if _, err := io.WriteString(w, paint(prefix+line)+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

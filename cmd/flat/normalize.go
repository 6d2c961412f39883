package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/flat"
	"github.com/signadot/flat/ir"
)

func normalize(cfg *NormalizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Normalize.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: normalize requires a schema file", cli.ErrUsage)
	}
	s, err := loadSchema(cc, args[0], cfg.Name)
	if err != nil {
		return err
	}
	return eachObjFile(cc, args[1:], func(i int, path string, data *ir.Node) error {
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		res := flat.Normalize(s, data)
		theLog.Info("normalized", "file", path, "buckets", len(res.Index.Fields))
		if err := cfg.encode(cc.Out, res.ToIR()); err != nil {
			return fmt.Errorf("error encoding %s: %w", path, err)
		}
		return nil
	})
}

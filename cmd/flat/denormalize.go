package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/flat"
	"github.com/signadot/flat/ir"
)

func denormalize(cfg *DenormalizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Denormalize.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: denormalize requires a schema file", cli.ErrUsage)
	}
	s, err := loadSchema(cc, args[0], cfg.Name)
	if err != nil {
		return err
	}
	return eachObjFile(cc, args[1:], func(i int, path string, node *ir.Node) error {
		res, err := flat.ResultFromIR(node)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		data, err := flat.Denormalize(s, res)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		theLog.Info("denormalized", "file", path)
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		if err := cfg.encode(cc.Out, data); err != nil {
			return fmt.Errorf("error encoding %s: %w", path, err)
		}
		return nil
	})
}

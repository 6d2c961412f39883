package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "flat").
		WithSynopsis("flat [opts] command [opts]").
		WithDescription("flat normalizes object documents against a schema.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return flatMain(cfg, cc, args)
		}).
		WithSubs(
			NormalizeCommand(cfg),
			DenormalizeCommand(cfg),
			CheckCommand(cfg),
			SchemaCommand(cfg))
}

func NormalizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NormalizeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Normalize, "normalize").
		WithAliases("n", "norm").
		WithSynopsis("normalize [-s name] <schema-file> [files]").
		WithDescription("normalize documents to entities and an index").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return normalize(cfg, cc, args)
		})
}

func DenormalizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DenormalizeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Denormalize, "denormalize").
		WithAliases("d", "denorm").
		WithSynopsis("denormalize [-s name] <schema-file> [normalized-files]").
		WithDescription("reconstruct documents from entities and an index").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return denormalize(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-s name] [-q] <schema-file> [files]").
		WithDescription(checkDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

const checkDescription = `check normalizes and denormalizes documents and reports
whether each one comes back unchanged.

The normalized form goes through its JSON encoding on the way, so check
also exercises what a consumer of 'flat normalize' output would see.

For each document which does not come back unchanged, check prints a line
diff of the JSON of the original and the result, followed by a JSON merge
patch (RFC 7386) taking the original to the result when both are objects.
check exits with status 1 if any document does not come back unchanged.`

func SchemaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Schema, "schema").
		WithAliases("s").
		WithSynopsis("schema <schema-file> [names]").
		WithDescription("list schema definitions with their buckets and field paths").
		WithRun(func(cc *cli.Context, args []string) error {
			return schemaList(cfg, cc, args)
		})
}

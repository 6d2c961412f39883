package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/flat/ir"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='color diff output'"`
	WireOut bool `cli:"name=wire desc='output compact json'"`
	Verbose bool `cli:"name=v desc='log each document processed to stderr'"`

	J bool `cli:"name=j aliases=json desc='output json (default)'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encode(w io.Writer, node *ir.Node) error {
	var d []byte
	switch {
	case cfg.Y:
		var err error
		d, err = ir.EncodeYAML(node)
		if err != nil {
			return err
		}
	case cfg.WireOut:
		d = append(ir.EncodeJSON(node), '\n')
	default:
		d = append(ir.EncodeJSONIndent(node, "  "), '\n')
	}
	_, err := w.Write(d)
	return err
}

// colors reports whether output to w is colored: -color if given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type NormalizeConfig struct {
	*MainConfig
	Name string `cli:"name=s desc='normalize with the named definition instead of accept'"`

	Normalize *cli.Command
}

type DenormalizeConfig struct {
	*MainConfig
	Name string `cli:"name=s desc='denormalize with the named definition instead of accept'"`

	Denormalize *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Name  string `cli:"name=s desc='check with the named definition instead of accept'"`
	Quiet bool   `cli:"name=q desc='only report documents which do not round trip'"`

	Check *cli.Command
}

type SchemaConfig struct {
	*MainConfig
	Schema *cli.Command
}

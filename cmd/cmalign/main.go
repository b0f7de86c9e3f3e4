package main

import (
	"github.com/jessevdk/go-flags"

	"github.com/katalvlaran/cmalign/cmd/cmalign/cmaligncmd"
	mbp "github.com/katalvlaran/cmalign/internal/mainboilerplate"
)

const iniFilename = "cmalign.ini"

func main() {
	var parser = flags.NewParser(nil, flags.Default)

	mbp.AddPrintConfigCmd(parser, iniFilename)
	mbp.Must(cmaligncmd.AddCommands(parser), "could not add commands")

	parser.LongDescription = `cmalign aligns protein contact maps by joining softassign with dynamic programming.

	See --help pages of each sub-command for documentation and usage examples.
	Optionally configure cmalign with a '` + iniFilename + `' file in the current working directory,
	or with '~/.config/cmalign/` + iniFilename + `'. Use the 'print-config' sub-command to inspect
	the tool's current configuration.
	`

	mbp.MustParseConfig(parser, iniFilename)
}

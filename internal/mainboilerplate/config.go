package mainboilerplate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

// Version and BuildDate are populated at build time via -ldflags.
var (
	Version   = "development"
	BuildDate = "unknown"
)

// ConfigPrefixes are the directories searched, in order, for the INI file.
func ConfigPrefixes() []string {
	return []string{
		".",
		filepath.Join(os.Getenv("HOME"), ".config", "cmalign"),
		filepath.Join(os.Getenv("UserProfile"), ".config", "cmalign"),
	}
}

// ParseConfigFile applies the first configName found under prefixes to
// parser. Unknown options are allowed while parsing the file. A missing file
// is not an error.
func ParseConfigFile(parser *flags.Parser, configName string, prefixes []string) error {
	var origOptions = parser.Options
	parser.Options |= flags.IgnoreUnknown
	defer func() { parser.Options = origOptions }()

	var iniParser = flags.NewIniParser(parser)
	for _, prefix := range prefixes {
		var path = filepath.Join(prefix, configName)

		if err := iniParser.ParseFile(path); err == nil {
			return nil
		} else if os.IsNotExist(err) {
			// Pass.
		} else {
			return err
		}
	}
	return nil
}

// MustParseConfig requires that the Parser parse from the combination of an
// optional INI file, configured environment bindings, and explicit flags.
// An INI file matching |configName| is searched for in ConfigPrefixes.
func MustParseConfig(parser *flags.Parser, configName string) {
	if err := ParseConfigFile(parser, configName, ConfigPrefixes()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	MustParseArgs(parser)
}

// MustParseArgs requires that Parser be able to ParseArgs without error.
func MustParseArgs(parser *flags.Parser) {
	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		var flagErr, ok = err.(*flags.Error)
		if !ok {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		switch flagErr.Type {
		case flags.ErrDuplicatedFlag, flags.ErrTag, flags.ErrInvalidTag, flags.ErrShortNameTooLong, flags.ErrMarshal:
			// These error types indicate a problem in the configuration object
			// |parser| was asked to parse (eg, a developer error rather than input error).
			panic(err)

		case flags.ErrCommandRequired:
			// Extend go-flag's "Please specify one command of: ... " output with the full usage.
			os.Stderr.WriteString("\n")
			parser.WriteHelp(os.Stderr)
			fmt.Fprintf(os.Stderr, "\nVersion %s, built at %s.\n", Version, BuildDate)
			os.Exit(1)

		case flags.ErrHelp:
			if parser.Options&flags.PrintErrors == 0 {
				parser.WriteHelp(os.Stderr)
				fmt.Fprintf(os.Stderr, "\nVersion %s, built at %s.\n", Version, BuildDate)
			}
			os.Exit(0)

		default:
			// Other error types indicate a problem of input. Generally, `go-flags`
			// already prints a helpful message and we can simply exit.
			os.Exit(1)
		}
	}
}

// AddPrintConfigCmd to the Parser. The "print-config" command helps users test
// whether their applications are correctly configured, by exporting all runtime
// configuration in INI format.
func AddPrintConfigCmd(parser *flags.Parser, configName string) {
	_, _ = parser.AddCommand("print-config", "Print combined configuration and exit", `
print-config parses the combined configuration from `+configName+`, flags,
and environment variables, and then writes the configuration to stdout in INI format.
`, &PrintConfig{Parser: parser})
}

// PrintConfig is the print-config command.
type PrintConfig struct {
	*flags.Parser `no-flag:"t"`
	Out           io.Writer `no-flag:"t"`
}

// Execute writes the parser's configuration as INI.
func (p PrintConfig) Execute([]string) error {
	var out = p.Out
	if out == nil {
		out = os.Stdout
	}
	var ini = flags.NewIniParser(p.Parser)
	ini.Write(out, flags.IniIncludeComments|flags.IniCommentDefaults|flags.IniIncludeDefaults)
	return nil
}

package command

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/cli"
	hclog "github.com/hashicorp/go-hclog"

	"github.com/jorgsowa/phpfront/pkg/phpparse"
)

// ParseCommand parses a single PHP file and prints its AST as JSON followed
// by any diagnostics collected along the way. It never exits non-zero on
// malformed input — that's what the check subcommand is for.
type ParseCommand struct {
	UI     cli.Ui
	Logger hclog.Logger
}

func ParseCommandFactory(ui cli.Ui, logger hclog.Logger) cli.CommandFactory {
	return func() (cli.Command, error) {
		return &ParseCommand{UI: ui, Logger: logger.Named("parse")}, nil
	}
}

func (c *ParseCommand) Help() string {
	return strings.TrimSpace(`
Usage: phparse parse [options] <file>

  Parses a PHP file and prints its AST as JSON, followed by any
  diagnostics recovered along the way. Parsing never aborts on malformed
  input, so the AST is always printed even when diagnostics are present.

Options:

  -verbose    Enable debug logging.
`)
}

func (c *ParseCommand) Synopsis() string {
	return "Parse a PHP file and print its AST as JSON"
}

func (c *ParseCommand) Run(args []string) int {
	flags := flagSetWithVerbose("parse")
	if err := flags.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if flags.NArg() != 1 {
		c.UI.Error("expected exactly one file argument")
		return 1
	}
	if verboseFlag(flags) {
		c.Logger.SetLevel(hclog.Trace)
	}

	path := flags.Arg(0)
	src, err := os.ReadFile(path)
	if err != nil {
		c.UI.Error(fmt.Sprintf("reading %s: %v", path, err))
		return 1
	}

	c.Logger.Debug("parsing", "file", path, "bytes", len(src))
	result := phpparse.Parse(src, phpparse.WithFilename(path), phpparse.WithTrivia(true))
	c.Logger.Debug("parse complete", "diagnostics", len(result.Diagnostics))

	tree := dumpNode(result.Program)
	encoded, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("encoding AST: %v", err))
		return 1
	}
	c.UI.Output(string(encoded))

	printDiagnostics(c.UI, path, result.Diagnostics)
	return 0
}

package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/cli"
	hclog "github.com/hashicorp/go-hclog"

	"github.com/jorgsowa/phpfront/internal/diag"
	"github.com/jorgsowa/phpfront/internal/lexer"
)

// TokensCommand dumps the raw token stream for a file, one token per line.
// It runs the lexer standalone rather than going through pkg/phpparse, for
// debugging lexer behavior in isolation from the parser.
type TokensCommand struct {
	UI     cli.Ui
	Logger hclog.Logger
}

func TokensCommandFactory(ui cli.Ui, logger hclog.Logger) cli.CommandFactory {
	return func() (cli.Command, error) {
		return &TokensCommand{UI: ui, Logger: logger.Named("tokens")}, nil
	}
}

func (c *TokensCommand) Help() string {
	return strings.TrimSpace(`
Usage: phparse tokens [options] <file>

  Dumps the token stream produced by the lexer for a file, one token per
  line: "kind span text". Useful for debugging the lexer in isolation
  from the parser.

Options:

  -verbose    Enable lexer step logging.
`)
}

func (c *TokensCommand) Synopsis() string {
	return "Dump the token stream for a PHP file"
}

func (c *TokensCommand) Run(args []string) int {
	flags := flagSetWithVerbose("tokens")
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

	bag := &diag.Bag{}
	lx := lexer.New(src, bag)
	lx.SetFilename(path)

	for {
		tok := lx.NextToken()
		text := tok.Text()
		c.Logger.Trace("token", "kind", tok.Kind, "span", tok.Span.String())
		if text != "" {
			c.UI.Output(fmt.Sprintf("%-20s %-10s %q", tok.Kind, tok.Span, text))
		} else {
			c.UI.Output(fmt.Sprintf("%-20s %-10s", tok.Kind, tok.Span))
		}
		if tok.Kind == lexer.EOF {
			break
		}
	}

	printDiagnostics(c.UI, path, bag.All())
	return 0
}

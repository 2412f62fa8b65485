package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/cli"
	hclog "github.com/hashicorp/go-hclog"

	"github.com/jorgsowa/phpfront/internal/diag"
	"github.com/jorgsowa/phpfront/pkg/phpparse"
)

// CheckCommand parses a file and reports only its diagnostics, exiting
// non-zero when any of them are error severity. It's the subcommand meant
// for scripting ("phparse check $f || fail the build") where the full AST
// dump would just be noise.
type CheckCommand struct {
	UI     cli.Ui
	Logger hclog.Logger
}

func CheckCommandFactory(ui cli.Ui, logger hclog.Logger) cli.CommandFactory {
	return func() (cli.Command, error) {
		return &CheckCommand{UI: ui, Logger: logger.Named("check")}, nil
	}
}

func (c *CheckCommand) Help() string {
	return strings.TrimSpace(`
Usage: phparse check [options] <file> [file...]

  Parses one or more PHP files and prints their diagnostics. Exits 1 if
  any file produced a diagnostic at error severity, 0 otherwise.

Options:

  -verbose    Enable debug logging.
`)
}

func (c *CheckCommand) Synopsis() string {
	return "Check a PHP file for diagnostics"
}

func (c *CheckCommand) Run(args []string) int {
	flags := flagSetWithVerbose("check")
	if err := flags.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if flags.NArg() < 1 {
		c.UI.Error("expected at least one file argument")
		return 1
	}
	if verboseFlag(flags) {
		c.Logger.SetLevel(hclog.Trace)
	}

	hadErrors := false
	for _, path := range flags.Args() {
		src, err := os.ReadFile(path)
		if err != nil {
			c.UI.Error(fmt.Sprintf("reading %s: %v", path, err))
			hadErrors = true
			continue
		}

		c.Logger.Debug("checking", "file", path)
		result := phpparse.Parse(src, phpparse.WithFilename(path))
		printDiagnostics(c.UI, path, result.Diagnostics)

		for _, d := range result.Diagnostics {
			if d.Severity == diag.SeverityError {
				hadErrors = true
				break
			}
		}
	}

	if hadErrors {
		return 1
	}
	return 0
}

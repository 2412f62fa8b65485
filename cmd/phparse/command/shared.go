// Package command implements the phparse CLI's subcommands: parse, check,
// and tokens. Each follows the hashicorp/cli Command shape (Help, Run,
// Synopsis) and shares a go-hclog logger threaded in from main.
package command

import (
	"flag"
	"fmt"

	"github.com/hashicorp/cli"

	"github.com/jorgsowa/phpfront/internal/diag"
)

// flagSetWithVerbose builds a flag.FlagSet pre-populated with the -verbose
// flag every subcommand accepts, so main's logger level can be raised from
// inside Run without each command re-declaring the flag by hand.
func flagSetWithVerbose(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Bool("verbose", false, "enable debug logging")
	return fs
}

func verboseFlag(fs *flag.FlagSet) bool {
	f := fs.Lookup("verbose")
	if f == nil {
		return false
	}
	return f.Value.String() == "true"
}

// printDiagnostics renders diagnostics the way a terminal-facing compiler
// front end does: one line per diagnostic, "file:line:col: severity: msg".
func printDiagnostics(ui cli.Ui, file string, diags []diag.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	for _, d := range diags {
		line := fmt.Sprintf("%s:%s: %s: %s", file, d.Span, d.Severity, d.Message)
		if d.Severity == diag.SeverityError {
			ui.Error(line)
		} else {
			ui.Warn(line)
		}
	}
}

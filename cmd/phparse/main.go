package main

import (
	"os"

	"github.com/hashicorp/cli"
	hclog "github.com/hashicorp/go-hclog"

	"github.com/jorgsowa/phpfront/cmd/phparse/command"
)

func main() {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "phparse",
		Level:  hclog.Warn,
		Output: os.Stderr,
	})

	c := cli.NewCLI("phparse", "0.1.0")
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"parse":  command.ParseCommandFactory(ui, logger),
		"check":  command.CheckCommandFactory(ui, logger),
		"tokens": command.TokensCommandFactory(ui, logger),
	}

	exitStatus, err := c.Run()
	if err != nil {
		logger.Error("command exited with error", "error", err)
	}
	os.Exit(exitStatus)
}

package main

import (
	"os"

	"github.com/pterm/pterm"

	"seafreight/internal/cli"
)

// version is overridden with -ldflags "-X main.version=...".
var version = "0.0.0-dev"

func main() {
	app := cli.NewCLIApp(version, cli.NewConsole(), cli.NewPrompter())
	if err := app.Execute(); err != nil {
		pterm.Error.Printfln("Input Error: %v", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	// A local .env is a convenience for development; absence is fine.
	godotenv.Load()

	app := &cli.App{
		Name:           "fuelfetch",
		Usage:          "Fetch GOV UK fuel prices and save a CMA-compatible JSON snapshot",
		Version:        version,
		DefaultCommand: "fetch",
		Commands: []*cli.Command{
			fetchCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/himakhaitan/hexkv/cli"
	"github.com/himakhaitan/hexkv/pkg/config"
	"go.uber.org/fx"
)

func main() {
	var cliInstance *cli.CLI

	app := fx.New(
		fx.NopLogger,
		config.Module(),
		cli.Module,
		fx.Populate(&cliInstance),
	)

	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cliInstance.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

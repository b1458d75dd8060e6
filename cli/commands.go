package cli

import (
	"github.com/himakhaitan/hexkv/cli/commands"
	"github.com/himakhaitan/hexkv/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type CLI struct {
	root *cobra.Command
}

func NewCLI(cfg *config.Config) *CLI {
	cli := &CLI{}

	rootCmd := &cobra.Command{
		Use:   "hexkv-cli",
		Short: "A CLI for the hex key-value gateway",
		Long:  "hexkv-cli talks to a running hexkv server. Set HEXKV_URL to point it at another server.",
	}

	registry := commands.NewCommandRegistry(cfg.ServerURL)
	registry.RegisterCommands(rootCmd)

	cli.root = rootCmd

	return cli
}

func (c *CLI) Run() error {
	return c.root.Execute()
}

var Module = fx.Provide(NewCLI)

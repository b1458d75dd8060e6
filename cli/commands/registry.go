package commands

import (
	"github.com/spf13/cobra"
)

// CommandRegistry holds all available commands
type CommandRegistry struct {
	baseURL string
}

// NewCommandRegistry creates a registry whose commands target baseURL
func NewCommandRegistry(baseURL string) *CommandRegistry {
	return &CommandRegistry{baseURL: baseURL}
}

// GetAllCommands returns all available commands
func (r *CommandRegistry) GetAllCommands() []*cobra.Command {
	return []*cobra.Command{
		NewVersionCommand(),
		NewHealthCommand(r.baseURL),
		NewGetCommand(r.baseURL),
		NewPutCommand(r.baseURL),
		NewDeleteCommand(r.baseURL),
		NewBulkCommand(r.baseURL),
		NewStatsCommand(r.baseURL),
	}
}

// RegisterCommands adds all commands to the root command
func (r *CommandRegistry) RegisterCommands(rootCmd *cobra.Command) {
	for _, cmd := range r.GetAllCommands() {
		rootCmd.AddCommand(cmd)
	}
}

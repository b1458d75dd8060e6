package commands

import (
	"net/http"

	"github.com/himakhaitan/hexkv/cli/output"
	"github.com/spf13/cobra"
)

// NewHealthCommand creates a new health command
func NewHealthCommand(baseURL string) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server can reach its store",
		Run: func(cmd *cobra.Command, args []string) {
			status, body, err := newAPIClient(baseURL).do(http.MethodGet, "/health", nil)
			if err != nil {
				return
			}
			if status != http.StatusOK {
				reportFailure(status, body)
				return
			}
			output.Success("Server and store are healthy")
		},
	}
}

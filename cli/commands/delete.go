package commands

import (
	"fmt"
	"net/http"

	"github.com/himakhaitan/hexkv/cli/output"
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates a new delete command
func NewDeleteCommand(baseURL string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a key",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			key := args[0]
			status, body, err := newAPIClient(baseURL).do(http.MethodDelete, "/"+key, nil)
			if err != nil {
				return
			}
			switch status {
			case http.StatusOK:
				output.Success(fmt.Sprintf("Deleted key: %s", key))
			case http.StatusNotFound:
				output.Warn(fmt.Sprintf("Key '%s' not found", key))
			default:
				reportFailure(status, body)
			}
		},
	}
}

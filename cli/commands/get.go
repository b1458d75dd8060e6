package commands

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/himakhaitan/hexkv/cli/output"
	"github.com/spf13/cobra"
)

// NewGetCommand creates a new get command
func NewGetCommand(baseURL string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get the value stored under a key",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			key := args[0]
			status, body, err := newAPIClient(baseURL).do(http.MethodGet, "/"+key, nil)
			if err != nil {
				return
			}
			switch status {
			case http.StatusOK:
			case http.StatusNotFound:
				output.Warn(fmt.Sprintf("Key '%s' not found", key))
				return
			default:
				reportFailure(status, body)
				return
			}
			var value string
			if err := json.Unmarshal(body, &value); err != nil {
				output.Error(fmt.Sprintf("Invalid response: %v", err))
				return
			}
			output.Success(fmt.Sprintf("Key: %s", key))
			output.Info(fmt.Sprintf("Value: %s", value))
		},
	}
}

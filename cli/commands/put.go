package commands

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/himakhaitan/hexkv/cli/output"
	"github.com/spf13/cobra"
)

// NewPutCommand creates a new put command
func NewPutCommand(baseURL string) *cobra.Command {
	return &cobra.Command{
		Use:     "put <key> <value>",
		Aliases: []string{"set"},
		Short:   "Store a value under a key",
		Long:    "Store a value under a key. Keys and values are 32 hexadecimal characters.",
		Args:    cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			key, value := args[0], args[1]
			status, body, err := newAPIClient(baseURL).do(http.MethodPut, "/"+key, strings.NewReader(value))
			if err != nil {
				return
			}
			if status != http.StatusCreated {
				reportFailure(status, body)
				return
			}
			output.Success(fmt.Sprintf("Stored %s = %s", strings.ToLower(key), strings.ToLower(value)))
		},
	}
}

package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/himakhaitan/hexkv/cli/output"
	servertypes "github.com/himakhaitan/hexkv/types"
	"github.com/spf13/cobra"
)

// NewBulkCommand creates a new bulk command
func NewBulkCommand(baseURL string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "bulk [key=value ...]",
		Short: "Store many key-value pairs in one request",
		Long:  "Store many key-value pairs in one request. Pairs are given as key=value arguments or as a JSON object in --file.",
		Run: func(cmd *cobra.Command, args []string) {
			payload, err := bulkPayload(file, args)
			if err != nil {
				output.Error(err.Error())
				return
			}
			status, body, err := newAPIClient(baseURL).do(http.MethodPost, "/bulk", bytes.NewReader(payload))
			if err != nil {
				return
			}
			if status != http.StatusOK {
				reportFailure(status, body)
				return
			}
			var res servertypes.BulkResponse
			if err := json.Unmarshal(body, &res); err != nil {
				output.Error(fmt.Sprintf("Invalid response: %v", err))
				return
			}
			output.Success(fmt.Sprintf("Stored %d entries", res.Stored))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with an object of key-value pairs")
	return cmd
}

func bulkPayload(file string, args []string) ([]byte, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		return b, nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no pairs given, pass key=value arguments or --file")
	}
	pairs := make(map[string]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid pair %q, expected key=value", arg)
		}
		pairs[k] = v
	}
	return json.Marshal(pairs)
}

package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/himakhaitan/hexkv/cli/output"
	servertypes "github.com/himakhaitan/hexkv/types"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the stats command and its subcommands
func NewStatsCommand(baseURL string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show store statistics",
		Run: func(cmd *cobra.Command, args []string) {
			body, ok := fetch(baseURL, "/stats")
			if !ok {
				return
			}
			output.Info("Store Statistics:")
			output.JSON(body)
		},
	}

	cmd.AddCommand(
		newStatsCountCommand(baseURL),
		newStatsInfoCommand(baseURL),
		newStatsFieldsCommand(baseURL, "memory", "Show memory usage", "/stats/memory"),
		newStatsFieldsCommand(baseURL, "operations", "Show command counters and hit rate", "/stats/operations"),
	)
	return cmd
}

func newStatsCountCommand(baseURL string) *cobra.Command {
	return &cobra.Command{
		Use:   "count [pattern]",
		Short: "Count all keys, or the keys matching a glob pattern",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				body, ok := fetch(baseURL, "/stats/count")
				if !ok {
					return
				}
				var res servertypes.KeyCountResponse
				if err := json.Unmarshal(body, &res); err != nil {
					output.Error(fmt.Sprintf("Invalid response: %v", err))
					return
				}
				output.Success(fmt.Sprintf("Total keys: %d", res.KeyCount))
				return
			}

			body, ok := fetch(baseURL, "/stats/count/"+url.PathEscape(args[0]))
			if !ok {
				return
			}
			var res servertypes.PatternCountResponse
			if err := json.Unmarshal(body, &res); err != nil {
				output.Error(fmt.Sprintf("Invalid response: %v", err))
				return
			}
			output.Success(fmt.Sprintf("Keys matching %s: %d", res.Pattern, res.Count))
		},
	}
}

func newStatsInfoCommand(baseURL string) *cobra.Command {
	var section string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the raw diagnostics reported by the store",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/stats/info"
			if section != "" {
				path += "?section=" + url.QueryEscape(section)
			}
			body, ok := fetch(baseURL, path)
			if !ok {
				return
			}
			output.JSON(body)
		},
	}
	cmd.Flags().StringVarP(&section, "section", "s", "", "INFO section, e.g. memory, clients, stats")
	return cmd
}

// newStatsFieldsCommand prints a flat statistics object one field per line.
func newStatsFieldsCommand(baseURL, use, short, path string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			body, ok := fetch(baseURL, path)
			if !ok {
				return
			}
			var fields map[string]any
			if err := json.Unmarshal(body, &fields); err != nil {
				output.Error(fmt.Sprintf("Invalid response: %v", err))
				return
			}
			names := make([]string, 0, len(fields))
			for name := range fields {
				names = append(names, name)
			}
			sort.Strings(names)

			output.Info(fmt.Sprintf("Store %s:", use))
			for _, name := range names {
				v := fields[name]
				if v == nil {
					v = "-"
				}
				output.Field(name, v)
			}
		},
	}
}

func fetch(baseURL, path string) ([]byte, bool) {
	status, body, err := newAPIClient(baseURL).do(http.MethodGet, path, nil)
	if err != nil {
		return nil, false
	}
	if status != http.StatusOK {
		reportFailure(status, body)
		return nil, false
	}
	return body, true
}

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/himakhaitan/hexkv/cli/output"
	servertypes "github.com/himakhaitan/hexkv/types"
)

// apiClient talks to a running hexkv server.
type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{baseURL: baseURL, http: &http.Client{Timeout: 10 * time.Second}}
}

// do sends the request and returns the status code and body. Connection
// failures are reported to the user and returned as errors.
func (c *apiClient) do(method, path string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		output.Error(fmt.Sprintf("Failed to create request: %v", err))
		return 0, nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		output.Error(fmt.Sprintf("Failed to connect to server at %s\n %v", c.baseURL, err))
		return 0, nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		output.Error(fmt.Sprintf("Failed to read response: %v", err))
		return 0, nil, err
	}
	return resp.StatusCode, b, nil
}

// reportFailure prints the server's error detail for a non-success status.
func reportFailure(status int, body []byte) {
	var res servertypes.ErrorResponse
	if err := json.Unmarshal(body, &res); err == nil && res.Detail != "" {
		output.Error(fmt.Sprintf("Server error (%d): %s", status, res.Detail))
		return
	}
	output.Error(fmt.Sprintf("Server error: %d %s", status, http.StatusText(status)))
}

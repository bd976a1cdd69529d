// Package fetch retrieves remote archives as full in-memory byte slices.
package fetch

import (
	"fmt"
	"io"
	"net/http"

	"github.com/conn-castle/ansible-launcher/internal/messages"
)

// The client carries no timeout: the launcher has no bounded-run-time
// contract, and a stalled download blocks the invocation until it resolves.
var httpClient = &http.Client{}

// UserAgent is sent with every download request. main overrides it with the
// build version.
var UserAgent = "ansible-launcher"

// Fetch reads the resource at url to completion and returns its full content.
// Callers see either the complete bytes or an error, never a partial read.
func Fetch(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf(messages.FetchURLRequired)
	}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.FetchRequestFmt, url, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf(messages.FetchFailedFmt, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.FetchUnexpectedStatusFmt, url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf(messages.FetchReadBodyFmt, url, err)
	}
	return data, nil
}

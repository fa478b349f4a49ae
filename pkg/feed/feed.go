// Package feed holds what the upstream data feeds share: one GET-and-decode
// helper and the error kinds every feed failure collapses into.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork means the upstream could not be reached or answered with a
	// non-2xx status.
	ErrNetwork = errors.New("network failure")
	// ErrParse means the upstream answered but the body did not decode.
	ErrParse = errors.New("parse failure")
	// ErrMissingField means the body decoded but lacked a required field.
	ErrMissingField = errors.New("missing field")
)

// GetJSON fetches addr and decodes the JSON response body into out.
func GetJSON(ctx context.Context, client *http.Client, addr string, header http.Header, out any) error {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrNetwork, err)
	}
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %s", ErrNetwork, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nil
}

// Missing reports that field was absent from a feed's response.
func Missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}

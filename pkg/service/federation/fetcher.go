/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package federation

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	wellKnownPath      = "/.well-known/openid-federation"
	fetchPath          = "/fetch"
	entityStatementCTY = "application/entity-statement+jwt"

	maxStatementSize = 1 << 20
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPFetcher retrieves entity statements over the federation well-known and
// fetch endpoints.
type HTTPFetcher struct {
	client httpClient
}

// NewHTTPFetcher creates the fetcher.
func NewHTTPFetcher(client httpClient) *HTTPFetcher {
	return &HTTPFetcher{client: client}
}

// FetchEntityConfiguration retrieves the self-issued entity configuration of
// entityID.
func (f *HTTPFetcher) FetchEntityConfiguration(ctx context.Context, entityID string) (string, error) {
	return f.get(ctx, strings.TrimSuffix(entityID, "/")+wellKnownPath)
}

// FetchSubordinateStatement retrieves the statement issuer publishes about
// subject from its federation fetch endpoint.
func (f *HTTPFetcher) FetchSubordinateStatement(ctx context.Context, issuer, subject string) (string, error) {
	endpoint := strings.TrimSuffix(issuer, "/") + fetchPath + "?sub=" + url.QueryEscape(subject)

	return f.get(ctx, endpoint)
}

func (f *HTTPFetcher) get(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", entityStatementCTY)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}

	defer resp.Body.Close() //nolint: errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxStatementSize))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	return string(body), nil
}

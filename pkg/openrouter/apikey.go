package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// keyEnvelope is the body returned by a remote key endpoint.
type keyEnvelope struct {
	Message string `json:"message"`
}

// ResolveAPIKey turns the configured credential value into a usable API key.
// Deployments may set the credential to an HTTPS URL instead of a literal key;
// in that case the key is fetched from that endpoint, which must respond
// 200 with {"message": "<key>"}.
func ResolveAPIKey(ctx context.Context, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("openrouter: API key is not configured")
	}

	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return value, nil
	}

	ctx, cancel := context.WithTimeout(ctx, KeyFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, value, nil)
	if err != nil {
		return "", fmt.Errorf("openrouter: failed to create key request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openrouter: failed to fetch API key: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openrouter: key endpoint returned %d", resp.StatusCode)
	}

	var envelope keyEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("openrouter: failed to decode key response: %w", err)
	}
	if envelope.Message == "" {
		return "", fmt.Errorf("openrouter: key endpoint returned empty key")
	}

	return envelope.Message, nil
}

package policy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Remote delegates every decision to an external policy server. The server
// receives the Input document as JSON on POST <base>/check and answers with
// {"allow": bool}.
type Remote struct {
	baseURL    string
	httpClient *http.Client
}

// NewRemote returns an engine backed by the policy server at baseURL.
func NewRemote(baseURL string) (*Remote, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("remote policy: empty server URL")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("remote policy: server URL %q must start with http:// or https://", baseURL)
	}
	return &Remote{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type remoteResponse struct {
	Allow  bool   `json:"allow"`
	Reason string `json:"reason"`
}

func (r *Remote) Check(ctx context.Context, in Input) (Decision, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return Decision{}, fmt.Errorf("remote policy: encode input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/check", bytes.NewReader(payload))
	if err != nil {
		return Decision{}, fmt.Errorf("remote policy: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return Decision{}, fmt.Errorf("remote policy: check request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Decision{}, fmt.Errorf("remote policy: server returned status %d", resp.StatusCode)
	}

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Decision{}, fmt.Errorf("remote policy: decode response: %w", err)
	}

	reason := out.Reason
	if reason == "" {
		reason = "remote decision"
	}
	return Decision{Allow: out.Allow, Reason: reason}, nil
}

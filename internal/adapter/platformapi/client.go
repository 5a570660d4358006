// Package platformapi is a generic REST client for an external ads
// platform gateway. The concrete wire protocols of the networks live
// behind that gateway; this client's job is transport, auth and the
// retryable/non-retryable classification of failures.
package platformapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Client implements port.PlatformClient over HTTP. One client serves one
// platform endpoint.
type Client struct {
	platform domain.Platform
	baseURL  string
	apiKey   string
	http     *http.Client
}

// New creates a client for one platform endpoint. The timeout bounds every
// remote call; there is no per-call retry here, the circuit breaker above
// decides when to stop calling altogether.
func New(platform domain.Platform, baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		platform: platform,
		baseURL:  baseURL,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
	}
}

type resourcePayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FindResourceByName looks up a resource under parentRef by exact name.
// It returns nil without error when nothing matches.
func (c *Client) FindResourceByName(ctx context.Context, parentRef, kind, name string) (*port.ResourceRef, error) {
	endpoint := fmt.Sprintf("%s/v1/%s/%ss?name=%s",
		c.baseURL, url.PathEscape(parentRef), kind, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}
	var payload struct {
		Resources []resourcePayload `json:"resources"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode resource list: %w", err)
	}
	for _, r := range payload.Resources {
		if r.Name == name {
			return &port.ResourceRef{ID: r.ID, Name: r.Name}, nil
		}
	}
	return nil, nil
}

// CreateResource creates a resource under parentRef.
func (c *Client) CreateResource(ctx context.Context, parentRef string, spec port.ResourceSpec) (*port.ResourceRef, error) {
	body, err := json.Marshal(map[string]any{
		"name":  spec.Name,
		"attrs": spec.Attrs,
	})
	if err != nil {
		return nil, err
	}
	endpoint := fmt.Sprintf("%s/v1/%s/%ss", c.baseURL, url.PathEscape(parentRef), spec.Kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.apiError(resp)
	}
	var payload resourcePayload
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode resource: %w", err)
	}
	return &port.ResourceRef{ID: payload.ID, Name: payload.Name}, nil
}

// UploadAsset uploads creative bytes to the account's asset library.
func (c *Client) UploadAsset(ctx context.Context, accountRef string, data []byte, name string) (*port.ResourceRef, error) {
	endpoint := fmt.Sprintf("%s/v1/%s/assets", c.baseURL, url.PathEscape(accountRef))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-Asset-Name", name)
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.apiError(resp)
	}
	var payload resourcePayload
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode asset: %w", err)
	}
	return &port.ResourceRef{ID: payload.ID, Name: payload.Name}, nil
}

// do executes the request. Transport-level failures (timeouts, connection
// resets) are retryable by definition: the platform was never reached.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &port.PlatformError{
			Platform:  c.platform,
			Code:      "TRANSPORT",
			Message:   err.Error(),
			Retryable: true,
		}
	}
	return resp, nil
}

// apiError converts a non-success response into a PlatformError. Rate
// limiting and server-side faults are retryable; everything else (invalid
// spec, policy violation) is not.
func (c *Client) apiError(resp *http.Response) error {
	var payload errorPayload
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(body, &payload)
	if payload.Code == "" {
		payload.Code = http.StatusText(resp.StatusCode)
	}
	if payload.Message == "" {
		payload.Message = string(body)
	}
	return &port.PlatformError{
		Platform:  c.platform,
		Code:      payload.Code,
		Message:   payload.Message,
		Retryable: resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500,
	}
}

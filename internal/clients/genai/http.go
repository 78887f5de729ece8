package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

const defaultTimeout = 120 * time.Second

func makeHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if proxyURL != "" {
		parsed, err := url.Parse(proxyURL)
		if err == nil {
			transport.Proxy = http.ProxyURL(parsed)
		}
	} else {
		transport.Proxy = http.ProxyFromEnvironment
	}

	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// apiError is returned by postJSON for non-2xx responses before it is mapped
type apiError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, truncate(e.Body, 300))
}

func postJSON(ctx context.Context, client *http.Client, provider, endpoint string, headers map[string]string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	slog.DebugContext(ctx, "Calling generator", "provider", provider, "endpoint", endpoint)

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Canceled("generator request canceled").WithCause(ctx.Err())
		}
		slog.ErrorContext(ctx, "Generator request failed", "provider", provider, "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "generator unreachable").
			WithMeta("provider", provider)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read generator response").
			WithMeta("provider", provider)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &apiError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
			Body:       string(respBody),
		}
		slog.ErrorContext(ctx, "Generator returned error",
			"provider", provider,
			"status", resp.StatusCode,
			"message", apiErr.Message)
		return nil, apiErr
	}

	return respBody, nil
}

// mapAPIError converts a non-2xx response into a coded error
func mapAPIError(err error, provider string) error {
	apiErr, ok := err.(*apiError)
	if !ok {
		return err
	}

	code := errors.CodeInternal
	switch {
	case apiErr.StatusCode == http.StatusBadRequest:
		code = errors.CodeInvalidArgument
	case apiErr.StatusCode == http.StatusUnauthorized:
		code = errors.CodeUnauthenticated
	case apiErr.StatusCode == http.StatusForbidden:
		code = errors.CodePermissionDenied
	case apiErr.StatusCode == http.StatusNotFound:
		code = errors.CodeNotFound
	case apiErr.StatusCode == http.StatusTooManyRequests:
		code = errors.CodeResourceExhausted
	case apiErr.StatusCode >= 500:
		code = errors.CodeUnavailable
	}

	return errors.WrapWithCode(apiErr, code, "generator request failed").
		WithMeta("provider", provider).
		WithMeta("status_code", apiErr.StatusCode)
}

// errorMessage pulls error.message out of Google and OpenAI style error bodies
func errorMessage(body []byte) string {
	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Error) == 0 {
		return ""
	}

	var detailed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload.Error, &detailed); err == nil && detailed.Message != "" {
		return detailed.Message
	}

	var plain string
	if err := json.Unmarshal(payload.Error, &plain); err == nil {
		return plain
	}
	return ""
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

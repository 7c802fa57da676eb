package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Transport delivers a request to the live backend.
type Transport interface {
	RoundTrip(ctx context.Context, req *Request) (*Response, error)
}

// HTTPTransport is the live network path. The injected http.Client carries
// the fixed request deadline; exceeding it surfaces as a transport error
// and classifies as a network failure.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
}

func NewHTTPTransport(baseURL string, client *http.Client) *HTTPTransport {
	return &HTTPTransport{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// RoundTrip executes the call and normalizes the result. Any received HTTP
// response resolves with a nil error regardless of status; errors are
// reserved for failures with no server response.
func (t *HTTPTransport) RoundTrip(ctx context.Context, req *Request) (*Response, error) {
	body, contentType, err := encodePayload(req.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, t.baseURL+req.Path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{Status: httpResp.StatusCode, Data: data}, nil
}

// encodePayload renders the request body. url.Values become a form body
// (the authentication endpoint expects form fields), nil stays empty, and
// everything else is JSON.
func encodePayload(payload any) (io.Reader, string, error) {
	switch p := payload.(type) {
	case nil:
		return nil, "", nil
	case url.Values:
		return strings.NewReader(p.Encode()), "application/x-www-form-urlencoded", nil
	default:
		data, err := json.Marshal(p)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// Package api implements the request pipeline: the single choke point every
// outbound call passes through. Pre-dispatch stages pick the route and attach
// the bearer credential, dispatch hands the request to the live transport or
// the simulated backend, and post-dispatch stages classify live failures and
// run their user-facing reactions.
package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// Route is the per-request decision between the live transport and the
// simulated backend.
type Route string

const (
	RouteLive      Route = "live"
	RouteSimulated Route = "simulated"
)

// Request describes one outbound call. Payload is encoded by the dispatch
// target: url.Values as a form body, anything else non-nil as JSON. Route
// and Header are filled by the pre-dispatch stages; a Request lives for
// exactly one call.
type Request struct {
	Method  string
	Path    string
	Payload any
	Route   Route
	Header  http.Header
}

// NewRequest builds a Request for one call through the pipeline.
func NewRequest(method, path string, payload any) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Payload: payload,
		Header:  make(http.Header),
	}
}

// Response is the normalized success shape shared by both dispatch paths.
type Response struct {
	Status int
	Data   json.RawMessage
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Data, v)
}

// Doer issues one call through the pipeline. Implemented by *Pipeline and
// by test fakes.
type Doer interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Handler serves a request without touching the network; implemented by the
// simulated backend.
type Handler interface {
	Handle(ctx context.Context, req *Request) (*Response, error)
}

// Package mock is the simulated backend: a stand-in for the live service
// that fabricates plausible, deterministic payloads with artificial latency,
// keeping development and demos working with no server reachable.
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Sakee8848/property-management-ai/internal/client/api"
	"github.com/Sakee8848/property-management-ai/internal/logging"
)

// Per-family latency, fixed constants to emulate network feel in the UI.
// Not configurable per call.
const (
	delayAuth = 500 * time.Millisecond
	delayRead = 300 * time.Millisecond
	delayChat = 1000 * time.Millisecond
)

// route binds a path fragment to its endpoint family.
type route struct {
	match  string
	delay  time.Duration
	handle func(ctx context.Context, req *api.Request) (*api.Response, error)
}

// Backend serves requests diverted from the live transport. Dispatch is a
// path-substring test against an ordered family list, first match wins;
// unknown paths resolve to an empty success payload. The backend never
// produces a classified error.
type Backend struct {
	log logging.Logger

	// test seams
	now   func() time.Time
	sleep func(time.Duration)

	routes []route
}

func NewBackend(log logging.Logger) *Backend {
	if log == nil {
		log = logging.NewDiscard()
	}
	b := &Backend{
		log:   log,
		now:   time.Now,
		sleep: time.Sleep,
	}
	b.routes = []route{
		{match: "/auth/login", delay: delayAuth, handle: b.login},
		{match: "/auth/register", delay: delayAuth, handle: b.register},
		{match: "/auth/me", delay: delayRead, handle: b.profile},
		{match: "/chat/send", delay: delayChat, handle: b.sendMessage},
		{match: "/chat/conversations", delay: delayRead, handle: b.conversations},
		{match: "/documents", delay: delayRead, handle: b.documents},
		{match: "/payments/bills", delay: delayRead, handle: b.bills},
	}
	return b
}

// Handle implements api.Handler.
func (b *Backend) Handle(ctx context.Context, req *api.Request) (*api.Response, error) {
	for _, r := range b.routes {
		if strings.Contains(req.Path, r.match) {
			b.sleep(r.delay)
			b.log.Debug(ctx, "simulated response", "method", req.Method, "path", req.Path)
			return r.handle(ctx, req)
		}
	}
	// Unknown endpoints fall through to an empty success payload.
	return ok(struct{}{})
}

// ok wraps a fabricated body in the normalized response shape.
func ok(body any) (*api.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal simulated body: %w", err)
	}
	return &api.Response{Status: http.StatusOK, Data: data}, nil
}

// decodePayload re-encodes the request payload into the shape the handler
// expects, mirroring what JSON on the wire would have done.
func decodePayload(payload any, v any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

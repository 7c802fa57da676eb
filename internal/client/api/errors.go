package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Kind tags a classified request failure. Each kind drives one fixed
// user-facing reaction in the pipeline's post-dispatch stages.
type Kind string

const (
	// KindNetwork: no server response at all (unreachable, timeout).
	KindNetwork Kind = "network"
	// KindSessionExpired: the server rejected the credential (401).
	KindSessionExpired Kind = "session_expired"
	// KindForbidden: authenticated but not allowed (403).
	KindForbidden Kind = "forbidden"
	// KindNotFound: the resource does not exist (404).
	KindNotFound Kind = "not_found"
	// KindServer: the server failed internally (500).
	KindServer Kind = "server_error"
	// KindRequestFailed: any other non-2xx status.
	KindRequestFailed Kind = "request_failed"
)

// Error is a classified request failure. Status is zero when the failure
// produced no server response; Detail carries the server's detail message
// when one was present in the body.
type Error struct {
	Kind   Kind
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed (%s): %v", e.Kind, e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("request failed (%s, status %d): %s", e.Kind, e.Status, e.Detail)
	}
	return fmt.Sprintf("request failed (%s, status %d)", e.Kind, e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// errorBody is the shape the backend uses for failure payloads.
type errorBody struct {
	Detail string `json:"detail"`
}

// Classify turns a dispatch outcome into a classified failure, or nil for
// a 2xx response. A transport-level error always classifies as KindNetwork.
func Classify(resp *Response, err error) *Error {
	if err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}

	if resp.Status >= http.StatusOK && resp.Status < http.StatusMultipleChoices {
		return nil
	}

	var body errorBody
	_ = json.Unmarshal(resp.Data, &body)

	kind := KindRequestFailed
	switch resp.Status {
	case http.StatusUnauthorized:
		kind = KindSessionExpired
	case http.StatusForbidden:
		kind = KindForbidden
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusInternalServerError:
		kind = KindServer
	}

	return &Error{Kind: kind, Status: resp.Status, Detail: body.Detail}
}

package session

import (
	"errors"

	"github.com/Sakee8848/property-management-ai/internal/client/api"
)

// Localized defaults shown when the backend supplies no detail message.
const (
	msgLoginFailed    = "登录失败"
	msgRegisterFailed = "注册失败"
)

// AuthError is a user-displayable authentication failure. Message is the
// backend's detail when one was present, else a localized default.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

func loginFailed(err error) *AuthError    { return authFailure(err, msgLoginFailed) }
func registerFailed(err error) *AuthError { return authFailure(err, msgRegisterFailed) }

func authFailure(err error, fallback string) *AuthError {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return &AuthError{Message: apiErr.Detail, Err: err}
	}
	return &AuthError{Message: fallback, Err: err}
}

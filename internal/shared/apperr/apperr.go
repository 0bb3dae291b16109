package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	Invalid  Kind = "invalid"
	NotFound Kind = "not_found"
	Network  Kind = "network"
	Parse    Kind = "parse"
	Internal Kind = "internal"
)

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	if e.PublicMsg != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.PublicMsg)
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error { return e.Err }

// Constructors. PublicMsg must be short and safe to render.
func InvalidErr(publicMsg string, fields map[string]string) *AppError {
	return &AppError{Kind: Invalid, PublicMsg: publicMsg, Fields: fields}
}
func NotFoundErr(publicMsg string) *AppError {
	return &AppError{Kind: NotFound, PublicMsg: publicMsg}
}
func NetworkErr(publicMsg string, err error) *AppError {
	return &AppError{Kind: Network, PublicMsg: publicMsg, Err: err}
}
func ParseErr(publicMsg string, err error) *AppError {
	return &AppError{Kind: Parse, PublicMsg: publicMsg, Err: err}
}

// Wrap hides an internal error behind a generic public message.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Kind: Internal, PublicMsg: "Something went wrong.", Err: err}
}

func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func IsKind(err error, k Kind) bool {
	if ae, ok := As(err); ok {
		return ae.Kind == k
	}
	return false
}

func HTTPStatus(err error) int {
	if ae, ok := As(err); ok {
		switch ae.Kind {
		case Invalid:
			return http.StatusBadRequest
		case NotFound:
			return http.StatusNotFound
		case Network, Parse:
			return http.StatusBadGateway
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

func PublicMessage(err error) string {
	if ae, ok := As(err); ok && ae.PublicMsg != "" {
		return ae.PublicMsg
	}
	return "Something went wrong."
}

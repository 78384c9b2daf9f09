package screen

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/campushub/campus-client/client/api"
	"github.com/campushub/campus-client/internal/xerrors"
)

type Code string

const (
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeNotFound     Code = "NOT_FOUND"
	CodeRateLimited  Code = "RATE_LIMITED"
	CodeServerError  Code = "SERVER_ERROR"
	CodeNetworkError Code = "NETWORK_ERROR"
	CodeAPIError     Code = "API_ERROR"
	CodeUnknownError Code = "UNKNOWN_ERROR"
)

// Descriptor is the user-presentable form of a failed backend operation.
// It is created fresh per failure and never persisted.
type Descriptor struct {
	Message string
	Status  int
	Code    Code
}

func (d Descriptor) Error() string {
	return d.Message
}

// Classify maps a failure from a backend call onto exactly one Descriptor.
// Priority: response received > request sent without response > error with a
// message > unknown. It performs no retries and has no side effects.
func Classify(err error) Descriptor {
	for _, e := range xerrors.Unwrap(err) {
		var apiErr *api.Error
		if errors.As(e, &apiErr) {
			return classifyStatus(apiErr)
		}
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) {
		return Descriptor{
			Message: "Unable to connect to server. Please check your internet connection.",
			Code:    CodeNetworkError,
		}
	}

	if err != nil && err.Error() != "" {
		return Descriptor{
			Message: err.Error(),
			Code:    CodeAPIError,
		}
	}

	return Descriptor{
		Message: "An unexpected error occurred. Please try again.",
		Code:    CodeUnknownError,
	}
}

func classifyStatus(apiErr *api.Error) Descriptor {
	switch apiErr.Status {
	case http.StatusUnauthorized:
		return Descriptor{
			Message: "Your session has expired. Please log in again.",
			Status:  apiErr.Status,
			Code:    CodeUnauthorized,
		}
	case http.StatusForbidden:
		return Descriptor{
			Message: "You don't have permission to access this resource.",
			Status:  apiErr.Status,
			Code:    CodeForbidden,
		}
	case http.StatusNotFound:
		return Descriptor{
			Message: "The requested resource was not found.",
			Status:  apiErr.Status,
			Code:    CodeNotFound,
		}
	case http.StatusTooManyRequests:
		return Descriptor{
			Message: "Too many requests. Please try again later.",
			Status:  apiErr.Status,
			Code:    CodeRateLimited,
		}
	default:
		message := apiErr.Message
		if message == "" {
			message = "Server is temporarily unavailable. Please try again later."
		}
		return Descriptor{
			Message: message,
			Status:  apiErr.Status,
			Code:    CodeServerError,
		}
	}
}

package screen

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushub/campus-client/client/api"
)

func TestClassify_StatusCodes(t *testing.T) {
	tests := []struct {
		status int
		code   Code
	}{
		{status: 401, code: CodeUnauthorized},
		{status: 403, code: CodeForbidden},
		{status: 404, code: CodeNotFound},
		{status: 429, code: CodeRateLimited},
		{status: 500, code: CodeServerError},
		{status: 502, code: CodeServerError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			desc := Classify(&api.Error{Status: tt.status})
			assert.Equal(t, tt.code, desc.Code)
			assert.Equal(t, tt.status, desc.Status)
			assert.NotEmpty(t, desc.Message)
		})
	}
}

func TestClassify_WrappedAPIError(t *testing.T) {
	err := fmt.Errorf("failed to fetch clubs: %w", &api.Error{Status: 401})
	desc := Classify(err)
	assert.Equal(t, CodeUnauthorized, desc.Code)
}

func TestClassify_PrefersServerMessage(t *testing.T) {
	desc := Classify(&api.Error{Status: 500, Message: "database is down"})
	assert.Equal(t, CodeServerError, desc.Code)
	assert.Equal(t, "database is down", desc.Message)

	desc = Classify(&api.Error{Status: 503})
	assert.Equal(t, CodeServerError, desc.Code)
	assert.Equal(t, "Server is temporarily unavailable. Please try again later.", desc.Message)
}

func TestClassify_NetworkError(t *testing.T) {
	err := fmt.Errorf("failed to send request: %w", &url.Error{
		Op:  "Get",
		URL: "http://127.0.0.1:8000/api/clubs/",
		Err: errors.New("connection refused"),
	})
	desc := Classify(err)
	assert.Equal(t, CodeNetworkError, desc.Code)
	assert.Zero(t, desc.Status)
}

func TestClassify_PlainError(t *testing.T) {
	desc := Classify(errors.New("token expired and refresh failed"))
	assert.Equal(t, CodeAPIError, desc.Code)
	assert.Equal(t, "token expired and refresh failed", desc.Message)
}

func TestClassify_Unknown(t *testing.T) {
	desc := Classify(errors.New(""))
	assert.Equal(t, CodeUnknownError, desc.Code)
	assert.NotEmpty(t, desc.Message)

	desc = Classify(nil)
	assert.Equal(t, CodeUnknownError, desc.Code)
}

func TestClassify_JoinedErrors(t *testing.T) {
	err := errors.Join(
		errors.New("context canceled"),
		&api.Error{Status: 429},
	)
	desc := Classify(err)
	assert.Equal(t, CodeRateLimited, desc.Code)
}

package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytracker/skytracker/internal/model"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"username required", model.ErrUsernameRequired, http.StatusBadRequest, CodeUsernameRequired},
		{"upstream 404", &model.UpstreamError{Service: "mojang", Status: 404}, http.StatusNotFound, CodePlayerNotFound},
		{"upstream 204", &model.UpstreamError{Service: "mojang", Status: 204}, http.StatusNotFound, CodePlayerNotFound},
		{"upstream 429 passthrough", &model.UpstreamError{Service: "mojang", Status: 429}, http.StatusTooManyRequests, CodeUpstreamError},
		{"upstream 503 wrapped", fmt.Errorf("resolve: %w", &model.UpstreamError{Service: "hypixel", Status: 503}), http.StatusServiceUnavailable, CodeUpstreamError},
		{"upstream redirect", &model.UpstreamError{Service: "mojang", Status: 302}, http.StatusBadGateway, CodeUpstreamError},
		{"not found sentinel", fmt.Errorf("playerdb: %w", model.ErrNotFound), http.StatusNotFound, CodePlayerNotFound},
		{"invalid id", model.ErrInvalidPlayerID, http.StatusBadRequest, CodeInvalidRequest},
		{"network", fmt.Errorf("mojang: %w", model.ErrNetwork), http.StatusInternalServerError, CodeUpstreamUnreachable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
		{"invalid request", NewInvalidRequestError("page must be a number"), http.StatusBadRequest, CodeInvalidRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tc.err)

			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, tc.status, StatusOf(tc.err))
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tc.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

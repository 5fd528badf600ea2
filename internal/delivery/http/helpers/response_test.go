package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventlisting/internal/domain"
)

func TestWriteServiceError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantKind   string
	}{
		{
			name:       "validation error keeps kind",
			err:        &domain.ValidationError{Kind: domain.KindEndBeforeStart, Reason: domain.ReasonEndBeforeStart},
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeValidation,
			wantKind:   string(domain.KindEndBeforeStart),
		},
		{name: "wrapped not found", err: fmt.Errorf("get event: %w", domain.ErrNotFound), wantStatus: http.StatusNotFound, wantCode: ErrCodeNotFound},
		{name: "unknown namespace", err: domain.ErrUnknownNamespace, wantStatus: http.StatusNotFound, wantCode: ErrCodeNotFound},
		{name: "invalid style", err: domain.ErrInvalidStyle, wantStatus: http.StatusBadRequest, wantCode: ErrCodeBadRequest},
		{name: "duplicate slug", err: domain.ErrDuplicateSlug, wantStatus: http.StatusConflict, wantCode: ErrCodeConflict},
		{name: "registration closed", err: domain.ErrRegistrationClosed, wantStatus: http.StatusConflict, wantCode: ErrCodeRegistrationClosed},
		{name: "bad credentials", err: domain.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantCode: ErrCodeUnauthorized},
		{name: "forbidden", err: domain.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: ErrCodeForbidden},
		{name: "anything else", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteServiceError(rr, httptest.NewRequest(http.MethodGet, "/x", nil), logger, tt.err)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var resp struct {
				Data  any       `json:"data"`
				Error *APIError `json:"error"`
			}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Nil(t, resp.Data)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantKind, resp.Error.Kind)
		})
	}
}

func TestWriteJSONSuccess(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONSuccess(rr, http.StatusCreated, map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"data":{"id":"1"},"error":null}`, rr.Body.String())
}

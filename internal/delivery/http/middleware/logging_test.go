package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordSink keeps every record it handles.
type recordSink struct {
	records []slog.Record
}

func (s *recordSink) Enabled(context.Context, slog.Level) bool { return true }

func (s *recordSink) Handle(_ context.Context, r slog.Record) error {
	s.records = append(s.records, r.Clone())
	return nil
}

func (s *recordSink) WithAttrs([]slog.Attr) slog.Handler { return s }

func (s *recordSink) WithGroup(string) slog.Handler { return s }

func attrsOf(r slog.Record) map[string]slog.Value {
	attrs := make(map[string]slog.Value)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value
		return true
	})
	return attrs
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		status    int
		body      string
		wantLevel slog.Level
	}{
		{name: "implicit 200", method: http.MethodGet, path: "/events/news/", body: `{"data":[]}`, wantLevel: slog.LevelInfo},
		{name: "created", method: http.MethodPost, path: "/events/news/summer-fest/", status: http.StatusCreated, wantLevel: slog.LevelInfo},
		{name: "closed registration", method: http.MethodPost, path: "/events/news/past/", status: http.StatusConflict, wantLevel: slog.LevelWarn},
		{name: "server error", method: http.MethodGet, path: "/plugins/upcoming/1", status: http.StatusInternalServerError, wantLevel: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordSink{}
			handler := LoggingMiddleware(slog.New(sink), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = io.WriteString(w, tt.body)
			}))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			require.Len(t, sink.records, 1)
			rec := sink.records[0]
			assert.Equal(t, "request", rec.Message)
			assert.Equal(t, tt.wantLevel, rec.Level)

			wantStatus := tt.status
			if wantStatus == 0 {
				wantStatus = http.StatusOK
			}
			attrs := attrsOf(rec)
			assert.Equal(t, tt.method, attrs["method"].String())
			assert.Equal(t, tt.path, attrs["path"].String())
			assert.Equal(t, int64(wantStatus), attrs["status"].Int64())
			assert.Equal(t, int64(len(tt.body)), attrs["bytes"].Int64())
			assert.GreaterOrEqual(t, attrs["duration_ms"].Int64(), int64(0))
			assert.NotEmpty(t, attrs["request_id"].String())
			assert.Equal(t, attrs["request_id"].String(), rr.Header().Get(RequestIDHeader))
		})
	}
}

func TestLoggingMiddleware_KeepsIncomingRequestID(t *testing.T) {
	sink := &recordSink{}
	handler := LoggingMiddleware(slog.New(sink), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
	require.Len(t, sink.records, 1)
	assert.Equal(t, "abc-123", attrsOf(sink.records[0])["request_id"].String())
}

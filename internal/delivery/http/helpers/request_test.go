package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventlisting/internal/domain"
)

func TestRequestLanguage(t *testing.T) {
	tests := []struct {
		name   string
		target string
		accept string
		want   string
	}{
		{name: "fallback", target: "/", want: "de"},
		{name: "query wins", target: "/?language=fr", accept: "en", want: "fr"},
		{name: "region dropped", target: "/?language=en-GB", want: "en"},
		{name: "bad query falls through", target: "/?language=!!", accept: "it", want: "it"},
		{name: "highest quality", target: "/", accept: "en;q=0.4, nl;q=0.9", want: "nl"},
		{name: "wildcard ignored", target: "/", accept: "*", want: "de"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			assert.Equal(t, tt.want, RequestLanguage(r, "de"))
		})
	}
}

func TestPathUUID(t *testing.T) {
	var got string
	var ok bool
	mux := http.NewServeMux()
	mux.HandleFunc("GET /things/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, ok = PathUUID(w, r, "id")
	})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/things/5B0E4D7A-9C2F-4F1E-8B3A-6D5C4B3A2F10", nil))
	require.True(t, ok)
	assert.Equal(t, "5b0e4d7a-9c2f-4f1e-8b3a-6d5c4b3a2f10", got)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/things/42", nil))
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "id must be a UUID")
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"", DefaultPage, DefaultPageSize},
		{"?page=3&page_size=50", 3, 50},
		{"?page=0&page_size=-1", DefaultPage, DefaultPageSize},
		{"?page_size=1000", DefaultPage, MaxPageSize},
	}
	for _, tt := range tests {
		p := ParsePagination(httptest.NewRequest(http.MethodGet, "/"+tt.query, nil))
		assert.Equal(t, tt.wantPage, p.Page, tt.query)
		assert.Equal(t, tt.wantPageSize, p.PageSize, tt.query)
	}
	assert.Equal(t, PaginationMeta{Page: 2, PageSize: 20, Total: 41, TotalPages: 3},
		NewPaginationMeta(domain.PaginationParams{Page: 2, PageSize: 20}, 41))
	assert.Equal(t, 0, NewPaginationMeta(domain.PaginationParams{Page: 1}, 5).TotalPages)
}

package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/sheetboard/internal/board"
	"github.com/rshade/sheetboard/internal/sheet"
)

func newTestHandler(payload string, err error) *Handler {
	loader := board.NewLoader(board.FetcherFunc(func(context.Context) (string, error) {
		return payload, err
	}), "test")
	return NewHandler(loader, "January 5, 2025")
}

func get(t *testing.T, h http.Handler, target string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestHandler_Dashboard(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		fetchErr    error
		wantStatus  int
		contains    []string
		notContains []string
	}{
		{
			name:       "list only",
			target:     "/",
			wantStatus: http.StatusOK,
			contains:   []string{"Website", "Budget", "3 projects", placeholderText},
		},
		{
			name:       "selected project",
			target:     "/?project=0",
			wantStatus: http.StatusOK,
			contains:   []string{"<h2>Website</h2>", "Open File"},
		},
		{
			name:        "out of range project",
			target:      "/?project=7",
			wantStatus:  http.StatusNotFound,
			contains:    []string{"Website", placeholderText},
			notContains: []string{"<h2>"},
		},
		{
			name:       "malformed project",
			target:     "/?project=abc",
			wantStatus: http.StatusBadRequest,
			contains:   []string{"Website"},
		},
		{
			name:        "fetch failure",
			target:      "/",
			fetchErr:    errors.New("offline"),
			wantStatus:  http.StatusBadGateway,
			contains:    []string{board.FallbackMessage},
			notContains: []string{"Website", `class="project-card `},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := pagePayload
			if tt.fetchErr != nil {
				payload = ""
			}
			status, body := get(t, newTestHandler(payload, tt.fetchErr), tt.target)
			assert.Equal(t, tt.wantStatus, status)
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestHandler_Health(t *testing.T) {
	status, body := get(t, newTestHandler("", nil), "/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body)
}

func TestHandler_UnknownPath(t *testing.T) {
	status, _ := get(t, newTestHandler("", nil), "/nope")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHandler_AgainstRealSheetServer(t *testing.T) {
	sheetSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/tab-separated-values")
		_, _ = io.WriteString(w, pagePayload)
	}))
	defer sheetSrv.Close()

	h := NewHandler(board.NewLoader(sheet.NewClient(sheetSrv.URL), sheetSrv.URL), "today")
	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/?project=2")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(body), `<div class="details-header yellow">`)
}

func TestListenAndServe_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := NewServer(ctx, "127.0.0.1:0", newTestHandler("", nil))

	done := make(chan error, 1)
	go func() { done <- ListenAndServe(ctx, srv, time.Second) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestListenAndServe_ListenError(t *testing.T) {
	srv := NewServer(context.Background(), "127.0.0.1:99999", newTestHandler("", nil))
	err := ListenAndServe(context.Background(), srv, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serving on")
}

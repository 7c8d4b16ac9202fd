package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequireContentType(t *testing.T) {
	router := gin.New()
	router.Use(RequireContentType("application/json", "application/x-www-form-urlencoded"))
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusCreated) })

	tests := []struct {
		contentType string
		status      int
	}{
		{"application/json", http.StatusCreated},
		{"application/json; charset=utf-8", http.StatusCreated},
		{"application/x-www-form-urlencoded", http.StatusCreated},
		{"text/plain", http.StatusUnsupportedMediaType},
		{"", http.StatusUnsupportedMediaType},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{}")))
		if tt.contentType != "" {
			req.Header.Set("Content-Type", tt.contentType)
		}
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != tt.status {
			t.Fatalf("content type %q: expected %d, got %d", tt.contentType, tt.status, resp.Code)
		}
	}
}

func TestRequestLogger(t *testing.T) {
	var levels []slog.Level
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			if level, ok := a.Value.Any().(slog.Level); ok {
				levels = append(levels, level)
			}
		}
		return a
	}})
	logger := slog.New(handler)

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusUnprocessableEntity) })
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/bad?page_size=x", "/fail"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
	}

	want := []slog.Level{slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	if len(levels) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(levels))
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Fatalf("record %d: expected level %v, got %v", i, want[i], levels[i])
		}
	}
}

type requestIDKey struct{}

// contextHandler records the request id carried by the context of each record.
type contextHandler struct {
	slog.Handler
	seen *[]any
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	*h.seen = append(*h.seen, ctx.Value(requestIDKey{}))
	return h.Handler.Handle(ctx, r)
}

func TestRequestLoggerUsesRequestContext(t *testing.T) {
	var seen []any
	logger := slog.New(contextHandler{Handler: slog.NewJSONHandler(io.Discard, nil), seen: &seen})

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req = req.WithContext(context.WithValue(req.Context(), requestIDKey{}, "req-42"))
	router.ServeHTTP(httptest.NewRecorder(), req)

	if len(seen) != 1 || seen[0] != "req-42" {
		t.Fatalf("expected record logged with request context, got %v", seen)
	}
}

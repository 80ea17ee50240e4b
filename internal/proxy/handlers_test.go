package proxy

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"workspace-chat/config"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestRouter(cfg config.ProxyConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&mockLogger{}, cfg)
	r := gin.New()
	r.POST("/api/ai/providers/free", h.Forward)
	return r
}

func doForward(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/providers/free", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.1:5000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestForwardChatPassthrough(t *testing.T) {
	var gotBody string
	var gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"hi"}}]}`))
	}))
	defer upstream.Close()

	r := newTestRouter(config.ProxyConfig{
		ChatURL:         upstream.URL,
		ImageURL:        "http://unused.invalid",
		BearerToken:     "proxy-secret",
		RateLimitPerMin: 600,
	})

	w := doForward(t, r, `{"type":"chat","data":{"model":"5","messages":[{"role":"user","content":"hello"}]}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	if gotAuth != "Bearer proxy-secret" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if !strings.Contains(gotBody, `"model":"5"`) {
		t.Errorf("forwarded body = %s", gotBody)
	}
	if !strings.Contains(w.Body.String(), `"choices"`) {
		t.Errorf("response body = %s", w.Body.String())
	}
}

func TestForwardImageBareURL(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("https://cdn.example.com/generated.png\n"))
	}))
	defer upstream.Close()

	r := newTestRouter(config.ProxyConfig{
		ChatURL:         "http://unused.invalid",
		ImageURL:        upstream.URL,
		RateLimitPerMin: 600,
	})

	w := doForward(t, r, `{"type":"image_generation","data":{"model":"26","prompt":"a cat"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["url"] != "https://cdn.example.com/generated.png" {
		t.Errorf("url = %q", got["url"])
	}
}

func TestForwardUnparseableUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>backend exploded</html>"))
	}))
	defer upstream.Close()

	r := newTestRouter(config.ProxyConfig{
		ChatURL:         upstream.URL,
		RateLimitPerMin: 600,
	})

	w := doForward(t, r, `{"type":"chat","data":{}}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "backend exploded") {
		t.Errorf("body should carry the raw answer: %s", w.Body.String())
	}
}

func TestForwardUpstreamErrorStatusPassesThrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exhausted"}}`))
	}))
	defer upstream.Close()

	r := newTestRouter(config.ProxyConfig{
		ChatURL:         upstream.URL,
		RateLimitPerMin: 600,
	})

	w := doForward(t, r, `{"type":"chat","data":{}}`)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if !strings.Contains(w.Body.String(), "quota exhausted") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestForwardUnknownType(t *testing.T) {
	r := newTestRouter(config.ProxyConfig{RateLimitPerMin: 600})

	w := doForward(t, r, `{"type":"video","data":{}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestForwardInvalidBody(t *testing.T) {
	r := newTestRouter(config.ProxyConfig{RateLimitPerMin: 600})

	w := doForward(t, r, `{"data":{}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestForwardRateLimit(t *testing.T) {
	rl := newRateLimiter(60)

	allowed := 0
	for i := 0; i < 20; i++ {
		if rl.Allow("198.51.100.7") == nil {
			allowed++
		}
	}
	if allowed == 0 || allowed == 20 {
		t.Fatalf("allowed = %d, want a bounded burst", allowed)
	}

	// A different source has its own budget.
	if err := rl.Allow("198.51.100.8"); err != nil {
		t.Fatalf("fresh source rejected: %v", err)
	}
}

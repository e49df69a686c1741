package handler

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/lambda-feedback/samplefn/config"
	"github.com/lambda-feedback/samplefn/runtime"
)

// --- Mock handler ---
type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Handle(ctx context.Context, req runtime.Request) runtime.Response {
	args := m.Called(ctx, req)
	return args.Get(0).(runtime.Response)
}

func newHandler(h runtime.Handler, key string) *FunctionHandler {
	return &FunctionHandler{
		handler: h,
		log:     zap.NewNop(),
		config: config.Config{
			LogLevel: "debug",
			Auth:     config.AuthConfig{Key: key},
		},
	}
}

// --- Test ---
func TestServeHTTP_Success(t *testing.T) {
	mockHandler := new(MockHandler)

	reqBody := []byte(`{"id": "1"}`)
	req := httptest.NewRequest(http.MethodPost, "http://example.com/todos?x=1", bytes.NewReader(reqBody))
	req.Header.Set(SecretHeader, "secret")

	w := httptest.NewRecorder()

	expectedResponse := runtime.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(`{"isTest":true}`),
	}

	mockHandler.On("Handle", mock.Anything, mock.MatchedBy(func(r runtime.Request) bool {
		return r.Path == "/todos" &&
			r.URL == "http://example.com/todos?x=1" &&
			r.Method == http.MethodPost &&
			bytes.Equal(r.Body, reqBody)
	})).Return(expectedResponse)

	handler := newHandler(mockHandler, "secret")

	handler.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	assert.Equal(t, `{"isTest":true}`, string(body))
	mockHandler.AssertExpectations(t)
}

func TestServeHTTP_Unauthorized(t *testing.T) {
	mockHandler := new(MockHandler)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{"id": "1"}`)))
	req.Header.Set(SecretHeader, "wrong-key")

	w := httptest.NewRecorder()

	handler := newHandler(mockHandler, "Secret")

	handler.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, string(body), "unauthorized")

	// Ensure handler was not called
	mockHandler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestServeHTTP_NoAuthConfigured(t *testing.T) {
	mockHandler := new(MockHandler)
	mockHandler.On("Handle", mock.Anything, mock.Anything).
		Return(runtime.Response{StatusCode: http.StatusNoContent})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	newHandler(mockHandler, "").ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockHandler.AssertExpectations(t)
}

func TestServeHTTP_BodyTooLarge(t *testing.T) {
	mockHandler := new(MockHandler)

	body := strings.NewReader(strings.Repeat("a", MaxBodySize+1))
	req := httptest.NewRequest(http.MethodPost, "/", body)
	w := httptest.NewRecorder()

	newHandler(mockHandler, "").ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	mockHandler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestRequestURL(t *testing.T) {
	plain := httptest.NewRequest(http.MethodGet, "http://localhost:3000/a/b?c=d", nil)
	assert.Equal(t, "http://localhost:3000/a/b?c=d", requestURL(plain))

	secure := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	secure.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://example.com/", requestURL(secure))

	forwarded := httptest.NewRequest(http.MethodGet, "http://example.com/x", nil)
	forwarded.Header.Set("X-Forwarded-Proto", "HTTPS, http")
	assert.Equal(t, "https://example.com/x", requestURL(forwarded))
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()

	HealthHandler(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/samplefn/config"
	"github.com/lambda-feedback/samplefn/runtime"
)

const (
	// SecretHeader carries the shared secret when auth is enabled.
	SecretHeader = "x-open-runtimes-secret"

	// MaxBodySize limits the request body read into memory.
	MaxBodySize = 20 << 20
)

type FunctionHandlerParams struct {
	fx.In

	Handler runtime.Handler
	Config  config.Config
	Log     *zap.Logger
}

func NewFunctionHandler(params FunctionHandlerParams) *FunctionHandler {
	return &FunctionHandler{
		handler: params.Handler,
		config:  params.Config,
		log:     params.Log,
	}
}

// FunctionHandler serves function invocations over http.
type FunctionHandler struct {
	handler runtime.Handler
	config  config.Config
	log     *zap.Logger
}

func (h *FunctionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	if !authorized(r, h.config.Auth.Key) {
		log.Debug("unauthorized request")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			log.Debug("request body too large", zap.Int64("limit", maxErr.Limit))
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}

		log.Debug("failed to read body", zap.Error(err))
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	request := runtime.Request{
		Method: strings.ToUpper(r.Method),
		URL:    requestURL(r),
		Path:   r.URL.Path,
		Header: r.Header,
		Body:   body,
	}

	// Handle the request
	response := h.handler.Handle(r.Context(), request)

	// Map response headers
	for k, v := range response.Header {
		for _, vv := range v {
			w.Header().Add(k, vv)
		}
	}

	// Write response headers and status code
	w.WriteHeader(response.StatusCode)

	// Write response body; headers are already sent, so only log
	if _, err := w.Write(response.Body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}

// authorized reports whether r carries key. An empty key allows all.
func authorized(r *http.Request, key string) bool {
	return key == "" || r.Header.Get(SecretHeader) == key
}

// requireSecret rejects requests to next that do not carry key.
func requireSecret(key string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r, key) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestURL reconstructs the absolute URL the client requested.
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}

	host := r.Host
	if host == "" {
		host = r.URL.Host
	}

	return scheme + "://" + host + r.URL.RequestURI()
}

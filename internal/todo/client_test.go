package todo_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/samplefn/internal/todo"
)

const todoOne = `{"userId":1,"id":1,"title":"delectus aut autem","completed":false}`

func setupClient(t *testing.T, handler http.HandlerFunc) (*todo.Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := todo.NewClient(todo.ClientParams{
		Config: todo.Config{BaseURL: server.URL + "/", Timeout: time.Second},
		Log:    zaptest.NewLogger(t),
	})

	return client, server
}

func TestClient_Todo(t *testing.T) {
	var gotPath, gotMethod string

	client, _ := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(todoOne))
	})

	doc, err := client.Todo(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/todos/1", gotPath)
	assert.Equal(t, todoOne, string(doc))
}

func TestClient_URL(t *testing.T) {
	client := todo.NewClient(todo.ClientParams{
		Config: todo.Config{BaseURL: "https://jsonplaceholder.typicode.com"},
		Log:    zaptest.NewLogger(t),
	})

	tests := map[string]string{
		"1":   "https://jsonplaceholder.typicode.com/todos/1",
		"":    "https://jsonplaceholder.typicode.com/todos/",
		"a/b": "https://jsonplaceholder.typicode.com/todos/a%2Fb",
		"a b": "https://jsonplaceholder.typicode.com/todos/a%20b",
	}

	for id, want := range tests {
		t.Run(id, func(t *testing.T) {
			assert.Equal(t, want, client.URL(id))
		})
	}
}

func TestClient_Todo_EmptyID(t *testing.T) {
	var gotPath string

	client, _ := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	})

	doc, err := client.Todo(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "/todos/", gotPath)
	assert.Equal(t, `[]`, string(doc))
}

func TestClient_Todo_NotFound(t *testing.T) {
	client, _ := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.Todo(context.Background(), "999")

	assert.ErrorIs(t, err, todo.ErrFetchFailed)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_Todo_Malformed(t *testing.T) {
	client, _ := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	_, err := client.Todo(context.Background(), "1")

	assert.ErrorIs(t, err, todo.ErrMalformedResponse)
	assert.NotErrorIs(t, err, todo.ErrFetchFailed)
}

func TestClient_Todo_EmptyBody(t *testing.T) {
	client, _ := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.Todo(context.Background(), "1")

	assert.ErrorIs(t, err, todo.ErrMalformedResponse)
}

func TestClient_Todo_NetworkError(t *testing.T) {
	client, server := setupClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.Todo(context.Background(), "1")

	assert.ErrorIs(t, err, todo.ErrFetchFailed)
}

func TestClient_Todo_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	client, _ := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Todo(ctx, "1")

	assert.ErrorIs(t, err, todo.ErrFetchFailed)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestClient_Todo_BodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(todoOne))
	}))
	t.Cleanup(server.Close)

	client := todo.NewClient(todo.ClientParams{
		Config: todo.Config{BaseURL: server.URL, MaxBodySize: int64(len(todoOne) - 1)},
		Log:    zaptest.NewLogger(t),
	})

	_, err := client.Todo(context.Background(), "1")

	assert.ErrorIs(t, err, todo.ErrFetchFailed)
	assert.Contains(t, err.Error(), todo.ErrResponseTooLarge.Error())
}

func TestClient_Todo_BodyAtLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(todoOne))
	}))
	t.Cleanup(server.Close)

	client := todo.NewClient(todo.ClientParams{
		Config: todo.Config{BaseURL: server.URL, MaxBodySize: int64(len(todoOne))},
		Log:    zaptest.NewLogger(t),
	})

	doc, err := client.Todo(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, todoOne, string(doc))
}

package invoke_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/samplefn/app/invoke"
	"github.com/lambda-feedback/samplefn/runtime"
)

type mockHandler struct {
	mock.Mock
}

func (m *mockHandler) Handle(ctx context.Context, req runtime.Request) runtime.Response {
	args := m.Called(ctx, req)
	return args.Get(0).(runtime.Response)
}

type mockShutdowner struct {
	mock.Mock
}

func (m *mockShutdowner) Shutdown(opts ...fx.ShutdownOption) error {
	args := m.Called(len(opts))
	return args.Error(0)
}

func newInvoker(t *testing.T, cfg invoke.Config, h runtime.Handler, s fx.Shutdowner, out *bytes.Buffer) *invoke.Invoker {
	return invoke.NewInvoker(invoke.InvokerParams{
		Config:     cfg,
		Handler:    h,
		Shutdowner: s,
		Log:        zaptest.NewLogger(t),
		Output:     out,
	})
}

func TestInvoker_Invoke_BuildsRequest(t *testing.T) {
	h := new(mockHandler)
	out := new(bytes.Buffer)

	h.On("Handle", mock.Anything, mock.MatchedBy(func(req runtime.Request) bool {
		return req.Method == http.MethodPost &&
			req.URL == "http://localhost:3000/path?x=1" &&
			req.Path == "/path" &&
			req.BodyText() == `{"id":"1"}` &&
			req.Header.Get("Content-Type") == "application/json"
	})).Return(runtime.Response{StatusCode: http.StatusOK, Body: []byte(`{"ok":true}`)})

	invoker := newInvoker(t, invoke.Config{
		Method: "post",
		URL:    "http://localhost:3000/path?x=1",
		Body:   `{"id":"1"}`,
	}, h, new(mockShutdowner), out)

	res, err := invoker.Invoke(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, `{"ok":true}`, out.String())
	h.AssertExpectations(t)
}

func TestInvoker_Invoke_InvalidURL(t *testing.T) {
	invoker := newInvoker(t, invoke.Config{URL: "://bad"}, new(mockHandler), new(mockShutdowner), new(bytes.Buffer))

	_, err := invoker.Invoke(context.Background())

	assert.Error(t, err)
}

func TestInvoker_Run_ShutsDown(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "success", status: http.StatusOK},
		{name: "error status", status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := new(mockHandler)
			h.On("Handle", mock.Anything, mock.Anything).
				Return(runtime.Response{StatusCode: tt.status})

			s := new(mockShutdowner)
			s.On("Shutdown", 1).Return(nil).Once()

			invoker := newInvoker(t, invoke.Config{URL: "http://localhost/"}, h, s, new(bytes.Buffer))

			invoker.Run(context.Background())

			s.AssertExpectations(t)
		})
	}
}

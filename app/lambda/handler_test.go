package lambda

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `"}`))
	})
}

func TestParseProxySource(t *testing.T) {
	for _, s := range []string{"API_GW_V1", "api_gw_v2", " ALB "} {
		_, err := ParseProxySource(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseProxySource("SQS")
	assert.Error(t, err)
}

func TestProxyFunction_Invalid(t *testing.T) {
	_, err := proxyFunction("KINESIS", echoHandler())
	assert.Error(t, err)
}

func TestProxyFunction_ApiGatewayV2(t *testing.T) {
	fn, err := proxyFunction(ProxySourceApiGatewayV2, echoHandler())
	require.NoError(t, err)

	proxy, ok := fn.(func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error))
	require.True(t, ok)

	res, err := proxy(context.Background(), events.APIGatewayV2HTTPRequest{
		RawPath: "/todos",
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method: http.MethodPost,
				Path:   "/todos",
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"path":"/todos"}`, res.Body)
}

func TestProxyFunction_ApiGatewayV1(t *testing.T) {
	fn, err := proxyFunction(ProxySourceApiGatewayV1, echoHandler())
	require.NoError(t, err)

	proxy, ok := fn.(func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error))
	require.True(t, ok)

	res, err := proxy(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"path":"/"}`, res.Body)
}

package invoke

type Config struct {
	// Method is the HTTP method of the invocation request.
	Method string `conf:"method"`

	// URL is the full URL of the invocation request.
	URL string `conf:"url"`

	// Body is the raw invocation request body.
	Body string `conf:"body"`
}

var DefaultConfig = map[string]any{
	"method": "POST",
	"url":    "http://localhost/",
}

package todo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	ErrFetchFailed       = errors.New("fetching todo failed")
	ErrResponseTooLarge  = errors.New("todo response too large")
	ErrMalformedResponse = errors.New("todo response is not valid JSON")
)

// ClientParams defines the dependencies for the todo client.
type ClientParams struct {
	fx.In

	Config Config

	// HTTPClient overrides the client used for requests.
	HTTPClient *http.Client `optional:"true"`

	Log *zap.Logger
}

// Client fetches todos from a JSONPlaceholder compatible API.
type Client struct {
	baseURL string
	maxBody int64
	http    *http.Client
	log     *zap.Logger
}

// NewClient creates a new todo client.
func NewClient(params ClientParams) *Client {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: params.Config.Timeout}
	}

	maxBody := params.Config.MaxBodySize
	if maxBody <= 0 {
		maxBody = DefaultMaxBodySize
	}

	return &Client{
		baseURL: strings.TrimRight(params.Config.BaseURL, "/"),
		maxBody: maxBody,
		http:    httpClient,
		log:     params.Log.Named("todo"),
	}
}

// URL returns the address of the todo identified by id. An empty id
// addresses the collection.
func (c *Client) URL(id string) string {
	return c.baseURL + "/todos/" + url.PathEscape(id)
}

// Todo fetches the todo identified by id and returns its JSON document
// verbatim. The request is sent once, without retries.
func (c *Client) Todo(ctx context.Context, id string) (json.RawMessage, error) {
	endpoint := c.URL(id)

	log := c.log.With(zap.String("url", endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(ErrFetchFailed, "failed to create request. url: %v, error: %v", endpoint, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug("request failed", zap.Error(err))
		// keep the transport error in the chain so deadlines stay visible
		return nil, &fetchError{err: err, url: endpoint}
	}
	defer resp.Body.Close()

	// read one byte past the limit to tell a full body from a cut one
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		log.Debug("failed to read response body", zap.Error(err))
		return nil, &fetchError{err: err, url: endpoint}
	}

	if int64(len(body)) > c.maxBody {
		log.Debug("response body too large", zap.Int64("limit", c.maxBody))
		return nil, errors.Wrapf(ErrFetchFailed, "%v. url: %v, limit: %d", ErrResponseTooLarge, endpoint, c.maxBody)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debug("unexpected status", zap.Int("status", resp.StatusCode))
		return nil, errors.Wrapf(ErrFetchFailed, "unexpected status. url: %v, status: %d", endpoint, resp.StatusCode)
	}

	if !json.Valid(body) {
		log.Debug("malformed response", zap.Int("length", len(body)))
		return nil, errors.Wrapf(ErrMalformedResponse, "url: %v", endpoint)
	}

	return json.RawMessage(body), nil
}

// fetchError reports a transport failure. It matches ErrFetchFailed and
// unwraps to the underlying transport error.
type fetchError struct {
	err error
	url string
}

func (e *fetchError) Error() string {
	return ErrFetchFailed.Error() + ". url: " + e.url + ", error: " + e.err.Error()
}

func (e *fetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

func (e *fetchError) Unwrap() error {
	return e.err
}

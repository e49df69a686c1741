// Package function implements the sample function: it fetches the todo
// named by the request payload and returns it together with request and
// environment data.
package function

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/samplefn/internal/todo"
	"github.com/lambda-feedback/samplefn/runtime"
)

// TodoFetcher fetches a todo document by id.
type TodoFetcher interface {
	Todo(ctx context.Context, id string) (json.RawMessage, error)
}

// HandlerParams defines the dependencies for the function handler.
type HandlerParams struct {
	fx.In

	Todos TodoFetcher

	Log *zap.Logger
}

// Handler is the sample function.
type Handler struct {
	todos   TodoFetcher
	decoder *PayloadDecoder
	log     *zap.Logger
}

var _ runtime.Function = (*Handler)(nil)

// NewHandler creates the function handler.
func NewHandler(params HandlerParams) (*Handler, error) {
	decoder, err := NewPayloadDecoder()
	if err != nil {
		return nil, err
	}

	return &Handler{
		todos:   params.Todos,
		decoder: decoder,
		log:     params.Log,
	}, nil
}

// Main handles one invocation.
func (h *Handler) Main(ctx context.Context, c *runtime.Context) (runtime.Response, error) {
	payload, err := h.decoder.Decode(c.Req.Body)
	if err != nil {
		return runtime.Response{}, err
	}

	// a missing id is not rejected, the collection is fetched instead
	id, _ := payload.ID()

	h.log.Debug("fetching todo", zap.String("id", id))

	todoDoc, err := h.todos.Todo(ctx, id)
	if err != nil {
		if errors.Is(err, todo.ErrMalformedResponse) {
			return runtime.Response{}, fmt.Errorf("%w: %w", ErrMalformedRemoteResponse, err)
		}
		return runtime.Response{}, fmt.Errorf("%w: %w", ErrRemoteFetchFailed, err)
	}

	if !json.Valid(todoDoc) {
		return runtime.Response{}, ErrMalformedRemoteResponse
	}

	doc := Document{
		IsTest:   true,
		Message:  Message,
		URL:      c.Req.URL,
		Variable: c.Env.Get(VariableName),
		Todo:     todoDoc,
	}

	c.Log(LogMessage)

	return c.Res.JSON(doc)
}

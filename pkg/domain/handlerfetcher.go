package domain

import (
	"context"
)

// HandlerFetcher resolves a function name to an executable Handler.
type HandlerFetcher interface {
	// FetchHandler returns the Handler registered under the given name. If
	// no Handler matches then this component must emit a NotFoundError.
	FetchHandler(ctx context.Context, name string) (Handler, error)
}

package handlerfetcher

import (
	"context"

	"github.com/asecurityteam/items/pkg/domain"
	"github.com/asecurityteam/logevent/v2"
)

type loggingHandler struct {
	domain.Handler
	Logger   domain.Logger
	Function string
}

func (h *loggingHandler) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	logger := h.Logger.Copy()
	logger.SetField("function", h.Function)
	return h.Handler.Invoke(logevent.NewContext(ctx, logger), payload)
}

// Logging wraps every fetched Handler in a decorator that places a copy of
// Logger, tagged with the function name, into the invocation context. It is
// needed wherever no HTTP middleware has already done so, such as the
// native lambda runtime.
type Logging struct {
	Logger  domain.Logger
	Fetcher domain.HandlerFetcher
}

// FetchHandler calls the underlying fetcher and adds logger injection.
func (f *Logging) FetchHandler(ctx context.Context, name string) (domain.Handler, error) {
	h, err := f.Fetcher.FetchHandler(ctx, name)
	if err != nil {
		return nil, err
	}
	return &loggingHandler{Handler: h, Logger: f.Logger, Function: name}, nil
}

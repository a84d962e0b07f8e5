package handlerfetcher

import (
	"context"
	"time"

	"github.com/asecurityteam/items/pkg/domain"
	"github.com/rs/xstats"
)

type statHandler struct {
	domain.Handler
	Stat     domain.Stat
	Function string
}

func (h *statHandler) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	start := time.Now()
	out, err := h.Handler.Invoke(xstats.NewContext(ctx, h.Stat), payload)
	tags := []string{"function:" + h.Function, "error:false"}
	if err != nil {
		tags[1] = "error:true"
	}
	h.Stat.Timing("function.invoke", time.Since(start), tags...)
	return out, err
}

// Stat wraps every fetched Handler in a decorator that places Stat into the
// invocation context and records the duration of each invocation.
type Stat struct {
	Stat    domain.Stat
	Fetcher domain.HandlerFetcher
}

// FetchHandler calls the underlying fetcher and adds stat client injection.
func (f *Stat) FetchHandler(ctx context.Context, name string) (domain.Handler, error) {
	h, err := f.Fetcher.FetchHandler(ctx, name)
	if err != nil {
		return nil, err
	}
	return &statHandler{Handler: h, Stat: f.Stat, Function: name}, nil
}

package handlerfetcher

import (
	"context"
	"sort"

	"github.com/asecurityteam/items/pkg/domain"
)

// Static is a HandlerFetcher over a mapping of names to Handlers that is
// fixed at build time. All functions run inside the same process and share
// its clients. Adding or changing a function requires a new build.
type Static struct {
	// Handlers maps function names to executable functions.
	Handlers map[string]domain.Handler
}

// FetchHandler resolves the name using the internal mapping.
func (f *Static) FetchHandler(ctx context.Context, name string) (domain.Handler, error) {
	h, ok := f.Handlers[name]
	if !ok {
		return nil, domain.NotFoundError{ID: name}
	}
	return h, nil
}

// Names returns the registered function names in sorted order.
func (f *Static) Names() []string {
	names := make([]string, 0, len(f.Handlers))
	for name := range f.Handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

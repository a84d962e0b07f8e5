package domain

import (
	"context"
	"time"
)

// URLParamFn is the contract between the mux and any handler that needs
// to read a named parameter out of the request path.
type URLParamFn func(ctx context.Context, name string) string

// NowFn returns the current time. Functions accept one so that tests can
// pin timestamps.
type NowFn func() time.Time

// IDFn generates a new, unique item identifier.
type IDFn func() string

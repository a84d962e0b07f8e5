package items

import (
	"context"
	"fmt"
	"strings"

	"github.com/asecurityteam/items/pkg/domain"
	"github.com/asecurityteam/items/pkg/handlerfetcher"
	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-lambda-go/lambda"
)

const (
	// BuildModeHTTP runs an HTTP server that implements the Lambda Invoke
	// API and emulates the API Gateway routes.
	BuildModeHTTP = "http"
	// BuildModeLambda runs the official lambda server using the lambda
	// SDK. Using this mode requires a target function.
	BuildModeLambda = "lambda"
)

// StartFn starts the native lambda runtime. It is lambda.Start outside
// of tests.
type StartFn func(handler interface{})

// Starter selects and runs a build mode.
type Starter struct {
	// Mode is one of the BuildMode values. The default value is
	// BuildModeHTTP.
	Mode string
	// Target names the function to serve in BuildModeLambda.
	Target string
	// LambdaStart is the native lambda entry point. The default value is
	// lambda.Start.
	LambdaStart StartFn
}

// Start runs the service in the configured mode until it exits.
func (st *Starter) Start(ctx context.Context, s settings.Source) error {
	mode := st.Mode
	if mode == "" {
		mode = BuildModeHTTP
	}
	switch {
	case strings.EqualFold(mode, BuildModeHTTP):
		rt, err := New(ctx, s)
		if err != nil {
			return err
		}
		return rt.Run()
	case strings.EqualFold(mode, BuildModeLambda):
		handlers, err := NewHandlers(ctx, s)
		if err != nil {
			return err
		}
		return st.startLambda(ctx, s, handlers)
	default:
		return fmt.Errorf("unknown build mode %s", mode)
	}
}

func (st *Starter) startLambda(ctx context.Context, s settings.Source, handlers map[string]domain.Handler) error {
	if st.Target == "" {
		return fmt.Errorf("build mode %s requires a target function", BuildModeLambda)
	}
	rt := new(Lambda)
	if err := settings.NewComponent(ctx, prefixed(s), &LambdaComponent{}, rt); err != nil {
		return err
	}
	static := &handlerfetcher.Static{Handlers: handlers}
	var fetcher domain.HandlerFetcher = &handlerfetcher.Stat{Stat: rt.Stat, Fetcher: static}
	fetcher = &handlerfetcher.Logging{Logger: rt.Logger, Fetcher: fetcher}
	h, err := fetcher.FetchHandler(ctx, st.Target)
	if err != nil {
		return fmt.Errorf("function %s: %w (available: %s)", st.Target, err, strings.Join(static.Names(), ", "))
	}
	start := st.LambdaStart
	if start == nil {
		start = lambda.Start
	}
	start(h)
	return nil
}

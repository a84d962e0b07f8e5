package items

import (
	"context"

	"github.com/asecurityteam/items/pkg/domain"
	"github.com/asecurityteam/items/pkg/dynamo"
	"github.com/asecurityteam/items/pkg/functions"
	"github.com/asecurityteam/items/pkg/handlerfetcher"
	"github.com/asecurityteam/items/pkg/publisher"
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
)

// SettingsPrefix namespaces every environment variable of the service.
const SettingsPrefix = "ITEMS"

func prefixed(s settings.Source) settings.Source {
	return &settings.PrefixSource{Source: s, Prefix: []string{SettingsPrefix}}
}

// NewHandlers constructs the AWS clients once and binds every function to
// them.
func NewHandlers(ctx context.Context, s settings.Source) (map[string]domain.Handler, error) {
	src := prefixed(s)
	awsConf := new(aws.Config)
	if err := settings.NewComponent(ctx, src, &AWSComponent{}, awsConf); err != nil {
		return nil, err
	}
	store := new(dynamo.Store)
	if err := settings.NewComponent(ctx, src, &StoreComponent{AWS: *awsConf}, store); err != nil {
		return nil, err
	}
	pub := new(publisher.SNS)
	if err := settings.NewComponent(ctx, src, &PublisherComponent{AWS: *awsConf}, pub); err != nil {
		return nil, err
	}
	return functions.NewHandlers(&functions.Config{
		Store:     store,
		Publisher: pub,
	}), nil
}

// NewStatic generates a runtime bound to the given handler mapping.
func NewStatic(ctx context.Context, s settings.Source, handlers map[string]domain.Handler) (*runhttp.Runtime, error) {
	fetcher := &handlerfetcher.Static{
		Handlers: handlers,
	}
	conf := &RouterConfig{
		HandlerFetcher: fetcher,
	}
	router := NewRouter(conf)
	rtC := &runhttp.Component{Handler: router}
	rt := new(runhttp.Runtime)
	err := settings.NewComponent(ctx, prefixed(s), rtC, rt)
	return rt, err
}

// New generates the HTTP runtime serving every item function.
func New(ctx context.Context, s settings.Source) (*runhttp.Runtime, error) {
	handlers, err := NewHandlers(ctx, s)
	if err != nil {
		return nil, err
	}
	return NewStatic(ctx, s, handlers)
}

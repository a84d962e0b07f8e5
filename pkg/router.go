package items

import (
	"net/http"

	"github.com/asecurityteam/items/pkg/domain"
	"github.com/asecurityteam/items/pkg/functions"
	v1 "github.com/asecurityteam/items/pkg/handlers/v1"
	"github.com/asecurityteam/runhttp"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Route binds an HTTP method and path pattern to a function through the
// API Gateway emulator.
type Route struct {
	Method   string
	Pattern  string
	Function string
}

// Routes is the public REST surface of the item functions.
var Routes = []Route{
	{Method: http.MethodPost, Pattern: "/items", Function: functions.CreateItemName},
	{Method: http.MethodGet, Pattern: "/items", Function: functions.ListItemsName},
	{Method: http.MethodGet, Pattern: "/items/{id}", Function: functions.GetItemName},
	{Method: http.MethodPut, Pattern: "/items/{id}", Function: functions.UpdateItemName},
	{Method: http.MethodDelete, Pattern: "/items/{id}", Function: functions.DeleteItemName},
	{Method: http.MethodPost, Pattern: "/subscribe", Function: functions.SubscribeEmailName},
}

// RouterConfig is used to alter the behavior of the default router
// and the HTTP endpoint handlers that it manages.
type RouterConfig struct {
	// HealthCheck defines the route on which the service will respond
	// with automatic 200s. The default value is /healthcheck
	HealthCheck string

	// HandlerFetcher is the Lambda function loader that will
	// be used by the runtime. There is no default for this value.
	HandlerFetcher domain.HandlerFetcher

	// Routes are the API Gateway routes to emulate. The default value
	// is Routes.
	Routes []Route

	// AllowedOrigins is passed to the CORS middleware. The default
	// value allows every origin.
	AllowedOrigins []string

	// LogFn is used to extract the request logger from the request
	// context. The default value is runhttp.LoggerFromContext.
	LogFn domain.LogFn
	// StatFn is used to extract the request stat client from the
	// request context. The default value is runhttp.StatFromContext.
	StatFn domain.StatFn
	// URLParamFn is used to extract URL parameters from the request.
	// The default value is chi.URLParamFromCtx to match the usage of chi
	// as a mux in the default case.
	URLParamFn domain.URLParamFn
}

func applyDefaults(conf *RouterConfig) *RouterConfig {
	if conf.HealthCheck == "" {
		conf.HealthCheck = "/healthcheck"
	}
	if conf.Routes == nil {
		conf.Routes = Routes
	}
	if len(conf.AllowedOrigins) == 0 {
		conf.AllowedOrigins = []string{"*"}
	}
	if conf.LogFn == nil {
		conf.LogFn = runhttp.LoggerFromContext
	}
	if conf.StatFn == nil {
		conf.StatFn = runhttp.StatFromContext
	}
	if conf.URLParamFn == nil {
		conf.URLParamFn = chi.URLParamFromCtx
	}
	return conf
}

// NewRouter generates a mux with the Lambda Invoke API and the emulated
// API Gateway routes bound.
func NewRouter(conf *RouterConfig) *chi.Mux {
	conf = applyDefaults(conf)
	router := chi.NewMux()
	router.Use(middleware.Heartbeat(conf.HealthCheck))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: conf.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
	}))

	invokeHandler := &v1.Invoke{
		Fetcher:    conf.HandlerFetcher,
		LogFn:      conf.LogFn,
		StatFn:     conf.StatFn,
		URLParamFn: conf.URLParamFn,
	}
	router.Method(http.MethodPost, "/2015-03-31/functions/{functionName}/invocations", invokeHandler)

	for _, route := range conf.Routes {
		router.Method(route.Method, route.Pattern, &v1.Gateway{
			Fetcher:    conf.HandlerFetcher,
			LogFn:      conf.LogFn,
			StatFn:     conf.StatFn,
			URLParamFn: conf.URLParamFn,
			Function:   route.Function,
			Resource:   route.Pattern,
		})
	}
	return router
}

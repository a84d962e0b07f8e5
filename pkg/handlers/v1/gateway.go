package v1

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/asecurityteam/items/pkg/domain"
	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

const gatewayStage = "local"

type gatewayMessage struct {
	Message string `json:"message"`
}

type gatewayFailure struct {
	Function string `logevent:"function"`
	Reason   string `logevent:"reason"`
	Message  string `logevent:"message,default=gateway-integration-failure"`
}

// Gateway emulates the API Gateway Lambda proxy integration for one route.
// The HTTP request is converted into an events.APIGatewayProxyRequest, the
// function is invoked with it, and the events.APIGatewayProxyResponse it
// returns is written back verbatim. Integration failures are reported the
// way API Gateway reports them: a 502 with a generic message.
type Gateway struct {
	LogFn      domain.LogFn
	StatFn     domain.StatFn
	URLParamFn domain.URLParamFn
	Fetcher    domain.HandlerFetcher
	// Function is the name of the function bound to the route.
	Function string
	// Resource is the route pattern, such as /items/{id}.
	Resource string
}

func (h *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fn, err := h.Fetcher.FetchHandler(r.Context(), h.Function)
	switch err.(type) {
	case nil:
	case domain.NotFoundError:
		writeGatewayMessage(w, http.StatusNotFound, "Not Found")
		return
	default:
		h.fail(w, r, err)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeGatewayMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	payload, err := json.Marshal(h.proxyRequest(r, body))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := fn.Invoke(r.Context(), payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var resp events.APIGatewayProxyResponse
	if err := json.Unmarshal(out, &resp); err != nil {
		h.fail(w, r, err)
		return
	}
	respBody := []byte(resp.Body)
	if resp.IsBase64Encoded {
		if respBody, err = base64.StdEncoding.DecodeString(resp.Body); err != nil {
			h.fail(w, r, err)
			return
		}
	}
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	for k, vs := range resp.MultiValueHeaders {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	statusCode := resp.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	h.StatFn(r.Context()).Count("gateway.response", 1, "function:"+h.Function, "status:"+strconv.Itoa(statusCode))
	w.WriteHeader(statusCode)
	_, _ = w.Write(respBody)
}

func (h *Gateway) proxyRequest(r *http.Request, body []byte) events.APIGatewayProxyRequest {
	headers := make(map[string]string, len(r.Header))
	for k := range r.Header {
		headers[k] = r.Header.Get(k)
	}
	query := r.URL.Query()
	var queryParams map[string]string
	if len(query) > 0 {
		queryParams = make(map[string]string, len(query))
		for k := range query {
			queryParams[k] = query.Get(k)
		}
	}
	var pathParams map[string]string
	if names := PathParamNames(h.Resource); len(names) > 0 {
		pathParams = make(map[string]string, len(names))
		for _, name := range names {
			pathParams[name] = h.URLParamFn(r.Context(), name)
		}
	}
	return events.APIGatewayProxyRequest{
		Resource:                        h.Resource,
		Path:                            r.URL.Path,
		HTTPMethod:                      r.Method,
		Headers:                         headers,
		MultiValueHeaders:               r.Header,
		QueryStringParameters:           queryParams,
		MultiValueQueryStringParameters: query,
		PathParameters:                  pathParams,
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:    uuid.NewString(),
			Stage:        gatewayStage,
			ResourcePath: h.Resource,
			HTTPMethod:   r.Method,
			Path:         r.URL.Path,
		},
		Body: string(body),
	}
}

func (h *Gateway) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.LogFn(r.Context()).Error(gatewayFailure{Function: h.Function, Reason: err.Error()})
	h.StatFn(r.Context()).Count("gateway.integration.error", 1, "function:"+h.Function)
	writeGatewayMessage(w, http.StatusBadGateway, "Internal server error")
}

func writeGatewayMessage(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(gatewayMessage{Message: message})
}

// PathParamNames returns the names of the {param} segments of a route
// pattern in the order they appear.
func PathParamNames(resource string) []string {
	var names []string
	for _, segment := range strings.Split(resource, "/") {
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			names = append(names, strings.TrimSuffix(strings.TrimPrefix(segment, "{"), "}"))
		}
	}
	return names
}

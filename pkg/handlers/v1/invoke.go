package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/asecurityteam/items/pkg/domain"
)

const (
	invocationTypeHeader          = "X-Amz-Invocation-Type"
	invocationTypeRequestResponse = "RequestResponse"
	invocationTypeEvent           = "Event"
	invocationTypeDryRun          = "DryRun"
	invocationVersionHeader       = "X-Amz-Executed-Version"
	invocationErrorHeader         = "X-Amz-Function-Error"
	invocationErrorTypeHandled    = "Handled"
	invocationErrorTypeUnhandled  = "Unhandled"
)

// bgContext keeps the values of a request context, such as the logger and
// stat client, while dropping its deadline and cancellation. Event
// invocations run after the HTTP handler has returned and would otherwise
// see a canceled context.
type bgContext struct {
	context.Context
	Values context.Context
}

func (c *bgContext) Value(key interface{}) interface{} {
	return c.Values.Value(key)
}

// lambdaError is the JSON error body returned by the Lambda Invoke API.
type lambdaError struct {
	Message    string   `json:"errorMessage"`
	Type       string   `json:"errorType"`
	StackTrace []string `json:"stackTrace"`
}

type invocationFailed struct {
	Function string `logevent:"function"`
	Type     string `logevent:"invocation_type"`
	Reason   string `logevent:"reason"`
	Message  string `logevent:"message,default=invocation-failed"`
}

// Invoke implements the API of the same name from the AWS Lambda API so that
// the messaging backend, or the AWS CLI, can call any registered function
// against the local runtime. Only the RequestResponse, Event and DryRun
// invocation types are supported. The "Qualifier" parameter is ignored and
// the executed version is always reported as "latest".
type Invoke struct {
	LogFn      domain.LogFn
	StatFn     domain.StatFn
	URLParamFn domain.URLParamFn
	Fetcher    domain.HandlerFetcher
}

func (h *Invoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fnName := h.URLParamFn(r.Context(), "functionName")
	fn, errFn := h.Fetcher.FetchHandler(r.Context(), fnName)
	switch errFn.(type) {
	case nil:
	case domain.NotFoundError:
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(responseFromError(errFn))
		return
	default:
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(responseFromError(errFn))
		return
	}
	fnType := r.Header.Get(invocationTypeHeader)
	if fnType == "" {
		fnType = invocationTypeRequestResponse
	}
	payload, errRead := io.ReadAll(r.Body)
	if errRead != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(responseFromError(errRead))
		return
	}
	ctx := r.Context()
	w.Header().Set(invocationVersionHeader, "latest")
	switch fnType {
	case invocationTypeDryRun:
		w.WriteHeader(http.StatusNoContent)
	case invocationTypeEvent:
		ctx = &bgContext{Context: context.Background(), Values: ctx}
		go func() {
			if _, err := fn.Invoke(ctx, payload); err != nil {
				h.LogFn(ctx).Error(invocationFailed{Function: fnName, Type: fnType, Reason: err.Error()})
				h.StatFn(ctx).Count("invoke.error", 1, "function:"+fnName)
			}
		}()
		w.WriteHeader(http.StatusAccepted)
	case invocationTypeRequestResponse:
		out, errInvoke := fn.Invoke(ctx, payload)
		statusCode := statusFromError(errInvoke)
		switch {
		case statusCode > 499:
			w.Header().Set(invocationErrorHeader, invocationErrorTypeUnhandled)
		case statusCode > 299:
			w.Header().Set(invocationErrorHeader, invocationErrorTypeHandled)
		}
		if errInvoke != nil {
			h.LogFn(ctx).Error(invocationFailed{Function: fnName, Type: fnType, Reason: errInvoke.Error()})
			h.StatFn(ctx).Count("invoke.error", 1, "function:"+fnName)
			out, _ = json.Marshal(responseFromError(errInvoke))
		}
		w.WriteHeader(statusCode)
		if len(out) > 0 {
			_, _ = w.Write(out)
		}
	default:
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(lambdaError{
			Message:    fmt.Sprintf("InvocationType %s not valid", fnType),
			Type:       "InvalidParameterValueException",
			StackTrace: errResponseStackTrace,
		})
	}
}

// errResponseStackTrace populates the stackTrace attribute of every error.
// No stack is captured so one empty slice is shared.
var errResponseStackTrace = []string{}

func responseFromError(err error) lambdaError {
	errType := reflect.TypeOf(err)
	errTypeName := errType.Name()
	if errType.Kind() == reflect.Ptr {
		errTypeName = errType.Elem().Name()
	}
	return lambdaError{
		Message:    err.Error(),
		Type:       errTypeName,
		StackTrace: errResponseStackTrace,
	}
}

// statusFromError reports payload decoding failures as client errors and
// everything else as a function failure.
func statusFromError(err error) int {
	switch err.(type) {
	case nil:
		return http.StatusOK
	case *json.SyntaxError:
		return http.StatusBadRequest
	case *json.InvalidUnmarshalError:
		return http.StatusBadRequest
	case *json.UnmarshalTypeError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

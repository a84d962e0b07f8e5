package functions

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/asecurityteam/items/pkg/domain"
	"github.com/aws/aws-lambda-go/events"
)

const (
	msgNomeRequired  = "Nome obrigatório"
	msgEmailRequired = "Email obrigatório"
	msgItemNotFound  = "Item não encontrado"
	msgItemRemoved   = "Item removido com sucesso"
	msgSubscribed    = "Email inscrito. Confirme no email."
)

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

// decodeBody reads the JSON request body into v. A missing body is treated
// as an empty object.
func decodeBody(req events.APIGatewayProxyRequest, v interface{}) error {
	body := req.Body
	if req.IsBase64Encoded {
		b, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return domain.ValidationError{Field: "body", Message: err.Error()}
		}
		body = string(b)
	}
	if strings.TrimSpace(body) == "" {
		body = "{}"
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return domain.ValidationError{Field: "body", Message: err.Error()}
	}
	return nil
}

func jsonResponse(statusCode int, v interface{}) events.APIGatewayProxyResponse {
	b, err := json.Marshal(v)
	if err != nil {
		statusCode = http.StatusInternalServerError
		b, _ = json.Marshal(errorBody{Error: err.Error()})
	}
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    jsonHeaders,
		Body:       string(b),
	}
}

func statusFromError(err error) int {
	var validationErr domain.ValidationError
	var notFoundErr domain.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// messageFromError renders the client facing text for err. Backend failures
// are reported with the raw message of the underlying client error.
func messageFromError(err error) string {
	var validationErr domain.ValidationError
	var notFoundErr domain.NotFoundError
	var backendErr domain.BackendError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.As(err, &notFoundErr):
		return msgItemNotFound
	case errors.As(err, &backendErr) && backendErr.Reason != nil:
		return backendErr.Reason.Error()
	default:
		return err.Error()
	}
}

func errorResponse(err error) events.APIGatewayProxyResponse {
	return jsonResponse(statusFromError(err), errorBody{Error: messageFromError(err)})
}

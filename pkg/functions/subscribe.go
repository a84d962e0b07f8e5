package functions

import (
	"context"
	"net/http"

	"github.com/asecurityteam/items/pkg/domain"
	"github.com/aws/aws-lambda-go/events"
)

const emailProtocol = "email"

type subscribeInput struct {
	Email string `json:"email"`
}

type subscribeOutput struct {
	Message         string `json:"message"`
	SubscriptionArn string `json:"subscriptionArn"`
}

// SubscribeEmail registers an email address on the notification topic.
// Confirmation happens out of band between the recipient and the
// messaging backend.
type SubscribeEmail struct {
	LogFn     domain.LogFn
	StatFn    domain.StatFn
	Publisher domain.Publisher
}

// Handle is invoked for POST /subscribe.
func (h *SubscribeEmail) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var in subscribeInput
	if err := decodeBody(req, &in); err != nil {
		return fail(ctx, h.LogFn, h.StatFn, SubscribeEmailName, err), nil
	}
	if in.Email == "" {
		err := domain.ValidationError{Message: msgEmailRequired}
		return fail(ctx, h.LogFn, h.StatFn, SubscribeEmailName, err), nil
	}
	arn, err := h.Publisher.Subscribe(ctx, emailProtocol, in.Email)
	if err != nil {
		return fail(ctx, h.LogFn, h.StatFn, SubscribeEmailName, err), nil
	}
	sub := domain.Subscription{Email: in.Email, SubscriptionArn: arn}
	h.LogFn(ctx).Info(emailSubscribed{SubscriptionArn: sub.SubscriptionArn})
	h.StatFn(ctx).Count("items.subscribed", 1)
	return jsonResponse(http.StatusOK, subscribeOutput{
		Message:         msgSubscribed,
		SubscriptionArn: sub.SubscriptionArn,
	}), nil
}

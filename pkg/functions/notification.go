package functions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/asecurityteam/items/pkg/domain"
	"github.com/aws/aws-lambda-go/events"
)

// ProcessNotification consumes the messages the topic delivers back to the
// service. Every record is logged and the batch is acknowledged as a whole.
// Payloads that do not decode as an SNS event fail the entire invocation
// before any record is processed, which makes the backend redeliver the
// batch.
type ProcessNotification struct {
	LogFn  domain.LogFn
	StatFn domain.StatFn
}

// Handle is invoked by the messaging backend.
func (h *ProcessNotification) Handle(ctx context.Context, event events.SNSEvent) (events.APIGatewayProxyResponse, error) {
	for _, record := range event.Records {
		line := notificationReceived{
			MessageID: record.SNS.MessageID,
			Subject:   record.SNS.Subject,
			Body:      record.SNS.Message,
		}
		// Messages from other publishers are still logged, just without
		// the envelope fields.
		var env domain.Envelope
		if err := json.Unmarshal([]byte(record.SNS.Message), &env); err == nil {
			line.Event = string(env.Event)
			line.ItemID = env.Item.ID
		}
		h.LogFn(ctx).Info(line)
		h.StatFn(ctx).Count("items.notification.received", 1)
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: "OK"}, nil
}

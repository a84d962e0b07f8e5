package publisher

import (
	"context"

	"github.com/asecurityteam/items/pkg/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

//go:generate mockgen -destination mock_api_test.go -package publisher github.com/asecurityteam/items/pkg/publisher API

// API is the subset of the SNS client used by the Publisher. It is
// satisfied by *sns.Client.
type API interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
	Subscribe(ctx context.Context, params *sns.SubscribeInput, optFns ...func(*sns.Options)) (*sns.SubscribeOutput, error)
}

// SNS publishes to and subscribes endpoints on a single SNS topic.
type SNS struct {
	Client   API
	TopicARN string
}

var _ domain.Publisher = (*SNS)(nil)

// Publish sends the message with the given subject to the topic.
func (p *SNS) Publish(ctx context.Context, subject string, message string) (string, error) {
	out, err := p.Client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.TopicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return "", domain.BackendError{Op: "sns.Publish", Reason: err}
	}
	return aws.ToString(out.MessageId), nil
}

// Subscribe registers the endpoint on the topic. Email subscriptions stay
// pending until the recipient confirms them, in which case the returned
// identifier is the backend's pending marker.
func (p *SNS) Subscribe(ctx context.Context, protocol string, endpoint string) (string, error) {
	out, err := p.Client.Subscribe(ctx, &sns.SubscribeInput{
		TopicArn: aws.String(p.TopicARN),
		Protocol: aws.String(protocol),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return "", domain.BackendError{Op: "sns.Subscribe", Reason: err}
	}
	return aws.ToString(out.SubscriptionArn), nil
}

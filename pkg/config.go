package items

import (
	"context"
	"fmt"
	"os"

	"github.com/asecurityteam/items/pkg/domain"
	"github.com/asecurityteam/items/pkg/dynamo"
	"github.com/asecurityteam/items/pkg/publisher"
	"github.com/asecurityteam/logevent/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/xstats"
)

const (
	localStackPort = 4566
	// LocalStack accepts any credentials but the SDK refuses to sign
	// without some.
	localStackCredential = "test"
)

// AWSConfig contains the settings shared by every AWS client.
type AWSConfig struct {
	Region             string `description:"AWS region of the table and topic."`
	Endpoint           string `description:"Endpoint override for every AWS client, such as http://localhost:4566."`
	LocalStackHostname string `description:"LocalStack host. Used to derive the endpoint when none is set."`
	AccessKeyID        string `description:"Static access key. Defaults to the LocalStack placeholder when an endpoint is in use."`
	SecretAccessKey    string `description:"Static secret key. Defaults to the LocalStack placeholder when an endpoint is in use."`
}

// Name of the configuration root.
func (*AWSConfig) Name() string {
	return "aws"
}

// AWSComponent loads an aws.Config.
type AWSComponent struct{}

// Settings generates the default configuration.
func (*AWSComponent) Settings() *AWSConfig {
	return &AWSConfig{Region: "us-east-1"}
}

// endpoint resolves the override, if any.
func (c *AWSConfig) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	if c.LocalStackHostname != "" {
		return fmt.Sprintf("http://%s:%d", c.LocalStackHostname, localStackPort)
	}
	return ""
}

// New loads the SDK configuration. Explicit keys win over the default
// credential chain; an endpoint override without keys gets the LocalStack
// placeholder credentials.
func (*AWSComponent) New(ctx context.Context, conf *AWSConfig) (*aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(conf.Region)}
	endpoint := conf.endpoint()
	accessKey, secretKey := conf.AccessKeyID, conf.SecretAccessKey
	if endpoint != "" && accessKey == "" && secretKey == "" {
		accessKey, secretKey = localStackCredential, localStackCredential
	}
	if accessKey != "" || secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if endpoint != "" {
		cfg.BaseEndpoint = aws.String(endpoint)
	}
	return &cfg, nil
}

// DynamoDBConfig selects the item table.
type DynamoDBConfig struct {
	TableName string `description:"Name of the item table."`
	Bootstrap bool   `description:"Create the table at startup when it does not exist."`
}

// Name of the configuration root.
func (*DynamoDBConfig) Name() string {
	return "dynamodb"
}

// StoreComponent builds the DynamoDB backed item store.
type StoreComponent struct {
	AWS aws.Config
}

// Settings generates the default configuration.
func (*StoreComponent) Settings() *DynamoDBConfig {
	return &DynamoDBConfig{TableName: "items"}
}

// New constructs the store and, when requested, creates its table.
func (c *StoreComponent) New(ctx context.Context, conf *DynamoDBConfig) (*dynamo.Store, error) {
	store := &dynamo.Store{
		Client:    dynamodb.NewFromConfig(c.AWS),
		TableName: conf.TableName,
	}
	if conf.Bootstrap {
		if err := store.EnsureTable(ctx); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// SNSConfig selects the notification topic.
type SNSConfig struct {
	TopicARN string `description:"ARN of the topic that receives item change notifications."`
}

// Name of the configuration root.
func (*SNSConfig) Name() string {
	return "sns"
}

// PublisherComponent builds the SNS publisher.
type PublisherComponent struct {
	AWS aws.Config
}

// Settings generates the default configuration.
func (*PublisherComponent) Settings() *SNSConfig {
	return &SNSConfig{}
}

// New constructs the publisher.
func (c *PublisherComponent) New(_ context.Context, conf *SNSConfig) (*publisher.SNS, error) {
	return &publisher.SNS{
		Client:   sns.NewFromConfig(c.AWS),
		TopicARN: conf.TopicARN,
	}, nil
}

// LambdaConfig holds the settings of the native lambda mode, which runs
// without the HTTP runtime and its logger.
type LambdaConfig struct {
	LogLevel string `description:"Minimum level of emitted log lines."`
}

// Name of the configuration root.
func (*LambdaConfig) Name() string {
	return "lambda"
}

// Lambda carries the collaborators that the HTTP runtime would otherwise
// place in each request context.
type Lambda struct {
	Logger domain.Logger
	Stat   domain.Stat
}

// LambdaComponent builds the native lambda mode collaborators.
type LambdaComponent struct{}

// Settings generates the default configuration.
func (*LambdaComponent) Settings() *LambdaConfig {
	return &LambdaConfig{LogLevel: "INFO"}
}

// New constructs a logger writing JSON lines to stdout, where the lambda
// service collects them. Metrics are discarded.
func (*LambdaComponent) New(ctx context.Context, conf *LambdaConfig) (*Lambda, error) {
	return &Lambda{
		Logger: logevent.New(logevent.Config{Output: os.Stdout, Level: conf.LogLevel}),
		Stat:   xstats.FromContext(ctx),
	}, nil
}

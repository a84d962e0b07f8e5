package domain

import (
	"context"
	"time"
)

// TimestampLayout is the ISO-8601 layout used for item timestamps. It
// always renders UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in the item timestamp layout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Item is the sole persisted record. ID is assigned on creation and never
// changes afterwards.
type Item struct {
	ID        string `json:"id" dynamodbav:"id"`
	Nome      string `json:"nome" dynamodbav:"nome"`
	Descricao string `json:"descricao,omitempty" dynamodbav:"descricao,omitempty"`
	CreatedAt string `json:"createdAt,omitempty" dynamodbav:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
}

// ItemChanges are the attributes rewritten by an update.
type ItemChanges struct {
	Nome      string
	Descricao string
	UpdatedAt string
}

// Event names a change carried by an Envelope.
type Event string

const (
	// EventCreated is published after an item is stored for the first time.
	EventCreated Event = "CRIADO"
	// EventUpdated is published after an item is rewritten.
	EventUpdated Event = "ATUALIZADO"
)

// Envelope is the notification body published for every item change.
type Envelope struct {
	Event Event `json:"event"`
	Item  Item  `json:"item"`
}

// Subscription identifies an endpoint registered with the messaging backend.
type Subscription struct {
	Email           string `json:"email"`
	SubscriptionArn string `json:"subscriptionArn"`
}

//go:generate mockgen -destination ../functions/mock_domain_test.go -package functions github.com/asecurityteam/items/pkg/domain ItemStore,Publisher

// ItemStore is the storage backend contract.
type ItemStore interface {
	// Put writes the item, replacing any previous item with the same ID.
	Put(ctx context.Context, item Item) error
	// Get returns the item with the given ID or a NotFoundError.
	Get(ctx context.Context, id string) (Item, error)
	// Scan returns every stored item in backend order.
	Scan(ctx context.Context) ([]Item, error)
	// Update merges the changes into the item with the given ID and returns
	// the resulting item. It does not check that the item existed.
	Update(ctx context.Context, id string, changes ItemChanges) (Item, error)
	// Delete removes the item with the given ID. Deleting an unknown ID is
	// not an error.
	Delete(ctx context.Context, id string) error
}

// Publisher is the messaging backend contract. All calls address the
// single topic the Publisher was configured with.
type Publisher interface {
	// Publish sends a message and returns the backend message identifier.
	Publish(ctx context.Context, subject string, message string) (string, error)
	// Subscribe registers an endpoint for delivery and returns the
	// subscription identifier issued by the backend.
	Subscribe(ctx context.Context, protocol string, endpoint string) (string, error)
}

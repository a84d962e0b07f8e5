package functions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/asecurityteam/items/pkg/domain"
	"github.com/aws/aws-lambda-go/events"
)

const (
	subjectCreated = "Novo Item Criado"
	subjectUpdated = "Item Atualizado"
	idParam        = "id"
)

type itemInput struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}

func (in itemInput) validate() error {
	if in.Nome == "" {
		return domain.ValidationError{Message: msgNomeRequired}
	}
	return nil
}

func fail(ctx context.Context, logFn domain.LogFn, statFn domain.StatFn, function string, err error) events.APIGatewayProxyResponse {
	switch statusFromError(err) {
	case http.StatusBadRequest:
		logFn(ctx).Info(invalidRequest{Function: function, Reason: err.Error()})
		statFn(ctx).Count("items.request.invalid", 1, "function:"+function)
	case http.StatusNotFound:
		statFn(ctx).Count("items.notfound", 1, "function:"+function)
	default:
		logFn(ctx).Error(backendFailure{Function: function, Reason: err.Error()})
		statFn(ctx).Count("items.backend.error", 1, "function:"+function)
	}
	return errorResponse(err)
}

func publishEnvelope(ctx context.Context, logFn domain.LogFn, statFn domain.StatFn, p domain.Publisher, subject string, env domain.Envelope) error {
	b, err := json.Marshal(env)
	if err != nil {
		return err
	}
	messageID, err := p.Publish(ctx, subject, string(b))
	if err != nil {
		return err
	}
	logFn(ctx).Info(notificationPublished{Event: string(env.Event), ItemID: env.Item.ID, MessageID: messageID})
	statFn(ctx).Count("items.notification.published", 1, "event:"+string(env.Event))
	return nil
}

// CreateItem stores a new item and announces it with a CRIADO notification.
// The item is not removed if the notification cannot be published.
type CreateItem struct {
	LogFn     domain.LogFn
	StatFn    domain.StatFn
	Store     domain.ItemStore
	Publisher domain.Publisher
	NowFn     domain.NowFn
	IDFn      domain.IDFn
}

// Handle is invoked for POST /items.
func (h *CreateItem) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var in itemInput
	if err := decodeBody(req, &in); err != nil {
		return fail(ctx, h.LogFn, h.StatFn, CreateItemName, err), nil
	}
	if err := in.validate(); err != nil {
		return fail(ctx, h.LogFn, h.StatFn, CreateItemName, err), nil
	}
	now := domain.FormatTimestamp(h.NowFn())
	item := domain.Item{
		ID:        h.IDFn(),
		Nome:      in.Nome,
		Descricao: in.Descricao,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.Store.Put(ctx, item); err != nil {
		return fail(ctx, h.LogFn, h.StatFn, CreateItemName, err), nil
	}
	h.LogFn(ctx).Info(itemCreated{ID: item.ID})
	h.StatFn(ctx).Count("items.created", 1)
	env := domain.Envelope{Event: domain.EventCreated, Item: item}
	if err := publishEnvelope(ctx, h.LogFn, h.StatFn, h.Publisher, subjectCreated, env); err != nil {
		return fail(ctx, h.LogFn, h.StatFn, CreateItemName, err), nil
	}
	return jsonResponse(http.StatusCreated, item), nil
}

// ListItems returns every stored item.
type ListItems struct {
	LogFn  domain.LogFn
	StatFn domain.StatFn
	Store  domain.ItemStore
}

// Handle is invoked for GET /items.
func (h *ListItems) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	items, err := h.Store.Scan(ctx)
	if err != nil {
		return fail(ctx, h.LogFn, h.StatFn, ListItemsName, err), nil
	}
	if items == nil {
		items = []domain.Item{}
	}
	h.StatFn(ctx).Gauge("items.listed", float64(len(items)))
	return jsonResponse(http.StatusOK, items), nil
}

// GetItem returns a single item by id.
type GetItem struct {
	LogFn  domain.LogFn
	StatFn domain.StatFn
	Store  domain.ItemStore
}

// Handle is invoked for GET /items/{id}.
func (h *GetItem) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	item, err := h.Store.Get(ctx, req.PathParameters[idParam])
	if err != nil {
		return fail(ctx, h.LogFn, h.StatFn, GetItemName, err), nil
	}
	return jsonResponse(http.StatusOK, item), nil
}

// UpdateItem rewrites nome, descricao and updatedAt of an item and
// announces the result with an ATUALIZADO notification. The id is not
// checked for existence first.
type UpdateItem struct {
	LogFn     domain.LogFn
	StatFn    domain.StatFn
	Store     domain.ItemStore
	Publisher domain.Publisher
	NowFn     domain.NowFn
}

// Handle is invoked for PUT /items/{id}.
func (h *UpdateItem) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var in itemInput
	if err := decodeBody(req, &in); err != nil {
		return fail(ctx, h.LogFn, h.StatFn, UpdateItemName, err), nil
	}
	if err := in.validate(); err != nil {
		return fail(ctx, h.LogFn, h.StatFn, UpdateItemName, err), nil
	}
	item, err := h.Store.Update(ctx, req.PathParameters[idParam], domain.ItemChanges{
		Nome:      in.Nome,
		Descricao: in.Descricao,
		UpdatedAt: domain.FormatTimestamp(h.NowFn()),
	})
	if err != nil {
		return fail(ctx, h.LogFn, h.StatFn, UpdateItemName, err), nil
	}
	h.LogFn(ctx).Info(itemUpdated{ID: item.ID})
	h.StatFn(ctx).Count("items.updated", 1)
	env := domain.Envelope{Event: domain.EventUpdated, Item: item}
	if err := publishEnvelope(ctx, h.LogFn, h.StatFn, h.Publisher, subjectUpdated, env); err != nil {
		return fail(ctx, h.LogFn, h.StatFn, UpdateItemName, err), nil
	}
	return jsonResponse(http.StatusOK, item), nil
}

// DeleteItem removes an item by id. Unknown ids still succeed.
type DeleteItem struct {
	LogFn  domain.LogFn
	StatFn domain.StatFn
	Store  domain.ItemStore
}

// Handle is invoked for DELETE /items/{id}.
func (h *DeleteItem) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	id := req.PathParameters[idParam]
	if err := h.Store.Delete(ctx, id); err != nil {
		return fail(ctx, h.LogFn, h.StatFn, DeleteItemName, err), nil
	}
	h.LogFn(ctx).Info(itemDeleted{ID: id})
	h.StatFn(ctx).Count("items.deleted", 1)
	return jsonResponse(http.StatusOK, messageBody{Message: msgItemRemoved}), nil
}

package functions

import (
	"time"

	"github.com/asecurityteam/items/pkg/domain"
	"github.com/asecurityteam/runhttp"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
)

// Names under which the functions are registered. They double as the
// Lambda function names used by the Invoke API.
const (
	CreateItemName          = "createItem"
	ListItemsName           = "listItems"
	GetItemName             = "getItem"
	UpdateItemName          = "updateItem"
	DeleteItemName          = "deleteItem"
	SubscribeEmailName      = "subscribeEmail"
	ProcessNotificationName = "processNotification"
)

// Config holds the collaborators shared by every function.
type Config struct {
	// Store is the storage backend. There is no default for this value.
	Store domain.ItemStore
	// Publisher is the messaging backend. There is no default for this value.
	Publisher domain.Publisher

	// LogFn is used to extract the logger from the invocation context.
	// The default value is runhttp.LoggerFromContext.
	LogFn domain.LogFn
	// StatFn is used to extract the metrics client from the invocation
	// context. The default value is runhttp.StatFromContext.
	StatFn domain.StatFn
	// NowFn sets item timestamps. The default value is time.Now.
	NowFn domain.NowFn
	// IDFn generates item identifiers. The default value produces random
	// (version 4) UUIDs.
	IDFn domain.IDFn
}

func applyDefaults(conf *Config) *Config {
	if conf.LogFn == nil {
		conf.LogFn = runhttp.LoggerFromContext
	}
	if conf.StatFn == nil {
		conf.StatFn = runhttp.StatFromContext
	}
	if conf.NowFn == nil {
		conf.NowFn = time.Now
	}
	if conf.IDFn == nil {
		conf.IDFn = uuid.NewString
	}
	return conf
}

// NewHandlers binds every function to the given collaborators and returns
// them keyed by function name.
func NewHandlers(conf *Config) map[string]domain.Handler {
	conf = applyDefaults(conf)
	return map[string]domain.Handler{
		CreateItemName: lambda.NewHandler((&CreateItem{
			LogFn: conf.LogFn, StatFn: conf.StatFn, Store: conf.Store, Publisher: conf.Publisher,
			NowFn: conf.NowFn, IDFn: conf.IDFn,
		}).Handle),
		ListItemsName: lambda.NewHandler((&ListItems{
			LogFn: conf.LogFn, StatFn: conf.StatFn, Store: conf.Store,
		}).Handle),
		GetItemName: lambda.NewHandler((&GetItem{
			LogFn: conf.LogFn, StatFn: conf.StatFn, Store: conf.Store,
		}).Handle),
		UpdateItemName: lambda.NewHandler((&UpdateItem{
			LogFn: conf.LogFn, StatFn: conf.StatFn, Store: conf.Store, Publisher: conf.Publisher,
			NowFn: conf.NowFn,
		}).Handle),
		DeleteItemName: lambda.NewHandler((&DeleteItem{
			LogFn: conf.LogFn, StatFn: conf.StatFn, Store: conf.Store,
		}).Handle),
		SubscribeEmailName: lambda.NewHandler((&SubscribeEmail{
			LogFn: conf.LogFn, StatFn: conf.StatFn, Publisher: conf.Publisher,
		}).Handle),
		ProcessNotificationName: lambda.NewHandler((&ProcessNotification{
			LogFn: conf.LogFn, StatFn: conf.StatFn,
		}).Handle),
	}
}

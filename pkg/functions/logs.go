package functions

type itemCreated struct {
	ID      string `logevent:"item_id"`
	Message string `logevent:"message,default=item-created"`
}

type itemUpdated struct {
	ID      string `logevent:"item_id"`
	Message string `logevent:"message,default=item-updated"`
}

type itemDeleted struct {
	ID      string `logevent:"item_id"`
	Message string `logevent:"message,default=item-deleted"`
}

type notificationPublished struct {
	Event     string `logevent:"event"`
	ItemID    string `logevent:"item_id"`
	MessageID string `logevent:"message_id"`
	Message   string `logevent:"message,default=notification-published"`
}

type emailSubscribed struct {
	SubscriptionArn string `logevent:"subscription_arn"`
	Message         string `logevent:"message,default=email-subscribed"`
}

type notificationReceived struct {
	MessageID string `logevent:"message_id"`
	Subject   string `logevent:"subject"`
	Body      string `logevent:"body"`
	Event     string `logevent:"event"`
	ItemID    string `logevent:"item_id"`
	Message   string `logevent:"message,default=notification-received"`
}

type invalidRequest struct {
	Function string `logevent:"function"`
	Reason   string `logevent:"reason"`
	Message  string `logevent:"message,default=invalid-request"`
}

type backendFailure struct {
	Function string `logevent:"function"`
	Reason   string `logevent:"reason"`
	Message  string `logevent:"message,default=backend-failure"`
}

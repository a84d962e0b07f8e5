// Package functions contains the lambda functions of the items service.
// Each HTTP facing function accepts an API Gateway proxy event, performs
// at most one storage call followed by at most one publish call, and maps
// the outcome to a JSON response. The notification consumer accepts SNS
// events delivered by the messaging backend.
//
// Functions never return an error for a handled failure. Errors are
// reported through the status code and body of the proxy response so that
// API Gateway forwards them unchanged to the caller.
package functions

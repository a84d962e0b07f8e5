// Package handlers is a container for HTTP handlers. Note that this is not a
// container for lambda.Handler related elements; the functions themselves
// live in the functions package. This is where the http.Handler instances
// are defined that expose those functions locally, either through the AWS
// Lambda Invoke API or through an emulation of the API Gateway proxy.
package handlers

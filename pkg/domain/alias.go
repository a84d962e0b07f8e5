package domain

import (
	"github.com/asecurityteam/runhttp"
	"github.com/aws/aws-lambda-go/lambda"
)

// Logger is the project logging type. It resolves to the logevent
// logger used by the runhttp runtime so that request loggers and
// function loggers are interchangeable.
type Logger = runhttp.Logger

// LogFn extracts a logger from the context.
type LogFn = runhttp.LogFn

// Stat is the project metrics type which is, currently, xstats.
type Stat = runhttp.Stat

// StatFn extracts a metrics client from the context.
type StatFn = runhttp.StatFn

// Handler is an executable lambda function as defined by the AWS
// Lambda SDK for go.
type Handler = lambda.Handler

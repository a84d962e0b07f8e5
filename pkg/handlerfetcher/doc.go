// Package handlerfetcher contains implementations of the domain.HandlerFetcher
// interface. Static resolves names from a fixed mapping; the remaining types
// decorate another fetcher so that every Handler it returns runs with a
// logger or metrics client already in its context.
package handlerfetcher

// Package domain is a container of all of the domain types and interfaces
// that are used across multiple packages within the service.
//
// This package is also the container for all domain errors leveraged by the
// service. Each error here should represent a specific condition that needs to
// be communicated across interface boundaries: a request that fails validation,
// a lookup that found nothing, or a failed call to one of the managed backends.
//
// Generally speaking, this package contains no executable code. The exceptions
// are the domain error types, which must define an Error() method and carry
// tests, and the small formatting helpers attached to Item.
package domain

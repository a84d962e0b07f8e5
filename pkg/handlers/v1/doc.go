// Package v1 contains all http.Handlers used to service the version 1.X.X API of
// a running items HTTP service. This version scheme is used internally to
// track and manage changes of this systems public facing HTTP API and does not
// strictly relate to versions of the AWS APIs that this system emulates.
package v1

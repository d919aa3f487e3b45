// Package client talks to the remote note resource that is the system of
// record for notes.
//
// # Overview
//
// Client is the transport-agnostic contract: List, Create, Update, Delete plus
// a Ping used by the connectivity watcher. RESTClient implements it over HTTP
// and JSON with resty:
//
//	GET    /notes        -> 200 [Note...]
//	POST   /notes        -> 201 Note (with id)
//	PUT    /notes/{id}   -> 200 Note
//	DELETE /notes/{id}   -> 204
//	GET    /ping         -> 200 {"status":"OK"}
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable, a 404 is ErrNotFound and every
// other non-2xx response is a *ServerError carrying the status code and the
// server's {"error": "..."} message. Use errors.Is / errors.As to match.
//
// RESTClient sets no timeout of its own; callers bound calls through ctx.
package client

// Package http implements the REST transport of the PressPay server.
//
// It wires the chi router, the middleware chain (panic recovery, CORS,
// trace ids, access logging, bearer-token authentication) and the JSON
// handlers for accounts and clothes entries. Every response body is a JSON
// object carrying "ok"; failures add a stable "error" code produced by
// the error mapper.
package http

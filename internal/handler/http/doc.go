// Package http implements the REST transport of recipe-keeper.
//
// It wires chi routes for users, tags, ingredients and recipes, the token
// authentication middleware, request tracing, access logging, security
// headers and compression. Handlers decode requests, resolve the caller from
// the request context and delegate to the service layer; errors are rendered
// as JSON bodies with the status taken from errorStatusMap.
package http

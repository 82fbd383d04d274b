// Package api handles incoming HTTP requests, request validation and
// response formatting. It translates the category -> units -> convert flow
// of the converter into JSON endpoints and maps service errors to HTTP
// status codes.
package api

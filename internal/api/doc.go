// Package api implements the HTTP edge: request decoding and validation,
// handlers for the user and resource endpoints, and the translation of
// business failures into problem-details responses.
package api

// Package api contains the HTTP handlers, request/response models, and
// error mapping for the blog API. Handlers orchestrate validated input
// into store calls and store results into response shapes; every error is
// converted into a structured client response at this boundary.
package api

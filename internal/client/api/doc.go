// Package api is the single module through which all backend HTTP calls
// are issued. It exposes a typed Client interface over the school safety
// REST API and an HTTPClient implementation that normalizes transport
// failures and non-2xx responses into *RequestError values.
package api

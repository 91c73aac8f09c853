// Package services contains the application services for the schoolguard
// admin console: the authentication gate with its login attempt limiter,
// the dashboard data aggregator, and volunteer/notification operations.
// All services talk to the backend exclusively through api.Client and
// must honor context cancellation.
package services

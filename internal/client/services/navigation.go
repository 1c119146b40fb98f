package services

import "context"

// Route is a screen the gateway asks the shell to show after an operation.
type Route string

const (
	RouteLanding Route = "/"
	RouteLogin   Route = "/login"
	RouteSignup  Route = "/signup"
)

// Navigator maps a route to a screen. Routing itself lives outside this package.
type Navigator interface {
	Navigate(ctx context.Context, r Route)
}

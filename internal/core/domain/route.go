package domain

// Route identifies a page of the client. The navigator dispatches a route to
// its page controller; redirect targets produced by the guard and the pages
// use these values.
type Route string

const (
	RouteHome           Route = "home"
	RouteLogin          Route = "login"
	RouteRegister       Route = "register"
	RouteVerifyEmail    Route = "verify-email"
	RouteForgotPassword Route = "forgot-password"
	RouteResetPassword  Route = "reset-password"
	RouteBrowse         Route = "browse"
	RouteProfile        Route = "profile"
	RouteDashboard      Route = "dashboard"
	RouteAccount        Route = "account"
	RouteSubscription   Route = "subscription"
	RouteReviews        Route = "reviews"
	RouteContacts       Route = "contacts"
	RouteAdmin          Route = "admin"
)

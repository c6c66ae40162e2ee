// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/handler"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/middleware"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check, used by
// load balancers and monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints.  Signup, login and
// refresh live under /api/auth and do not require a session; logout is
// protected so the token being revoked identifies its owner.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/signup", a.Signup)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)

	p := e.Group("/api/auth", middleware.JWTAuth(jwtSecret))
	p.POST("/logout", a.Logout)
}

// RegisterStations registers the station directory.  Browsing and the
// proximity search are public; creation, updates and deletion require the
// admin role.  The extra middlewares (typically the Redis response cache)
// apply to the public read endpoints only.
func RegisterStations(e *echo.Echo, s *handler.StationHandler, jwtSecret string, reads ...echo.MiddlewareFunc) {
	g := e.Group("/api/stations", reads...)
	g.GET("", s.List)
	// nearest must be registered before :id so the literal segment wins
	g.GET("/nearest", s.Nearest)
	g.GET("/:id", s.Get)

	admin := e.Group(
		"/api/stations",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)
	admin.POST("", s.Create)
	admin.PUT("/:id", s.Update)
	admin.DELETE("/:id", s.Delete)
}

// RegisterBookings registers the booking endpoints.  Everything here requires
// a valid JWT; ownership checks happen in the handlers.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/api/bookings", middleware.JWTAuth(jwtSecret))
	g.POST("", b.Create)
	g.GET("/user", b.ListUser)
	g.GET("/:id", b.Get)
	g.PUT("/:id/status", b.UpdateStatus)
	g.DELETE("/:id", b.Delete)
}

// RegisterExpenses registers the expense ledger and the derived summary.
// All routes require a valid JWT and operate on the caller's own records.
func RegisterExpenses(e *echo.Echo, x *handler.ExpenseHandler, jwtSecret string) {
	g := e.Group("/api/expenses", middleware.JWTAuth(jwtSecret))
	g.POST("", x.Create)
	// literal segments must be registered before :id so they win
	g.GET("/user", x.ListUser)
	g.GET("/summary", x.Summary)
	g.GET("/:id", x.Get)
	g.PUT("/:id", x.Update)
	g.DELETE("/:id", x.Delete)
}

// RegisterUsers registers the profile endpoints under /api/users.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler, jwtSecret string) {
	g := e.Group("/api/users", middleware.JWTAuth(jwtSecret))
	g.GET("/me", u.Me)
	g.PUT("/settings", u.UpdateSettings)
}

package routes

import (
	"couchfest/auth"
	"couchfest/contact"
	"couchfest/events"
	"couchfest/middleware"
	"couchfest/ratelim"
	"couchfest/tickets"
	"couchfest/users"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, a *auth.Handler, am *middleware.Auth, rl *ratelim.RateLimiter) {
	router.POST("/api/token", rl.Limit(a.GenerateToken))
	router.POST("/api/user/authenticate", rl.Limit(a.AuthenticateUser))
	router.POST("/api/user/verify", a.VerifyUser)
	router.GET("/api/users/me", am.Authenticate(a.CurrentUser))
}

func AddUserRoutes(router *httprouter.Router, u *users.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/create_user", rl.Limit(u.CreateUser))
	router.GET("/api/users", u.GetUsers)

	router.GET("/api/user/id/:user_id", u.GetUserByID)
	router.PUT("/api/user/id/:user_id", u.UpdateUserByID)
	router.DELETE("/api/user/id/:user_id", u.DeleteUserByID)

	router.GET("/api/user/name/:user_name", u.GetUserByName)
	router.PUT("/api/user/name/:user_name", u.UpdateUserByName)
	router.DELETE("/api/user/name/:user_name", u.DeleteUserByName)

	router.GET("/api/user/email/:user_email", u.GetUserByEmail)
}

func AddEventsRoutes(router *httprouter.Router, e *events.Handler, am *middleware.Auth, rl *ratelim.RateLimiter) {
	router.POST("/api/create_event", rl.Limit(e.CreateEvent))
	router.GET("/api/events", e.GetEvents)

	router.GET("/api/event/id/:event_id", e.GetEventByID)
	router.PUT("/api/event/id/:event_id", e.UpdateEventByID)
	router.DELETE("/api/event/id/:event_id", e.DeleteEventByID)
	router.POST("/api/event/id/:event_id/banner", am.Authenticate(e.UploadBanner))

	router.GET("/api/event/name/:event_name", e.GetEventByName)
	router.PUT("/api/event/name/:event_name", e.UpdateEventByName)
	router.DELETE("/api/event/name/:event_name", e.DeleteEventByName)
}

func AddContactRoutes(router *httprouter.Router, c *contact.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/save_contact_us", rl.Limit(c.SaveForm))
	router.GET("/api/get_contact_us", c.GetForms)
	router.GET("/api/contact/id/:form_id", c.GetFormByID)
	router.DELETE("/api/contact/id/:form_id", c.DeleteFormByID)
}

func AddTicketRoutes(router *httprouter.Router, t *tickets.Handler, am *middleware.Auth) {
	router.GET("/api/tickets", t.GetTickets)
	router.GET("/api/ticket/print/:ticket_number", am.Authenticate(t.PrintTicket))
}

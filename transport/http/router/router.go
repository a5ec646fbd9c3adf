package router

import (
	"autocare/internal/handlers/auth"
	"autocare/internal/handlers/blog"
	"autocare/internal/handlers/booking"
	"autocare/internal/handlers/carservice"
	"autocare/internal/handlers/contact"
	"autocare/internal/handlers/dashboard"
	"autocare/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	CarService carservice.Handler
	Blog       blog.Handler
	Booking    booking.Handler
	Contact    contact.Handler
	User       user.Handler
	Dashboard  dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.CarService.Router(routerGroup)
		r.DomainHandlers.Blog.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			r.DomainHandlers.Dashboard.AdminRouter(adminGroup)
			r.DomainHandlers.User.AdminRouter(adminGroup)
			r.DomainHandlers.CarService.AdminRouter(adminGroup)
			r.DomainHandlers.Blog.AdminRouter(adminGroup)
			r.DomainHandlers.Booking.AdminRouter(adminGroup)
			r.DomainHandlers.Contact.AdminRouter(adminGroup)
		})
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

package router

import (
	"staybook/internal/handlers/booking"
	"staybook/internal/handlers/property"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Property property.Handler
	Booking  booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

// SetupRoutes mounts all domain routers at the root. The storefront's API
// client expects /properties and /bookings without a version prefix.
func (r *Router) SetupRoutes(mux chi.Router) {
	mux.Group(func(rc chi.Router) {
		r.DomainHandlers.Property.Router(rc)
		r.DomainHandlers.Booking.Router(rc)
	})
}

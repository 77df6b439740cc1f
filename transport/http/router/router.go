package router

import (
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/dashboard"
	"frontdesk/internal/handlers/reservation"
	"frontdesk/internal/handlers/room"
	"frontdesk/internal/handlers/transfer"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Dashboard   dashboard.Handler
	Room        room.Handler
	Booking     booking.Handler
	Transfer    transfer.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Transfer.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

package handler

import (
	"github.com/julienschmidt/httprouter"
)

// Router groups the catalog handlers behind one route registration.
type Router struct {
	cars     *CarHandler
	bookings *BookingHandler
}

func NewRouter(cars *CarHandler, bookings *BookingHandler) *Router {
	return &Router{
		cars:     cars,
		bookings: bookings,
	}
}

func (rt *Router) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/cars", rt.cars.GetAll)
	router.GET("/api/cars/:id", rt.cars.GetByID)

	router.POST("/api/bookings", rt.bookings.Create)
	router.GET("/api/bookings", rt.bookings.GetAll)
	router.GET("/api/bookings/:id", rt.bookings.GetByID)
}

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/controllers"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/middlewares"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/utils"
)

func BookingRoutes(r *gin.Engine, bc *controllers.BookingController, tokens utils.TokenStore) {
	auth := middlewares.AuthMiddleware(tokens)
	ownEmail := middlewares.RequireOwnEmail()

	r.POST("/bookings", auth, bc.CreateBooking)
	r.GET("/bookings", auth, ownEmail, bc.GetBookings)
	r.GET("/bookings/:id", auth, bc.GetBookingByID)
	r.DELETE("/bookings/:id", auth, bc.DeleteBooking)
	r.GET("/bookings/manager/pending/:email", auth, ownEmail, bc.GetManagerPending)
	r.GET("/bookings/manager/approved/:email", auth, ownEmail, bc.GetManagerApproved)
	r.PATCH("/bookings/status/:id", auth, bc.UpdateStatus)
	r.PUT("/bookings/tracking/:id", auth, bc.UpdateTracking)
	r.PATCH("/bookings/payment-success/:id", auth, bc.PaymentSuccess)
	r.GET("/all-orders", auth, bc.GetAllOrders)
}

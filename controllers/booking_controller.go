package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/events"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/middlewares"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/models"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/store"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/validations"
)

type BookingController struct {
	Bookings store.BookingStore
	Products store.ProductStore
	Events   events.Publisher
}

func NewBookingController(bookings store.BookingStore, products store.ProductStore, pub events.Publisher) *BookingController {
	return &BookingController{Bookings: bookings, Products: products, Events: pub}
}

// CreateBooking places an order. The stock check and decrement are a
// single conditional update on the product; a failed booking insert
// afterwards restores the decremented stock.
//
// A missing product or insufficient stock is a soft error: 200 with an
// error flag, nothing written.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req validations.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := c.GetString(middlewares.ContextEmailKey)
	ctx := c.Request.Context()

	product, err := bc.Products.Get(ctx, req.ProductID)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusOK, gin.H{"error": true, "message": "product is not available"})
		return
	}
	if err != nil {
		respondError(c, "create booking: load product", err)
		return
	}

	if err := bc.Products.DecrementStock(ctx, req.ProductID, req.Quantity); err != nil {
		if errors.Is(err, store.ErrInsufficientStock) {
			c.JSON(http.StatusOK, gin.H{"error": true, "message": "not enough stock available"})
			return
		}
		respondError(c, "create booking: decrement stock", err)
		return
	}

	now := time.Now()
	booking := models.Booking{
		ProductID:     product.ID,
		ProductName:   product.Name,
		ProductImage:  product.Image,
		UserEmail:     email,
		ManagerEmail:  product.ManagerEmail,
		Quantity:      req.Quantity,
		Price:         product.Price,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
		OrderedAt:     now,
		TrackingHistory: []models.TrackingEvent{
			{Status: "Order Placed", Note: "Your order has been placed", Timestamp: now},
		},
	}

	if err := bc.Bookings.Insert(ctx, &booking); err != nil {
		// give the stock back so the failed insert does not lose units
		if restoreErr := bc.Products.RestoreStock(ctx, req.ProductID, req.Quantity); restoreErr != nil {
			respondError(c, "create booking: restore stock", restoreErr)
			return
		}
		respondError(c, "create booking: insert", err)
		return
	}

	bc.Events.Publish(events.EventBookingCreated, booking.ID.Hex(), events.BookingCreatedPayload{
		BookingID:    booking.ID.Hex(),
		ProductID:    product.ID.Hex(),
		UserEmail:    email,
		ManagerEmail: product.ManagerEmail,
		Quantity:     req.Quantity,
	})

	c.JSON(http.StatusCreated, gin.H{"message": "booking created", "booking": booking})
}

// GetBookings - the caller's own bookings, newest first. Ownership of
// the email query parameter is enforced by the route middleware.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Bookings.ListByUser(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, "list bookings", err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) GetBookingByID(c *gin.Context) {
	booking, err := bc.Bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "get booking", err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	if err := bc.Bookings.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete booking", err)
		return
	}

	bc.Events.Publish(events.EventBookingDeleted, id, events.BookingDeletedPayload{BookingID: id})

	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

// GetManagerPending - approval queue for the manager's products.
func (bc *BookingController) GetManagerPending(c *gin.Context) {
	bookings, err := bc.Bookings.ManagerPending(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, "list pending bookings", err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) GetManagerApproved(c *gin.Context) {
	bookings, err := bc.Bookings.ManagerApproved(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, "list approved bookings", err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateStatus - manager approval/rejection and later shipment steps.
// The tracking note is derived from the new status.
func (bc *BookingController) UpdateStatus(c *gin.Context) {
	var req validations.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := models.TrackingEvent{
		Status:    req.Status,
		Note:      models.StatusNote(req.Status),
		Timestamp: time.Now(),
	}

	booking, prev, err := bc.Bookings.ApplyStatus(c.Request.Context(), c.Param("id"), event)
	if err != nil {
		respondError(c, "update booking status", err)
		return
	}

	bc.Events.Publish(events.EventBookingStatusChanged, booking.ID.Hex(), events.BookingStatusChangedPayload{
		BookingID: booking.ID.Hex(),
		From:      prev,
		To:        booking.Status,
		Note:      event.Note,
	})

	c.JSON(http.StatusOK, gin.H{"message": "status updated", "booking": booking})
}

// UpdateTracking - appends a shipment tracking event. Routed through
// the same transition authority as UpdateStatus, so the event's status
// must be a legal next step.
func (bc *BookingController) UpdateTracking(c *gin.Context) {
	var req validations.TrackingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := models.TrackingEvent{
		Status:    req.Status,
		Note:      req.Note,
		Location:  req.Location,
		Timestamp: time.Now(),
	}

	booking, prev, err := bc.Bookings.ApplyStatus(c.Request.Context(), c.Param("id"), event)
	if err != nil {
		respondError(c, "update booking tracking", err)
		return
	}

	bc.Events.Publish(events.EventBookingStatusChanged, booking.ID.Hex(), events.BookingStatusChangedPayload{
		BookingID: booking.ID.Hex(),
		From:      prev,
		To:        booking.Status,
		Note:      req.Note,
		Location:  req.Location,
	})

	c.JSON(http.StatusOK, gin.H{"message": "tracking updated", "booking": booking})
}

// PaymentSuccess - records the transaction and resets the booking to
// Pending regardless of its prior status.
func (bc *BookingController) PaymentSuccess(c *gin.Context) {
	var req validations.PaymentSuccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := bc.Bookings.MarkPaid(c.Request.Context(), c.Param("id"), req.TransactionID)
	if err != nil {
		respondError(c, "mark booking paid", err)
		return
	}

	bc.Events.Publish(events.EventBookingPaymentSucceeded, booking.ID.Hex(), events.BookingPaymentSucceededPayload{
		BookingID:     booking.ID.Hex(),
		TransactionID: req.TransactionID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "payment recorded", "booking": booking})
}

// GetAllOrders - admin view of every booking, newest first.
func (bc *BookingController) GetAllOrders(c *gin.Context) {
	bookings, err := bc.Bookings.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, "list all orders", err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/payments"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/validations"
)

type PaymentController struct {
	Provider payments.CheckoutProvider
}

func NewPaymentController(provider payments.CheckoutProvider) *PaymentController {
	return &PaymentController{Provider: provider}
}

// CreateCheckoutSession - requests a hosted checkout session from the
// payment provider and returns its redirect URL. This does not mark
// the booking paid; PATCH /bookings/payment-success/:id does that.
func (pc *PaymentController) CreateCheckoutSession(c *gin.Context) {
	var req validations.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := pc.Provider.CreateCheckoutSession(c.Request.Context(), payments.CheckoutRequest{
		ProductName: req.ProductName,
		Price:       req.Price,
		OrderID:     req.OrderID,
		ImageURL:    req.Image,
	})
	if err != nil {
		slog.Error("create checkout session", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

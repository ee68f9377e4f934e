package validations

type CreateBookingRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type TrackingUpdateRequest struct {
	Status   string `json:"status" binding:"required"`
	Note     string `json:"note"`
	Location string `json:"location"`
}

type PaymentSuccessRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
}

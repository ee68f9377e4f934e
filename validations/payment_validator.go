package validations

type CheckoutSessionRequest struct {
	ProductName string  `json:"productName" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	OrderID     string  `json:"orderId" binding:"required"`
	Image       string  `json:"image"`
}

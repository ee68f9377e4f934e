package validations

type CreateProductRequest struct {
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	Image             string  `json:"image"`
	Price             float64 `json:"price" binding:"required,gt=0"`
	AvailableQuantity int     `json:"availableQuantity" binding:"gte=0"`
	ShowOnHome        bool    `json:"showOnHome"`
	ManagerEmail      string  `json:"managerEmail" binding:"required,email"`
}

type HomeStatusRequest struct {
	ShowOnHome bool `json:"showOnHome"`
}

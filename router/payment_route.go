package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/controllers"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/middlewares"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/utils"
)

func PaymentRoutes(r *gin.Engine, pc *controllers.PaymentController, tokens utils.TokenStore) {
	r.POST("/create-checkout-session", middlewares.AuthMiddleware(tokens), pc.CreateCheckoutSession)
}

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/controllers"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/middlewares"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/utils"
)

func ProductRoutes(r *gin.Engine, pc *controllers.ProductController, tokens utils.TokenStore) {
	auth := middlewares.AuthMiddleware(tokens)

	r.GET("/garments-products", pc.GetAllProducts)
	r.GET("/garments-products/:id", pc.GetProductByID)
	r.POST("/garments-products", auth, pc.CreateProduct)
	r.PUT("/garments-products/:id", auth, pc.UpdateProduct)
	r.DELETE("/garments-products/:id", auth, pc.DeleteProduct)
	r.GET("/garments-products/manager/:email", auth, middlewares.RequireOwnEmail(), pc.GetManagerProducts)
	r.PATCH("/garments-products/home-status/:id", auth, pc.UpdateHomeStatus)
}

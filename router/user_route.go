package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/controllers"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/middlewares"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/utils"
)

func UserRoutes(r *gin.Engine, uc *controllers.UserController, tokens utils.TokenStore) {
	auth := middlewares.AuthMiddleware(tokens)
	ownEmail := middlewares.RequireOwnEmail()

	r.POST("/users", uc.UpsertUser)
	r.GET("/users", auth, uc.GetUsers)
	r.GET("/users/:email", auth, ownEmail, uc.GetUserByEmail)
	r.GET("/users/admin/:email", auth, ownEmail, uc.IsAdmin)
	r.GET("/users/manager/:email", auth, ownEmail, uc.IsManager)
	r.PATCH("/users/update/:id", auth, uc.UpdateUser)
}

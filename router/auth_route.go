package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/controllers"
)

func AuthRoutes(r *gin.Engine, ac *controllers.AuthController) {
	r.POST("/jwt", ac.IssueToken)
	r.POST("/logout", ac.Logout)
}

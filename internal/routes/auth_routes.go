package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rentride/internal/controllers"
)

func AuthRoutes(r *gin.Engine, db *gorm.DB) {
	ctrl := &controllers.AuthController{DB: db}

	auth := r.Group("/auth")
	{
		auth.POST("/signup", ctrl.Signup)
		auth.POST("/login", ctrl.LoginUser)
		auth.POST("/admin/login", ctrl.LoginAdmin)
	}
}

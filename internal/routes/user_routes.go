package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rentride/internal/controllers"
	"rentride/internal/middleware"
	"rentride/internal/models"
)

func UserRoutes(r *gin.Engine, db *gorm.DB) {
	ctrl := &controllers.UserController{DB: db}

	user := r.Group("/user")
	user.Use(middleware.RequireRole(db, models.RoleUser))
	{
		user.GET("/me", ctrl.Me)
		user.PATCH("/profile", ctrl.UpdateProfile)
		user.POST("/license", ctrl.SubmitLicense)
	}
}

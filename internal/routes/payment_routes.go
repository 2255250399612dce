package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rentride/internal/controllers"
	"rentride/internal/middleware"
	"rentride/internal/models"
)

func PaymentRoutes(r *gin.Engine, db *gorm.DB) {
	ctrl := &controllers.PaymentController{DB: db}

	payment := r.Group("/payment")
	payment.Use(middleware.RequireRole(db, models.RoleUser))
	{
		payment.POST("/esewa", ctrl.SubmitEsewa)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rentride/internal/controllers"
	"rentride/internal/middleware"
	"rentride/internal/models"
)

func BookingRoutes(r *gin.Engine, db *gorm.DB) {
	ctrl := &controllers.BookingController{DB: db}

	bookings := r.Group("/bookings")
	bookings.Use(middleware.RequireRole(db, models.RoleUser))
	{
		bookings.POST("", ctrl.Create)
		bookings.GET("/my", ctrl.ListMine)
	}
}

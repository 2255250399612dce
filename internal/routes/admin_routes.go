package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rentride/internal/controllers"
	"rentride/internal/middleware"
	"rentride/internal/models"
)

func AdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminCtrl := &controllers.AdminController{DB: db}
	bookingCtrl := &controllers.BookingController{DB: db}
	vehicleCtrl := &controllers.VehicleController{DB: db}
	paymentCtrl := &controllers.PaymentController{DB: db}

	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(db, models.RoleAdmin))
	{
		admin.GET("/users", adminCtrl.ListUsers)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)
		admin.POST("/users/:id/promote", adminCtrl.PromoteUser)
		admin.POST("/users/:id/license", adminCtrl.VerifyLicense)

		admin.GET("/admins", adminCtrl.ListAdmins)
		admin.POST("/admins", adminCtrl.AddAdmin)

		admin.GET("/bookings", bookingCtrl.ListAll)
		admin.PATCH("/bookings/:id/status", bookingCtrl.UpdateStatus)

		admin.POST("/vehicles", vehicleCtrl.Create)
		admin.PUT("/vehicles/:id", vehicleCtrl.Update)
		admin.DELETE("/vehicles/:id", vehicleCtrl.Delete)

		admin.GET("/transactions", paymentCtrl.ListTransactions)
	}
}

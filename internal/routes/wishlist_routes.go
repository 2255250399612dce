package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rentride/internal/controllers"
	"rentride/internal/middleware"
	"rentride/internal/models"
)

func WishlistRoutes(r *gin.Engine, db *gorm.DB) {
	ctrl := &controllers.WishlistController{DB: db}

	wishlist := r.Group("/wishlist")
	wishlist.Use(middleware.RequireRole(db, models.RoleUser))
	{
		wishlist.GET("", ctrl.List)
		wishlist.POST("", ctrl.Add)
		wishlist.DELETE("/:vehicleId", ctrl.Remove)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rentride/internal/controllers"
)

// VehicleRoutes exposes the public catalog. Admin CRUD lives under the
// admin group.
func VehicleRoutes(r *gin.Engine, db *gorm.DB) {
	ctrl := &controllers.VehicleController{DB: db}

	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", ctrl.List)
		vehicles.GET("/:id", ctrl.Get)
	}
}

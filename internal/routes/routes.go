package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ginlog "github.com/gin-contrib/logger"
)

// SetupRouter wires every route group against the shared store handle.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger(), gin.Recovery())

	AuthRoutes(r, db)
	VehicleRoutes(r, db)
	BookingRoutes(r, db)
	UserRoutes(r, db)
	WishlistRoutes(r, db)
	PaymentRoutes(r, db)
	AdminRoutes(r, db)

	return r
}

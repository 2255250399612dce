package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rentride/internal/models"
)

// WishlistController manages the per-user saved-vehicle set.
type WishlistController struct {
	DB *gorm.DB
}

type wishlistInput struct {
	VehicleID uint `json:"vehicle_id" binding:"required"`
}

// Add is idempotent: saving a vehicle twice leaves one entry and both
// calls succeed.
func (w *WishlistController) Add(c *gin.Context) {
	var input wishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("user_id").(uint)

	var vehicle models.Vehicle
	if err := w.DB.First(&vehicle, input.VehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	var entry models.Wishlist
	err := w.DB.Where("user_id = ? AND vehicle_id = ?", userID, input.VehicleID).First(&entry).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "already in wishlist"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	entry = models.Wishlist{UserID: userID, VehicleID: input.VehicleID}
	if err := w.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add to wishlist: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "added to wishlist"})
}

// Remove deletes unconditionally; removing an absent entry still
// succeeds.
func (w *WishlistController) Remove(c *gin.Context) {
	vehicleID := c.Param("vehicleId")
	userID := c.MustGet("user_id").(uint)

	if err := w.DB.Unscoped().
		Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		Delete(&models.Wishlist{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not remove from wishlist: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "removed from wishlist"})
}

// List returns the saved vehicles joined in.
func (w *WishlistController) List(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var entries []models.Wishlist
	if err := w.DB.Preload("Vehicle").
		Where("user_id = ?", userID).
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing wishlist: " + err.Error()})
		return
	}

	vehicles := make([]models.Vehicle, len(entries))
	for i, e := range entries {
		vehicles[i] = e.Vehicle
	}

	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}

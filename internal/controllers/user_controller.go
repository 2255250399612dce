package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"rentride/internal/models"
)

// UserController handles the caller's own profile and license card.
type UserController struct {
	DB *gorm.DB
}

type profileInput struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	ProfileImageURL string `json:"profile_image_url"`
}

func (u *UserController) Me(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var user models.User
	if err := u.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (u *UserController) UpdateProfile(c *gin.Context) {
	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("user_id").(uint)

	var user models.User
	if err := u.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Phone != "" {
		updates["phone"] = input.Phone
	}
	if input.Address != "" {
		updates["address"] = input.Address
	}
	if input.ProfileImageURL != "" {
		updates["profile_image_url"] = input.ProfileImageURL
	}
	if len(updates) > 0 {
		if err := u.DB.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile: " + err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

type licenseUploadInput struct {
	LicenseCardURL string `json:"license_card_url" binding:"required"`
}

// SubmitLicense stores or replaces the license card URL. Any submission
// puts the status back to pending until an admin decides.
func (u *UserController) SubmitLicense(c *gin.Context) {
	var input licenseUploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("user_id").(uint)

	var user models.User
	if err := u.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
		return
	}

	updates := map[string]interface{}{
		"license_card_url": input.LicenseCardURL,
		"license_status":   models.LicensePending,
	}
	if err := u.DB.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit license: " + err.Error()})
		return
	}

	logrus.WithField("user_id", userID).Info("license card submitted")

	c.JSON(http.StatusOK, gin.H{"message": "license submitted", "license_status": models.LicensePending})
}

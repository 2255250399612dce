package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"rentride/internal/models"
)

// AdminController covers the back office: user management, admin
// management, promotion and license verification.
type AdminController struct {
	DB *gorm.DB
}

func (a *AdminController) ListUsers(c *gin.Context) {
	var users []models.User
	if err := a.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing users: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

func (a *AdminController) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := a.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	// Hard delete: a soft-deleted row would keep holding the unique
	// email and block a later signup with it
	if err := a.DB.Unscoped().Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete user: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

func (a *AdminController) ListAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := a.DB.Find(&admins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing admins: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": admins})
}

type addAdminInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (a *AdminController) AddAdmin(c *gin.Context) {
	var input addAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if emailTaken(a.DB, input.Email) {
		c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	admin := models.Admin{Name: input.Name, Email: input.Email, Password: hashed}
	if err := a.DB.Create(&admin).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create admin: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"admin": admin})
}

// PromoteUser converts a user row into an admin row. Insert and delete
// share one transaction, so the identity is never in both tables and
// never in neither.
func (a *AdminController) PromoteUser(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := a.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	var existing int64
	if err := a.DB.Model(&models.Admin{}).Where("email = ?", user.Email).Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "already an admin"})
		return
	}

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		admin := models.Admin{Name: user.Name, Email: user.Email, Password: user.Password}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.User{}, user.ID).Error
	})
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok {
			switch pgErr.Code {
			case "23505":
				c.JSON(http.StatusConflict, gin.H{"error": "already an admin"})
				return
			case "23503":
				c.JSON(http.StatusBadRequest, gin.H{"error": "user still referenced"})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "promotion failed: " + err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Info("user promoted to admin")

	c.JSON(http.StatusOK, gin.H{"message": "user promoted to admin"})
}

type licenseDecisionInput struct {
	Status string `json:"status" binding:"required"`
}

// VerifyLicense records an admin's approve/reject decision. A decision
// may be flipped later; re-asserting the current one is a no-op.
func (a *AdminController) VerifyLicense(c *gin.Context) {
	id := c.Param("id")

	var input licenseDecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Status != models.LicenseApproved && input.Status != models.LicenseRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be approved or rejected"})
		return
	}

	var user models.User
	if err := a.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if user.LicenseStatus == input.Status {
		c.JSON(http.StatusOK, gin.H{"message": "license " + input.Status})
		return
	}

	if err := a.DB.Model(&user).Update("license_status", input.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update license status: " + err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "license_status": input.Status}).Info("license decision recorded")

	c.JSON(http.StatusOK, gin.H{"message": "license " + input.Status})
}

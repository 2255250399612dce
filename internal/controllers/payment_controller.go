package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"rentride/internal/models"
)

// PaymentController implements the mock eSewa flow. Every attempt is
// recorded as an EsewaTransaction; a successful verification creates
// the booking through the same conflict-checked path as a direct
// booking request.
type PaymentController struct {
	DB *gorm.DB
}

type esewaInput struct {
	Pid           string  `json:"pid" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	EsewaID       string  `json:"esewa_id" binding:"required"`
	VehicleID     uint    `json:"vehicle_id" binding:"required"`
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       string  `json:"end_date" binding:"required"`
	DurationValue int     `json:"duration_value"`
}

func (p *PaymentController) SubmitEsewa(c *gin.Context) {
	var input esewaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("user_id").(uint)

	var user models.User
	if err := p.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
		return
	}
	if user.LicenseStatus != models.LicenseApproved {
		c.JSON(http.StatusForbidden, gin.H{"error": "license not approved"})
		return
	}

	txn := models.EsewaTransaction{
		RefCode:   uuid.NewString(),
		Pid:       input.Pid,
		EsewaID:   input.EsewaID,
		Amount:    input.Amount,
		UserID:    userID,
		VehicleID: input.VehicleID,
	}

	booking, err := createBooking(p.DB, userID, bookingInput{
		VehicleID:      input.VehicleID,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		DurationValue:  input.DurationValue,
		PaymentMethod:  models.PaymentEsewa,
		EstimatedPrice: input.Amount,
	})
	if err != nil {
		txn.Status = models.TxnFail
		if recErr := p.DB.Create(&txn).Error; recErr != nil {
			logrus.WithError(recErr).Error("could not record failed esewa transaction")
		}
		switch {
		case errors.Is(err, errBookingConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "ref_code": txn.RefCode, "status": txn.Status})
		case errors.Is(err, errVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "ref_code": txn.RefCode, "status": txn.Status})
		case errors.Is(err, errDurationMismatch), errors.Is(err, errPriceMismatch), errors.Is(err, errInvalidBooking):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "ref_code": txn.RefCode, "status": txn.Status})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "ref_code": txn.RefCode, "status": txn.Status})
		}
		return
	}

	txn.Status = models.TxnSuccess
	txn.BookingID = &booking.ID
	if err := p.DB.Create(&txn).Error; err != nil {
		logrus.WithError(err).Error("could not record esewa transaction")
	}

	logrus.WithFields(logrus.Fields{
		"ref_code":   txn.RefCode,
		"booking_id": booking.ID,
		"amount":     input.Amount,
	}).Info("esewa payment accepted")

	c.JSON(http.StatusCreated, gin.H{
		"status":   txn.Status,
		"ref_code": txn.RefCode,
		"booking":  booking,
	})
}

// ListTransactions lets admins audit the mock payment records.
func (p *PaymentController) ListTransactions(c *gin.Context) {
	var txns []models.EsewaTransaction
	if err := p.DB.Order("created_at DESC").Find(&txns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing transactions: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": txns})
}

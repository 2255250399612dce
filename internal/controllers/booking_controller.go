package controllers

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"rentride/internal/models"
)

// BookingController owns the booking ledger: conflict-checked creation
// and the admin-side status lifecycle.
type BookingController struct {
	DB *gorm.DB
}

const dateLayout = "2006-01-02"

// priceTolerance bounds how far the client's estimated_price may drift
// from price * duration before the request is rejected.
const priceTolerance = 0.5

var (
	errVehicleNotFound  = errors.New("vehicle not found")
	errBookingConflict  = errors.New("vehicle already booked for an overlapping window")
	errDurationMismatch = errors.New("duration_value does not match the booking window")
	errPriceMismatch    = errors.New("estimated_price does not match the vehicle rate")
	errInvalidBooking   = errors.New("invalid booking request")
)

type bookingInput struct {
	VehicleID      uint    `json:"vehicle_id" binding:"required"`
	StartDate      string  `json:"start_date" binding:"required"`
	EndDate        string  `json:"end_date" binding:"required"`
	DurationValue  int     `json:"duration_value"`
	PaymentMethod  string  `json:"payment_method" binding:"required"`
	EstimatedPrice float64 `json:"estimated_price" binding:"required"`
}

// createBooking runs the overlap check and the insert inside one
// serializable transaction, so two concurrent requests for the same
// window cannot both pass the check. Shared with the mock payment flow.
func createBooking(db *gorm.DB, userID uint, input bookingInput) (models.Booking, error) {
	start, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%w: start_date must be YYYY-MM-DD", errInvalidBooking)
	}
	end, err := time.Parse(dateLayout, input.EndDate)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%w: end_date must be YYYY-MM-DD", errInvalidBooking)
	}
	if end.Before(start) {
		return models.Booking{}, fmt.Errorf("%w: end_date must not precede start_date", errInvalidBooking)
	}
	if input.PaymentMethod != models.PaymentCash && input.PaymentMethod != models.PaymentEsewa {
		return models.Booking{}, fmt.Errorf("%w: payment_method must be cash or esewa", errInvalidBooking)
	}
	// A booking spans at least one day; same-day windows are not rentable
	if input.DurationValue < 1 {
		return models.Booking{}, fmt.Errorf("%w: duration_value must be at least 1", errInvalidBooking)
	}
	if days := int(end.Sub(start).Hours() / 24); days != input.DurationValue {
		return models.Booking{}, errDurationMismatch
	}

	var booking models.Booking
	err = db.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.First(&vehicle, input.VehicleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errVehicleNotFound
			}
			return err
		}

		// The quoted rate is authoritative; the client figure is only
		// accepted within the rounding tolerance.
		expected := vehicle.Price * float64(input.DurationValue)
		if math.Abs(expected-input.EstimatedPrice) > priceTolerance {
			return errPriceMismatch
		}

		// Closed-interval overlap: rejected bookings free their window.
		var overlapping int64
		if err := tx.Model(&models.Booking{}).
			Where("vehicle_id = ? AND status <> ?", input.VehicleID, models.BookingRejected).
			Where("NOT (end_date < ? OR start_date > ?)", start, end).
			Count(&overlapping).Error; err != nil {
			return err
		}
		if overlapping > 0 {
			return errBookingConflict
		}

		booking = models.Booking{
			UserID:         userID,
			VehicleID:      input.VehicleID,
			StartDate:      start,
			EndDate:        end,
			DurationValue:  input.DurationValue,
			PaymentMethod:  input.PaymentMethod,
			EstimatedPrice: expected,
			Status:         models.BookingPending,
		}
		return tx.Create(&booking).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if err != nil {
		// A serialization failure means a concurrent writer took the
		// window first; surface it the same way as a plain overlap.
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "40001" {
			return models.Booking{}, errBookingConflict
		}
		return models.Booking{}, err
	}
	return booking, nil
}

func (b *BookingController) Create(c *gin.Context) {
	var input bookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("user_id").(uint)

	var user models.User
	if err := b.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
		return
	}
	if user.LicenseStatus != models.LicenseApproved {
		c.JSON(http.StatusForbidden, gin.H{"error": "license not approved"})
		return
	}

	booking, err := createBooking(b.DB, userID, input)
	if err != nil {
		switch {
		case errors.Is(err, errBookingConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, errVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, errDurationMismatch), errors.Is(err, errPriceMismatch), errors.Is(err, errInvalidBooking):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create booking: " + err.Error()})
		}
		return
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"vehicle_id": booking.VehicleID,
		"user_id":    userID,
	}).Info("booking created")

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// ListMine returns the caller's bookings joined with vehicle info.
func (b *BookingController) ListMine(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var bookings []models.Booking
	if err := b.DB.Preload("Vehicle").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing bookings: " + err.Error()})
		return
	}

	items := make([]gin.H, len(bookings))
	for i, bk := range bookings {
		var image string
		if len(bk.Vehicle.Images) > 0 {
			image = bk.Vehicle.Images[0]
		}
		items[i] = gin.H{
			"booking":       bk,
			"vehicle_name":  bk.Vehicle.Name,
			"vehicle_type":  bk.Vehicle.Type,
			"vehicle_image": image,
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

// ListAll returns every booking joined with user and vehicle info.
func (b *BookingController) ListAll(c *gin.Context) {
	var bookings []models.Booking
	if err := b.DB.Preload("Vehicle").Preload("User").
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing bookings: " + err.Error()})
		return
	}

	items := make([]gin.H, len(bookings))
	for i, bk := range bookings {
		items[i] = gin.H{
			"booking":      bk,
			"user_name":    bk.User.Name,
			"user_email":   bk.User.Email,
			"vehicle_name": bk.Vehicle.Name,
			"vehicle_type": bk.Vehicle.Type,
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

type statusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves a booking through its lifecycle. Confirmed and
// Rejected are terminal; re-asserting the current status is a no-op.
func (b *BookingController) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch input.Status {
	case models.BookingPending, models.BookingConfirmed, models.BookingRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	var booking models.Booking
	if err := b.DB.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if booking.Status == input.Status {
		c.JSON(http.StatusOK, gin.H{"booking": booking})
		return
	}
	if booking.Status != models.BookingPending {
		c.JSON(http.StatusConflict, gin.H{"error": "booking status is final"})
		return
	}

	if err := b.DB.Model(&booking).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update booking: " + err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{"booking_id": booking.ID, "status": input.Status}).Info("booking status updated")

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"rentride/internal/models"
)

func submitEsewa(t *testing.T, db *gorm.DB, userID uint, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	ctrl := &PaymentController{DB: db}
	w := httptest.NewRecorder()
	c := newTestContext(t, w, "POST", "/payment/esewa", body)
	asUser(c, userID)
	ctrl.SubmitEsewa(c)
	return w
}

func esewaBody(vehicleID uint, amount float64) map[string]interface{} {
	return map[string]interface{}{
		"pid":            "RENT-0001",
		"amount":         amount,
		"esewa_id":       "9800000000",
		"vehicle_id":     vehicleID,
		"start_date":     "2024-06-01",
		"end_date":       "2024-06-03",
		"duration_value": 2,
	}
}

func TestEsewaPaymentCreatesBooking(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "payer@example.com", models.LicenseApproved)
	vehicle := createTestVehicle(t, db, 100)

	w := submitEsewa(t, db, user.ID, esewaBody(vehicle.ID, 200))

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, models.TxnSuccess, response["status"])
	assert.NotEmpty(t, response["ref_code"])

	var booking models.Booking
	assert.NoError(t, db.First(&booking, "vehicle_id = ?", vehicle.ID).Error)
	assert.Equal(t, models.PaymentEsewa, booking.PaymentMethod)
	assert.Equal(t, models.BookingPending, booking.Status)

	var txn models.EsewaTransaction
	assert.NoError(t, db.First(&txn, "user_id = ?", user.ID).Error)
	assert.Equal(t, models.TxnSuccess, txn.Status)
	if assert.NotNil(t, txn.BookingID) {
		assert.Equal(t, booking.ID, *txn.BookingID)
	}
}

func TestEsewaPaymentConflictRecordsFailure(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "payer@example.com", models.LicenseApproved)
	vehicle := createTestVehicle(t, db, 100)

	assert.Equal(t, http.StatusCreated, submitEsewa(t, db, user.ID, esewaBody(vehicle.ID, 200)).Code)

	w := submitEsewa(t, db, user.ID, esewaBody(vehicle.ID, 200))
	assert.Equal(t, http.StatusConflict, w.Code)

	// One booking, two transaction records: success then fail
	assert.Equal(t, int64(1), countRows(t, db, &models.Booking{}))

	var failed models.EsewaTransaction
	assert.NoError(t, db.First(&failed, "status = ?", models.TxnFail).Error)
	assert.Nil(t, failed.BookingID)
}

func TestEsewaPaymentLicenseGate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "payer@example.com", models.LicensePending)
	vehicle := createTestVehicle(t, db, 100)

	w := submitEsewa(t, db, user.ID, esewaBody(vehicle.ID, 200))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(0), countRows(t, db, &models.EsewaTransaction{}))
}

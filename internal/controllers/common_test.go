package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rentride/internal/config"
	"rentride/internal/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	// A single connection keeps transactions and plain queries on the
	// same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestContext(t *testing.T, w *httptest.ResponseRecorder, method, path string, body interface{}) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func asUser(c *gin.Context, id uint) {
	c.Set("user_id", id)
	c.Set("role", models.RoleUser)
}

func asAdmin(c *gin.Context, id uint) {
	c.Set("user_id", id)
	c.Set("role", models.RoleAdmin)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return response
}

func createTestUser(t *testing.T, db *gorm.DB, email, licenseStatus string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		Name:          "Test User",
		Email:         email,
		Password:      string(hash),
		LicenseStatus: licenseStatus,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestVehicle(t *testing.T, db *gorm.DB, price float64) models.Vehicle {
	t.Helper()
	vehicle := models.Vehicle{
		Name:     "Test Hatchback",
		Type:     models.VehicleCar,
		Price:    price,
		Seats:    4,
		Location: "Kathmandu",
		Color:    "red",
		FuelType: "petrol",
		Images:   []string{"https://img.example/1.jpg"},
		Tags:     []string{"compact"},
		Rating:   4.2,
	}
	if err := db.Create(&vehicle).Error; err != nil {
		t.Fatalf("failed to create test vehicle: %v", err)
	}
	return vehicle
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

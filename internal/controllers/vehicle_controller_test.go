package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"rentride/internal/models"
)

func TestCreateVehicle(t *testing.T) {
	db := setupTestDB(t)
	ctrl := &VehicleController{DB: db}

	w := httptest.NewRecorder()
	c := newTestContext(t, w, "POST", "/admin/vehicles", map[string]interface{}{
		"name":      "City Scooter",
		"type":      "scooter",
		"price":     25.0,
		"seats":     2,
		"location":  "Pokhara",
		"color":     "blue",
		"fuel_type": "electric",
		"images":    []string{"https://img.example/s1.jpg", "https://img.example/s2.jpg"},
		"tags":      []string{"eco", "city"},
	})
	asAdmin(c, 1)
	ctrl.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var vehicle models.Vehicle
	assert.NoError(t, db.First(&vehicle, "name = ?", "City Scooter").Error)
	assert.Equal(t, []string{"https://img.example/s1.jpg", "https://img.example/s2.jpg"}, vehicle.Images)
	assert.Equal(t, []string{"eco", "city"}, vehicle.Tags)
}

func TestCreateVehicleInvalidType(t *testing.T) {
	db := setupTestDB(t)
	ctrl := &VehicleController{DB: db}

	w := httptest.NewRecorder()
	c := newTestContext(t, w, "POST", "/admin/vehicles", map[string]interface{}{
		"name":  "Hoverboard",
		"type":  "hoverboard",
		"price": 10.0,
	})
	asAdmin(c, 1)
	ctrl.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListVehiclesFiltered(t *testing.T) {
	db := setupTestDB(t)
	createTestVehicle(t, db, 100) // car in Kathmandu
	bike := models.Vehicle{Name: "Trail Bike", Type: models.VehicleBike, Price: 40, Location: "Pokhara"}
	assert.NoError(t, db.Create(&bike).Error)

	ctrl := &VehicleController{DB: db}
	w := httptest.NewRecorder()
	c := newTestContext(t, w, "GET", "/vehicles?type=bike", nil)
	ctrl.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	items := response["data"].([]interface{})
	assert.Len(t, items, 1)
	entry := items[0].(map[string]interface{})
	assert.Equal(t, "Trail Bike", entry["name"])
}

func TestGetVehicleNotFound(t *testing.T) {
	db := setupTestDB(t)

	ctrl := &VehicleController{DB: db}
	w := httptest.NewRecorder()
	c := newTestContext(t, w, "GET", "/vehicles/77", nil)
	c.Params = gin.Params{{Key: "id", Value: "77"}}
	ctrl.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAndDeleteVehicle(t *testing.T) {
	db := setupTestDB(t)
	vehicle := createTestVehicle(t, db, 100)
	ctrl := &VehicleController{DB: db}

	w := httptest.NewRecorder()
	c := newTestContext(t, w, "PUT", "/admin/vehicles/1", map[string]interface{}{
		"name":  "Renamed Hatchback",
		"type":  "car",
		"price": 120.0,
	})
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	asAdmin(c, 1)
	ctrl.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, db.First(&vehicle, vehicle.ID).Error)
	assert.Equal(t, "Renamed Hatchback", vehicle.Name)
	assert.Equal(t, 120.0, vehicle.Price)

	w = httptest.NewRecorder()
	c = newTestContext(t, w, "DELETE", "/admin/vehicles/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	asAdmin(c, 1)
	ctrl.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), countRows(t, db, &models.Vehicle{}))
}

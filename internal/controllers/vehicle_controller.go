package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rentride/internal/models"
)

// VehicleController exposes the public catalog and the admin CRUD.
type VehicleController struct {
	DB *gorm.DB
}

type vehicleInput struct {
	Name     string   `json:"name" binding:"required"`
	Type     string   `json:"type" binding:"required"`
	Price    float64  `json:"price" binding:"required,gt=0"`
	Seats    int      `json:"seats"`
	Location string   `json:"location"`
	Color    string   `json:"color"`
	FuelType string   `json:"fuel_type"`
	Images   []string `json:"images"`
	Tags     []string `json:"tags"`
	Rating   float64  `json:"rating"`
}

func validVehicleType(t string) bool {
	switch t {
	case models.VehicleCar, models.VehicleBike, models.VehicleScooter:
		return true
	}
	return false
}

func (v *VehicleController) Create(c *gin.Context) {
	var input vehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle input: " + err.Error()})
		return
	}
	if !validVehicleType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be car, bike or scooter"})
		return
	}

	vehicle := models.Vehicle{
		Name:     input.Name,
		Type:     input.Type,
		Price:    input.Price,
		Seats:    input.Seats,
		Location: input.Location,
		Color:    input.Color,
		FuelType: input.FuelType,
		Images:   input.Images,
		Tags:     input.Tags,
		Rating:   input.Rating,
	}
	if err := v.DB.Create(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
}

// List serves the public catalog, optionally filtered by type and
// location query params.
func (v *VehicleController) List(c *gin.Context) {
	query := v.DB.Model(&models.Vehicle{})
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if loc := c.Query("location"); loc != "" {
		query = query.Where("location = ?", loc)
	}

	var vehicles []models.Vehicle
	if err := query.Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing vehicles: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}

func (v *VehicleController) Get(c *gin.Context) {
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := v.DB.First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

func (v *VehicleController) Update(c *gin.Context) {
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := v.DB.First(&vehicle, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}

	var input vehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle input: " + err.Error()})
		return
	}
	if !validVehicleType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be car, bike or scooter"})
		return
	}

	vehicle.Name = input.Name
	vehicle.Type = input.Type
	vehicle.Price = input.Price
	vehicle.Seats = input.Seats
	vehicle.Location = input.Location
	vehicle.Color = input.Color
	vehicle.FuelType = input.FuelType
	vehicle.Images = input.Images
	vehicle.Tags = input.Tags
	vehicle.Rating = input.Rating

	if err := v.DB.Save(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

func (v *VehicleController) Delete(c *gin.Context) {
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := v.DB.First(&vehicle, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}

	if err := v.DB.Delete(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}

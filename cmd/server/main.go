package main

import (
	"log"
	"net/http"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rentride/internal/config"
	"rentride/internal/logger"
	"rentride/internal/middleware"
	"rentride/internal/models"
	"rentride/internal/routes"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	// Open the store handle; handed down through the router
	db := config.OpenDB()
	defer config.CloseDB(db)

	seedAdmin(db)

	r := routes.SetupRouter(db)

	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :8080")
	log.Fatal(http.ListenAndServe("0.0.0.0:8080", handler))
}

// seedAdmin creates a first back-office account when the admins table
// is empty, so a fresh deployment can be administered at all.
func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&models.Admin{}).Count(&count)
	if count > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("no ADMIN_EMAIL/ADMIN_PASSWORD set – skipping admin seed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("could not hash seed admin password: %v", err)
	}

	admin := models.Admin{Name: "Administrator", Email: email, Password: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("could not seed admin: %v", err)
	}
	log.Printf("seeded admin account %s", email)
}

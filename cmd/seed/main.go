package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"parkease/internal/database"
	"parkease/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "parkease.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (dependents first to avoid foreign key errors).
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM parking_spots")
	db.Exec("DELETE FROM users")

	log.Println("Creating demo user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := domain.User{
		Username:     "john.doe",
		PasswordHash: string(hash),
		Name:         "John Doe",
		Email:        "john.doe@example.com",
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("failed to create user:", err)
	}

	log.Println("Creating parking spots...")
	spots := []domain.ParkingSpot{
		{
			Name:           "Downtown Parking Garage",
			Address:        "123 Main Street",
			City:           "City Center",
			Price:          8.50,
			AvailableSpots: 45,
			Distance:       f(0.3),
			Rating:         f(4.5),
			Latitude:       f(40.7128),
			Longitude:      f(-74.0060),
			Source:         domain.SpotSourceLocal,
		},
		{
			Name:           "City Center Lot",
			Address:        "456 Park Avenue",
			City:           "Downtown",
			Price:          5.00,
			AvailableSpots: 12,
			Distance:       f(0.5),
			Rating:         f(4.2),
			Latitude:       f(40.7142),
			Longitude:      f(-74.0064),
			Source:         domain.SpotSourceLocal,
		},
	}
	for i := range spots {
		if err := db.Create(&spots[i]).Error; err != nil {
			log.Fatal("failed to create parking spot:", err)
		}
	}

	log.Printf("Done: user id=%d, %d parking spots", user.ID, len(spots))
}

func f(v float64) *float64 { return &v }

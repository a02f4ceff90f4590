package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rentaldesk/internal/database"
	"rentaldesk/internal/domain"
	"rentaldesk/internal/repository"
)

func main() {
	db, err := database.Connect("rentaldesk.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// wipe in FK-safe order
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM event_users")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM booking_equipments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM equipments")
	db.Exec("DELETE FROM equipment_types")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	types := repository.NewEquipmentTypeRepository(db)
	equipments := repository.NewEquipmentRepository(db)
	events := repository.NewEventRepository(db)

	log.Println("Creating users...")
	defaultUsers := []struct {
		user     domain.User
		password string
	}{
		{
			user: domain.User{
				Username: "prophet", Name: "Klein Moratti",
				PhoneNumber: "1234567890", Address: "123 Admin St.",
				Staff: true, Admin: true,
			},
			password: "CarpeDime",
		},
		{
			user: domain.User{
				Username: "staff1", Name: "Regular Staff",
				PhoneNumber: "0987654321", Address: "456 Staff St.",
				Staff: true,
			},
			password: "123",
		},
		{
			user: domain.User{
				Username: "member1", Name: "Clint",
				PhoneNumber: "6789012345", Address: "789 Member St.",
			},
			password: "123",
		},
		{
			user: domain.User{
				Username: "member2", Name: "Bocchi",
				PhoneNumber: "5432109876", Address: "987 Member St.",
			},
			password: "123",
		},
	}
	for _, du := range defaultUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(du.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		u := du.user
		u.PasswordHash = string(hash)
		if err := users.Create(ctx, &u); err != nil {
			log.Fatal("seed user failed:", err)
		}
		log.Printf("User created: %s", u.Username)
	}

	log.Println("Creating equipment catalog...")
	catalog := []domain.EquipmentType{
		{Name: "Tent", Category: "Camping", RentingPrice: 15},
		{Name: "Camping Stove", Category: "Camping", RentingPrice: 5},
		{Name: "Kayak", Category: "Water", RentingPrice: 20},
		{Name: "Mountain Bike", Category: "Cycling", RentingPrice: 25},
	}
	for i := range catalog {
		if err := types.Create(ctx, &catalog[i]); err != nil {
			log.Fatal("seed equipment type failed:", err)
		}
		// two units of each type, all available
		for n := 0; n < 2; n++ {
			e := domain.Equipment{EquipmentTypeID: catalog[i].ID, State: "good"}
			if err := equipments.Create(ctx, &e); err != nil {
				log.Fatal("seed equipment failed:", err)
			}
		}
	}

	log.Println("Creating events...")
	opening := domain.Event{
		Name:        "Season Opening Trip",
		Description: "First group trip of the season",
		Date:        time.Now().AddDate(0, 1, 0),
	}
	if err := events.Create(ctx, &opening); err != nil {
		log.Fatal("seed event failed:", err)
	}

	log.Println("Seed complete")
}

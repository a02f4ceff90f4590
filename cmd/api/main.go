package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"rentaldesk/internal/database"
	"rentaldesk/internal/middleware"
	"rentaldesk/internal/modules/auth"
	"rentaldesk/internal/modules/booking"
	"rentaldesk/internal/modules/catalog"
	"rentaldesk/internal/modules/equipment"
	"rentaldesk/internal/modules/event"
	"rentaldesk/internal/modules/user"
	jwtsvc "rentaldesk/internal/pkg/jwt"
	"rentaldesk/internal/repository"
)

func main() {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	dsn := getEnv("DATABASE_URL", "rentaldesk.db")
	port := getEnv("PORT", "8080")

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	typeRepo := repository.NewEquipmentTypeRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	eventRepo := repository.NewEventRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(bookingRepo, equipmentRepo)
	bookingHandler := booking.NewHandler(bookingService)

	equipmentService := equipment.NewService(equipmentRepo, typeRepo)
	equipmentHandler := equipment.NewHandler(equipmentService)

	catalogHandler := catalog.NewHandler(typeRepo)
	userHandler := user.NewHandler(userRepo)

	eventService := event.NewService(eventRepo)
	eventHandler := event.NewHandler(eventService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)
		userHandler.RegisterRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)
		equipmentHandler.RegisterPublicRoutes(api)
		bookingHandler.RegisterPublicRoutes(api)
		eventHandler.RegisterPublicRoutes(api)

		// token required
		protected := api.Group("/")
		protected.Use(middleware.TokenExtractor(j))
		{
			bookingHandler.RegisterProtectedRoutes(protected)
			equipmentHandler.RegisterProtectedRoutes(protected)
			eventHandler.RegisterProtectedRoutes(protected)

			// staff only
			staff := protected.Group("/")
			staff.Use(middleware.RequireStaff())
			{
				equipmentHandler.RegisterStaffRoutes(staff)
				catalogHandler.RegisterStaffRoutes(staff)
				eventHandler.RegisterStaffRoutes(staff)
			}
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

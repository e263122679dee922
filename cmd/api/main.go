package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"parkease/internal/config"
	"parkease/internal/database"
	"parkease/internal/middleware"
	"parkease/internal/modules/auth"
	"parkease/internal/modules/catalog"
	"parkease/internal/modules/favorite"
	"parkease/internal/modules/payment"
	"parkease/internal/modules/reservation"
	jwtsvc "parkease/internal/pkg/jwt"
	"parkease/internal/repository"
	"parkease/internal/repository/memory"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var (
		userRepo        repository.UserRepository
		spotRepo        repository.ParkingSpotRepository
		reservationRepo repository.ReservationRepository
		favoriteRepo    repository.FavoriteRepository
	)

	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL is empty, using in-memory store")
		store := memory.NewStore()
		userRepo = store.Users()
		spotRepo = store.ParkingSpots()
		reservationRepo = store.Reservations()
		favoriteRepo = store.Favorites()
	} else {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		if err := database.Migrate(db); err != nil {
			log.Fatal(err)
		}
		userRepo = repository.NewUserRepository(db)
		spotRepo = repository.NewParkingSpotRepository(db)
		reservationRepo = repository.NewReservationRepository(db)
		favoriteRepo = repository.NewFavoriteRepository(db)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	var provider catalog.Provider
	if cfg.ParkingAPIKey != "" {
		provider = catalog.NewHTTPProvider(cfg.ParkingAPIURL, cfg.ParkingAPIKey)
	}
	catalogService := catalog.NewService(spotRepo, provider)
	catalogHandler := catalog.NewHandler(catalogService)

	reservationService := reservation.NewService(reservationRepo, spotRepo)
	reservationHandler := reservation.NewHandler(reservationService)

	favoriteService := favorite.NewService(favoriteRepo, spotRepo)
	favoriteHandler := favorite.NewHandler(favoriteService)

	stripeClient := payment.NewStripeClient(cfg.StripeSecretKey)
	paymentService := payment.NewService(stripeClient, reservationService, cfg.StripeWebhookSecret)
	paymentHandler := payment.NewHandler(paymentService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		catalogHandler.RegisterRoutes(api)
		reservationHandler.RegisterRoutes(api)
		favoriteHandler.RegisterRoutes(api)
		paymentHandler.RegisterRoutes(api)
		authHandler.RegisterPublicRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

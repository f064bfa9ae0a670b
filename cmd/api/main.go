package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"lightscape/internal/database"
	"lightscape/internal/middleware"
	"lightscape/internal/modules/auth"
	"lightscape/internal/modules/booking"
	"lightscape/internal/modules/businessconfig"
	"lightscape/internal/modules/gallery"
	"lightscape/internal/modules/media"
	"lightscape/internal/modules/payment"
	"lightscape/internal/modules/portal"
	"lightscape/internal/modules/pricing"
	"lightscape/internal/modules/testimonial"
	jwtsvc "lightscape/internal/pkg/jwt"
	"lightscape/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	configRepo := repository.NewBusinessConfigRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	pricingService := pricing.NewService()
	pricingHandler := pricing.NewHandler(pricingService)

	bookingService := booking.NewService(bookingRepo, pricingService)
	bookingHandler := booking.NewHandler(bookingService)

	portalService := portal.NewService(bookingRepo)
	portalHandler := portal.NewHandler(portalService)

	// Absent STRIPE_SECRET_KEY leaves the gateway nil; payment endpoints
	// then answer 503 instead of touching the processor.
	var gateway payment.Gateway
	if key := os.Getenv("STRIPE_SECRET_KEY"); key != "" {
		gateway = payment.NewStripeGateway(key)
	} else {
		log.Println("STRIPE_SECRET_KEY is empty - payment endpoints disabled")
	}
	paymentService := payment.NewService(gateway, bookingRepo, log.Printf)
	paymentHandler := payment.NewHandler(paymentService, log.Printf)

	testimonialService := testimonial.NewService(testimonialRepo)
	testimonialHandler := testimonial.NewHandler(testimonialService)

	galleryService := gallery.NewService(galleryRepo)
	galleryHandler := gallery.NewHandler(galleryService)

	mediaService := media.NewService(mediaRepo, "", "")
	mediaHandler := media.NewHandler(mediaService)

	configService := businessconfig.NewService(configRepo)
	configHandler := businessconfig.NewHandler(configService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static(media.StaticURLBase, media.UploadsBaseDir)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)
		pricingHandler.RegisterRoutes(api)
		bookingHandler.RegisterPublicRoutes(api)
		portalHandler.RegisterRoutes(api)
		paymentHandler.RegisterRoutes(api)
		testimonialHandler.RegisterRoutes(api)
		galleryHandler.RegisterPublicRoutes(api)
		configHandler.RegisterPublicRoutes(api)

		// admin dashboard
		admin := api.Group("/")
		admin.Use(middleware.AdminAuth(j))
		{
			bookingHandler.RegisterAdminRoutes(admin)
			galleryHandler.RegisterAdminRoutes(admin)
			mediaHandler.RegisterRoutes(admin)
			configHandler.RegisterAdminRoutes(admin)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"lightscape/internal/database"
	"lightscape/internal/domain"
	"lightscape/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "lightscape.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM media_library")
	db.Exec("DELETE FROM gallery_items")
	db.Exec("DELETE FROM testimonials")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM business_config")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	users := repository.NewUserRepository(db)
	bookings := repository.NewBookingRepository(db)
	testimonials := repository.NewTestimonialRepository(db)
	gallery := repository.NewGalleryRepository(db)
	configs := repository.NewBusinessConfigRepository(db)

	log.Println("Creating admin user...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	must(users.Create(ctx, &domain.User{
		Username:     "admin",
		PasswordHash: string(adminHash),
	}))

	log.Println("Creating testimonials...")
	for _, t := range []domain.Testimonial{
		{
			Name:        "Sarah Mitchell",
			Location:    "Quispamsis",
			Rating:      5.0,
			Comment:     "Absolutely incredible service! They transformed our home into a winter wonderland. The attention to detail and professionalism was outstanding. Highly recommend!",
			ServiceType: "Residential Installation",
			Featured:    true,
		},
		{
			Name:        "Mike Rodriguez",
			Location:    "Saint John",
			Rating:      5.0,
			Comment:     "Professional, punctual, and perfect results! They handled our commercial property with expertise and created a display that draws customers. Worth every penny.",
			ServiceType: "Commercial Display",
			Featured:    true,
		},
		{
			Name:        "Jennifer Chen",
			Location:    "Rothesay",
			Rating:      5.0,
			Comment:     "From quote to cleanup, everything was seamless. They even programmed our lights to turn on automatically. Our neighbors stop by just to admire our house!",
			ServiceType: "Premium Package",
			Featured:    true,
		},
		{
			Name:        "David Thompson",
			Location:    "Quispamsis",
			Rating:      4.8,
			Comment:     "Great work on our holiday display. Very professional team and fair pricing. Will definitely use them again next year.",
			ServiceType: "Residential Installation",
		},
		{
			Name:        "Lisa Park",
			Location:    "Saint John",
			Rating:      5.0,
			Comment:     "They made our business look amazing for the holidays. Customers loved the display and it really helped with foot traffic during the season.",
			ServiceType: "Commercial Display",
		},
	} {
		t := t
		must(testimonials.Create(ctx, &t))
	}

	log.Println("Creating gallery items...")
	for _, g := range []domain.GalleryItem{
		{
			Title:       "Elegant Roofline Display",
			Description: "Warm white LED installation in Quispamsis",
			ImageURL:    "https://images.unsplash.com/photo-1512389142860-9c449e58a543?auto=format&fit=crop&w=800&h=600",
			ServiceType: "Residential Installation",
			Featured:    true,
		},
		{
			Title:       "Commercial Installation",
			Description: "Shopping center display in Saint John",
			ImageURL:    "https://images.unsplash.com/photo-1543589077-47d81606c1bf?auto=format&fit=crop&w=800&h=600",
			ServiceType: "Commercial Display",
			Featured:    true,
		},
		{
			Title:       "Festive Tree Wrapping",
			Description: "Multi-color LED tree installation in Rothesay",
			ImageURL:    "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?auto=format&fit=crop&w=800&h=600",
			ServiceType: "Premium Package",
			Featured:    true,
		},
		{
			Title:       "Classic Home Display",
			Description: "Traditional warm white lights around windows and doors",
			ImageURL:    "https://images.unsplash.com/photo-1576531796464-baa1ee2a1e69?auto=format&fit=crop&w=800&h=600",
			ServiceType: "Residential Installation",
		},
		{
			Title:       "Pathway Lighting",
			Description: "Ground stakes and pathway illumination",
			ImageURL:    "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?auto=format&fit=crop&w=800&h=600",
			ServiceType: "Landscape Lighting",
		},
	} {
		g := g
		must(gallery.Create(ctx, &g))
	}

	log.Println("Creating business configs...")
	for _, cfg := range []domain.BusinessConfig{
		{
			BusinessType:   domain.BusinessChristmas,
			BusinessName:   "PLACED: Your Christmas Our Hands",
			Description:    "Professional Christmas light installation and holiday decorating services",
			PrimaryColor:   "#dc2626",
			SecondaryColor: "#16a34a",
			ContactPhone:   "(506) 555-0123",
			ContactEmail:   "christmas@placed-nb.com",
			ServiceAreas:   []string{"Quispamsis", "Saint John", "Rothesay"},
			IsActive:       true,
		},
		{
			BusinessType:   domain.BusinessHandbook,
			BusinessName:   "Homeowner's Handbook",
			Description:    "Essential guides and tips for New Brunswick homeowners",
			PrimaryColor:   "#16a34a",
			SecondaryColor: "#dc2626",
			ContactPhone:   "(506) 555-0123",
			ContactEmail:   "info@placed-nb.com",
			ServiceAreas:   []string{"Quispamsis", "Saint John", "Rothesay", "New Brunswick"},
			IsActive:       true,
		},
		{
			BusinessType:   domain.BusinessRoofing,
			BusinessName:   "PLACED: Your Roofing Our Hands",
			Description:    "Professional roofing services and repairs",
			PrimaryColor:   "#ea580c",
			SecondaryColor: "#1f2937",
			ContactPhone:   "(506) 555-0124",
			ContactEmail:   "roofing@placed-nb.com",
			ServiceAreas:   []string{"Quispamsis", "Saint John", "Rothesay"},
		},
		{
			BusinessType:   domain.BusinessMechanic,
			BusinessName:   "PLACED: Your Auto Our Hands",
			Description:    "Reliable automotive repair and maintenance services",
			PrimaryColor:   "#2563eb",
			SecondaryColor: "#1f2937",
			ContactPhone:   "(506) 555-0125",
			ContactEmail:   "auto@placed-nb.com",
			ServiceAreas:   []string{"Quispamsis", "Saint John", "Rothesay"},
		},
	} {
		cfg := cfg
		must(configs.Create(ctx, &cfg))
	}

	log.Println("Creating sample bookings...")
	paid := 799.0
	partial := 649.0
	for _, b := range []domain.Booking{
		{
			FullName:         "John Smith",
			Email:            "john@example.com",
			Phone:            "(506) 555-0123",
			Address:          "123 Main Street, Quispamsis, NB",
			ServiceType:      "residential-premium",
			ProjectDetails:   "Front yard and roofline lighting, warm white LED",
			EstimatedPrice:   799,
			Status:           domain.BookingConfirmed,
			PaymentStatus:    domain.PaymentPaid,
			PaidAmount:       &paid,
			AutomatedBooking: true,
		},
		{
			FullName:         "Sarah Johnson",
			Email:            "sarah@example.com",
			Phone:            "(506) 555-0456",
			Address:          "456 Oak Avenue, Saint John, NB",
			ServiceType:      "residential-deluxe",
			ProjectDetails:   "Full property Christmas display with animated elements",
			EstimatedPrice:   1299,
			Status:           domain.BookingInProgress,
			PaymentStatus:    domain.PaymentPaid,
			PaidAmount:       &partial,
			AutomatedBooking: true,
		},
		{
			FullName:         "Mike Wilson",
			Email:            "mike@example.com",
			Phone:            "(506) 555-0789",
			Address:          "789 Pine Road, Rothesay, NB",
			ServiceType:      "residential-basic",
			ProjectDetails:   "Simple front entrance lighting",
			EstimatedPrice:   399,
			Status:           domain.BookingPending,
			PaymentStatus:    domain.PaymentPending,
			AutomatedBooking: true,
		},
	} {
		b := b
		must(bookings.Create(ctx, &b))
	}

	log.Println("Database seeded successfully!")
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

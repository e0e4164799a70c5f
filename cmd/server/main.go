package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"partyrental/internal/api"
	"partyrental/internal/auth"
	"partyrental/internal/repository"
	"partyrental/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	jobRepo := repository.NewJobRepository(db)
	adminAuthRepo := repository.NewAdminAuthRepository(db)

	sender := service.NewSenderService()
	bookingSvc := service.NewBookingService(bookingRepo, inventoryRepo, sender)
	inventorySvc := service.NewInventoryService(inventoryRepo, bookingRepo)
	adminSvc := service.NewAdminService(bookingRepo, inventoryRepo, driverRepo, statsRepo)
	driverSvc := service.NewDriverService(driverRepo)
	jobSvc := service.NewJobService(jobRepo)
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo)

	bookingHandler := api.NewBookingHandler(bookingSvc)
	inventoryHandler := api.NewInventoryHandler(inventorySvc)
	adminHandler := api.NewAdminHandler(bookingSvc, inventorySvc, adminSvc)
	driverHandler := api.NewDriverHandler(driverSvc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/bookings/check-availability", bookingHandler.CheckAvailability).Methods("POST")
	r.HandleFunc("/api/bookings/filter-items", bookingHandler.FilterItems).Methods("POST")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{order}", bookingHandler.GetBooking).Methods("GET")
	r.HandleFunc("/api/bookings/{order}", bookingHandler.UpdateBooking).Methods("PUT")
	r.HandleFunc("/api/bookings/{order}", bookingHandler.CancelBooking).Methods("DELETE")
	r.HandleFunc("/api/inventory", inventoryHandler.ListItems).Methods("GET")
	r.HandleFunc("/api/inventory/{id}", inventoryHandler.GetItem).Methods("GET")
	r.HandleFunc("/api/inventory/{id}/calendar", inventoryHandler.GetItemCalendar).Methods("GET")
	r.HandleFunc("/api/inventory/{id}/availability", inventoryHandler.CheckItemAvailability).Methods("GET")
	r.HandleFunc("/api/drivers/{id}/route", driverHandler.GetRoute).Methods("GET")

	// Admin endpoints (protected)
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/bookings/{id}", adminHandler.UpdateBooking).Methods("PATCH")
	admin.HandleFunc("/bookings/{id}", adminHandler.DeleteBooking).Methods("DELETE")
	admin.HandleFunc("/conflicts", adminHandler.ListConflicts).Methods("GET")
	admin.HandleFunc("/stats", adminHandler.DashboardStats).Methods("GET")
	admin.HandleFunc("/drivers/workload", adminHandler.DriverWorkload).Methods("GET")
	admin.HandleFunc("/drivers/unassigned-bookings", adminHandler.UnassignedBookings).Methods("GET")
	admin.HandleFunc("/inventory/{id}", adminHandler.UpdateInventoryItem).Methods("PATCH")

	c := cron.New()
	c.AddFunc("0 * * * *", func() {
		if err := jobSvc.CompleteFinishedBookings(); err != nil {
			log.Printf("Cron job error: %v", err)
		}
		deleted, err := jobSvc.PurgeStalePendingBookings(time.Now().UTC().Add(-24 * time.Hour))
		if err != nil {
			log.Printf("Cron job error purging pending bookings: %v", err)
		} else if deleted > 0 {
			log.Printf("Cron Job: purged %d stale pending bookings", deleted)
		}
	})
	c.Start()
	defer c.Stop()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}

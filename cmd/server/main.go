package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorportal/internal/api"
	"doctorportal/internal/auth"
	"doctorportal/internal/repository"
	"doctorportal/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v82"
)

func main() {
	godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET not set")
	}
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.Close()

	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	jobRepo := repository.NewJobRepository(db)

	sender := service.NewSenderService()
	bookingSvc := service.NewBookingService(bookingRepo, serviceRepo, sender)
	userSvc := service.NewUserService(userRepo, []byte(secret))
	doctorSvc := service.NewDoctorService(doctorRepo)
	paymentSvc := service.NewPaymentService(bookingRepo, paymentRepo, sender)
	jobSvc := service.NewJobService(jobRepo)

	bookingHandler := api.NewBookingHandler(bookingSvc)
	userHandler := api.NewUserHandler(userSvc)
	doctorHandler := api.NewDoctorHandler(doctorSvc)
	paymentHandler := api.NewPaymentHandler(paymentSvc)

	mw := auth.NewMiddleware([]byte(secret), userRepo)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("doctor portal is running"))
	}).Methods("GET")
	r.HandleFunc("/services", bookingHandler.ListServices).Methods("GET")
	r.HandleFunc("/available", bookingHandler.Available).Methods("GET")
	r.HandleFunc("/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/user/{email}", userHandler.UpsertUser).Methods("PUT")
	r.HandleFunc("/admin/{email}", userHandler.CheckAdmin).Methods("GET")

	// Token-protected endpoints
	protected := r.NewRoute().Subrouter()
	protected.Use(mw.RequireToken)
	protected.HandleFunc("/user", userHandler.ListUsers).Methods("GET")
	protected.HandleFunc("/bookings", bookingHandler.ListBookings).Methods("GET")
	protected.HandleFunc("/bookings/{id}", bookingHandler.GetBooking).Methods("GET")
	protected.HandleFunc("/create-payment-intent", paymentHandler.CreatePaymentIntent).Methods("POST")
	protected.HandleFunc("/bookings/{id}", paymentHandler.ConfirmPayment).Methods("PATCH")

	// Admin-only endpoints
	admin := r.NewRoute().Subrouter()
	admin.Use(mw.RequireToken, mw.RequireAdmin)
	admin.HandleFunc("/user/admin/{email}", userHandler.PromoteAdmin).Methods("PUT")
	admin.HandleFunc("/user/admin/{email}", userHandler.DeleteUser).Methods("DELETE")
	admin.HandleFunc("/doctors", doctorHandler.CreateDoctor).Methods("POST")
	admin.HandleFunc("/doctors", doctorHandler.ListDoctors).Methods("GET")
	admin.HandleFunc("/doctors/{email}", doctorHandler.DeleteDoctor).Methods("DELETE")

	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		if err := jobSvc.PurgeStaleUnpaidBookings(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule maintenance job: %v", err)
	}
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: corsHandler(r),
	}

	go func() {
		log.Printf("doctor portal listening on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

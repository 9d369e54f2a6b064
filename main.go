package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tourapi/internal/cache"
	intconfig "tourapi/internal/config"
	router "tourapi/internal/http"
	"tourapi/internal/http/handlers"
	"tourapi/internal/idgen"
	"tourapi/internal/repositories"
	"tourapi/internal/services"
	"tourapi/internal/utils"
)

func main() {
	env := intconfig.LoadEnv()
	utils.InitLogger(env.GinMode)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env.DBDSN)
	defer intconfig.CloseDB()

	if err := intconfig.MigrateUp(db, env.MigrationsPath); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	refGen, err := idgen.NewSnowflakeGenerator(env.SnowflakeNode)
	if err != nil {
		log.Fatalf("id generator init failed: %v", err)
	}

	var cityCache cache.Cache
	if env.RedisAddr != "" {
		cityCache = cache.NewRedisCache(env.RedisAddr)
	}

	packageRepo := repositories.PackageRepository{DB: db}
	bookingRepo := repositories.BookingRepository{DB: db}

	inquirySvc := services.InquiryService{InquiryRepo: repositories.InquiryRepository{DB: db}}
	plannerSvc := services.PlannerService{ItineraryRepo: repositories.ItineraryRepository{DB: db}}
	bookingSvc := services.BookingService{
		BookingRepo: bookingRepo,
		PackageRepo: packageRepo,
		RefGen:      refGen,
	}

	sessions := services.NewSessionStore(services.DefaultSessionTTL)
	stop := make(chan struct{})
	defer close(stop)
	sessions.StartJanitor(time.Minute, stop)

	api := &handlers.API{
		Packages: services.PackageService{
			PackageRepo:     packageRepo,
			DestinationRepo: repositories.DestinationRepository{DB: db},
		},
		Inquiry: inquirySvc,
		Planner: plannerSvc,
		Booking: bookingSvc,
		Voucher: services.VoucherService{BookingRepo: bookingRepo},
		Cities: services.CityService{
			CityRepo: repositories.CityRepository{DB: db},
			Cache:    cityCache,
		},
		Auth: services.AuthService{
			AdminRepo: repositories.AdminRepository{DB: db},
			JWTSecret: []byte(env.JWTSecret),
		},
		Flows: services.FlowFactory{
			Inquiry: inquirySvc,
			Planner: plannerSvc,
			Booking: bookingSvc,
		},
		Sessions: sessions,
	}

	r := router.NewRouter(env, api)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly")
}

package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/config"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/database"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/handler"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/middleware"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/queue"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/repository"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/router"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/service"
)

func main() {
	// .env is optional; real deployments set variables in the environment.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	stations := repository.NewStationRepo(db)
	bookings := repository.NewBookingRepo(db)
	expenses := repository.NewExpenseRepo(db, users)

	publisher := service.NewQueuePublisher(queue.BrokerURL())

	authH := handler.NewAuthHandler(cfg, users, tokens)
	userH := handler.NewUserHandler(users)
	stationH := handler.NewStationHandler(stations)
	bookingH := handler.NewBookingHandler(bookings, publisher)
	expenseH := handler.NewExpenseHandler(expenses, users)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())

	// Redis backs rate limiting and the browse-endpoint response cache.  A
	// nil client disables both middlewares instead of failing startup.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response caching disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	stationCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterStations(e, stationH, cfg.JWTSecret, stationCache)
	router.RegisterBookings(e, bookingH, cfg.JWTSecret)
	router.RegisterExpenses(e, expenseH, cfg.JWTSecret)
	router.RegisterUsers(e, userH, cfg.JWTSecret)

	// Consumer writes booking confirmations to logs/booking.log.  It runs a
	// reconnect loop for the life of the process.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/config"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/controllers"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/events"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/payments"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/router"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/store"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	utils.SetJWTSecret(cfg.JWTSecret)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := config.ConnectDB(cfg.MongoURI)
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	products := store.NewMongoProductStore(config.GetCollection(client, cfg.DBName, "products"))
	bookings := store.NewMongoBookingStore(config.GetCollection(client, cfg.DBName, "bookings"))
	users := store.NewMongoUserStore(config.GetCollection(client, cfg.DBName, "users"))

	var tokens utils.TokenStore
	var redisTokens *utils.RedisTokenStore
	if cfg.RedisAddr != "" {
		redisTokens = utils.NewRedisTokenStore(cfg.RedisAddr)
		tokens = redisTokens
	} else {
		tokens = utils.NewMemoryTokenStore()
	}

	var pub events.Publisher = events.NopPublisher{}
	var kafkaPub *events.KafkaPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPub = events.NewKafkaPublisher(cfg.KafkaBrokers, events.TopicBookingEvents, "garments-order-api", 1024)
		kafkaPub.Start(ctx)
		pub = kafkaPub
	}

	provider := payments.NewStripeProvider(cfg.StripeKey, cfg.SuccessURL, cfg.CancelURL)

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Garments order system is running"})
	})

	router.AuthRoutes(r, controllers.NewAuthController(users, tokens, cfg.Production))
	router.UserRoutes(r, controllers.NewUserController(users), tokens)
	router.ProductRoutes(r, controllers.NewProductController(products), tokens)
	router.BookingRoutes(r, controllers.NewBookingController(bookings, products, pub), tokens)
	router.PaymentRoutes(r, controllers.NewPaymentController(provider), tokens)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}

	// stop the event drain loop and wait for queued events to flush
	cancel()
	if kafkaPub != nil {
		kafkaPub.WaitClosed()
	}
	if redisTokens != nil {
		_ = redisTokens.Close()
	}
}

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

	"github.com/princinho/resalebackend/auth"
	"github.com/princinho/resalebackend/config"
	"github.com/princinho/resalebackend/controllers"
	"github.com/princinho/resalebackend/database"
	"github.com/princinho/resalebackend/logging"
	"github.com/princinho/resalebackend/payments"
	"github.com/princinho/resalebackend/storage"
	"github.com/princinho/resalebackend/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("mongo disconnect:", err)
		}
	}()

	db := client.Database(cfg.DatabaseName)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal(err)
	}
	if err := utils.SeedAdminUser(ctx, db.Collection(database.UsersCollection), cfg.AdminEmail); err != nil {
		log.Fatal(err)
	}
	if err := utils.SeedBrands(ctx, db.Collection(database.BrandsCollection), cfg.SeedBrands); err != nil {
		log.Fatal(err)
	}

	images, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	store := database.NewMongoStore(db)
	app := &controllers.App{
		Store:     store,
		Tokens:    auth.NewTokens(cfg.TokenSecret, cfg.TokenTTL),
		Payments:  payments.NewBridge(payments.NewStripeGateway(cfg.StripeKey), store.Bookings, store.Payments, cfg.Currency),
		Images:    images,
		Validator: storage.NewFileValidator(cfg.Storage),
		MaxImages: cfg.Storage.MaxImages,
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           controllers.NewRouter(app, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info(nil, "server.listening", map[string]any{"port": cfg.Port, "storage": cfg.Storage.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Info(nil, "server.shutdown", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown:", err)
	}
}

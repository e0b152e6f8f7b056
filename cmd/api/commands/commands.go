package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/storefront/core/internal/adapters/repository"
	"github.com/storefront/core/internal/application/services"
	"github.com/storefront/core/internal/infrastructure/config"
	"github.com/storefront/core/internal/infrastructure/jsonfile"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/infrastructure/server"
	"github.com/storefront/core/seeds"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Storefront API server",
		Long:  "Start the Storefront API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the product file with sample catalog data",
		Long:  "Initialize the data directory and load sample products into the product file (skipped if products already exist)",
		Run: func(cmd *cobra.Command, args []string) {
			runSeed()
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Storefront version",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				fmt.Println("Storefront Core (unknown version)")
				return
			}
			fmt.Printf("%s v%s\n", cfg.App.Name, cfg.App.Version)
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store, err := jsonfile.NewStore(cfg.Storage.DataDir)
	if err != nil {
		appLogger.Fatal("Failed to prepare data directory", "error", err)
	}

	srv, err := server.New(cfg, store, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting Storefront API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"data_dir", cfg.Storage.DataDir,
	)

	go func() {
		if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			appLogger.Info("Server stopped", "reason", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server shutdown failed", "error", err)
	}
}

func runSeed() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	if _, err := jsonfile.NewStore(cfg.Storage.DataDir); err != nil {
		appLogger.Fatal("Failed to prepare data directory", "error", err)
	}

	productRepo := repository.NewProductRepository(cfg.Storage.ProductsPath())
	productService := services.NewProductService(productRepo, appLogger)

	ctx := context.Background()

	count, err := productRepo.Count(ctx)
	if err != nil {
		appLogger.Fatal("Failed to read product file", "error", err)
	}
	if count > 0 {
		fmt.Printf("Product file already has %d products, nothing to seed\n", count)
		return
	}

	for _, req := range seeds.Products() {
		product, err := productService.CreateProduct(ctx, req)
		if err != nil {
			appLogger.Fatal("Failed to seed product", "error", err, "title", req.Title)
		}
		fmt.Printf("Seeded product %d: %s\n", product.ID, product.Title)
	}

	fmt.Println("Seeding completed")
}

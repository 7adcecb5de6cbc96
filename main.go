package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/grocery-inventory/modules/analytics"
	"github.com/example/grocery-inventory/modules/api"
	"github.com/example/grocery-inventory/modules/ingest"
	"github.com/example/grocery-inventory/modules/inventory"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Grocery Inventory Service ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules; dependents resolve their ports through the
	// service containers of the modules they name.
	app.Register(inventory.NewModule())
	app.Register(analytics.NewModule())
	app.Register(ingest.NewModule())
	app.Register(api.NewModule())

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("Available services (via NATS request-reply):")
	log.Println("  - inventory.add     - Add a single grocery item")
	log.Println("  - inventory.get     - Get an item by id")
	log.Println("  - inventory.search  - Search items by column")
	log.Println("  - inventory.list    - List all items")
	log.Println("  - analytics.report  - Generate the inventory report")
	log.Println("  - ingest.import     - Bulk import CSV rows")
	log.Println("")
	log.Println("HTTP endpoints (default :3000):")
	log.Println("  GET  /health")
	log.Println("  GET  /api/items")
	log.Println("  GET  /api/items/:id")
	log.Println("  POST /api/items")
	log.Println("  GET  /api/search?column=description&q=apple")
	log.Println("  GET  /api/report?viz=stock_health&viz=department")
	log.Println("  POST /api/import (multipart field: file)")
	log.Println("")
	log.Println("Set SEED_DEMO=<n> to populate an empty store with demo items")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the inventory module configuration.
type Config struct {
	// DBPath is the SQLite database file path.
	DBPath string
	// Debug enables GORM query logging.
	Debug bool
	// SeedDemo populates an empty store with randomized demo items.
	SeedDemo int
}

// Module provides the grocery item store, search and single-item
// ingestion as request-reply services.
type Module struct {
	cfg      Config
	db       *gorm.DB
	repo     *Repository
	eventBus mono.EventBus
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)
var _ mono.EventBusAwareModule = (*Module)(nil)
var _ mono.EventEmitterModule = (*Module)(nil)

// NewModule creates an inventory module configured from the environment.
func NewModule() *Module {
	cfg := Config{
		DBPath: os.Getenv("DB_PATH"),
		Debug:  os.Getenv("DB_DEBUG") == "true",
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "grocery.db"
	}
	if n, err := parseEnvInt("SEED_DEMO"); err == nil {
		cfg.SeedDemo = n
	}
	return NewModuleWithConfig(cfg)
}

// NewModuleWithConfig creates an inventory module with an explicit
// configuration. Used directly by tests.
func NewModuleWithConfig(cfg Config) *Module {
	return &Module{cfg: cfg}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "inventory"
}

// SetEventBus receives the EventBus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		ItemAddedV1.ToBase(),
	}
}

// RegisterServices registers the inventory request-reply services.
// The framework prefixes service names with "services.inventory.".
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "add", json.Unmarshal, json.Marshal, m.addItem,
	); err != nil {
		return fmt.Errorf("failed to register add service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get", json.Unmarshal, json.Marshal, m.getItem,
	); err != nil {
		return fmt.Errorf("failed to register get service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "search", json.Unmarshal, json.Marshal, m.searchItems,
	); err != nil {
		return fmt.Errorf("failed to register search service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.listItems,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}

	log.Printf("[inventory] Registered services: services.inventory.{add,get,search,list}")
	return nil
}

// Start opens the database, runs migrations and optionally seeds
// demo data into an empty store.
func (m *Module) Start(_ context.Context) error {
	log.Printf("[inventory] Connecting to SQLite database: %s", m.cfg.DBPath)

	logLevel := logger.Silent
	if m.cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(m.cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	m.db = db

	if err := m.db.AutoMigrate(&Item{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	m.repo = NewRepository(m.db)

	if m.cfg.SeedDemo > 0 {
		if err := m.seedDemoItems(m.cfg.SeedDemo); err != nil {
			return fmt.Errorf("failed to seed demo items: %w", err)
		}
	}

	log.Println("[inventory] Module started successfully")
	return nil
}

// Stop gracefully closes the database connection.
func (m *Module) Stop(_ context.Context) error {
	if m.db == nil {
		return nil
	}

	log.Println("[inventory] Closing database connection...")

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("[inventory] Database connection closed")
	return nil
}

// Health performs a health check on the inventory module.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get sql.DB: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"driver": "sqlite",
			"path":   m.cfg.DBPath,
		},
	}
}

// parseEnvInt reads an integer environment variable.
func parseEnvInt(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s not set", key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

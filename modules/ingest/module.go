package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/grocery-inventory/modules/inventory"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module provides batch CSV ingestion as a request-reply service.
// Rows are inserted one at a time through the inventory module, so
// id uniqueness is enforced in exactly one place.
type Module struct {
	inventory inventory.InventoryPort
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.DependentModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new ingest module.
func NewModule() *Module {
	return &Module{}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "ingest"
}

// Dependencies returns the list of module dependencies.
func (m *Module) Dependencies() []string {
	return []string{"inventory"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *Module) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "inventory" {
		m.inventory = inventory.NewInventoryAdapter(container)
	}
}

// RegisterServices registers the import request-reply service.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "import", json.Unmarshal, json.Marshal, m.importRows,
	); err != nil {
		return fmt.Errorf("failed to register import service: %w", err)
	}

	log.Printf("[ingest] Registered services: services.ingest.import")
	return nil
}

// Start verifies the inventory dependency is wired.
func (m *Module) Start(_ context.Context) error {
	if m.inventory == nil {
		return fmt.Errorf("inventory dependency not set")
	}
	log.Println("[ingest] Module started successfully")
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	return nil
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.inventory != nil,
		Message: "operational",
	}
}

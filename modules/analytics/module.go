package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/grocery-inventory/modules/inventory"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module provides inventory reporting as a request-reply service.
// It holds no state of its own; every report runs against a fresh
// snapshot fetched from the inventory module.
type Module struct {
	inventory inventory.InventoryPort
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.DependentModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new analytics module.
func NewModule() *Module {
	return &Module{}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "analytics"
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

// RegisterServices registers the report request-reply service.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "report", json.Unmarshal, json.Marshal, m.report,
	); err != nil {
		return fmt.Errorf("failed to register report service: %w", err)
	}

	log.Printf("[analytics] Registered services: services.analytics.report")
	return nil
}

// Start verifies the inventory dependency is wired.
func (m *Module) Start(_ context.Context) error {
	if m.inventory == nil {
		return fmt.Errorf("inventory dependency not set")
	}
	log.Println("[analytics] Module started successfully")
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
		Details: map[string]any{
			"analytics": AllKeys,
		},
	}
}

package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-monolith/mono"
)

// InventoryPort defines the interface for interacting with the
// inventory module. Consumers should use this interface instead of
// referencing the Module directly.
type InventoryPort interface {
	AddItem(ctx context.Context, req AddItemRequest) (*ItemRecord, error)
	GetItem(ctx context.Context, id int) (*ItemRecord, error)
	SearchItems(ctx context.Context, column, query string) ([]ItemRecord, error)
	ListItems(ctx context.Context) ([]ItemRecord, error)
}

// inventoryAdapter implements InventoryPort using the service container.
type inventoryAdapter struct {
	container mono.ServiceContainer
}

// NewInventoryAdapter creates a new adapter for the inventory services.
func NewInventoryAdapter(container mono.ServiceContainer) InventoryPort {
	return &inventoryAdapter{container: container}
}

// AddItem inserts a single item, rejecting duplicate ids.
func (a *inventoryAdapter) AddItem(ctx context.Context, req AddItemRequest) (*ItemRecord, error) {
	var resp AddItemResponse
	if err := a.call(ctx, "add", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

// GetItem fetches one item by id.
func (a *inventoryAdapter) GetItem(ctx context.Context, id int) (*ItemRecord, error) {
	var rec ItemRecord
	if err := a.call(ctx, "get", GetItemRequest{ID: id}, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// SearchItems returns items matching the column and search text,
// ordered by id ascending.
func (a *inventoryAdapter) SearchItems(ctx context.Context, column, query string) ([]ItemRecord, error) {
	var resp SearchItemsResponse
	req := SearchItemsRequest{Column: column, Query: query}
	if err := a.call(ctx, "search", req, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// ListItems returns a snapshot of every item in the store.
func (a *inventoryAdapter) ListItems(ctx context.Context) ([]ItemRecord, error) {
	var resp ListItemsResponse
	if err := a.call(ctx, "list", ListItemsRequest{}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// call performs a typed request-reply round trip against one of the
// inventory services.
func (a *inventoryAdapter) call(ctx context.Context, service string, req any, out any) error {
	client, err := a.container.GetRequestReplyService(service)
	if err != nil {
		return fmt.Errorf("failed to get %s service: %w", service, err)
	}

	reqData, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Call(ctx, reqData)
	if err != nil {
		return mapServiceError(err)
	}

	// Check for error response
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Data, &errResp); err == nil && errResp.Error != "" {
		return mapServiceError(fmt.Errorf("%s", errResp.Error))
	}

	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// mapServiceError converts service errors back to sentinel errors
// by checking the error message content. This is necessary because
// errors lose their type information when sent over NATS.
func mapServiceError(err error) error {
	if err == nil {
		return nil
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "already exists") {
		return ErrDuplicateID
	}
	if strings.Contains(errMsg, "unknown search column") {
		return ErrUnknownColumn
	}
	if strings.Contains(errMsg, "not found") {
		return ErrNotFound
	}

	return err
}

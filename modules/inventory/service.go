package inventory

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-monolith/mono"
)

// addItem handles the inventory.add service request.
func (m *Module) addItem(_ context.Context, req AddItemRequest, _ *mono.Msg) (AddItemResponse, error) {
	if req.Description == "" {
		return AddItemResponse{}, fmt.Errorf("description is required")
	}
	if req.Price == "" {
		return AddItemResponse{}, fmt.Errorf("price is required")
	}
	if req.Cost == "" {
		return AddItemResponse{}, fmt.Errorf("cost is required")
	}
	if req.XFor < 1 {
		return AddItemResponse{}, fmt.Errorf("x_for must be at least 1")
	}
	if req.Quantity < 0 {
		return AddItemResponse{}, fmt.Errorf("quantity must be non-negative")
	}
	if req.ReorderPoint != nil && *req.ReorderPoint < 0 {
		return AddItemResponse{}, fmt.Errorf("reorder_point must be non-negative")
	}

	item := NewItem(req, time.Now())
	if err := m.repo.Insert(item); err != nil {
		return AddItemResponse{}, err
	}

	rec := item.Record()
	m.publishItemAdded(rec)

	return AddItemResponse{Item: rec}, nil
}

// getItem handles the inventory.get service request.
func (m *Module) getItem(_ context.Context, req GetItemRequest, _ *mono.Msg) (ItemRecord, error) {
	item, err := m.repo.FindByID(req.ID)
	if err != nil {
		return ItemRecord{}, err
	}
	return item.Record(), nil
}

// searchItems handles the inventory.search service request.
func (m *Module) searchItems(_ context.Context, req SearchItemsRequest, _ *mono.Msg) (SearchItemsResponse, error) {
	items, err := m.repo.Search(req.Column, req.Query)
	if err != nil {
		return SearchItemsResponse{}, err
	}
	return SearchItemsResponse{
		Items: toRecords(items),
		Total: len(items),
	}, nil
}

// listItems handles the inventory.list service request.
func (m *Module) listItems(_ context.Context, _ ListItemsRequest, _ *mono.Msg) (ListItemsResponse, error) {
	items, err := m.repo.FindAll()
	if err != nil {
		return ListItemsResponse{}, err
	}
	return ListItemsResponse{
		Items: toRecords(items),
		Total: len(items),
	}, nil
}

// publishItemAdded emits ItemAddedV1 if an event bus is attached.
func (m *Module) publishItemAdded(rec ItemRecord) {
	if m.eventBus == nil {
		return
	}
	if err := ItemAddedV1.Publish(m.eventBus, ItemAddedEvent{Item: rec}, nil); err != nil {
		log.Printf("[inventory] Failed to publish ItemAdded event: %v", err)
	}
}

// toRecords converts items to their wire representation.
func toRecords(items []*Item) []ItemRecord {
	records := make([]ItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, item.Record())
	}
	return records
}

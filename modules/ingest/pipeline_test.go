package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/example/grocery-inventory/modules/inventory"
)

// mockInventory implements inventory.InventoryPort for testing.
type mockInventory struct {
	items map[int]inventory.ItemRecord
}

func newMockInventory() *mockInventory {
	return &mockInventory{items: make(map[int]inventory.ItemRecord)}
}

func (m *mockInventory) AddItem(_ context.Context, req inventory.AddItemRequest) (*inventory.ItemRecord, error) {
	if _, exists := m.items[req.ID]; exists {
		return nil, inventory.ErrDuplicateID
	}

	reorder := inventory.DefaultReorderPoint
	if req.ReorderPoint != nil {
		reorder = *req.ReorderPoint
	}
	rec := inventory.ItemRecord{
		ID:           req.ID,
		Description:  req.Description,
		LastSold:     req.LastSold,
		ShelfLife:    req.ShelfLife,
		Department:   req.Department,
		Price:        req.Price,
		Unit:         req.Unit,
		XFor:         req.XFor,
		Cost:         req.Cost,
		Quantity:     req.Quantity,
		ReorderPoint: reorder,
		DateAdded:    req.DateAdded,
	}
	m.items[req.ID] = rec
	return &rec, nil
}

func (m *mockInventory) GetItem(_ context.Context, id int) (*inventory.ItemRecord, error) {
	rec, ok := m.items[id]
	if !ok {
		return nil, inventory.ErrNotFound
	}
	return &rec, nil
}

func (m *mockInventory) SearchItems(_ context.Context, _, _ string) ([]inventory.ItemRecord, error) {
	return nil, nil
}

func (m *mockInventory) ListItems(_ context.Context) ([]inventory.ItemRecord, error) {
	out := make([]inventory.ItemRecord, 0, len(m.items))
	for _, rec := range m.items {
		out = append(out, rec)
	}
	return out, nil
}

func fields(row string) []string {
	return strings.Split(row, ",")
}

func TestDecodeRow_LegacyNineColumns(t *testing.T) {
	req, err := decodeRow(fields("9999,Demo,,7d,Dept,5.99,ea,1,3.99"))
	if err != nil {
		t.Fatalf("decodeRow() error = %v", err)
	}

	if req.ID != 9999 || req.Description != "Demo" {
		t.Errorf("unexpected identity: %+v", req)
	}
	if req.LastSold != "" {
		t.Errorf("expected empty last sold, got %q", req.LastSold)
	}
	if req.Quantity != 0 {
		t.Errorf("expected default quantity 0, got %d", req.Quantity)
	}
	if req.ReorderPoint != nil {
		t.Errorf("expected unset reorder point, got %d", *req.ReorderPoint)
	}
	if req.DateAdded != "" {
		t.Errorf("expected unset date added, got %q", req.DateAdded)
	}
}

func TestDecodeRow_ExtendedTwelveColumns(t *testing.T) {
	req, err := decodeRow(fields("1,Milk,2025-06-01,14d,Dairy,3.49,gal,1,2.00,8,3,2025-05-20"))
	if err != nil {
		t.Fatalf("decodeRow() error = %v", err)
	}

	if req.Quantity != 8 {
		t.Errorf("expected quantity 8, got %d", req.Quantity)
	}
	if req.ReorderPoint == nil || *req.ReorderPoint != 3 {
		t.Errorf("expected reorder point 3, got %v", req.ReorderPoint)
	}
	if req.DateAdded != "2025-05-20" {
		t.Errorf("expected date added 2025-05-20, got %q", req.DateAdded)
	}
	if req.LastSold != "2025-06-01" {
		t.Errorf("expected last sold 2025-06-01, got %q", req.LastSold)
	}
}

func TestDecodeRow_Invalid(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"too few columns", "1,Milk,,14d"},
		{"bad id", "one,Milk,,14d,Dairy,3.49,gal,1,2.00"},
		{"bad x_for", "1,Milk,,14d,Dairy,3.49,gal,two,2.00"},
		{"bad quantity", "1,Milk,,14d,Dairy,3.49,gal,1,2.00,lots"},
		{"bad reorder point", "1,Milk,,14d,Dairy,3.49,gal,1,2.00,8,few"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeRow(fields(tt.row)); err == nil {
				t.Error("expected decode error, got nil")
			}
		})
	}
}

func TestRunBatch(t *testing.T) {
	store := newMockInventory()
	rows := [][]string{
		fields("id,description,last_sold,shelf_life,department,price,unit,x_for,cost"),
		fields("1,Apple,,14d,Produce,1.29,lb,1,0.60"),
		fields("2,Banana,2025-06-01,5d,Produce,0.59,lb,1,0.25"),
	}

	result := runBatch(context.Background(), store, rows)

	if result.Added != 2 || result.Failed != 0 {
		t.Fatalf("expected 2 added, 0 failed; got %d/%d", result.Added, result.Failed)
	}
	if result.BatchID == "" {
		t.Error("expected a batch id")
	}
	if len(result.Items) != 2 {
		t.Errorf("expected 2 confirmed items, got %d", len(result.Items))
	}
	if _, err := store.GetItem(context.Background(), 1); err != nil {
		t.Errorf("item 1 not persisted: %v", err)
	}
}

func TestRunBatch_PartialFailureContinues(t *testing.T) {
	store := newMockInventory()
	rows := [][]string{
		fields("id,description,last_sold,shelf_life,department,price,unit,x_for,cost"),
		fields("1,Apple,,14d,Produce,1.29,lb,1,0.60"),
		fields("1,Apple Again,,14d,Produce,1.29,lb,1,0.60"), // duplicate id
		fields("oops,Broken,,14d,Produce,1.29,lb,1,0.60"),   // bad id
		fields("2,Banana,,5d,Produce,0.59,lb,1,0.25"),
	}

	result := runBatch(context.Background(), store, rows)

	if result.Added != 2 {
		t.Errorf("expected 2 added, got %d", result.Added)
	}
	if result.Failed != 2 {
		t.Errorf("expected 2 failed, got %d", result.Failed)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 row errors, got %d", len(result.Errors))
	}
	// Row numbers are 1-based and count the header.
	if result.Errors[0].Row != 3 || result.Errors[1].Row != 4 {
		t.Errorf("unexpected error rows: %+v", result.Errors)
	}

	// The later valid row must still have been ingested.
	if _, err := store.GetItem(context.Background(), 2); err != nil {
		t.Errorf("item 2 not persisted after earlier failures: %v", err)
	}
}

func TestRunBatch_HeaderOnlyIsEmpty(t *testing.T) {
	store := newMockInventory()
	rows := [][]string{
		fields("id,description,last_sold,shelf_life,department,price,unit,x_for,cost"),
	}

	result := runBatch(context.Background(), store, rows)
	if result.Added != 0 || result.Failed != 0 {
		t.Errorf("expected empty batch result, got %+v", result)
	}
}

package inventory

import (
	"math/rand"
	"strconv"
	"testing"
	"time"
)

func TestGenerateDemoItems(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	items := generateDemoItems(50, 100, rng, now)

	if len(items) != 50 {
		t.Fatalf("expected 50 items, got %d", len(items))
	}

	for i, req := range items {
		if req.ID != 100+i {
			t.Errorf("items[%d].ID = %d, want %d", i, req.ID, 100+i)
		}
		if req.Description == "" || req.Unit == "" || req.ShelfLife == "" {
			t.Errorf("items[%d] has empty required fields: %+v", i, req)
		}
		if req.XFor < 1 || req.XFor > 4 {
			t.Errorf("items[%d].XFor = %d, want 1..4", i, req.XFor)
		}
		if req.Quantity < 0 || req.Quantity > 100 {
			t.Errorf("items[%d].Quantity = %d out of range", i, req.Quantity)
		}
		if req.ReorderPoint == nil || *req.ReorderPoint < 5 || *req.ReorderPoint > 25 {
			t.Errorf("items[%d] has reorder point out of range: %v", i, req.ReorderPoint)
		}
		if _, err := strconv.ParseFloat(req.Price, 64); err != nil {
			t.Errorf("items[%d].Price %q does not parse", i, req.Price)
		}
		if _, err := strconv.ParseFloat(req.Cost, 64); err != nil {
			t.Errorf("items[%d].Cost %q does not parse", i, req.Cost)
		}
		if _, err := time.Parse(DateLayout, req.DateAdded); err != nil {
			t.Errorf("items[%d].DateAdded %q does not parse", i, req.DateAdded)
		}
		if req.LastSold != "" {
			if _, err := time.Parse(DateLayout, req.LastSold); err != nil {
				t.Errorf("items[%d].LastSold %q does not parse", i, req.LastSold)
			}
		}
	}
}

func TestSeedDemoItems_InsertsAndSkipsNonEmpty(t *testing.T) {
	m := setupTestModule(t)

	if err := m.seedDemoItems(10); err != nil {
		t.Fatalf("seedDemoItems() error = %v", err)
	}

	count, err := m.repo.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 10 {
		t.Fatalf("expected 10 seeded items, got %d", count)
	}

	// A second seed run must leave a populated store untouched.
	if err := m.seedDemoItems(10); err != nil {
		t.Fatalf("seedDemoItems() error = %v", err)
	}
	count, err = m.repo.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 10 {
		t.Errorf("expected store unchanged at 10 items, got %d", count)
	}
}

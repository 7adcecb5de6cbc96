package inventory

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)

func TestNewItem_Defaults(t *testing.T) {
	req := AddItemRequest{
		ID:          9999,
		Description: "Demo",
		ShelfLife:   "7d",
		Department:  "Dept",
		Price:       "5.99",
		Unit:        "ea",
		XFor:        1,
		Cost:        "3.99",
	}

	item := NewItem(req, testNow)

	if item.Quantity != 0 {
		t.Errorf("expected default quantity 0, got %d", item.Quantity)
	}
	if item.ReorderPoint != 10 {
		t.Errorf("expected default reorder point 10, got %d", item.ReorderPoint)
	}
	if item.LastSold != nil {
		t.Errorf("expected nil last sold, got %v", item.LastSold)
	}
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !item.DateAdded.Equal(want) {
		t.Errorf("expected date added %v, got %v", want, item.DateAdded)
	}
}

func TestNewItem_ExplicitValues(t *testing.T) {
	reorder := 3
	req := AddItemRequest{
		ID:           1,
		Description:  "Milk",
		LastSold:     "2025-06-01",
		ShelfLife:    "14d",
		Price:        "3.49",
		Unit:         "gal",
		XFor:         1,
		Cost:         "2.00",
		Quantity:     8,
		ReorderPoint: &reorder,
		DateAdded:    "2025-05-20",
	}

	item := NewItem(req, testNow)

	if item.Quantity != 8 {
		t.Errorf("expected quantity 8, got %d", item.Quantity)
	}
	if item.ReorderPoint != 3 {
		t.Errorf("expected reorder point 3, got %d", item.ReorderPoint)
	}
	if item.LastSold == nil || item.LastSold.Format(DateLayout) != "2025-06-01" {
		t.Errorf("unexpected last sold: %v", item.LastSold)
	}
	if item.DateAdded.Format(DateLayout) != "2025-05-20" {
		t.Errorf("unexpected date added: %v", item.DateAdded)
	}
}

func TestNewItem_MalformedDates(t *testing.T) {
	req := AddItemRequest{
		ID:          1,
		Description: "Milk",
		LastSold:    "June 1st",
		ShelfLife:   "14d",
		Price:       "3.49",
		Unit:        "gal",
		XFor:        1,
		Cost:        "2.00",
		DateAdded:   "not-a-date",
	}

	item := NewItem(req, testNow)

	// Bad last-sold means never sold; bad date-added falls back to now.
	if item.LastSold != nil {
		t.Errorf("expected nil last sold for malformed input, got %v", item.LastSold)
	}
	if item.DateAdded.Format(DateLayout) != "2025-06-15" {
		t.Errorf("expected date added fallback to today, got %v", item.DateAdded)
	}
}

func TestItem_Record(t *testing.T) {
	sold := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	item := &Item{
		ID:           42,
		Description:  "Eggs",
		LastSold:     &sold,
		ShelfLife:    "30d",
		Department:   "Dairy",
		Price:        "4.99",
		Unit:         "doz",
		XFor:         1,
		Cost:         "2.50",
		Quantity:     12,
		ReorderPoint: 6,
		DateAdded:    time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	rec := item.Record()

	if rec.ID != 42 || rec.Description != "Eggs" {
		t.Errorf("unexpected record identity: %+v", rec)
	}
	if rec.LastSold != "2025-06-01" {
		t.Errorf("expected last sold 2025-06-01, got %q", rec.LastSold)
	}
	if rec.DateAdded != "2025-05-01" {
		t.Errorf("expected date added 2025-05-01, got %q", rec.DateAdded)
	}

	t.Run("absent dates serialize empty", func(t *testing.T) {
		bare := &Item{ID: 1, Description: "Salt"}
		rec := bare.Record()
		if rec.LastSold != "" || rec.DateAdded != "" {
			t.Errorf("expected empty date fields, got %q and %q", rec.LastSold, rec.DateAdded)
		}
	})
}
